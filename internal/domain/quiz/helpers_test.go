package quiz

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-quiz/internal/domain"
)

// scriptedRand replays fixed draws, reduced modulo n.
type scriptedRand struct {
	values []int
	calls  []int
}

func (r *scriptedRand) IntN(n int) int {
	v := r.values[len(r.calls)%len(r.values)]
	r.calls = append(r.calls, n)
	return v % n
}

// makeCards builds n cards with distinct terms and definitions.
func makeCards(n int) []domain.Card {
	cards := make([]domain.Card, n)
	for i := range cards {
		cards[i] = domain.Card{
			ID:         uuid.New(),
			Term:       fmt.Sprintf("term %d", i),
			Definition: fmt.Sprintf("definition %d", i),
		}
	}
	return cards
}

func cardByID(cards []domain.Card) map[uuid.UUID]domain.Card {
	byID := make(map[uuid.UUID]domain.Card, len(cards))
	for _, c := range cards {
		byID[c.ID] = c
	}
	return byID
}
