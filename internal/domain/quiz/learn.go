package quiz

import (
	"slices"

	"github.com/phrazzld/scry-quiz/internal/domain"
)

// GenerateMultipleChoiceQuestions builds one learn-mode question per card.
//
// Each question shows a card's term and asks for its definition. Up to
// MaxOptions-1 distractor definitions are drawn without replacement from the
// other cards, the options are shuffled, and CorrectIndex records where the
// correct definition landed. Decks smaller than MaxOptions produce fewer
// options; nothing is padded. The question order is shuffled as well.
//
// The result has exactly len(cards) questions. cards is not modified.
func GenerateMultipleChoiceQuestions(rng Rand, cards []domain.Card, params *Params) []domain.MultipleChoiceQuestion {
	if len(cards) == 0 {
		return []domain.MultipleChoiceQuestion{}
	}
	params = orDefault(params)

	questions := make([]domain.MultipleChoiceQuestion, 0, len(cards))
	for i, card := range cards {
		others := othersByIndex(cards, i)

		options, correctIndex := buildOptions(rng, card.Definition, others, params,
			func(c domain.Card) string { return c.Definition })

		questions = append(questions, domain.MultipleChoiceQuestion{
			ID:            card.ID,
			Prompt:        card.Term,
			CorrectAnswer: card.Definition,
			Options:       options,
			CorrectIndex:  correctIndex,
			Example:       card.Example,
			Card:          card,
		})
	}

	return Shuffle(rng, questions)
}

// CheckAnswer grades a learn-mode selection.
func CheckAnswer(question domain.MultipleChoiceQuestion, selectedIndex int) domain.AnswerResult {
	return domain.AnswerResult{
		IsCorrect:     selectedIndex == question.CorrectIndex,
		SelectedIndex: selectedIndex,
		CorrectIndex:  question.CorrectIndex,
		Question:      question,
	}
}

// buildOptions draws distractors from pool, mixes them with correct and
// returns the shuffled options with the index of correct.
//
// The index is the first option equal to correct. When another card shares
// the correct text the first copy wins, which may point at the distractor's
// copy; both render identically.
func buildOptions(
	rng Rand,
	correct string,
	pool []domain.Card,
	params *Params,
	side func(domain.Card) string,
) ([]string, int) {
	distractors := takeRandom(rng, pool, params.distractorCount())

	options := make([]string, 0, len(distractors)+1)
	options = append(options, correct)
	for _, d := range distractors {
		options = append(options, side(d))
	}

	options = Shuffle(rng, options)
	return options, slices.Index(options, correct)
}

// othersByIndex returns every card except the one at position skip.
func othersByIndex(cards []domain.Card, skip int) []domain.Card {
	others := make([]domain.Card, 0, len(cards)-1)
	others = append(others, cards[:skip]...)
	return append(others, cards[skip+1:]...)
}

// othersOf returns every card whose ID differs from card's.
func othersOf(cards []domain.Card, card domain.Card) []domain.Card {
	others := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.ID != card.ID {
			others = append(others, c)
		}
	}
	return others
}
