package quiz

import (
	"fmt"

	"github.com/phrazzld/scry-quiz/internal/domain"
)

// GenerateTestQuestions builds a test-mode question set from cards.
//
// The pool is the starred cards when cfg.OnlyStarred is set; if no card is
// starred the whole deck is used and a WarningStarredFallback is returned.
// min(cfg.NumberOfQuestions, len(pool)) cards are drawn at random, and each
// becomes one question of a type picked uniformly from the enabled types.
// With AnswerModeMixed every question flips its own coin for the direction.
// The final order is shuffled.
//
// An empty deck or a config with no enabled type yields no questions.
// A negative question count is treated as zero. cards is not modified.
func GenerateTestQuestions(
	rng Rand,
	cards []domain.Card,
	cfg domain.TestConfig,
	params *Params,
) ([]domain.TestQuestion, []domain.Warning) {
	questions := []domain.TestQuestion{}
	warnings := []domain.Warning{}

	if len(cards) == 0 {
		return questions, warnings
	}
	params = orDefault(params)

	pool := cards
	if cfg.OnlyStarred {
		pool = starred(cards)
		if len(pool) == 0 {
			warnings = append(warnings, domain.Warning{
				Code:    domain.WarningStarredFallback,
				Message: "no starred cards found, using all cards",
			})
			pool = cards
		}
	}

	enabled := cfg.EnabledTypes()
	if len(enabled) == 0 {
		return questions, warnings
	}

	count := min(max(cfg.NumberOfQuestions, 0), len(pool))
	selected := Shuffle(rng, pool)[:count]

	for _, card := range selected {
		mode := resolveMode(rng, cfg.AnswerMode)
		qType := enabled[rng.IntN(len(enabled))]

		switch qType {
		case domain.QuestionTypeWritten:
			questions = append(questions, newWritten(card, mode))
		case domain.QuestionTypeTrueFalse:
			questions = append(questions, newTrueFalse(rng, card, pool, mode))
		default:
			questions = append(questions, newMCQ(rng, card, pool, mode, params))
		}
	}

	return Shuffle(rng, questions), warnings
}

// resolveMode picks the direction of a single question.
// Unknown answer modes fall back to DEFINITION.
func resolveMode(rng Rand, mode domain.AnswerMode) domain.QuestionMode {
	switch mode {
	case domain.AnswerModeMixed:
		if coinFlip(rng) {
			return domain.QuestionModeTerm
		}
		return domain.QuestionModeDefinition
	case domain.AnswerModeTerm:
		return domain.QuestionModeTerm
	default:
		return domain.QuestionModeDefinition
	}
}

func newMCQ(
	rng Rand,
	card domain.Card,
	pool []domain.Card,
	mode domain.QuestionMode,
	params *Params,
) *domain.MCQQuestion {
	correct := card.Side(mode)
	options, correctIndex := buildOptions(rng, correct, othersOf(pool, card), params,
		func(c domain.Card) string { return c.Side(mode) })

	return &domain.MCQQuestion{
		QuestionBase: domain.QuestionBase{
			ID:            domain.QuestionID(domain.QuestionTypeMCQ, card.ID),
			CardID:        card.ID,
			Prompt:        card.PromptSide(mode),
			CorrectAnswer: correct,
			Mode:          mode,
		},
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

func newWritten(card domain.Card, mode domain.QuestionMode) *domain.WrittenQuestion {
	return &domain.WrittenQuestion{
		QuestionBase: domain.QuestionBase{
			ID:            domain.QuestionID(domain.QuestionTypeWritten, card.ID),
			CardID:        card.ID,
			Prompt:        card.PromptSide(mode),
			CorrectAnswer: card.Side(mode),
			Mode:          mode,
		},
	}
}

// newTrueFalse pairs the card's prompt side either with its own answer side
// or, on the false branch, with the answer side of another random card.
// A pool without other cards always takes the true branch.
func newTrueFalse(
	rng Rand,
	card domain.Card,
	pool []domain.Card,
	mode domain.QuestionMode,
) *domain.TrueFalseQuestion {
	isTrue := coinFlip(rng)

	shown := card
	if !isTrue {
		others := othersOf(pool, card)
		if len(others) == 0 {
			isTrue = true
		} else {
			shown = others[rng.IntN(len(others))]
		}
	}

	return &domain.TrueFalseQuestion{
		QuestionBase: domain.QuestionBase{
			ID:            domain.QuestionID(domain.QuestionTypeTrueFalse, card.ID),
			CardID:        card.ID,
			Prompt:        pairingPrompt(card.PromptSide(mode), shown.Side(mode), mode),
			CorrectAnswer: fmt.Sprint(isTrue),
			Mode:          mode,
		},
		IsTrue: isTrue,
	}
}

// pairingPrompt renders a "prompt → answer" statement in the question's direction.
func pairingPrompt(prompt, answer string, mode domain.QuestionMode) string {
	if mode == domain.QuestionModeTerm {
		return fmt.Sprintf(`Definition: "%s" → Term: "%s"`, prompt, answer)
	}
	return fmt.Sprintf(`Term: "%s" → Definition: "%s"`, prompt, answer)
}

func starred(cards []domain.Card) []domain.Card {
	out := make([]domain.Card, 0, len(cards))
	for _, c := range cards {
		if c.IsStarred {
			out = append(out, c)
		}
	}
	return out
}
