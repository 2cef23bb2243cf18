package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardTermEmpty is returned when a card's term is blank.
	ErrCardTermEmpty = errors.New("card term cannot be empty")

	// ErrCardDefinitionEmpty is returned when a card's definition is blank.
	ErrCardDefinitionEmpty = errors.New("card definition cannot be empty")
)

// Card is a single flashcard as handed to the quiz engine by the card
// management layer. The engine treats cards as read-only input.
//
// Term and Definition may contain markup; grading strips it before comparing.
type Card struct {
	ID         uuid.UUID `json:"id"`
	Term       string    `json:"term"`
	Definition string    `json:"definition"`
	Example    string    `json:"example,omitempty"`
	IsStarred  bool      `json:"is_starred,omitempty"`
}

// Validate checks if the Card has valid data.
// Returns an error if any field fails validation.
func (c Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if strings.TrimSpace(c.Term) == "" {
		return ErrCardTermEmpty
	}

	if strings.TrimSpace(c.Definition) == "" {
		return ErrCardDefinitionEmpty
	}

	return nil
}

// Side returns the text of the card the learner answers with under the given mode.
// QuestionModeTerm answers with the term, anything else with the definition.
func (c Card) Side(mode QuestionMode) string {
	if mode == QuestionModeTerm {
		return c.Term
	}
	return c.Definition
}

// PromptSide returns the text shown to the learner under the given mode,
// which is always the side opposite to Side.
func (c Card) PromptSide(mode QuestionMode) string {
	if mode == QuestionModeTerm {
		return c.Definition
	}
	return c.Term
}
