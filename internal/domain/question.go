package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// QuestionType identifies the kind of a test question.
type QuestionType string

// Valid question types
const (
	QuestionTypeMCQ       QuestionType = "MCQ"
	QuestionTypeWritten   QuestionType = "WRITTEN"
	QuestionTypeTrueFalse QuestionType = "TRUE_FALSE"
)

// IsValid reports whether t is one of the known question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeMCQ, QuestionTypeWritten, QuestionTypeTrueFalse:
		return true
	default:
		return false
	}
}

// QuestionMode records which side of a card the learner answers with.
type QuestionMode string

// Valid question modes
const (
	// QuestionModeTerm shows the definition and expects the term.
	QuestionModeTerm QuestionMode = "TERM"

	// QuestionModeDefinition shows the term and expects the definition.
	QuestionModeDefinition QuestionMode = "DEFINITION"
)

// IsValid reports whether m is TERM or DEFINITION.
func (m QuestionMode) IsValid() bool {
	return m == QuestionModeTerm || m == QuestionModeDefinition
}

// MultipleChoiceQuestion is a learn-mode question. It always asks for the
// definition of a term.
type MultipleChoiceQuestion struct {
	// ID is the ID of the card the question was built from.
	ID            uuid.UUID `json:"id"`
	Prompt        string    `json:"question"`
	CorrectAnswer string    `json:"correct_answer"`
	Options       []string  `json:"options"`
	CorrectIndex  int       `json:"correct_index"`
	Example       string    `json:"example,omitempty"`
	Card          Card      `json:"card"`
}

// AnswerResult is the outcome of answering a single learn-mode question.
type AnswerResult struct {
	IsCorrect     bool                   `json:"is_correct"`
	SelectedIndex int                    `json:"selected_index"`
	CorrectIndex  int                    `json:"correct_index"`
	Question      MultipleChoiceQuestion `json:"question"`
}

// TestQuestion is a test-mode question. It is implemented only by
// *MCQQuestion, *WrittenQuestion and *TrueFalseQuestion, so each variant
// carries exactly the fields that make sense for its type.
type TestQuestion interface {
	// Type returns the question type of the variant.
	Type() QuestionType

	// Base returns the fields shared by every variant.
	Base() *QuestionBase

	// Answered reports whether the learner supplied an answer.
	Answered() bool

	isTestQuestion()
}

// QuestionBase holds the fields common to all test question variants.
type QuestionBase struct {
	ID            string       `json:"id"`
	CardID        uuid.UUID    `json:"card_id"`
	Prompt        string       `json:"question"`
	CorrectAnswer string       `json:"correct_answer"`
	Mode          QuestionMode `json:"question_mode"`
}

// Base implements TestQuestion.
func (b *QuestionBase) Base() *QuestionBase {
	return b
}

// QuestionID builds the question ID used for a card and question type.
func QuestionID(t QuestionType, cardID uuid.UUID) string {
	switch t {
	case QuestionTypeMCQ:
		return "mcq-" + cardID.String()
	case QuestionTypeWritten:
		return "written-" + cardID.String()
	case QuestionTypeTrueFalse:
		return "tf-" + cardID.String()
	default:
		return fmt.Sprintf("%s-%s", t, cardID)
	}
}

// MCQQuestion is a multiple-choice test question. UserAnswer is the index of
// the selected option, nil when unanswered.
type MCQQuestion struct {
	QuestionBase
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct_index"`
	UserAnswer   *int     `json:"user_answer,omitempty"`
}

// Type implements TestQuestion.
func (q *MCQQuestion) Type() QuestionType { return QuestionTypeMCQ }

// Answered implements TestQuestion.
func (q *MCQQuestion) Answered() bool { return q.UserAnswer != nil }

func (q *MCQQuestion) isTestQuestion() {}

// WrittenQuestion is a free-text test question.
type WrittenQuestion struct {
	QuestionBase
	UserAnswer *string `json:"user_answer,omitempty"`
}

// Type implements TestQuestion.
func (q *WrittenQuestion) Type() QuestionType { return QuestionTypeWritten }

// Answered implements TestQuestion.
func (q *WrittenQuestion) Answered() bool { return q.UserAnswer != nil }

func (q *WrittenQuestion) isTestQuestion() {}

// TrueFalseQuestion asks whether a term/definition pairing is correct.
// CorrectAnswer is "true" or "false" and always agrees with IsTrue.
type TrueFalseQuestion struct {
	QuestionBase
	IsTrue     bool  `json:"is_true"`
	UserAnswer *bool `json:"user_answer,omitempty"`
}

// Type implements TestQuestion.
func (q *TrueFalseQuestion) Type() QuestionType { return QuestionTypeTrueFalse }

// Answered implements TestQuestion.
func (q *TrueFalseQuestion) Answered() bool { return q.UserAnswer != nil }

func (q *TrueFalseQuestion) isTestQuestion() {}
