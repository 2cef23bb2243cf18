package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-quiz/internal/domain"
)

// ErrInvalidQuestionPayload indicates a test question DTO does not describe a
// well-formed question of its declared type.
var ErrInvalidQuestionPayload = errors.New("invalid question payload")

// CardPayload is a flashcard supplied by the client.
type CardPayload struct {
	ID         uuid.UUID `json:"id"         validate:"required"`
	Term       string    `json:"term"       validate:"required"`
	Definition string    `json:"definition" validate:"required"`
	Example    string    `json:"example,omitempty"`
	IsStarred  bool      `json:"is_starred"`
}

// ToDomain converts the payload into a domain card.
func (p CardPayload) ToDomain() domain.Card {
	return domain.Card{
		ID:         p.ID,
		Term:       p.Term,
		Definition: p.Definition,
		Example:    p.Example,
		IsStarred:  p.IsStarred,
	}
}

func cardsToDomain(payloads []CardPayload) []domain.Card {
	cards := make([]domain.Card, len(payloads))
	for i, p := range payloads {
		cards[i] = p.ToDomain()
	}
	return cards
}

// LearnSessionRequest defines the payload for POST /api/learn/sessions.
type LearnSessionRequest struct {
	Cards []CardPayload `json:"cards" validate:"dive"`
	// Seed is a decimal string so it survives JavaScript number precision.
	Seed *uint64 `json:"seed,string,omitempty"`
}

// LearnSessionResponse is returned by POST /api/learn/sessions.
type LearnSessionResponse struct {
	Seed      uint64                          `json:"seed,string"`
	Questions []domain.MultipleChoiceQuestion `json:"questions"`
}

// LearnAnswerRequest defines the payload for POST /api/learn/answers.
type LearnAnswerRequest struct {
	Question      *domain.MultipleChoiceQuestion `json:"question"       validate:"required"`
	SelectedIndex *int                           `json:"selected_index" validate:"required"`
}

// TestConfigPayload overrides fields of the server's default test config.
// Omitted fields keep their default.
type TestConfigPayload struct {
	NumberOfQuestions  *int                 `json:"number_of_questions,omitempty"`
	IncludeTypes       *domain.IncludeTypes `json:"include_types,omitempty"`
	AnswerMode         *domain.AnswerMode   `json:"answer_mode,omitempty"          validate:"omitempty,oneof=TERM DEFINITION MIXED"`
	OnlyStarred        *bool                `json:"only_starred,omitempty"`
	EnableSmartGrading *bool                `json:"enable_smart_grading,omitempty"`
}

// Apply returns base with every field set in p replaced.
func (p *TestConfigPayload) Apply(base domain.TestConfig) domain.TestConfig {
	if p == nil {
		return base
	}
	if p.NumberOfQuestions != nil {
		base.NumberOfQuestions = *p.NumberOfQuestions
	}
	if p.IncludeTypes != nil {
		base.IncludeTypes = *p.IncludeTypes
	}
	if p.AnswerMode != nil {
		base.AnswerMode = *p.AnswerMode
	}
	if p.OnlyStarred != nil {
		base.OnlyStarred = *p.OnlyStarred
	}
	if p.EnableSmartGrading != nil {
		base.EnableSmartGrading = *p.EnableSmartGrading
	}
	return base
}

// CreateTestRequest defines the payload for POST /api/tests.
type CreateTestRequest struct {
	Cards  []CardPayload      `json:"cards"  validate:"dive"`
	Config *TestConfigPayload `json:"config"`
	Seed   *uint64            `json:"seed,string,omitempty"`
}

// TestSessionResponse is returned by POST /api/tests.
type TestSessionResponse struct {
	ID        uuid.UUID             `json:"id"`
	Seed      uint64                `json:"seed,string"`
	Config    domain.TestConfig     `json:"config"`
	Questions []TestQuestionPayload `json:"questions"`
	Warnings  []domain.Warning      `json:"warnings"`
}

// TestQuestionPayload is the flat wire form of a test question. Type selects
// the variant: options and correct_index belong to MCQ only, is_true to
// TRUE_FALSE only. user_answer is an option index, a string or a boolean
// matching the type, or absent when unanswered.
type TestQuestionPayload struct {
	ID            string              `json:"id"`
	Type          domain.QuestionType `json:"type"                    validate:"required,oneof=MCQ WRITTEN TRUE_FALSE"`
	CardID        uuid.UUID           `json:"card_id"`
	Prompt        string              `json:"question"`
	CorrectAnswer string              `json:"correct_answer"`
	Mode          domain.QuestionMode `json:"question_mode"           validate:"omitempty,oneof=TERM DEFINITION"`
	Options       []string            `json:"options,omitempty"`
	CorrectIndex  *int                `json:"correct_index,omitempty"`
	IsTrue        *bool               `json:"is_true,omitempty"`
	UserAnswer    json.RawMessage     `json:"user_answer,omitempty"`
	// IsCorrect is only set on graded questions.
	IsCorrect *bool `json:"is_correct,omitempty"`
}

// CheckTestAnswerRequest defines the payload for POST /api/tests/answers.
type CheckTestAnswerRequest struct {
	Question     *TestQuestionPayload `json:"question"      validate:"required"`
	SmartGrading bool                 `json:"smart_grading"`
}

// CheckTestAnswerResponse is returned by POST /api/tests/answers.
type CheckTestAnswerResponse struct {
	Correct bool `json:"correct"`
}

// GradeTestRequest defines the payload for POST /api/tests/grade.
type GradeTestRequest struct {
	Questions    []TestQuestionPayload `json:"questions"     validate:"dive"`
	SmartGrading bool                  `json:"smart_grading"`
}

// GradeTestResponse is returned by POST /api/tests/grade.
type GradeTestResponse struct {
	TotalQuestions int                   `json:"total_questions"`
	CorrectAnswers int                   `json:"correct_answers"`
	Score          int                   `json:"score"`
	Questions      []TestQuestionPayload `json:"questions"`
}

// questionToPayload flattens a domain test question for the wire.
func questionToPayload(q domain.TestQuestion) TestQuestionPayload {
	base := q.Base()
	p := TestQuestionPayload{
		ID:            base.ID,
		Type:          q.Type(),
		CardID:        base.CardID,
		Prompt:        base.Prompt,
		CorrectAnswer: base.CorrectAnswer,
		Mode:          base.Mode,
	}

	switch v := q.(type) {
	case *domain.MCQQuestion:
		p.Options = v.Options
		p.CorrectIndex = &v.CorrectIndex
		p.UserAnswer = marshalAnswer(v.UserAnswer)
	case *domain.WrittenQuestion:
		p.UserAnswer = marshalAnswer(v.UserAnswer)
	case *domain.TrueFalseQuestion:
		p.IsTrue = &v.IsTrue
		p.UserAnswer = marshalAnswer(v.UserAnswer)
	}

	return p
}

func questionsToPayload(questions []domain.TestQuestion) []TestQuestionPayload {
	out := make([]TestQuestionPayload, len(questions))
	for i, q := range questions {
		out[i] = questionToPayload(q)
	}
	return out
}

// marshalAnswer encodes a user answer, or returns nil when unanswered.
func marshalAnswer[T any](answer *T) json.RawMessage {
	if answer == nil {
		return nil
	}
	// Answers are ints, strings or bools, which always encode
	data, _ := json.Marshal(*answer)
	return data
}

// ToDomain converts the payload into the domain variant named by Type.
// Fields that belong to a different variant are rejected.
func (p TestQuestionPayload) ToDomain() (domain.TestQuestion, error) {
	base := domain.QuestionBase{
		ID:            p.ID,
		CardID:        p.CardID,
		Prompt:        p.Prompt,
		CorrectAnswer: p.CorrectAnswer,
		Mode:          p.Mode,
	}

	if p.Mode != "" && !p.Mode.IsValid() {
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidQuestionPayload, domain.ErrInvalidQuestionMode, p.Mode)
	}

	switch p.Type {
	case domain.QuestionTypeMCQ:
		if p.IsTrue != nil {
			return nil, payloadError(p.Type, "is_true is not allowed")
		}
		if len(p.Options) == 0 {
			return nil, payloadError(p.Type, "options are required")
		}
		if p.CorrectIndex == nil {
			return nil, payloadError(p.Type, "correct_index is required")
		}
		q := &domain.MCQQuestion{QuestionBase: base, Options: p.Options, CorrectIndex: *p.CorrectIndex}
		answer, err := unmarshalAnswer[int](p.Type, p.UserAnswer)
		if err != nil {
			return nil, err
		}
		q.UserAnswer = answer
		return q, nil

	case domain.QuestionTypeWritten:
		if p.IsTrue != nil || p.Options != nil || p.CorrectIndex != nil {
			return nil, payloadError(p.Type, "options, correct_index and is_true are not allowed")
		}
		answer, err := unmarshalAnswer[string](p.Type, p.UserAnswer)
		if err != nil {
			return nil, err
		}
		return &domain.WrittenQuestion{QuestionBase: base, UserAnswer: answer}, nil

	case domain.QuestionTypeTrueFalse:
		if p.Options != nil || p.CorrectIndex != nil {
			return nil, payloadError(p.Type, "options and correct_index are not allowed")
		}
		if p.IsTrue == nil {
			return nil, payloadError(p.Type, "is_true is required")
		}
		expected := fmt.Sprint(*p.IsTrue)
		if base.CorrectAnswer == "" {
			base.CorrectAnswer = expected
		} else if base.CorrectAnswer != expected {
			return nil, payloadError(p.Type, "correct_answer disagrees with is_true")
		}
		answer, err := unmarshalAnswer[bool](p.Type, p.UserAnswer)
		if err != nil {
			return nil, err
		}
		return &domain.TrueFalseQuestion{QuestionBase: base, IsTrue: *p.IsTrue, UserAnswer: answer}, nil

	default:
		return nil, fmt.Errorf("%w: %w: %q", ErrInvalidQuestionPayload, domain.ErrInvalidQuestionType, p.Type)
	}
}

func payloadsToDomain(payloads []TestQuestionPayload) ([]domain.TestQuestion, error) {
	questions := make([]domain.TestQuestion, len(payloads))
	for i, p := range payloads {
		q, err := p.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
		questions[i] = q
	}
	return questions, nil
}

// unmarshalAnswer decodes a user answer of type T. An absent or null answer
// means unanswered.
func unmarshalAnswer[T any](t domain.QuestionType, raw json.RawMessage) (*T, error) {
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, nil
	}

	var answer T
	if err := json.Unmarshal(raw, &answer); err != nil {
		return nil, payloadError(t, "user_answer has the wrong type")
	}
	return &answer, nil
}

func payloadError(t domain.QuestionType, msg string) error {
	return fmt.Errorf("%w: %s question: %s", ErrInvalidQuestionPayload, t, msg)
}
