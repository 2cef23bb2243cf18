package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/domain/quiz"
	"github.com/phrazzld/scry-quiz/internal/events"
	"github.com/phrazzld/scry-quiz/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// recordingEmitter keeps every emitted event and can be told to fail.
type recordingEmitter struct {
	mu     sync.Mutex
	events []*events.Event
	err    error
}

func (e *recordingEmitter) EmitEvent(ctx context.Context, event *events.Event) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return e.err
}

func (e *recordingEmitter) types() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]string, 0, len(e.events))
	for _, ev := range e.events {
		out = append(out, ev.Type)
	}
	return out
}

// MockEngine is a testify mock of quiz.Service.
type MockEngine struct {
	mock.Mock
}

func (m *MockEngine) GenerateLearnQuestions(rng quiz.Rand, cards []domain.Card) []domain.MultipleChoiceQuestion {
	args := m.Called(rng, cards)
	return args.Get(0).([]domain.MultipleChoiceQuestion)
}

func (m *MockEngine) GenerateTestQuestions(
	rng quiz.Rand,
	cards []domain.Card,
	cfg domain.TestConfig,
) ([]domain.TestQuestion, []domain.Warning) {
	args := m.Called(rng, cards, cfg)
	return args.Get(0).([]domain.TestQuestion), args.Get(1).([]domain.Warning)
}

func (m *MockEngine) IsAnswerCorrect(question domain.TestQuestion, smartGrading bool) bool {
	args := m.Called(question, smartGrading)
	return args.Bool(0)
}

func (m *MockEngine) GradeTest(questions []domain.TestQuestion, smartGrading bool) domain.TestResult {
	args := m.Called(questions, smartGrading)
	return args.Get(0).(domain.TestResult)
}

func makeCards(n int) []domain.Card {
	cards := make([]domain.Card, n)
	for i := range n {
		cards[i] = domain.Card{
			ID:         uuid.New(),
			Term:       fmt.Sprintf("term %d", i),
			Definition: fmt.Sprintf("definition %d", i),
		}
	}
	return cards
}

func fixedSeed(seed uint64) SeedFunc {
	return func() uint64 { return seed }
}

func newTestService(t *testing.T, limits Limits) (StudyService, *recordingEmitter) {
	t.Helper()
	log, _ := logger.GetTestLogger(t)
	emitter := &recordingEmitter{}
	svc := NewStudyService(quiz.NewDefaultService(), emitter, limits, fixedSeed(42), log)
	return svc, emitter
}

func TestNewStudyServicePanicsOnNilDependencies(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, "engine cannot be nil", func() {
		NewStudyService(nil, &recordingEmitter{}, Limits{}, nil, nil)
	})
	assert.PanicsWithValue(t, "emitter cannot be nil", func() {
		NewStudyService(quiz.NewDefaultService(), nil, Limits{}, nil, nil)
	})
}

func TestStartLearnSession(t *testing.T) {
	t.Parallel()

	t.Run("one question per card", func(t *testing.T) {
		t.Parallel()
		svc, emitter := newTestService(t, Limits{MaxCards: 10})
		cards := makeCards(5)

		session, err := svc.StartLearnSession(context.Background(), LearnSessionRequest{Cards: cards})
		require.NoError(t, err)

		assert.Equal(t, uint64(42), session.Seed)
		require.Len(t, session.Questions, len(cards))
		for _, q := range session.Questions {
			assert.Equal(t, q.CorrectAnswer, q.Options[q.CorrectIndex])
		}
		assert.Equal(t, []string{events.TypeLearnGenerated}, emitter.types())
	})

	t.Run("same seed gives same session", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, Limits{})
		cards := makeCards(8)
		seed := uint64(7)

		first, err := svc.StartLearnSession(context.Background(), LearnSessionRequest{Cards: cards, Seed: &seed})
		require.NoError(t, err)
		second, err := svc.StartLearnSession(context.Background(), LearnSessionRequest{Cards: cards, Seed: &seed})
		require.NoError(t, err)

		assert.Equal(t, uint64(7), first.Seed)
		assert.Equal(t, first.Questions, second.Questions)
	})

	t.Run("empty deck", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, Limits{})

		session, err := svc.StartLearnSession(context.Background(), LearnSessionRequest{})
		require.NoError(t, err)
		assert.Empty(t, session.Questions)
	})

	t.Run("rejects too many cards", func(t *testing.T) {
		t.Parallel()
		svc, emitter := newTestService(t, Limits{MaxCards: 3})

		_, err := svc.StartLearnSession(context.Background(), LearnSessionRequest{Cards: makeCards(4)})
		assert.ErrorIs(t, err, ErrTooManyCards)
		assert.Empty(t, emitter.types())
	})

	t.Run("rejects invalid card", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, Limits{})
		cards := makeCards(2)
		cards[1].Term = ""

		_, err := svc.StartLearnSession(context.Background(), LearnSessionRequest{Cards: cards})
		assert.ErrorIs(t, err, ErrInvalidCard)
		assert.ErrorIs(t, err, domain.ErrCardTermEmpty)
	})

	t.Run("rejects duplicate card IDs", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, Limits{})
		cards := makeCards(2)
		cards[1].ID = cards[0].ID

		_, err := svc.StartLearnSession(context.Background(), LearnSessionRequest{Cards: cards})
		assert.ErrorIs(t, err, ErrDuplicateCard)
	})

	t.Run("emitter failure does not fail the call", func(t *testing.T) {
		t.Parallel()
		emitter := &recordingEmitter{err: errors.New("bus down")}
		svc := NewStudyService(quiz.NewDefaultService(), emitter, Limits{}, fixedSeed(1), nil)

		session, err := svc.StartLearnSession(context.Background(), LearnSessionRequest{Cards: makeCards(2)})
		require.NoError(t, err)
		assert.Len(t, session.Questions, 2)
	})
}

func TestCheckLearnAnswer(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, Limits{})
	question := domain.MultipleChoiceQuestion{
		ID:            uuid.New(),
		Prompt:        "Go",
		CorrectAnswer: "a language",
		Options:       []string{"a game", "a language", "a verb"},
		CorrectIndex:  1,
	}

	t.Run("correct option", func(t *testing.T) {
		result, err := svc.CheckLearnAnswer(context.Background(), question, 1)
		require.NoError(t, err)
		assert.True(t, result.IsCorrect)
		assert.Equal(t, 1, result.SelectedIndex)
		assert.Equal(t, 1, result.CorrectIndex)
	})

	t.Run("wrong option", func(t *testing.T) {
		result, err := svc.CheckLearnAnswer(context.Background(), question, 2)
		require.NoError(t, err)
		assert.False(t, result.IsCorrect)
		assert.Equal(t, 1, result.CorrectIndex)
	})

	t.Run("selected index out of range", func(t *testing.T) {
		_, err := svc.CheckLearnAnswer(context.Background(), question, 3)
		assert.ErrorIs(t, err, ErrInvalidAnswer)

		_, err = svc.CheckLearnAnswer(context.Background(), question, -1)
		assert.ErrorIs(t, err, ErrInvalidAnswer)
	})

	t.Run("correct index out of range", func(t *testing.T) {
		broken := question
		broken.CorrectIndex = 5
		_, err := svc.CheckLearnAnswer(context.Background(), broken, 0)
		assert.ErrorIs(t, err, ErrInvalidQuestion)
	})
}

func TestStartTest(t *testing.T) {
	t.Parallel()

	t.Run("default config uses configured question count", func(t *testing.T) {
		t.Parallel()
		svc, emitter := newTestService(t, Limits{DefaultNumberOfQuestions: 3})

		session, err := svc.StartTest(context.Background(), TestRequest{Cards: makeCards(10)})
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, session.ID)
		assert.Equal(t, 3, session.Config.NumberOfQuestions)
		assert.Equal(t, domain.AnswerModeDefinition, session.Config.AnswerMode)
		assert.Len(t, session.Questions, 3)
		assert.Empty(t, session.Warnings)
		assert.Equal(t, []string{events.TypeTestGenerated}, emitter.types())
	})

	t.Run("explicit config", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, Limits{})
		cfg := domain.TestConfig{
			NumberOfQuestions: 4,
			IncludeTypes:      domain.IncludeTypes{Written: true},
			AnswerMode:        domain.AnswerModeTerm,
		}

		session, err := svc.StartTest(context.Background(), TestRequest{Cards: makeCards(6), Config: &cfg})
		require.NoError(t, err)

		require.Len(t, session.Questions, 4)
		for _, q := range session.Questions {
			assert.Equal(t, domain.QuestionTypeWritten, q.Type())
			assert.Equal(t, domain.QuestionModeTerm, q.Base().Mode)
		}
	})

	t.Run("negative count yields empty test", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, Limits{})
		cfg := domain.DefaultTestConfig()
		cfg.NumberOfQuestions = -2

		session, err := svc.StartTest(context.Background(), TestRequest{Cards: makeCards(3), Config: &cfg})
		require.NoError(t, err)
		assert.Empty(t, session.Questions)
		assert.Equal(t, 0, session.Config.NumberOfQuestions)
	})

	t.Run("starred fallback warns and emits", func(t *testing.T) {
		t.Parallel()
		svc, emitter := newTestService(t, Limits{})
		cfg := domain.DefaultTestConfig()
		cfg.OnlyStarred = true
		cfg.NumberOfQuestions = 2

		session, err := svc.StartTest(context.Background(), TestRequest{Cards: makeCards(3), Config: &cfg})
		require.NoError(t, err)

		require.Len(t, session.Warnings, 1)
		assert.Equal(t, domain.WarningStarredFallback, session.Warnings[0].Code)
		assert.Len(t, session.Questions, 2)
		assert.Equal(t, []string{events.TypeStarredFallback, events.TypeTestGenerated}, emitter.types())
	})

	t.Run("seed reproduces test", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, Limits{})
		cards := makeCards(6)
		seed := uint64(99)

		first, err := svc.StartTest(context.Background(), TestRequest{Cards: cards, Seed: &seed})
		require.NoError(t, err)
		second, err := svc.StartTest(context.Background(), TestRequest{Cards: cards, Seed: &seed})
		require.NoError(t, err)

		assert.Equal(t, first.Questions, second.Questions)
		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("rejects too many cards", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, Limits{MaxCards: 1})

		_, err := svc.StartTest(context.Background(), TestRequest{Cards: makeCards(2)})
		assert.ErrorIs(t, err, ErrTooManyCards)
	})

	t.Run("passes resolved config to engine", func(t *testing.T) {
		t.Parallel()
		engine := new(MockEngine)
		cards := makeCards(2)
		expectedCfg := domain.DefaultTestConfig()
		expectedCfg.NumberOfQuestions = 7

		engine.On("GenerateTestQuestions", mock.Anything, cards, expectedCfg).
			Return([]domain.TestQuestion{}, []domain.Warning(nil))

		svc := NewStudyService(engine, &recordingEmitter{}, Limits{DefaultNumberOfQuestions: 7}, fixedSeed(3), nil)
		session, err := svc.StartTest(context.Background(), TestRequest{Cards: cards})
		require.NoError(t, err)

		assert.Equal(t, uint64(3), session.Seed)
		engine.AssertExpectations(t)
	})
}

func TestDefaultTestConfig(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, Limits{DefaultNumberOfQuestions: 12})
	cfg := svc.DefaultTestConfig()
	assert.Equal(t, 12, cfg.NumberOfQuestions)
	assert.Equal(t, domain.AnswerModeDefinition, cfg.AnswerMode)
	assert.Len(t, cfg.EnabledTypes(), 3)

	unset, _ := newTestService(t, Limits{})
	assert.Equal(t, domain.DefaultTestConfig().NumberOfQuestions, unset.DefaultTestConfig().NumberOfQuestions)
}

func TestCheckTestAnswer(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, Limits{})
	answer := "Photosynthesis"

	t.Run("written answer with smart grading", func(t *testing.T) {
		q := &domain.WrittenQuestion{
			QuestionBase: domain.QuestionBase{CorrectAnswer: "photosynthesis", Mode: domain.QuestionModeTerm},
			UserAnswer:   &answer,
		}
		ok, err := svc.CheckTestAnswer(context.Background(), q, true)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("unanswered is incorrect", func(t *testing.T) {
		ok, err := svc.CheckTestAnswer(context.Background(), &domain.TrueFalseQuestion{IsTrue: true}, false)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("nil question", func(t *testing.T) {
		_, err := svc.CheckTestAnswer(context.Background(), nil, false)
		assert.ErrorIs(t, err, ErrInvalidQuestion)

		var typedNil *domain.MCQQuestion
		_, err = svc.CheckTestAnswer(context.Background(), typedNil, false)
		assert.ErrorIs(t, err, ErrInvalidQuestion)
	})

	t.Run("mcq with impossible correct index", func(t *testing.T) {
		q := &domain.MCQQuestion{Options: []string{"a"}, CorrectIndex: 1}
		_, err := svc.CheckTestAnswer(context.Background(), q, false)
		assert.ErrorIs(t, err, ErrInvalidQuestion)
	})
}

func TestGradeTest(t *testing.T) {
	t.Parallel()

	t.Run("scores answered test", func(t *testing.T) {
		t.Parallel()
		svc, emitter := newTestService(t, Limits{})
		right, wrong := 0, 1
		yes := true
		questions := []domain.TestQuestion{
			&domain.MCQQuestion{Options: []string{"x", "y"}, CorrectIndex: 0, UserAnswer: &right},
			&domain.MCQQuestion{Options: []string{"x", "y"}, CorrectIndex: 0, UserAnswer: &wrong},
			&domain.TrueFalseQuestion{IsTrue: true, UserAnswer: &yes},
		}

		result, err := svc.GradeTest(context.Background(), GradeRequest{Questions: questions})
		require.NoError(t, err)

		assert.Equal(t, 3, result.TotalQuestions)
		assert.Equal(t, 2, result.CorrectAnswers)
		assert.Equal(t, 67, result.Score)
		assert.Equal(t, questions, result.Questions)
		assert.Equal(t, []string{events.TypeTestGraded}, emitter.types())
	})

	t.Run("empty test scores zero", func(t *testing.T) {
		t.Parallel()
		svc, _ := newTestService(t, Limits{})

		result, err := svc.GradeTest(context.Background(), GradeRequest{})
		require.NoError(t, err)
		assert.Equal(t, 0, result.TotalQuestions)
		assert.Equal(t, 0, result.Score)
	})

	t.Run("rejects nil question", func(t *testing.T) {
		t.Parallel()
		svc, emitter := newTestService(t, Limits{})

		_, err := svc.GradeTest(context.Background(), GradeRequest{
			Questions: []domain.TestQuestion{&domain.TrueFalseQuestion{}, nil},
		})
		assert.ErrorIs(t, err, ErrInvalidQuestion)
		assert.Contains(t, err.Error(), "question 1")
		assert.Empty(t, emitter.types())
	})
}
