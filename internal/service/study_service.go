package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/domain/quiz"
	"github.com/phrazzld/scry-quiz/internal/events"
	"github.com/phrazzld/scry-quiz/internal/platform/logger"
)

// LearnSessionRequest asks for a learn-mode question set.
type LearnSessionRequest struct {
	Cards []domain.Card
	// Seed makes generation reproducible; nil draws a fresh seed.
	Seed *uint64
}

// LearnSession is a generated learn-mode question set.
type LearnSession struct {
	Seed      uint64
	Questions []domain.MultipleChoiceQuestion
}

// TestRequest asks for a test-mode question set.
type TestRequest struct {
	Cards []domain.Card
	// Config nil means domain.DefaultTestConfig with the configured default question count.
	Config *domain.TestConfig
	Seed   *uint64
}

// TestSession is a generated test together with any generation warnings.
type TestSession struct {
	ID        uuid.UUID
	Seed      uint64
	Config    domain.TestConfig
	Questions []domain.TestQuestion
	Warnings  []domain.Warning
}

// GradeRequest carries answered test questions.
type GradeRequest struct {
	Questions    []domain.TestQuestion
	SmartGrading bool
}

// StudyService generates study questions from cards and grades answers.
// It holds no session state: every call is self-contained.
type StudyService interface {
	// StartLearnSession builds one multiple-choice question per card.
	//
	// Returns:
	//   - ErrTooManyCards when the card count exceeds the configured limit
	//   - ErrInvalidCard (wrapping the domain error) when a card fails validation
	//   - ErrDuplicateCard when two cards share an ID
	StartLearnSession(ctx context.Context, req LearnSessionRequest) (*LearnSession, error)

	// CheckLearnAnswer grades the option a learner picked for a learn-mode question.
	//
	// Returns ErrInvalidQuestion for a question whose correct index is out of range
	// and ErrInvalidAnswer for a selected index outside the option list.
	CheckLearnAnswer(
		ctx context.Context,
		question domain.MultipleChoiceQuestion,
		selectedIndex int,
	) (domain.AnswerResult, error)

	// StartTest builds a test according to the request config. An empty deck,
	// or a config with every question type disabled, yields an empty test rather
	// than an error. A starred-only request with no starred cards falls back to
	// the whole deck and reports a domain.WarningStarredFallback.
	//
	// Card errors are the same as for StartLearnSession.
	StartTest(ctx context.Context, req TestRequest) (*TestSession, error)

	// CheckTestAnswer grades a single answered test question.
	// Unanswered questions are incorrect, not an error.
	CheckTestAnswer(ctx context.Context, question domain.TestQuestion, smartGrading bool) (bool, error)

	// GradeTest grades all questions and computes the score.
	// The questions are returned unchanged in the result.
	GradeTest(ctx context.Context, req GradeRequest) (*domain.TestResult, error)

	// DefaultTestConfig returns the config StartTest uses when a request has none.
	DefaultTestConfig() domain.TestConfig
}

// SeedFunc supplies a seed when a request does not carry one.
type SeedFunc func() uint64

// Limits bounds what a single request may ask for.
type Limits struct {
	MaxCards                 int
	DefaultNumberOfQuestions int
}

// Verify interface compliance at compile time
var _ StudyService = (*studyServiceImpl)(nil)

type studyServiceImpl struct {
	engine  quiz.Service
	emitter events.EventEmitter
	limits  Limits
	seed    SeedFunc
	logger  *slog.Logger
}

// NewStudyService creates a new StudyService.
//
// seed may be nil, in which case seeds come from math/rand/v2's
// automatically seeded generator. logger may be nil.
func NewStudyService(
	engine quiz.Service,
	emitter events.EventEmitter,
	limits Limits,
	seed SeedFunc,
	logger *slog.Logger,
) StudyService {
	if engine == nil {
		panic("engine cannot be nil")
	}
	if emitter == nil {
		panic("emitter cannot be nil")
	}

	if seed == nil {
		seed = rand.Uint64
	}
	if limits.DefaultNumberOfQuestions <= 0 {
		limits.DefaultNumberOfQuestions = domain.DefaultTestConfig().NumberOfQuestions
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &studyServiceImpl{
		engine:  engine,
		emitter: emitter,
		limits:  limits,
		seed:    seed,
		logger:  logger.With(slog.String("component", "study_service")),
	}
}

// StartLearnSession implements StudyService.StartLearnSession.
func (s *studyServiceImpl) StartLearnSession(
	ctx context.Context,
	req LearnSessionRequest,
) (*LearnSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validateCards(req.Cards); err != nil {
		log.Warn("rejected learn session cards",
			slog.String("error", err.Error()),
			slog.Int("card_count", len(req.Cards)))
		return nil, err
	}

	seed := s.resolveSeed(req.Seed)
	questions := s.engine.GenerateLearnQuestions(quiz.NewRand(seed), req.Cards)

	log.Debug("generated learn session",
		slog.Uint64("seed", seed),
		slog.Int("card_count", len(req.Cards)),
		slog.Int("question_count", len(questions)))

	s.emit(ctx, events.TypeLearnGenerated, map[string]any{
		"seed":           seed,
		"question_count": len(questions),
	})

	return &LearnSession{Seed: seed, Questions: questions}, nil
}

// CheckLearnAnswer implements StudyService.CheckLearnAnswer.
func (s *studyServiceImpl) CheckLearnAnswer(
	ctx context.Context,
	question domain.MultipleChoiceQuestion,
	selectedIndex int,
) (domain.AnswerResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if question.CorrectIndex < 0 || question.CorrectIndex >= len(question.Options) {
		log.Warn("learn question has out-of-range correct index",
			slog.Int("correct_index", question.CorrectIndex),
			slog.Int("option_count", len(question.Options)))
		return domain.AnswerResult{}, fmt.Errorf("%w: correct index %d outside %d options",
			ErrInvalidQuestion, question.CorrectIndex, len(question.Options))
	}

	if selectedIndex < 0 || selectedIndex >= len(question.Options) {
		log.Warn("selected option out of range",
			slog.Int("selected_index", selectedIndex),
			slog.Int("option_count", len(question.Options)))
		return domain.AnswerResult{}, fmt.Errorf("%w: selected index %d outside %d options",
			ErrInvalidAnswer, selectedIndex, len(question.Options))
	}

	return quiz.CheckAnswer(question, selectedIndex), nil
}

// StartTest implements StudyService.StartTest.
func (s *studyServiceImpl) StartTest(ctx context.Context, req TestRequest) (*TestSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validateCards(req.Cards); err != nil {
		log.Warn("rejected test cards",
			slog.String("error", err.Error()),
			slog.Int("card_count", len(req.Cards)))
		return nil, err
	}

	cfg := s.DefaultTestConfig()
	if req.Config != nil {
		cfg = *req.Config
	}
	if cfg.NumberOfQuestions < 0 {
		log.Debug("clamping negative question count", slog.Int("requested", cfg.NumberOfQuestions))
		cfg.NumberOfQuestions = 0
	}

	seed := s.resolveSeed(req.Seed)
	questions, warnings := s.engine.GenerateTestQuestions(quiz.NewRand(seed), req.Cards, cfg)

	session := &TestSession{
		ID:        uuid.New(),
		Seed:      seed,
		Config:    cfg,
		Questions: questions,
		Warnings:  warnings,
	}

	for _, w := range warnings {
		log.Warn("test generation warning",
			slog.String("test_id", session.ID.String()),
			slog.String("code", string(w.Code)),
			slog.String("message", w.Message))

		if w.Code == domain.WarningStarredFallback {
			s.emit(ctx, events.TypeStarredFallback, map[string]any{
				"test_id":    session.ID,
				"card_count": len(req.Cards),
			})
		}
	}

	log.Debug("generated test",
		slog.String("test_id", session.ID.String()),
		slog.Uint64("seed", seed),
		slog.Int("card_count", len(req.Cards)),
		slog.Int("question_count", len(questions)))

	s.emit(ctx, events.TypeTestGenerated, map[string]any{
		"test_id":        session.ID,
		"seed":           seed,
		"question_count": len(questions),
		"answer_mode":    cfg.AnswerMode,
	})

	return session, nil
}

// CheckTestAnswer implements StudyService.CheckTestAnswer.
func (s *studyServiceImpl) CheckTestAnswer(
	ctx context.Context,
	question domain.TestQuestion,
	smartGrading bool,
) (bool, error) {
	if err := validateQuestion(question); err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Warn("rejected test question",
			slog.String("error", err.Error()))
		return false, err
	}

	return s.engine.IsAnswerCorrect(question, smartGrading), nil
}

// GradeTest implements StudyService.GradeTest.
func (s *studyServiceImpl) GradeTest(ctx context.Context, req GradeRequest) (*domain.TestResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	for i, q := range req.Questions {
		if err := validateQuestion(q); err != nil {
			log.Warn("rejected test question",
				slog.Int("question_index", i),
				slog.String("error", err.Error()))
			return nil, fmt.Errorf("question %d: %w", i, err)
		}
	}

	result := s.engine.GradeTest(req.Questions, req.SmartGrading)

	log.Debug("graded test",
		slog.Int("total_questions", result.TotalQuestions),
		slog.Int("correct_answers", result.CorrectAnswers),
		slog.Int("score", result.Score),
		slog.Bool("smart_grading", req.SmartGrading))

	s.emit(ctx, events.TypeTestGraded, map[string]any{
		"total_questions": result.TotalQuestions,
		"correct_answers": result.CorrectAnswers,
		"score":           result.Score,
		"smart_grading":   req.SmartGrading,
	})

	return &result, nil
}

// DefaultTestConfig implements StudyService.DefaultTestConfig.
func (s *studyServiceImpl) DefaultTestConfig() domain.TestConfig {
	cfg := domain.DefaultTestConfig()
	cfg.NumberOfQuestions = s.limits.DefaultNumberOfQuestions
	return cfg
}

func (s *studyServiceImpl) resolveSeed(requested *uint64) uint64 {
	if requested != nil {
		return *requested
	}
	return s.seed()
}

func (s *studyServiceImpl) validateCards(cards []domain.Card) error {
	if s.limits.MaxCards > 0 && len(cards) > s.limits.MaxCards {
		return fmt.Errorf("%w: got %d, limit is %d", ErrTooManyCards, len(cards), s.limits.MaxCards)
	}

	seen := make(map[uuid.UUID]struct{}, len(cards))
	for i, card := range cards {
		if err := card.Validate(); err != nil {
			return fmt.Errorf("%w: card %d: %w", ErrInvalidCard, i, err)
		}
		if _, dup := seen[card.ID]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, card.ID)
		}
		seen[card.ID] = struct{}{}
	}

	return nil
}

// emit publishes an event. Event delivery failures are logged and never
// fail the study operation.
func (s *studyServiceImpl) emit(ctx context.Context, eventType string, payload any) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	event, err := events.NewEvent(eventType, payload)
	if err != nil {
		log.Error("failed to build event",
			slog.String("event_type", eventType),
			slog.String("error", err.Error()))
		return
	}

	if err := s.emitter.EmitEvent(ctx, event); err != nil {
		log.Error("failed to emit event",
			slog.String("event_type", eventType),
			slog.String("event_id", event.ID.String()),
			slog.String("error", err.Error()))
	}
}

// validateQuestion rejects nil and structurally impossible questions.
func validateQuestion(question domain.TestQuestion) error {
	switch q := question.(type) {
	case nil:
		return fmt.Errorf("%w: question is missing", ErrInvalidQuestion)
	case *domain.MCQQuestion:
		if q == nil {
			return fmt.Errorf("%w: question is missing", ErrInvalidQuestion)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return fmt.Errorf("%w: correct index %d outside %d options",
				ErrInvalidQuestion, q.CorrectIndex, len(q.Options))
		}
	case *domain.WrittenQuestion:
		if q == nil {
			return fmt.Errorf("%w: question is missing", ErrInvalidQuestion)
		}
	case *domain.TrueFalseQuestion:
		if q == nil {
			return fmt.Errorf("%w: question is missing", ErrInvalidQuestion)
		}
	}
	return nil
}
