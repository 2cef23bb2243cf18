package quiz

import (
	"github.com/phrazzld/scry-quiz/internal/domain"
)

// Service defines the interface for quiz engine operations.
// Implementations hold no per-call state; randomness is supplied by the caller.
type Service interface {
	// GenerateLearnQuestions builds term→definition multiple-choice questions, one per card
	GenerateLearnQuestions(rng Rand, cards []domain.Card) []domain.MultipleChoiceQuestion

	// GenerateTestQuestions builds a configurable mixed-type test and any generation warnings
	GenerateTestQuestions(
		rng Rand,
		cards []domain.Card,
		cfg domain.TestConfig,
	) ([]domain.TestQuestion, []domain.Warning)

	// IsAnswerCorrect grades one test question
	IsAnswerCorrect(question domain.TestQuestion, smartGrading bool) bool

	// GradeTest grades a whole test and computes the score
	GradeTest(questions []domain.TestQuestion, smartGrading bool) domain.TestResult
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new quiz service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new quiz service with custom parameters
func NewServiceWithParams(params *Params) Service {
	return &defaultService{
		params: orDefault(params),
	}
}

func (s *defaultService) GenerateLearnQuestions(rng Rand, cards []domain.Card) []domain.MultipleChoiceQuestion {
	return GenerateMultipleChoiceQuestions(rng, cards, s.params)
}

func (s *defaultService) GenerateTestQuestions(
	rng Rand,
	cards []domain.Card,
	cfg domain.TestConfig,
) ([]domain.TestQuestion, []domain.Warning) {
	return GenerateTestQuestions(rng, cards, cfg, s.params)
}

func (s *defaultService) IsAnswerCorrect(question domain.TestQuestion, smartGrading bool) bool {
	return IsAnswerCorrect(question, smartGrading, s.params)
}

func (s *defaultService) GradeTest(questions []domain.TestQuestion, smartGrading bool) domain.TestResult {
	return GradeTest(questions, smartGrading, s.params)
}
