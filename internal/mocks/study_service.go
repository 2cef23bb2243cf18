package mocks

import (
	"context"
	"sync"

	"github.com/phrazzld/scry-quiz/internal/domain"
	"github.com/phrazzld/scry-quiz/internal/service"
)

// Verify interface compliance at compile time
var _ service.StudyService = (*MockStudyService)(nil)

// MockStudyService implements service.StudyService for testing
type MockStudyService struct {
	// Custom behavior functions
	StartLearnSessionFn func(ctx context.Context, req service.LearnSessionRequest) (*service.LearnSession, error)
	CheckLearnAnswerFn  func(
		ctx context.Context,
		question domain.MultipleChoiceQuestion,
		selectedIndex int,
	) (domain.AnswerResult, error)
	StartTestFn       func(ctx context.Context, req service.TestRequest) (*service.TestSession, error)
	CheckTestAnswerFn func(ctx context.Context, question domain.TestQuestion, smartGrading bool) (bool, error)
	GradeTestFn       func(ctx context.Context, req service.GradeRequest) (*domain.TestResult, error)

	// Default response values
	LearnSession *service.LearnSession
	TestSession  *service.TestSession
	TestResult   *domain.TestResult
	Defaults     domain.TestConfig
	Err          error

	// Call tracking for verification
	mu            sync.Mutex
	LearnRequests []service.LearnSessionRequest
	TestRequests  []service.TestRequest
	GradeRequests []service.GradeRequest
	CheckedCount  int
}

// StartLearnSession implements service.StudyService
func (m *MockStudyService) StartLearnSession(
	ctx context.Context,
	req service.LearnSessionRequest,
) (*service.LearnSession, error) {
	m.mu.Lock()
	m.LearnRequests = append(m.LearnRequests, req)
	m.mu.Unlock()

	if m.StartLearnSessionFn != nil {
		return m.StartLearnSessionFn(ctx, req)
	}
	return m.LearnSession, m.Err
}

// CheckLearnAnswer implements service.StudyService
func (m *MockStudyService) CheckLearnAnswer(
	ctx context.Context,
	question domain.MultipleChoiceQuestion,
	selectedIndex int,
) (domain.AnswerResult, error) {
	m.mu.Lock()
	m.CheckedCount++
	m.mu.Unlock()

	if m.CheckLearnAnswerFn != nil {
		return m.CheckLearnAnswerFn(ctx, question, selectedIndex)
	}
	return domain.AnswerResult{
		IsCorrect:     selectedIndex == question.CorrectIndex,
		SelectedIndex: selectedIndex,
		CorrectIndex:  question.CorrectIndex,
		Question:      question,
	}, m.Err
}

// StartTest implements service.StudyService
func (m *MockStudyService) StartTest(ctx context.Context, req service.TestRequest) (*service.TestSession, error) {
	m.mu.Lock()
	m.TestRequests = append(m.TestRequests, req)
	m.mu.Unlock()

	if m.StartTestFn != nil {
		return m.StartTestFn(ctx, req)
	}
	return m.TestSession, m.Err
}

// CheckTestAnswer implements service.StudyService
func (m *MockStudyService) CheckTestAnswer(
	ctx context.Context,
	question domain.TestQuestion,
	smartGrading bool,
) (bool, error) {
	m.mu.Lock()
	m.CheckedCount++
	m.mu.Unlock()

	if m.CheckTestAnswerFn != nil {
		return m.CheckTestAnswerFn(ctx, question, smartGrading)
	}
	return false, m.Err
}

// GradeTest implements service.StudyService
func (m *MockStudyService) GradeTest(ctx context.Context, req service.GradeRequest) (*domain.TestResult, error) {
	m.mu.Lock()
	m.GradeRequests = append(m.GradeRequests, req)
	m.mu.Unlock()

	if m.GradeTestFn != nil {
		return m.GradeTestFn(ctx, req)
	}
	return m.TestResult, m.Err
}

// DefaultTestConfig implements service.StudyService
func (m *MockStudyService) DefaultTestConfig() domain.TestConfig {
	return m.Defaults
}

// Calls returns how many times each study operation was invoked.
func (m *MockStudyService) Calls() (learn, tests, grades, checks int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.LearnRequests), len(m.TestRequests), len(m.GradeRequests), m.CheckedCount
}
