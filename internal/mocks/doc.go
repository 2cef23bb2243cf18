// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method. When a function is
// set it handles the call; otherwise the mock returns its default values.
// Calls are recorded so tests can verify what reached the dependency.
//
// Usage:
//
//	import "github.com/phrazzld/scry-quiz/internal/mocks"
//
//	func TestSomething(t *testing.T) {
//	    svc := &mocks.MockStudyService{
//	        GradeTestFn: func(ctx context.Context, req service.GradeRequest) (*domain.TestResult, error) {
//	            return &domain.TestResult{Score: 100}, nil
//	        },
//	    }
//
//	    // Use the mock in your test...
//	}
package mocks
