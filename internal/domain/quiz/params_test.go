package quiz

import (
	"testing"
)

func TestNewDefaultParams(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	if params.MaxOptions != 4 {
		t.Errorf("Expected MaxOptions 4, got %d", params.MaxOptions)
	}
	if params.SubstringMinLength != 3 {
		t.Errorf("Expected SubstringMinLength 3, got %d", params.SubstringMinLength)
	}
	if params.FuzzyMinLength != 5 {
		t.Errorf("Expected FuzzyMinLength 5, got %d", params.FuzzyMinLength)
	}
	if params.TypoTolerance != 0.15 {
		t.Errorf("Expected TypoTolerance 0.15, got %f", params.TypoTolerance)
	}
	if params.MinTypoAllowance != 1 {
		t.Errorf("Expected MinTypoAllowance 1, got %d", params.MinTypoAllowance)
	}
}

func TestNewParams(t *testing.T) {
	t.Parallel() // Enable parallel execution

	params := NewParams(ParamsConfig{
		MaxOptions:     6,
		FuzzyMinLength: 8,
		TypoTolerance:  1.5, // out of range, ignored
	})

	if params.MaxOptions != 6 {
		t.Errorf("Expected MaxOptions 6, got %d", params.MaxOptions)
	}
	if params.FuzzyMinLength != 8 {
		t.Errorf("Expected FuzzyMinLength 8, got %d", params.FuzzyMinLength)
	}
	if params.TypoTolerance != 0.15 {
		t.Errorf("Expected out-of-range tolerance to keep default, got %f", params.TypoTolerance)
	}
	if params.SubstringMinLength != 3 {
		t.Errorf("Expected unset fields to keep defaults, got %d", params.SubstringMinLength)
	}

	if p := NewParams(ParamsConfig{MaxOptions: 1}); p.MaxOptions != 4 {
		t.Errorf("Expected a single-option MCQ to be rejected, got %d", p.MaxOptions)
	}
}

func TestTypoAllowance(t *testing.T) {
	t.Parallel() // Enable parallel execution
	params := NewDefaultParams()

	testCases := []struct {
		length   int
		expected int
	}{
		{6, 1},
		{11, 1},
		{13, 1},
		{14, 2},
		{20, 3},
		{40, 6},
	}

	for _, tc := range testCases {
		if got := params.typoAllowance(tc.length); got != tc.expected {
			t.Errorf("length %d: expected allowance %d, got %d", tc.length, tc.expected, got)
		}
	}
}
