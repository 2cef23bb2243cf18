package quiz

import (
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/scry-quiz/internal/domain"
)

// IsAnswerCorrect grades a single test question. Unanswered questions are
// incorrect. smartGrading only affects written questions.
func IsAnswerCorrect(question domain.TestQuestion, smartGrading bool, params *Params) bool {
	switch q := question.(type) {
	case *domain.MCQQuestion:
		return q.UserAnswer != nil && *q.UserAnswer == q.CorrectIndex
	case *domain.TrueFalseQuestion:
		return q.UserAnswer != nil && *q.UserAnswer == q.IsTrue
	case *domain.WrittenQuestion:
		if q.UserAnswer == nil {
			return false
		}
		return CheckWrittenAnswer(*q.UserAnswer, q.CorrectAnswer, smartGrading, params)
	default:
		return false
	}
}

// CheckWrittenAnswer compares a free-text answer with the expected text.
//
// Strict grading requires the strictly normalized strings to be equal.
// Smart grading normalizes both sides with NormalizeSmart (u is the
// learner's text, c the expected one) and accepts when any of these holds:
//
//   - u == c
//   - c is longer than SubstringMinLength runes and u contains c
//   - c is longer than FuzzyMinLength runes and Levenshtein(u, c) is at most
//     max(MinTypoAllowance, floor(len(c) * TypoTolerance))
func CheckWrittenAnswer(userAnswer, correctAnswer string, smartGrading bool, params *Params) bool {
	if !smartGrading {
		return Normalize(userAnswer, NormalizeStrict) == Normalize(correctAnswer, NormalizeStrict)
	}
	params = orDefault(params)

	u := Normalize(userAnswer, NormalizeSmart)
	c := Normalize(correctAnswer, NormalizeSmart)

	if u == c {
		return true
	}

	expectedLen := utf8.RuneCountInString(c)

	if expectedLen > params.SubstringMinLength && strings.Contains(u, c) {
		return true
	}

	if expectedLen > params.FuzzyMinLength {
		return Levenshtein(u, c) <= params.typoAllowance(expectedLen)
	}

	return false
}
