package domain

// TestResult summarizes a graded test.
type TestResult struct {
	TotalQuestions int `json:"total_questions"`
	CorrectAnswers int `json:"correct_answers"`
	// Score is the rounded percentage of correct answers, 0 for an empty test.
	Score     int            `json:"score"`
	Questions []TestQuestion `json:"questions"`
	// Correct holds the grading outcome of each question, by index.
	Correct []bool `json:"correct"`
}

// WarningCode identifies a non-fatal condition raised during generation.
type WarningCode string

// Known warning codes
const (
	// WarningStarredFallback is raised when only starred cards were requested
	// but none of the cards are starred, so the whole set was used instead.
	WarningStarredFallback WarningCode = "starred_fallback"
)

// Warning is a side-channel notice returned alongside generated questions.
// It never indicates failure; callers decide whether to surface it.
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}
