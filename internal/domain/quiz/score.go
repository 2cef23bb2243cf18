package quiz

import (
	"math"

	"github.com/phrazzld/scry-quiz/internal/domain"
)

// GradeTest grades every question and summarizes the result. The questions
// are returned as given; grading never writes to them.
func GradeTest(questions []domain.TestQuestion, smartGrading bool, params *Params) domain.TestResult {
	params = orDefault(params)

	correct := 0
	outcomes := make([]bool, len(questions))
	for i, q := range questions {
		outcomes[i] = IsAnswerCorrect(q, smartGrading, params)
		if outcomes[i] {
			correct++
		}
	}

	if questions == nil {
		questions = []domain.TestQuestion{}
	}

	return domain.TestResult{
		TotalQuestions: len(questions),
		CorrectAnswers: correct,
		Score:          CalculateScore(correct, len(questions)),
		Questions:      questions,
		Correct:        outcomes,
	}
}

// CalculateScore returns round(100 * correct / total), or 0 when total is not positive.
// Halves round up.
func CalculateScore(correct, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Floor(float64(correct)*100/float64(total) + 0.5))
}
