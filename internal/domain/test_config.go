package domain

// AnswerMode selects the question direction for a whole test.
type AnswerMode string

// Valid answer modes
const (
	AnswerModeTerm       AnswerMode = "TERM"
	AnswerModeDefinition AnswerMode = "DEFINITION"
	// AnswerModeMixed flips a fair coin per question between TERM and DEFINITION.
	AnswerModeMixed AnswerMode = "MIXED"
)

// IsValid reports whether m is one of the known answer modes.
func (m AnswerMode) IsValid() bool {
	switch m {
	case AnswerModeTerm, AnswerModeDefinition, AnswerModeMixed:
		return true
	default:
		return false
	}
}

// IncludeTypes toggles the question types a test may contain.
type IncludeTypes struct {
	MCQ       bool `json:"mcq"`
	Written   bool `json:"written"`
	TrueFalse bool `json:"true_false"`
}

// TestConfig controls test-mode question generation and grading.
type TestConfig struct {
	NumberOfQuestions  int          `json:"number_of_questions"`
	IncludeTypes       IncludeTypes `json:"include_types"`
	AnswerMode         AnswerMode   `json:"answer_mode"`
	OnlyStarred        bool         `json:"only_starred"`
	EnableSmartGrading bool         `json:"enable_smart_grading"`
}

// DefaultTestConfig returns the configuration offered before a learner
// changes anything: twenty questions of every type, answered with definitions.
func DefaultTestConfig() TestConfig {
	return TestConfig{
		NumberOfQuestions: 20,
		IncludeTypes: IncludeTypes{
			MCQ:       true,
			Written:   true,
			TrueFalse: true,
		},
		AnswerMode: AnswerModeDefinition,
	}
}

// EnabledTypes returns the enabled question types in MCQ, WRITTEN, TRUE_FALSE order.
func (c TestConfig) EnabledTypes() []QuestionType {
	types := make([]QuestionType, 0, 3)
	if c.IncludeTypes.MCQ {
		types = append(types, QuestionTypeMCQ)
	}
	if c.IncludeTypes.Written {
		types = append(types, QuestionTypeWritten)
	}
	if c.IncludeTypes.TrueFalse {
		types = append(types, QuestionTypeTrueFalse)
	}
	return types
}
