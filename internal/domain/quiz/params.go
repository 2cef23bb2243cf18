package quiz

// Params defines the tunable constants of question generation and grading.
type Params struct {
	// MaxOptions caps the number of options in a multiple-choice question,
	// correct answer included.
	MaxOptions int

	// Smart grading accepts an answer containing the expected text only when
	// the expected text is longer than SubstringMinLength runes.
	SubstringMinLength int

	// Smart grading tolerates typos only when the expected text is longer
	// than FuzzyMinLength runes.
	FuzzyMinLength int

	// TypoTolerance is the share of the expected length allowed as edit
	// distance, floored, and never below MinTypoAllowance.
	TypoTolerance    float64
	MinTypoAllowance int
}

// ParamsConfig allows overriding the default parameters when creating a new Params instance.
// Zero values keep the default.
type ParamsConfig struct {
	MaxOptions         int
	SubstringMinLength int
	FuzzyMinLength     int
	TypoTolerance      float64
	MinTypoAllowance   int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		MaxOptions:         4,
		SubstringMinLength: 3,
		FuzzyMinLength:     5,
		TypoTolerance:      0.15,
		MinTypoAllowance:   1,
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	// MCQ needs at least the correct answer and one distractor
	if config.MaxOptions > 1 {
		params.MaxOptions = config.MaxOptions
	}
	if config.SubstringMinLength > 0 {
		params.SubstringMinLength = config.SubstringMinLength
	}
	if config.FuzzyMinLength > 0 {
		params.FuzzyMinLength = config.FuzzyMinLength
	}
	if config.TypoTolerance > 0 && config.TypoTolerance < 1 {
		params.TypoTolerance = config.TypoTolerance
	}
	if config.MinTypoAllowance > 0 {
		params.MinTypoAllowance = config.MinTypoAllowance
	}

	return params
}

// distractorCount is the number of wrong options wanted per question.
func (p *Params) distractorCount() int {
	return p.MaxOptions - 1
}

// typoAllowance returns the largest edit distance accepted for an expected
// answer of the given rune length.
func (p *Params) typoAllowance(expectedLen int) int {
	return max(p.MinTypoAllowance, int(float64(expectedLen)*p.TypoTolerance))
}

// orDefault lets package functions accept a nil *Params.
func orDefault(p *Params) *Params {
	if p == nil {
		return NewDefaultParams()
	}
	return p
}
