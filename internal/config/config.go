package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	Quiz   QuizConfig   `mapstructure:"quiz"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// CORSAllowedOrigins lists browser origins allowed to call the API.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"dive,required"`
}

// QuizConfig contains limits and tuning for question generation and grading.
type QuizConfig struct {
	// MaxCards caps the number of cards accepted in one request.
	MaxCards int `mapstructure:"max_cards" validate:"required,gt=0"`
	// DefaultNumberOfQuestions is used when a test request carries no config.
	DefaultNumberOfQuestions int `mapstructure:"default_number_of_questions" validate:"required,gt=0"`

	MaxOptions         int     `mapstructure:"max_options"          validate:"required,gte=2"`
	SubstringMinLength int     `mapstructure:"substring_min_length" validate:"gte=0"`
	FuzzyMinLength     int     `mapstructure:"fuzzy_min_length"     validate:"gte=0"`
	TypoTolerance      float64 `mapstructure:"typo_tolerance"       validate:"gt=0,lt=1"`
	MinTypoAllowance   int     `mapstructure:"min_typo_allowance"   validate:"gte=0"`
}
