// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidQuestionType is returned when a question type is not one of
	// MCQ, WRITTEN or TRUE_FALSE.
	ErrInvalidQuestionType = errors.New("invalid question type")

	// ErrInvalidQuestionMode is returned when a question mode is not TERM or DEFINITION.
	ErrInvalidQuestionMode = errors.New("invalid question mode")
)
