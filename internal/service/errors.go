package service

import "errors"

// Common service errors - sentinel errors used across service implementations.
// Callers check for them with errors.Is(); the API layer maps them to HTTP status codes.
var (
	// ErrTooManyCards indicates a request carried more cards than the configured limit.
	// API layer should map this to HTTP 413 Request Entity Too Large.
	ErrTooManyCards = errors.New("too many cards in request")

	// ErrInvalidCard indicates a card failed domain validation. It wraps the
	// specific domain error.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidCard = errors.New("invalid card")

	// ErrDuplicateCard indicates two cards in one request share an ID.
	// API layer should map this to HTTP 400 Bad Request.
	ErrDuplicateCard = errors.New("duplicate card ID")

	// ErrInvalidQuestion indicates a question is missing or internally inconsistent.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidQuestion = errors.New("invalid question")

	// ErrInvalidAnswer indicates a submitted answer cannot apply to its question,
	// such as an option index outside the option list.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidAnswer = errors.New("invalid answer")
)
