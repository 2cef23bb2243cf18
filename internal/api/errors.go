package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/scry-quiz/internal/api/shared"
	"github.com/phrazzld/scry-quiz/internal/service"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, service.ErrTooManyCards):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, service.ErrInvalidCard),
		errors.Is(err, service.ErrDuplicateCard),
		errors.Is(err, service.ErrInvalidQuestion),
		errors.Is(err, service.ErrInvalidAnswer),
		errors.Is(err, ErrInvalidQuestionPayload),
		errors.Is(err, shared.ErrEmptyBody):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, service.ErrTooManyCards):
		return "Too many cards in request"

	case errors.Is(err, service.ErrInvalidCard):
		return "Invalid card data"

	case errors.Is(err, service.ErrDuplicateCard):
		return "Duplicate card ID"

	case errors.Is(err, service.ErrInvalidQuestion),
		errors.Is(err, ErrInvalidQuestionPayload):
		return "Invalid question"

	case errors.Is(err, service.ErrInvalidAnswer):
		return "Invalid answer"

	case errors.Is(err, shared.ErrEmptyBody):
		return "Request body is required"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError writes the sanitized error response for err. fallback
// replaces the generic message for errors that map to 500.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	statusCode := MapErrorToStatusCode(err)
	safeMessage := GetSafeErrorMessage(err)

	if statusCode == http.StatusInternalServerError && fallback != "" {
		safeMessage = fallback
	}

	shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
}

// HandleValidationError writes a 400 response listing the failed fields.
func HandleValidationError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(
		w,
		r,
		http.StatusBadRequest,
		"Validation error",
		err,
		shared.WithFieldErrors(shared.TranslateErrors(err)),
	)
}
