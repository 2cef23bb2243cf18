// Package api provides the HTTP handlers that expose the quiz engine.
//
// Handlers decode and validate JSON requests, convert wire payloads into
// domain types, delegate to service.StudyService and translate errors into
// status codes with MapErrorToStatusCode and GetSafeErrorMessage. Test
// questions travel as one flat TestQuestionPayload with a type discriminator.
package api
