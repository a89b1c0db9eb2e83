package errors

import (
	"fmt"
	"net/http"
)

// Error kinds rendered in the "error" field of failed responses.
const (
	KindValidation            = "validation_error"
	KindRetrievalUnavailable  = "retrieval_unavailable"
	KindEmbeddingFailure      = "embedding_failure"
	KindMalformedPayload      = "malformed_payload"
	KindGenerationUnavailable = "generation_unavailable"
	KindSessionNotFound       = "session_not_found"
	KindNotFound              = "not_found"
	KindUnauthorized          = "unauthorized"
	KindConflict              = "conflict"
	KindRateLimited           = "rate_limited"
	KindInternal              = "internal_error"
)

// HTTPError is an error that knows how it should be rendered over HTTP.
type HTTPError struct {
	Code       int
	Kind       string
	Message    string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError builds an HTTPError whose status is code when code is a valid
// HTTP status, and 400 otherwise.
func NewHTTPError(code int, message string) *HTTPError {
	status := code
	if http.StatusText(code) == "" {
		status = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Kind:       kindForStatus(status),
		Message:    message,
		StatusCode: status,
	}
}

// NewKindError builds an HTTPError with an explicit kind.
func NewKindError(status int, kind, message string) *HTTPError {
	return &HTTPError{
		Code:       status,
		Kind:       kind,
		Message:    message,
		StatusCode: status,
	}
}

// NewValidationError builds a 400 validation error.
func NewValidationError(format string, args ...any) *HTTPError {
	return NewKindError(http.StatusBadRequest, KindValidation, fmt.Sprintf(format, args...))
}

var (
	ErrUnauthorized        = NewKindError(http.StatusUnauthorized, KindUnauthorized, "Unauthorized")
	ErrInternalServerError = NewKindError(http.StatusInternalServerError, KindInternal, "An unexpected error occurred")
)

func kindForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return KindValidation
	case http.StatusUnauthorized:
		return KindUnauthorized
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	case http.StatusTooManyRequests:
		return KindRateLimited
	default:
		return KindInternal
	}
}
