package chat

import (
	"errors"
	"fmt"
)

// Kind classifies why a chat turn failed. Every failure carries exactly one.
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindRetrievalUnavailable
	KindEmbeddingFailure
	KindMalformedPayload
	KindGenerationRateLimited
	KindGenerationUnreachable
	KindGenerationUpstream
	KindSessionNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRetrievalUnavailable:
		return "retrieval_unavailable"
	case KindEmbeddingFailure:
		return "embedding_failure"
	case KindMalformedPayload:
		return "malformed_payload"
	case KindGenerationRateLimited:
		return "generation_rate_limited"
	case KindGenerationUnreachable:
		return "generation_unreachable"
	case KindGenerationUpstream:
		return "generation_upstream"
	case KindSessionNotFound:
		return "session_not_found"
	default:
		return "unexpected"
	}
}

var (
	ErrEmptyMessage     = errors.New("Message cannot be empty")
	ErrMessageTooLong   = errors.New("Message exceeds maximum length")
	ErrInvalidSessionID = errors.New("Invalid session_id format")
	ErrSessionNotFound  = errors.New("Session not found")
)

// Error is returned by every UseCase method on failure.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("chat %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of a chat error, or KindUnexpected for any other error.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnexpected
}
