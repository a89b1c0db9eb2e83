package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
)

var (
	// ErrAllProvidersFailed indicates all providers failed to generate content
	ErrAllProvidersFailed = errors.New("all providers failed")

	// ErrNoProvidersConfigured indicates no providers are enabled
	ErrNoProvidersConfigured = errors.New("no providers configured")

	// ErrInvalidRequest indicates the request is malformed
	ErrInvalidRequest = errors.New("invalid request")
)

// Failure kinds. Every error returned by a Provider or the Manager matches
// exactly one of these with errors.Is.
var (
	ErrRateLimited = errors.New("llm rate limited")
	ErrUnreachable = errors.New("llm unreachable")
	ErrUpstream    = errors.New("llm upstream error")
	ErrUnexpected  = errors.New("llm unexpected error")
)

// statusCoder is implemented by the HTTP clients' API errors.
type statusCoder interface {
	HTTPStatus() int
}

// ProviderError wraps provider-specific errors with their failure kind.
type ProviderError struct {
	Provider string
	Kind     error
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v: %v", e.Provider, e.Kind, e.Err)
}

func (e *ProviderError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Classify returns the failure kind of err.
func Classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrRateLimited):
		return ErrRateLimited
	case errors.Is(err, ErrUnreachable):
		return ErrUnreachable
	case errors.Is(err, ErrUpstream):
		return ErrUpstream
	case errors.Is(err, ErrUnexpected):
		return ErrUnexpected
	}

	var sc statusCoder
	if errors.As(err, &sc) {
		if sc.HTTPStatus() == http.StatusTooManyRequests {
			return ErrRateLimited
		}
		return ErrUpstream
	}

	if errors.Is(err, context.Canceled) {
		return ErrUnexpected
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrUnreachable
	}

	var netErr net.Error
	var urlErr *url.Error
	if errors.As(err, &netErr) || errors.As(err, &urlErr) {
		return ErrUnreachable
	}

	return ErrUnexpected
}

// IsRetryable reports whether another attempt may succeed.
func IsRetryable(err error) bool {
	kind := Classify(err)
	return kind == ErrRateLimited || kind == ErrUnreachable
}

func wrapProviderError(provider string, err error) error {
	if err == nil {
		return nil
	}
	return &ProviderError{Provider: provider, Kind: Classify(err), Err: err}
}
