package qdrant

import (
	"errors"
	"fmt"
)

// ErrCollectionNotFound is returned when the collection does not exist.
var ErrCollectionNotFound = errors.New("qdrant: collection not found")

// APIError is a non-2xx answer from qdrant.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("qdrant API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("qdrant API error: %d: %s", e.StatusCode, e.Body)
}
