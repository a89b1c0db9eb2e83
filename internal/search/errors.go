package search

import "errors"

var (
	ErrEmptyQuery   = errors.New("query cannot be empty")
	ErrQueryTooLong = errors.New("query exceeds maximum length")
	ErrInvalidTopK  = errors.New("top_k out of range")
)
