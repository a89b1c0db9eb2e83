package repository

import "errors"

var (
	// ErrEmbedding means the query or document could not be embedded.
	ErrEmbedding = errors.New("embedding failed")
	// ErrUnavailable means the vector store could not be reached or rejected the request.
	ErrUnavailable = errors.New("vector store unavailable")
	// ErrMalformedPayload means a stored point lacks a required field.
	ErrMalformedPayload = errors.New("malformed chunk payload")
)
