package http

import (
	"errors"
	"net/http"

	"textbook-rag/internal/search"
	"textbook-rag/internal/search/repository"
	pkgErrors "textbook-rag/pkg/errors"
)

// mapError translates search errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, search.ErrEmptyQuery):
		return pkgErrors.NewValidationError("Query cannot be empty")
	case errors.Is(err, search.ErrQueryTooLong), errors.Is(err, search.ErrInvalidTopK):
		return pkgErrors.NewValidationError("%s", err.Error())
	case errors.Is(err, repository.ErrUnavailable):
		return pkgErrors.NewKindError(http.StatusServiceUnavailable, pkgErrors.KindRetrievalUnavailable, "Vector store is unreachable")
	case errors.Is(err, repository.ErrEmbedding):
		return pkgErrors.NewKindError(http.StatusBadGateway, pkgErrors.KindEmbeddingFailure, "Failed to generate query embedding")
	case errors.Is(err, repository.ErrMalformedPayload):
		return pkgErrors.NewKindError(http.StatusBadGateway, pkgErrors.KindMalformedPayload, "Vector store returned malformed data")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
