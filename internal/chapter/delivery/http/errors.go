package http

import (
	"errors"
	"net/http"

	"textbook-rag/internal/chapter"
	"textbook-rag/internal/model"
	"textbook-rag/internal/search/repository"
	pkgErrors "textbook-rag/pkg/errors"
)

// mapError translates chapter errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chapter.ErrInvalidChapter), errors.Is(err, model.ErrInvalidProfile):
		return pkgErrors.NewValidationError("%s", err.Error())
	case errors.Is(err, chapter.ErrProfileRequired):
		return pkgErrors.NewValidationError("user_profile is required")
	case errors.Is(err, chapter.ErrUnauthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, chapter.ErrChapterNotFound):
		return pkgErrors.NewKindError(http.StatusNotFound, pkgErrors.KindNotFound, "Chapter content not found")
	case errors.Is(err, chapter.ErrGenerationFailed):
		return pkgErrors.NewKindError(http.StatusBadGateway, pkgErrors.KindGenerationUnavailable, "Unable to process chapter. Please try again.")
	case errors.Is(err, repository.ErrUnavailable):
		return pkgErrors.NewKindError(http.StatusServiceUnavailable, pkgErrors.KindRetrievalUnavailable, "Vector store is unreachable")
	case errors.Is(err, repository.ErrMalformedPayload):
		return pkgErrors.NewKindError(http.StatusBadGateway, pkgErrors.KindMalformedPayload, "Vector store returned malformed data")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
