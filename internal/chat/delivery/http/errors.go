package http

import (
	"errors"
	"net/http"

	"textbook-rag/internal/chat"
	pkgErrors "textbook-rag/pkg/errors"
)

const (
	msgBusy        = "Service is temporarily busy. Please try again in a moment."
	msgUnavailable = "Unable to generate response. Please try again."
)

// mapError translates chat errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch chat.KindOf(err) {
	case chat.KindValidation:
		switch {
		case errors.Is(err, chat.ErrEmptyMessage):
			return pkgErrors.NewValidationError("Message cannot be empty")
		case errors.Is(err, chat.ErrMessageTooLong):
			return pkgErrors.NewValidationError("Message exceeds maximum length of %d characters", h.maxMessageLength)
		default:
			return pkgErrors.NewValidationError("Invalid session_id format")
		}
	case chat.KindRetrievalUnavailable:
		return pkgErrors.NewKindError(http.StatusServiceUnavailable, pkgErrors.KindRetrievalUnavailable, "Vector store is unreachable")
	case chat.KindEmbeddingFailure:
		return pkgErrors.NewKindError(http.StatusBadGateway, pkgErrors.KindEmbeddingFailure, "Failed to generate query embedding")
	case chat.KindMalformedPayload:
		return pkgErrors.NewKindError(http.StatusBadGateway, pkgErrors.KindMalformedPayload, "Vector store returned malformed data")
	case chat.KindGenerationRateLimited:
		return pkgErrors.NewKindError(http.StatusTooManyRequests, pkgErrors.KindGenerationUnavailable, msgBusy)
	case chat.KindGenerationUnreachable, chat.KindGenerationUpstream:
		return pkgErrors.NewKindError(http.StatusBadGateway, pkgErrors.KindGenerationUnavailable, msgUnavailable)
	case chat.KindSessionNotFound:
		return pkgErrors.NewKindError(http.StatusNotFound, pkgErrors.KindSessionNotFound, "Session not found")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
