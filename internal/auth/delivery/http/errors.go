package http

import (
	"errors"
	"net/http"

	"textbook-rag/internal/auth"
	"textbook-rag/internal/model"
	pkgErrors "textbook-rag/pkg/errors"
)

// mapError translates auth errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrInvalidEmail):
		return pkgErrors.NewValidationError("Invalid email address")
	case errors.Is(err, auth.ErrWeakPassword):
		return pkgErrors.NewValidationError("Password must be at least 8 characters")
	case errors.Is(err, model.ErrInvalidProfile):
		return pkgErrors.NewValidationError("%s", err.Error())
	case errors.Is(err, auth.ErrEmailTaken):
		return pkgErrors.NewKindError(http.StatusConflict, pkgErrors.KindConflict, "Email already registered")
	case errors.Is(err, auth.ErrInvalidCredentials):
		return pkgErrors.NewKindError(http.StatusUnauthorized, pkgErrors.KindUnauthorized, "Invalid credentials")
	case errors.Is(err, auth.ErrUnauthenticated), errors.Is(err, auth.ErrUserNotFound):
		return pkgErrors.ErrUnauthorized
	default:
		return pkgErrors.ErrInternalServerError
	}
}
