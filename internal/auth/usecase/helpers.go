package usecase

import (
	"net/mail"
	"strings"

	"textbook-rag/internal/auth"
)

// normalizeEmail trims and lower-cases an address after checking its syntax.
func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", auth.ErrInvalidEmail
	}
	return email, nil
}
