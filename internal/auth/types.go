package auth

import (
	"time"

	"textbook-rag/internal/model"
)

// User is a registered reader.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	Profile      model.UserProfile
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// --- UseCase Inputs ---

type SignUpInput struct {
	Email    string
	Password string
	Name     string
	Profile  model.UserProfile
}

type SignInInput struct {
	Email    string
	Password string
}

// --- UseCase Outputs ---

// AuthOutput is returned by sign-up and sign-in. Token is the signed session token.
type AuthOutput struct {
	User      User
	Token     string
	ExpiresAt time.Time
}
