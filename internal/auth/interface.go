package auth

import (
	"context"

	"textbook-rag/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	SignUp(ctx context.Context, input SignUpInput) (AuthOutput, error)
	SignIn(ctx context.Context, input SignInInput) (AuthOutput, error)
	// Session returns the user behind an authenticated scope.
	Session(ctx context.Context, sc model.Scope) (User, error)
	// Profile returns the stored background of a user.
	Profile(ctx context.Context, userID string) (model.UserProfile, error)
}
