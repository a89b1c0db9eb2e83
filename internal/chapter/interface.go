package chapter

import (
	"context"

	"textbook-rag/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Personalize rewrites a chapter for a reader's background.
	Personalize(ctx context.Context, sc model.Scope, input PersonalizeInput) (PersonalizeOutput, error)
	// Translate renders a chapter in Urdu. Requires an authenticated scope.
	Translate(ctx context.Context, sc model.Scope, input TranslateInput) (TranslateOutput, error)
}

// ProfileSource looks up the stored background of a user.
type ProfileSource interface {
	Profile(ctx context.Context, userID string) (model.UserProfile, error)
}
