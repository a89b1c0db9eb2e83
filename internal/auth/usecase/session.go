package usecase

import (
	"context"

	"textbook-rag/internal/auth"
	repo "textbook-rag/internal/auth/repository"
	"textbook-rag/internal/model"
)

// Session returns the user behind sc.
func (uc *implUseCase) Session(ctx context.Context, sc model.Scope) (auth.User, error) {
	if !sc.Authenticated() {
		return auth.User{}, auth.ErrUnauthenticated
	}
	user, err := uc.getUser(ctx, sc.UserID)
	if err != nil {
		return auth.User{}, err
	}
	user.PasswordHash = ""
	return user, nil
}

// Profile returns the stored background of a user.
func (uc *implUseCase) Profile(ctx context.Context, userID string) (model.UserProfile, error) {
	user, err := uc.getUser(ctx, userID)
	if err != nil {
		return model.UserProfile{}, err
	}
	return user.Profile, nil
}

func (uc *implUseCase) getUser(ctx context.Context, id string) (auth.User, error) {
	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{ID: id})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.getUser GetOneUser: %v", err)
		return auth.User{}, err
	}
	if user.ID == "" {
		return auth.User{}, auth.ErrUserNotFound
	}
	return user, nil
}
