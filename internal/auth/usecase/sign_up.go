package usecase

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"textbook-rag/internal/auth"
	repo "textbook-rag/internal/auth/repository"
)

// SignUp registers a user and issues a session token.
func (uc *implUseCase) SignUp(ctx context.Context, input auth.SignUpInput) (auth.AuthOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.AuthOutput{}, err
	}
	if utf8.RuneCountInString(input.Password) < minPasswordLength {
		return auth.AuthOutput{}, auth.ErrWeakPassword
	}
	if err := input.Profile.Validate(); err != nil {
		return auth.AuthOutput{}, err
	}

	existing, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignUp GetOneUser: %v", err)
		return auth.AuthOutput{}, err
	}
	if existing.ID != "" {
		return auth.AuthOutput{}, auth.ErrEmailTaken
	}

	hash, err := uc.enc.HashPassword(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignUp HashPassword: %v", err)
		return auth.AuthOutput{}, err
	}

	user, err := uc.repo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        email,
		PasswordHash: hash,
		Name:         input.Name,
		Profile:      input.Profile,
	})
	if errors.Is(err, repo.ErrDuplicateEmail) {
		return auth.AuthOutput{}, auth.ErrEmailTaken
	}
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignUp CreateUser: %v", err)
		return auth.AuthOutput{}, err
	}

	uc.l.Infof(ctx, "auth.usecase.SignUp: registered user %s", user.ID)
	return uc.issue(user)
}

func (uc *implUseCase) issue(user auth.User) (auth.AuthOutput, error) {
	token, exp, err := uc.tokens.Issue(user.ID, user.Email)
	if err != nil {
		return auth.AuthOutput{}, fmt.Errorf("issue token: %w", err)
	}
	user.PasswordHash = ""
	return auth.AuthOutput{User: user, Token: token, ExpiresAt: exp}, nil
}
