package usecase

import (
	"context"

	"textbook-rag/internal/auth"
	repo "textbook-rag/internal/auth/repository"
)

// SignIn checks credentials and issues a session token. Unknown email and
// wrong password are indistinguishable to the caller.
func (uc *implUseCase) SignIn(ctx context.Context, input auth.SignInInput) (auth.AuthOutput, error) {
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}

	user, err := uc.repo.GetOneUser(ctx, repo.GetOneUserOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignIn GetOneUser: %v", err)
		return auth.AuthOutput{}, err
	}
	if user.ID == "" {
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}
	if err := uc.enc.ComparePassword(user.PasswordHash, input.Password); err != nil {
		uc.l.Debugf(ctx, "auth.usecase.SignIn: password rejected for %s", user.ID)
		return auth.AuthOutput{}, auth.ErrInvalidCredentials
	}

	uc.l.Infof(ctx, "auth.usecase.SignIn: user %s signed in", user.ID)
	return uc.issue(user)
}
