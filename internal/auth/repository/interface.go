package repository

import (
	"context"

	"textbook-rag/internal/auth"
)

// Repository is the composed interface for the auth data store.
type Repository interface {
	UserRepository
	Migrate(ctx context.Context) error
	Ping(ctx context.Context) error
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (auth.User, error)
	// GetOneUser returns a zero User (ID == "") when nothing matches.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (auth.User, error)
}
