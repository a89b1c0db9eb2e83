package repository

import "textbook-rag/internal/model"

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Email        string
	PasswordHash string
	Name         string
	Profile      model.UserProfile
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-empty fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    string
	Email string
}
