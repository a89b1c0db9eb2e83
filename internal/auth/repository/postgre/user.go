package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"textbook-rag/internal/auth"
	repo "textbook-rag/internal/auth/repository"
	"textbook-rag/pkg/postgres"
)

const userColumns = `id, email, COALESCE(name, ''), password_hash, programming_level, hardware_background,
	learning_goals, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (auth.User, error) {
	var u auth.User
	var goals pq.StringArray
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash,
		&u.Profile.ProgrammingLevel, &u.Profile.HardwareBackground, &goals,
		&u.CreatedAt, &u.UpdatedAt)
	u.Profile.LearningGoals = []string(goals)
	return u, err
}

// CreateUser inserts a new User row and returns the created entity.
func (r *implRepository) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (auth.User, error) {
	query := `
		INSERT INTO users (email, password_hash, name, programming_level, hardware_background, learning_goals)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5, $6)
		RETURNING ` + userColumns

	u, err := scanUser(r.db.QueryRowContext(ctx, query,
		opt.Email, opt.PasswordHash, opt.Name,
		opt.Profile.ProgrammingLevel, opt.Profile.HardwareBackground, pq.Array(opt.Profile.LearningGoals),
	))
	if postgres.IsUniqueViolation(err) {
		return auth.User{}, repo.ErrDuplicateEmail
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateUser"), err)
		return auth.User{}, repo.ErrFailedToInsert
	}
	return u, nil
}

// GetOneUser retrieves a single User by the provided filters (AND condition).
func (r *implRepository) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (auth.User, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM users WHERE %s LIMIT 1", userColumns, mods)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return auth.User{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneUser"), err)
		return auth.User{}, repo.ErrFailedToGet
	}
	return u, nil
}
