package postgre

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	repo "textbook-rag/internal/auth/repository"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate applies every embedded migration in file-name order. Statements are
// idempotent, so running it on every start is safe.
func (r *implRepository) Migrate(ctx context.Context) error {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("%w: %w", repo.ErrFailedToMigrate, err)
	}
	sort.Strings(names)

	for _, name := range names {
		body, err := migrations.ReadFile(name)
		if err != nil {
			return fmt.Errorf("%w: %w", repo.ErrFailedToMigrate, err)
		}
		if _, err := r.db.ExecContext(ctx, string(body)); err != nil {
			r.l.Errorf(ctx, "%s %s: %v", r.dsn("Migrate"), name, err)
			return fmt.Errorf("%w: %s: %v", repo.ErrFailedToMigrate, name, err)
		}
		r.l.Debugf(ctx, "%s: applied %s", r.dsn("Migrate"), name)
	}
	return nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
