package postgre

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"

	repo "textbook-rag/internal/auth/repository"
	"textbook-rag/internal/model"
	pkgLog "textbook-rag/pkg/log"
	"textbook-rag/pkg/postgres"
)

var testRepo repo.Repository

// TestMain starts one Postgres container for the package. Integration tests
// are skipped entirely under -short.
func TestMain(m *testing.M) {
	flag.Parse()
	if testing.Short() {
		os.Exit(m.Run())
	}
	os.Setenv("TESTCONTAINERS_RYUK_DISABLED", "true")

	ctx := context.Background()
	ctr, err := tcpostgres.Run(ctx, "postgres:16-alpine",
		tcpostgres.WithDatabase("textbook"),
		tcpostgres.WithUsername("textbook"),
		tcpostgres.WithPassword("textbook"),
		tcpostgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Fatalf("Failed to start postgres container: %v", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		log.Fatalf("Failed to get connection string: %v", err)
	}

	var db *sql.DB
	for i := 0; i < 10; i++ {
		if db, err = postgres.Connect(ctx, dsn); err == nil {
			break
		}
		time.Sleep(500 * time.Millisecond)
	}
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}

	testRepo = New(db, pkgLog.NewNop())
	if err := testRepo.Migrate(ctx); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}

	code := m.Run()

	_ = db.Close()
	_ = testcontainers.TerminateContainer(ctr)
	os.Exit(code)
}

func skipShort(t *testing.T) {
	t.Helper()
	if testing.Short() {
		t.Skip("integration test")
	}
}

func TestCreateAndGetUser(t *testing.T) {
	skipShort(t)
	ctx := context.Background()

	profile := model.UserProfile{
		ProgrammingLevel:   model.LevelIntermediate,
		HardwareBackground: model.HardwareHobbyist,
		LearningGoals:      []string{model.GoalAcademic, model.GoalUpskilling},
	}
	created, err := testRepo.CreateUser(ctx, repo.CreateUserOptions{
		Email:        "reader@example.com",
		PasswordHash: "hash",
		Name:         "Reader",
		Profile:      profile,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, profile, created.Profile)
	assert.False(t, created.CreatedAt.IsZero())

	byEmail, err := testRepo.GetOneUser(ctx, repo.GetOneUserOptions{Email: "reader@example.com"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)
	assert.Equal(t, "hash", byEmail.PasswordHash)

	byID, err := testRepo.GetOneUser(ctx, repo.GetOneUserOptions{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Reader", byID.Name)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	skipShort(t)
	ctx := context.Background()

	opt := repo.CreateUserOptions{
		Email:        "dup@example.com",
		PasswordHash: "hash",
		Profile: model.UserProfile{
			ProgrammingLevel:   model.LevelBeginner,
			HardwareBackground: model.HardwareNone,
			LearningGoals:      []string{model.GoalPersonal},
		},
	}
	_, err := testRepo.CreateUser(ctx, opt)
	require.NoError(t, err)

	_, err = testRepo.CreateUser(ctx, opt)
	assert.ErrorIs(t, err, repo.ErrDuplicateEmail)
}

func TestGetOneUser_NotFound(t *testing.T) {
	skipShort(t)

	u, err := testRepo.GetOneUser(context.Background(), repo.GetOneUserOptions{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Empty(t, u.ID)
}

func TestMigrateIsIdempotent(t *testing.T) {
	skipShort(t)
	assert.NoError(t, testRepo.Migrate(context.Background()))
}

func TestBuildGetOneQuery(t *testing.T) {
	r := &implRepository{}

	mods, args := r.buildGetOneQuery(repo.GetOneUserOptions{ID: "1", Email: "a@b.c"})
	assert.Equal(t, "id = $1 AND email = $2", mods)
	assert.Equal(t, []any{"1", "a@b.c"}, args)

	mods, args = r.buildGetOneQuery(repo.GetOneUserOptions{})
	assert.Equal(t, "1=0", mods)
	assert.Empty(t, args)
}
