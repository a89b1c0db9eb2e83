package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"textbook-rag/internal/auth"
	repo "textbook-rag/internal/auth/repository"
	"textbook-rag/internal/model"
	"textbook-rag/pkg/encrypter"
	"textbook-rag/pkg/log"
	"textbook-rag/pkg/scope"
)

type mockRepo struct {
	users     map[string]auth.User // by email
	createErr error
	getErr    error
	creates   int
}

func newMockRepo() *mockRepo {
	return &mockRepo{users: map[string]auth.User{}}
}

func (m *mockRepo) CreateUser(ctx context.Context, opt repo.CreateUserOptions) (auth.User, error) {
	m.creates++
	if m.createErr != nil {
		return auth.User{}, m.createErr
	}
	u := auth.User{
		ID:           "user-" + opt.Email,
		Email:        opt.Email,
		Name:         opt.Name,
		PasswordHash: opt.PasswordHash,
		Profile:      opt.Profile,
		CreatedAt:    time.Now(),
	}
	m.users[opt.Email] = u
	return u, nil
}

func (m *mockRepo) GetOneUser(ctx context.Context, opt repo.GetOneUserOptions) (auth.User, error) {
	if m.getErr != nil {
		return auth.User{}, m.getErr
	}
	for _, u := range m.users {
		if (opt.ID == "" || u.ID == opt.ID) && (opt.Email == "" || u.Email == opt.Email) {
			return u, nil
		}
	}
	return auth.User{}, nil
}

func (m *mockRepo) Migrate(ctx context.Context) error { return nil }
func (m *mockRepo) Ping(ctx context.Context) error    { return nil }

var validProfile = model.UserProfile{
	ProgrammingLevel:   model.LevelBeginner,
	HardwareBackground: model.HardwareNone,
	LearningGoals:      []string{model.GoalAcademic},
}

func newTestUseCase(t *testing.T) (*implUseCase, *mockRepo, scope.Manager) {
	t.Helper()
	tokens, err := scope.New("secret", time.Hour)
	require.NoError(t, err)
	r := newMockRepo()
	uc := New(r, encrypter.New(bcrypt.MinCost), tokens, log.NewNop()).(*implUseCase)
	return uc, r, tokens
}

func TestSignUp(t *testing.T) {
	uc, r, tokens := newTestUseCase(t)

	out, err := uc.SignUp(context.Background(), auth.SignUpInput{
		Email:    "  Reader@Example.COM ",
		Password: "password1",
		Name:     "Reader",
		Profile:  validProfile,
	})
	require.NoError(t, err)

	assert.Equal(t, "reader@example.com", out.User.Email)
	assert.Empty(t, out.User.PasswordHash)
	assert.NotEqual(t, "password1", r.users["reader@example.com"].PasswordHash)

	sc, err := tokens.Verify(out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, sc.UserID)
	assert.Equal(t, "reader@example.com", sc.Email)
}

func TestSignUp_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   auth.SignUpInput
		setup   func(r *mockRepo)
		wantErr error
	}{
		{"bad email", auth.SignUpInput{Email: "nope", Password: "password1", Profile: validProfile}, nil, auth.ErrInvalidEmail},
		{"short password", auth.SignUpInput{Email: "a@b.co", Password: "short", Profile: validProfile}, nil, auth.ErrWeakPassword},
		{"bad profile", auth.SignUpInput{Email: "a@b.co", Password: "password1"}, nil, model.ErrInvalidProfile},
		{"email taken", auth.SignUpInput{Email: "a@b.co", Password: "password1", Profile: validProfile},
			func(r *mockRepo) { r.users["a@b.co"] = auth.User{ID: "x", Email: "a@b.co"} }, auth.ErrEmailTaken},
		{"insert race", auth.SignUpInput{Email: "a@b.co", Password: "password1", Profile: validProfile},
			func(r *mockRepo) { r.createErr = repo.ErrDuplicateEmail }, auth.ErrEmailTaken},
		{"repo failure", auth.SignUpInput{Email: "a@b.co", Password: "password1", Profile: validProfile},
			func(r *mockRepo) { r.getErr = repo.ErrFailedToGet }, repo.ErrFailedToGet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, r, _ := newTestUseCase(t)
			if tt.setup != nil {
				tt.setup(r)
			}
			_, err := uc.SignUp(context.Background(), tt.input)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v, want %v", err, tt.wantErr)
		})
	}
}

func TestSignIn(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	_, err := uc.SignUp(ctx, auth.SignUpInput{Email: "a@b.co", Password: "password1", Profile: validProfile})
	require.NoError(t, err)

	out, err := uc.SignIn(ctx, auth.SignInInput{Email: "A@B.CO", Password: "password1"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Empty(t, out.User.PasswordHash)

	_, err = uc.SignIn(ctx, auth.SignInInput{Email: "a@b.co", Password: "wrong-password"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = uc.SignIn(ctx, auth.SignInInput{Email: "ghost@b.co", Password: "password1"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	_, err = uc.SignIn(ctx, auth.SignInInput{Email: "not an email", Password: "password1"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestSessionAndProfile(t *testing.T) {
	uc, _, _ := newTestUseCase(t)
	ctx := context.Background()

	out, err := uc.SignUp(ctx, auth.SignUpInput{Email: "a@b.co", Password: "password1", Profile: validProfile})
	require.NoError(t, err)

	user, err := uc.Session(ctx, model.Scope{UserID: out.User.ID})
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", user.Email)
	assert.Empty(t, user.PasswordHash)

	_, err = uc.Session(ctx, model.Scope{})
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	_, err = uc.Session(ctx, model.Scope{UserID: "deleted"})
	assert.ErrorIs(t, err, auth.ErrUserNotFound)

	profile, err := uc.Profile(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, validProfile, profile)
}
