package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textbook-rag/config"
	"textbook-rag/internal/auth"
	"textbook-rag/internal/model"
	"textbook-rag/pkg/log"
	"textbook-rag/pkg/scope"
)

type mockUseCase struct {
	out         auth.AuthOutput
	user        auth.User
	err         error
	signUpInput auth.SignUpInput
	scope       model.Scope
}

func (m *mockUseCase) SignUp(ctx context.Context, input auth.SignUpInput) (auth.AuthOutput, error) {
	m.signUpInput = input
	return m.out, m.err
}

func (m *mockUseCase) SignIn(ctx context.Context, input auth.SignInInput) (auth.AuthOutput, error) {
	return m.out, m.err
}

func (m *mockUseCase) Session(ctx context.Context, sc model.Scope) (auth.User, error) {
	m.scope = sc
	return m.user, m.err
}

func (m *mockUseCase) Profile(ctx context.Context, userID string) (model.UserProfile, error) {
	return m.user.Profile, m.err
}

func newRouter(uc auth.UseCase, mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	RegisterRoutes(r, New(log.NewNop(), uc, config.AuthConfig{CookieName: "session_token"}))
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_token" {
			return c
		}
	}
	return nil
}

func TestSignUpHandler(t *testing.T) {
	uc := &mockUseCase{out: auth.AuthOutput{
		User:      auth.User{ID: "u1", Email: "a@b.co"},
		Token:     "tok",
		ExpiresAt: time.Now().Add(time.Hour),
	}}

	w := do(newRouter(uc), http.MethodPost, "/api/auth/sign-up",
		`{"email":"a@b.co","password":"password1","programming_level":"beginner","hardware_background":"none","learning_goals":["academic"]}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, []string{"academic"}, uc.signUpInput.Profile.LearningGoals)

	c := sessionCookie(w)
	require.NotNil(t, c)
	assert.Equal(t, "tok", c.Value)
	assert.True(t, c.HttpOnly)
	assert.Greater(t, c.MaxAge, 0)

	var body struct {
		Data authResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "u1", body.Data.User.ID)
	assert.Equal(t, []string{}, body.Data.User.LearningGoals)
	assert.Equal(t, "Account created successfully", body.Data.Message)
}

func TestAuthHandlerErrors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		body       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"bad json", "/api/auth/sign-up", `{`, nil, http.StatusBadRequest, "validation_error"},
		{"missing fields", "/api/auth/sign-in", `{"email":"a@b.co"}`, nil, http.StatusBadRequest, "validation_error"},
		{"email taken", "/api/auth/sign-up",
			`{"email":"a@b.co","password":"password1","programming_level":"beginner","hardware_background":"none","learning_goals":["academic"]}`,
			auth.ErrEmailTaken, http.StatusConflict, "conflict"},
		{"weak password", "/api/auth/sign-up",
			`{"email":"a@b.co","password":"x","programming_level":"beginner","hardware_background":"none","learning_goals":["academic"]}`,
			auth.ErrWeakPassword, http.StatusBadRequest, "validation_error"},
		{"bad credentials", "/api/auth/sign-in", `{"email":"a@b.co","password":"nope"}`,
			auth.ErrInvalidCredentials, http.StatusUnauthorized, "unauthorized"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&mockUseCase{err: tt.err}), http.MethodPost, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Nil(t, sessionCookie(w))
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body["error"])
		})
	}
}

func TestSessionHandler(t *testing.T) {
	uc := &mockUseCase{user: auth.User{ID: "u1", Email: "a@b.co"}}
	withUser := func(c *gin.Context) {
		c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u1"}))
	}

	w := do(newRouter(uc, withUser), http.MethodGet, "/api/auth/session", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u1", uc.scope.UserID)
	assert.Contains(t, w.Body.String(), `"email":"a@b.co"`)

	w = do(newRouter(&mockUseCase{err: auth.ErrUnauthenticated}), http.MethodGet, "/api/auth/session", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSignOutHandler(t *testing.T) {
	w := do(newRouter(&mockUseCase{}), http.MethodPost, "/api/auth/sign-out", "")

	require.Equal(t, http.StatusOK, w.Code)
	c := sessionCookie(w)
	require.NotNil(t, c)
	assert.Empty(t, c.Value)
	assert.Less(t, c.MaxAge, 0)
	assert.True(t, strings.Contains(w.Body.String(), `"success":true`))
}
