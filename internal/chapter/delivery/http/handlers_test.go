package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textbook-rag/internal/chapter"
	"textbook-rag/internal/model"
	"textbook-rag/internal/search/repository"
	"textbook-rag/pkg/log"
	"textbook-rag/pkg/response"
	"textbook-rag/pkg/scope"
)

type mockUseCase struct {
	personalizeIn chapter.PersonalizeInput
	translateOut  chapter.TranslateOutput
	err           error
}

func (m *mockUseCase) Personalize(ctx context.Context, sc model.Scope, input chapter.PersonalizeInput) (chapter.PersonalizeOutput, error) {
	m.personalizeIn = input
	return chapter.PersonalizeOutput{ChapterSlug: input.ChapterSlug, PersonalizedContent: "adapted"}, m.err
}

func (m *mockUseCase) Translate(ctx context.Context, sc model.Scope, input chapter.TranslateInput) (chapter.TranslateOutput, error) {
	if m.err != nil {
		return chapter.TranslateOutput{}, m.err
	}
	out := m.translateOut
	out.UserID = sc.UserID
	return out, nil
}

// requireUser stands in for the auth middleware.
func requireUser(c *gin.Context) {
	if !scope.GetScopeFromContext(c.Request.Context()).Authenticated() {
		response.Unauthorized(c)
		c.Abort()
		return
	}
	c.Next()
}

func withUser(c *gin.Context) {
	c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), model.Scope{UserID: "u1"}))
}

func newRouter(uc chapter.UseCase, pre ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(pre...)
	RegisterRoutes(r, New(log.NewNop(), uc), requireUser)
	return r
}

func do(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestPersonalizeHandler(t *testing.T) {
	uc := &mockUseCase{}
	w := do(newRouter(uc), "/personalize",
		`{"chapter_slug":"chapter-1","user_profile":{"programming_level":"advanced","hardware_background":"none","learning_goals":["personal"]}}`)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, uc.personalizeIn.Profile)
	assert.Equal(t, "advanced", uc.personalizeIn.Profile.ProgrammingLevel)
	assert.Contains(t, w.Body.String(), `"personalized_content":"adapted"`)

	w = do(newRouter(uc), "/personalize", `{"chapter_slug":"intro"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, uc.personalizeIn.Profile)
}

func TestTranslateHandler(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 30, 0, 0, time.FixedZone("PKT", 5*60*60))
	uc := &mockUseCase{translateOut: chapter.TranslateOutput{ChapterID: "intro", TargetLanguage: "ur", TranslatedAt: at}}

	w := do(newRouter(uc), "/translate", `{"chapter_id":"intro"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(newRouter(uc, withUser), "/translate", `{"chapter_id":"intro"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data translateResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ur", body.Data.TargetLanguage)
	assert.Equal(t, "u1", body.Data.Metadata.UserID)
	assert.True(t, time.Time(body.Data.TranslatedAt).Equal(at))
	assert.Contains(t, w.Body.String(), `"translated_at":"2025-03-01T04:30:00Z"`)
}

func TestChapterHandlerErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantKind   string
	}{
		{"invalid slug", fmt.Errorf("%w: must be one of intro", chapter.ErrInvalidChapter), http.StatusBadRequest, "validation_error"},
		{"invalid profile", model.ErrInvalidProfile, http.StatusBadRequest, "validation_error"},
		{"profile required", chapter.ErrProfileRequired, http.StatusBadRequest, "validation_error"},
		{"not found", chapter.ErrChapterNotFound, http.StatusNotFound, "not_found"},
		{"generation", chapter.ErrGenerationFailed, http.StatusBadGateway, "generation_unavailable"},
		{"store down", repository.ErrUnavailable, http.StatusServiceUnavailable, "retrieval_unavailable"},
		{"unexpected", assert.AnError, http.StatusInternalServerError, "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(newRouter(&mockUseCase{err: tt.err}), "/personalize", `{"chapter_slug":"chapter-1"}`)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantKind, body["error"])
		})
	}

	w := do(newRouter(&mockUseCase{}), "/personalize", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
