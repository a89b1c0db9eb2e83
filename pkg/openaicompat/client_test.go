package openaicompat_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textbook-rag/pkg/openaicompat"
)

func TestCreateChatCompletion(t *testing.T) {
	var got map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
			return
		}
		if r.URL.Path != "/v1/chat/completions" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		got = map[string]any{}
		json.NewDecoder(r.Body).Decode(&got)

		msgs := got["messages"].([]any)
		last := msgs[len(msgs)-1].(map[string]any)["content"].(string)
		if last == "cause_429" {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"message":"Rate limit reached","type":"requests"}}`))
			return
		}

		w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "Actuators convert energy into motion [1]."}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 100, "completion_tokens": 20, "total_tokens": 120}
		}`))
	}))
	defer ts.Close()

	client, err := openaicompat.New(openaicompat.Config{
		Vendor:  "openai",
		APIKey:  "sk-test",
		BaseURL: ts.URL + "/v1/",
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", client.Model())

	t.Run("Success", func(t *testing.T) {
		resp, err := client.CreateChatCompletion(context.Background(), &openaicompat.Request{
			Messages: []openaicompat.Message{
				{Role: "system", Content: "You are a helpful assistant."},
				{Role: "user", Content: "What is an actuator?"},
			},
			Temperature: 0.7,
			MaxTokens:   1000,
		})
		require.NoError(t, err)
		assert.Equal(t, "Actuators convert energy into motion [1].", resp.Content)
		assert.Equal(t, 120, resp.Usage.TotalTokens)
		assert.Equal(t, "gpt-4o-mini", got["model"])
		assert.EqualValues(t, 1000, got["max_tokens"])
		assert.Len(t, got["messages"], 2)
	})

	t.Run("Rate limited", func(t *testing.T) {
		_, err := client.CreateChatCompletion(context.Background(), &openaicompat.Request{
			Messages: []openaicompat.Message{{Role: "user", Content: "cause_429"}},
		})
		var apiErr *openaicompat.APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusTooManyRequests, apiErr.HTTPStatus())
		assert.Equal(t, "Rate limit reached", apiErr.Message)
	})

	t.Run("Unauthorized", func(t *testing.T) {
		bad, err := openaicompat.New(openaicompat.Config{Vendor: "openai", APIKey: "nope", BaseURL: ts.URL + "/v1"})
		require.NoError(t, err)
		_, err = bad.CreateChatCompletion(context.Background(), &openaicompat.Request{
			Messages: []openaicompat.Message{{Role: "user", Content: "hi"}},
		})
		assert.ErrorContains(t, err, "Incorrect API key")
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       openaicompat.Config
		wantErr   bool
		wantModel string
	}{
		{name: "deepseek preset", cfg: openaicompat.Config{Vendor: "deepseek", APIKey: "k"}, wantModel: "deepseek-chat"},
		{name: "qwen override model", cfg: openaicompat.Config{Vendor: "qwen", APIKey: "k", Model: "qwen-max"}, wantModel: "qwen-max"},
		{name: "unknown vendor needs base url", cfg: openaicompat.Config{Vendor: "local", APIKey: "k", Model: "m"}, wantErr: true},
		{name: "missing key", cfg: openaicompat.Config{Vendor: "openai"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantModel, tt.cfg.Model)
			assert.NotEmpty(t, tt.cfg.BaseURL)
		})
	}
}
