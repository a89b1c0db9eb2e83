package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"textbook-rag/pkg/gemini"
)

func TestGenerateContent(t *testing.T) {
	var got map[string]any

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		got = map[string]any{}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		contents := got["contents"].([]any)
		last := contents[len(contents)-1].(map[string]any)
		text := last["parts"].([]any)[0].(map[string]any)["text"].(string)
		switch text {
		case "cause_429":
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":{"status":"RESOURCE_EXHAUSTED"}}`))
			return
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "ROS 2 is "}, {"text": "middleware [1]."}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 30, "candidatesTokenCount": 12, "totalTokenCount": 42}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	t.Run("Success", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "Answer from the textbook.",
			Messages: []gemini.Content{
				{Role: gemini.RoleUser, Text: "hi"},
				{Role: gemini.RoleModel, Text: "hello"},
				{Role: gemini.RoleUser, Text: "What is ROS 2?"},
			},
			Temperature: 0.7,
			MaxTokens:   1000,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "ROS 2 is middleware [1]." {
			t.Errorf("Text = %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 42 {
			t.Errorf("TotalTokens = %d, want 42", resp.Usage.TotalTokens)
		}
		if _, ok := got["system_instruction"]; !ok {
			t.Errorf("system_instruction not sent")
		}
		cfg := got["generationConfig"].(map[string]any)
		if cfg["maxOutputTokens"].(float64) != 1000 {
			t.Errorf("maxOutputTokens = %v", cfg["maxOutputTokens"])
		}
	})

	t.Run("Rate limited", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: gemini.RoleUser, Text: "cause_429"}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.HTTPStatus() != http.StatusTooManyRequests {
			t.Fatalf("expected 429 APIError, got %v", err)
		}
	})

	t.Run("Server error", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: gemini.RoleUser, Text: "cause_500"}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError {
			t.Fatalf("expected 500 APIError, got %v", err)
		}
	})
}

func TestConfigValidate(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatal("expected error without api key")
	}

	cfg := gemini.Config{APIKey: "k"}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.Model != gemini.DefaultModel || cfg.APIURL != gemini.DefaultAPIURL || cfg.HTTPClient == nil {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}
