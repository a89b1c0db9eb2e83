package openaicompat

import (
	"fmt"
	"net/http"
)

// Config holds client configuration. Vendor selects a Preset whose values
// fill BaseURL and Model when they are empty.
type Config struct {
	Vendor     string
	APIKey     string
	Model      string
	BaseURL    string
	HTTPClient *http.Client
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openaicompat: APIKey is required")
	}
	preset, known := Presets[c.Vendor]
	if c.BaseURL == "" {
		if !known {
			return fmt.Errorf("openaicompat: BaseURL is required for vendor %q", c.Vendor)
		}
		c.BaseURL = preset.BaseURL
	}
	if c.Model == "" {
		if !known {
			return fmt.Errorf("openaicompat: Model is required for vendor %q", c.Vendor)
		}
		c.Model = preset.Model
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

type clientImpl struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// Request is a chat completions request.
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message is one role-tagged message ("system", "user", "assistant").
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Response holds the first choice and token usage.
type Response struct {
	Content      string
	FinishReason string
	Usage        Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// APIError is a non-200 answer from the vendor.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openaicompat: API error %d: %s", e.StatusCode, e.Message)
}

// HTTPStatus reports the HTTP status returned by the API.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

// wire types

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
		TotalTokens      int `json:"total_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}
