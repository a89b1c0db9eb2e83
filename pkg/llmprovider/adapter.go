package llmprovider

import (
	"context"
	"fmt"
	"strings"

	"textbook-rag/pkg/gemini"
	"textbook-rag/pkg/openaicompat"
)

// GeminiAdapter adapts pkg/gemini to llmprovider.Provider interface
type GeminiAdapter struct {
	client gemini.IClient
}

// NewGeminiAdapter creates a new Gemini adapter
func NewGeminiAdapter(client gemini.IClient) *GeminiAdapter {
	return &GeminiAdapter{client: client}
}

// GenerateContent implements Provider interface. System messages become
// the system instruction and assistant turns are sent with the "model" role.
func (a *GeminiAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	geminiReq := &gemini.Request{
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}

	var system []string
	for _, msg := range req.Messages {
		switch msg.Role {
		case RoleSystem:
			system = append(system, msg.Content)
		case RoleAssistant:
			geminiReq.Messages = append(geminiReq.Messages, gemini.Content{Role: gemini.RoleModel, Text: msg.Content})
		default:
			geminiReq.Messages = append(geminiReq.Messages, gemini.Content{Role: gemini.RoleUser, Text: msg.Content})
		}
	}
	geminiReq.SystemInstruction = strings.Join(system, "\n\n")

	resp, err := a.client.GenerateContent(ctx, geminiReq)
	if err != nil {
		return nil, wrapProviderError(a.Name(), err)
	}
	switch {
	case resp.FinishReason == gemini.FinishReasonSafety, resp.FinishReason == gemini.FinishReasonRecitation:
		return nil, wrapProviderError(a.Name(), fmt.Errorf("%w: completion blocked (%s)", ErrUpstream, resp.FinishReason))
	case strings.TrimSpace(resp.Text) == "":
		return nil, wrapProviderError(a.Name(), fmt.Errorf("%w: empty completion (finish reason %q)", ErrUpstream, resp.FinishReason))
	}

	return &Response{
		Content:      resp.Text,
		ProviderName: a.Name(),
		ModelName:    a.client.Model(),
		Usage: &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		},
	}, nil
}

// Name returns provider name
func (a *GeminiAdapter) Name() string {
	return "gemini"
}

// Model returns model name
func (a *GeminiAdapter) Model() string {
	return a.client.Model()
}

// OpenAICompatAdapter adapts pkg/openaicompat (openai, qwen, deepseek).
type OpenAICompatAdapter struct {
	name   string
	client openaicompat.IClient
}

// NewOpenAICompatAdapter creates an adapter reporting the given vendor name.
func NewOpenAICompatAdapter(name string, client openaicompat.IClient) *OpenAICompatAdapter {
	return &OpenAICompatAdapter{name: name, client: client}
}

// GenerateContent implements Provider interface
func (a *OpenAICompatAdapter) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	msgs := make([]openaicompat.Message, len(req.Messages))
	for i, msg := range req.Messages {
		msgs[i] = openaicompat.Message{Role: msg.Role, Content: msg.Content}
	}

	resp, err := a.client.CreateChatCompletion(ctx, &openaicompat.Request{
		Messages:    msgs,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		return nil, wrapProviderError(a.name, err)
	}
	if strings.TrimSpace(resp.Content) == "" {
		return nil, wrapProviderError(a.name, fmt.Errorf("%w: empty completion (finish reason %q)", ErrUpstream, resp.FinishReason))
	}

	var usage *Usage
	if resp.Usage.TotalTokens > 0 {
		usage = &Usage{
			InputTokens:  resp.Usage.InputTokens,
			OutputTokens: resp.Usage.OutputTokens,
			TotalTokens:  resp.Usage.TotalTokens,
		}
	}

	return &Response{
		Content:      resp.Content,
		ProviderName: a.name,
		ModelName:    a.client.Model(),
		Usage:        usage,
	}, nil
}

// Name returns provider name
func (a *OpenAICompatAdapter) Name() string {
	return a.name
}

// Model returns model name
func (a *OpenAICompatAdapter) Model() string {
	return a.client.Model()
}
