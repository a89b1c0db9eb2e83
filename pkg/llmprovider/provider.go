package llmprovider

import "context"

// Roles understood by every provider.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Provider defines the interface for LLM providers.
// A provider performs exactly one attempt per call and classifies its
// failures (see errors.go); retrying is the caller's decision.
type Provider interface {
	// GenerateContent sends a generation request and returns a response
	GenerateContent(ctx context.Context, req *Request) (*Response, error)

	// Name returns the provider name (e.g., "openai", "gemini")
	Name() string

	// Model returns the model being used
	Model() string
}

// Generator is what callers depend on. Manager implements it.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
}

// Request represents a normalized LLM generation request
type Request struct {
	Messages    []Message
	Temperature float64
	MaxTokens   int
}

// Message represents a conversation message
type Message struct {
	Role    string // RoleSystem, RoleUser or RoleAssistant
	Content string
}

// Response represents a normalized LLM generation response
type Response struct {
	Content      string
	ProviderName string
	ModelName    string
	Usage        *Usage
}

// Usage tracks token consumption
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// TokensUsed returns the total token count, or nil when the provider did
// not report usage.
func (r *Response) TokensUsed() *int {
	if r == nil || r.Usage == nil || r.Usage.TotalTokens == 0 {
		return nil
	}
	n := r.Usage.TotalTokens
	return &n
}
