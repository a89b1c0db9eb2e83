package gemini

import "context"

// IClient calls the generateContent endpoint of one model. Non-200 replies
// are returned as *APIError; transport failures are returned wrapped. The
// client never retries.
type IClient interface {
	GenerateContent(ctx context.Context, req *Request) (*Response, error)
	Model() string
}

var _ IClient = (*geminiImpl)(nil)

// New validates cfg, fills defaults and returns a client.
func New(cfg Config) (IClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGeminiImpl(cfg), nil
}
