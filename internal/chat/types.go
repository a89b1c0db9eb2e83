package chat

import "time"

// Config holds the fixed generation parameters of a chat turn.
type Config struct {
	MaxMessageLength int           // characters
	TopK             int           // fragments retrieved per turn
	Temperature      float64
	MaxTokens        int
	SlowThreshold    time.Duration // turns slower than this are logged at Warn
}

type ChatInput struct {
	Message   string
	SessionID string // optional
}

type ChatOutput struct {
	SessionID string
	Message   string
	Sources   []Source // sources[k-1] is citation [k]
	Metadata  Metadata
}

type Source struct {
	ChunkID string
	Title   string
	Slug    string
	Score   float64
}

type Metadata struct {
	ResponseTimeMS int64
	TokensUsed     *int
	ContextChunks  int
}
