package search

import "textbook-rag/internal/model"

// Limits for direct search requests.
type Limits struct {
	DefaultTopK    int
	MaxTopK        int
	MaxQueryLength int // in characters
}

// SearchInput is a direct semantic search. A nil TopK selects the default.
type SearchInput struct {
	Query string
	TopK  *int
}

type SearchOutput struct {
	Query   string
	Results []model.RetrievalResult
}
