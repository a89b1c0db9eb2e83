package repository

// SearchOptions defines a similarity query.
type SearchOptions struct {
	Query string // Natural language query
	TopK  int    // Number of results
}
