package qdrant

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // Collection name (in URL)
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// Point represents a vector with payload.
// Qdrant only accepts UUID strings or unsigned integers as ids.
type Point struct {
	ID      any            `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector         []float32 `json:"vector"`
	Limit          int       `json:"limit"`
	WithPayload    bool      `json:"with_payload"`
	Filter         *Filter   `json:"filter,omitempty"`
	ScoreThreshold *float64  `json:"score_threshold,omitempty"`
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      any            `json:"id"`
	Score   float64        `json:"score"`
	Payload map[string]any `json:"payload"`
}

// Filter is the subset of the qdrant filter language used by the service.
type Filter struct {
	Must []Condition `json:"must,omitempty"`
}

// Condition matches a payload key against a value.
type Condition struct {
	Key   string `json:"key"`
	Match Match  `json:"match"`
}

type Match struct {
	Value any `json:"value"`
}

// ScrollRequest pages through points of a collection.
type ScrollRequest struct {
	Limit       int     `json:"limit"`
	Offset      any     `json:"offset,omitempty"`
	WithPayload bool    `json:"with_payload"`
	WithVector  bool    `json:"with_vector"`
	Filter      *Filter `json:"filter,omitempty"`
}

// ScrollResponse holds one page of points and the offset of the next page.
// NextPageOffset is nil on the last page.
type ScrollResponse struct {
	Result struct {
		Points         []Record `json:"points"`
		NextPageOffset any      `json:"next_page_offset"`
	} `json:"result"`
}

// Record is a stored point without a score.
type Record struct {
	ID      any            `json:"id"`
	Payload map[string]any `json:"payload"`
}

// CollectionInfo is the part of GET /collections/{name} the service reads.
type CollectionInfo struct {
	Result struct {
		Status      string `json:"status"`
		PointsCount int    `json:"points_count"`
	} `json:"result"`
}

// DeletePointsRequest is the request to delete points.
type DeletePointsRequest struct {
	Points []any `json:"points"`
}
