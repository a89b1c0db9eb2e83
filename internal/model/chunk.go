package model

// Chunk is one retrievable fragment of the textbook as stored in the vector store.
type Chunk struct {
	ChunkID    string // doc-NNN-NNNN, stable across re-ingestion of an unchanged tree
	Text       string // Plain text extracted from markdown
	SourcePath string // Path relative to the repository root, e.g. docs/chapter-1/ros2.md
	Slug       string // Frontmatter slug or derived from the path
	Title      string // Frontmatter title or derived from the file name
	Chapter    string // First path segment under docs/, e.g. intro, chapter-1
	OrderIndex int    // 1-based position within its document
}

// RetrievalResult is one scored chunk returned by a similarity query.
type RetrievalResult struct {
	ChunkID    string
	Snippet    string
	SourcePath string
	Slug       string
	Title      string
	Score      float64 // Similarity in [0,1], higher is more relevant
}
