package ingest

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/textsplitter"

	"textbook-rag/internal/model"
)

const (
	DefaultChunkSize    = 2000
	DefaultChunkOverlap = 200
)

// Chunker splits document text on paragraph, line, sentence and word
// boundaries, in that order of preference.
type Chunker struct {
	splitter textsplitter.TextSplitter
}

// NewChunker builds a Chunker. Sizes are in characters.
func NewChunker(size, overlap int) *Chunker {
	if size <= 0 {
		size = DefaultChunkSize
	}
	if overlap < 0 || overlap >= size {
		overlap = DefaultChunkOverlap
		if overlap >= size {
			overlap = size / 10
		}
	}
	return &Chunker{splitter: textsplitter.NewRecursiveCharacter(
		textsplitter.WithChunkSize(size),
		textsplitter.WithChunkOverlap(overlap),
		textsplitter.WithSeparators([]string{"\n\n", "\n", ". ", " ", ""}),
	)}
}

// Chunk splits doc into chunks numbered doc-NNN-NNNN, 1-based within the document.
func (c *Chunker) Chunk(doc Document) ([]model.Chunk, error) {
	if strings.TrimSpace(doc.Body) == "" {
		return nil, nil
	}
	parts, err := c.splitter.SplitText(doc.Body)
	if err != nil {
		return nil, fmt.Errorf("split %s: %w", doc.Path, err)
	}

	chunks := make([]model.Chunk, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		idx := len(chunks) + 1
		chunks = append(chunks, model.Chunk{
			ChunkID:    ChunkID(doc.Number, idx),
			Text:       p,
			SourcePath: doc.Path,
			Slug:       doc.Slug,
			Title:      doc.Title,
			Chapter:    doc.Chapter,
			OrderIndex: idx,
		})
	}
	return chunks, nil
}

// ChunkID formats a stable chunk id, e.g. doc-001-0001.
func ChunkID(docNumber, chunkIndex int) string {
	return fmt.Sprintf("doc-%03d-%04d", docNumber, chunkIndex)
}
