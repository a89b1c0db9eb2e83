package repository

import (
	"fmt"
	"sort"
	"strconv"

	"textbook-rag/internal/model"
)

// Payload keys stored with every chunk.
const (
	KeyChunkID    = "chunk_id"
	KeyText       = "text"
	KeySourcePath = "source_path"
	KeySlug       = "slug"
	KeyTitle      = "title"
	KeyChapter    = "chapter"
	KeyOrderIndex = "order_index"
)

// ChunkPayload is the stored form of a chunk.
func ChunkPayload(c model.Chunk) map[string]any {
	return map[string]any{
		KeyChunkID:    c.ChunkID,
		KeyText:       c.Text,
		KeySourcePath: c.SourcePath,
		KeySlug:       c.Slug,
		KeyTitle:      c.Title,
		KeyChapter:    c.Chapter,
		KeyOrderIndex: c.OrderIndex,
	}
}

// ChunkMetadata is ChunkPayload for stores that only keep string metadata.
func ChunkMetadata(c model.Chunk) map[string]string {
	return map[string]string{
		KeyChunkID:    c.ChunkID,
		KeySourcePath: c.SourcePath,
		KeySlug:       c.Slug,
		KeyTitle:      c.Title,
		KeyChapter:    c.Chapter,
		KeyOrderIndex: strconv.Itoa(c.OrderIndex),
	}
}

// ChunkFromPayload validates a stored payload. chunk_id, text, source_path and
// slug are required strings; title, chapter and order_index are optional.
func ChunkFromPayload(p map[string]any) (model.Chunk, error) {
	var c model.Chunk
	var err error
	if c.ChunkID, err = requiredString(p, KeyChunkID); err != nil {
		return model.Chunk{}, err
	}
	if c.Text, err = requiredString(p, KeyText); err != nil {
		return model.Chunk{}, err
	}
	if c.SourcePath, err = requiredString(p, KeySourcePath); err != nil {
		return model.Chunk{}, err
	}
	if c.Slug, err = requiredString(p, KeySlug); err != nil {
		return model.Chunk{}, err
	}
	c.Title, _ = p[KeyTitle].(string)
	c.Chapter, _ = p[KeyChapter].(string)
	c.OrderIndex = intValue(p[KeyOrderIndex])
	return c, nil
}

// ResultFromPayload builds a RetrievalResult from a scored payload.
func ResultFromPayload(p map[string]any, score float64) (model.RetrievalResult, error) {
	c, err := ChunkFromPayload(p)
	if err != nil {
		return model.RetrievalResult{}, err
	}
	return model.RetrievalResult{
		ChunkID:    c.ChunkID,
		Snippet:    c.Text,
		SourcePath: c.SourcePath,
		Slug:       c.Slug,
		Title:      c.Title,
		Score:      clampScore(score),
	}, nil
}

// SortChapter orders chapter chunks by chunk id, then order index.
func SortChapter(chunks []model.Chunk) {
	sort.SliceStable(chunks, func(i, j int) bool {
		if chunks[i].ChunkID != chunks[j].ChunkID {
			return chunks[i].ChunkID < chunks[j].ChunkID
		}
		return chunks[i].OrderIndex < chunks[j].OrderIndex
	})
}

func requiredString(p map[string]any, key string) (string, error) {
	raw, ok := p[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", ErrMalformedPayload, key)
	}
	s, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s has type %T", ErrMalformedPayload, key, raw)
	}
	return s, nil
}

// intValue accepts the numeric forms JSON decoding and string metadata produce.
func intValue(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case float64:
		return int(n)
	case string:
		i, _ := strconv.Atoi(n)
		return i
	}
	return 0
}

func clampScore(s float64) float64 {
	switch {
	case s < 0:
		return 0
	case s > 1:
		return 1
	}
	return s
}
