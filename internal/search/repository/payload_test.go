package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textbook-rag/internal/model"
)

func TestResultFromPayload(t *testing.T) {
	valid := func() map[string]any {
		return map[string]any{
			"chunk_id":    "doc-001-0002",
			"text":        "Actuators convert energy into motion.",
			"source_path": "docs/chapter-1/actuators.md",
			"slug":        "chapter-1-actuators",
			"title":       "Actuators",
			"order_index": float64(2),
		}
	}

	t.Run("valid", func(t *testing.T) {
		got, err := ResultFromPayload(valid(), 0.87)
		require.NoError(t, err)
		assert.Equal(t, model.RetrievalResult{
			ChunkID:    "doc-001-0002",
			Snippet:    "Actuators convert energy into motion.",
			SourcePath: "docs/chapter-1/actuators.md",
			Slug:       "chapter-1-actuators",
			Title:      "Actuators",
			Score:      0.87,
		}, got)
	})

	t.Run("title is optional", func(t *testing.T) {
		p := valid()
		delete(p, "title")
		got, err := ResultFromPayload(p, 0.5)
		require.NoError(t, err)
		assert.Empty(t, got.Title)
	})

	t.Run("score is clamped", func(t *testing.T) {
		got, err := ResultFromPayload(valid(), -0.2)
		require.NoError(t, err)
		assert.Equal(t, 0.0, got.Score)
	})

	for _, key := range []string{"chunk_id", "text", "source_path", "slug"} {
		t.Run("missing "+key, func(t *testing.T) {
			p := valid()
			delete(p, key)
			_, err := ResultFromPayload(p, 0.5)
			assert.True(t, errors.Is(err, ErrMalformedPayload))
		})
	}

	t.Run("wrong type", func(t *testing.T) {
		p := valid()
		p["slug"] = 42
		_, err := ResultFromPayload(p, 0.5)
		assert.ErrorIs(t, err, ErrMalformedPayload)
	})
}

func TestChunkPayloadRoundTrip(t *testing.T) {
	c := model.Chunk{
		ChunkID: "doc-003-0001", Text: "t", SourcePath: "docs/intro.md",
		Slug: "intro", Title: "Intro", Chapter: "intro", OrderIndex: 1,
	}

	got, err := ChunkFromPayload(ChunkPayload(c))
	require.NoError(t, err)
	assert.Equal(t, c, got)

	meta := map[string]any{}
	for k, v := range ChunkMetadata(c) {
		meta[k] = v
	}
	meta[KeyText] = c.Text
	got, err = ChunkFromPayload(meta)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestSortChapter(t *testing.T) {
	chunks := []model.Chunk{
		{ChunkID: "doc-002-0001"},
		{ChunkID: "doc-001-0002"},
		{ChunkID: "doc-001-0001"},
	}
	SortChapter(chunks)
	assert.Equal(t, "doc-001-0001", chunks[0].ChunkID)
	assert.Equal(t, "doc-001-0002", chunks[1].ChunkID)
	assert.Equal(t, "doc-002-0001", chunks[2].ChunkID)
}
