package ingest

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textbook-rag/internal/model"
	"textbook-rag/pkg/log"
)

type fakeStore struct {
	mu       sync.Mutex
	ensured  bool
	upserted []model.Chunk
	err      error
}

func (s *fakeStore) EnsureCollection(ctx context.Context) error {
	s.ensured = true
	return nil
}

func (s *fakeStore) UpsertChunks(ctx context.Context, chunks []model.Chunk, vectors [][]float32) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return s.err
	}
	s.upserted = append(s.upserted, chunks...)
	return nil
}

func (s *fakeStore) Count(ctx context.Context) (int, error) {
	return len(s.upserted), nil
}

type fakeEmbedder struct {
	short bool
}

func (e fakeEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	n := len(texts)
	if e.short {
		n--
	}
	out := make([][]float32, n)
	for i := range out {
		out[i] = []float32{1, 0, 0}
	}
	return out, nil
}

func writeDocs(t *testing.T) string {
	t.Helper()
	root := filepath.Join(t.TempDir(), "docs")
	files := map[string]string{
		"intro.md":               "---\ntitle: Welcome\n---\nIntro text.",
		"chapter-1/sensors.md":   "# Sensors\n\nLidar and cameras.",
		"chapter-1/actuators.md": "# Actuators\n\nMotors and gears.",
		"chapter-1/notes.txt":    "ignored",
	}
	for name, body := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	}
	return root
}

func TestPipelinePlan(t *testing.T) {
	p := New(&fakeStore{}, fakeEmbedder{}, Config{DocsDir: writeDocs(t)}, log.NewNop())

	docs, chunks, err := p.Plan(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 3)

	// sorted: chapter-1/actuators, chapter-1/sensors, intro
	assert.Equal(t, "docs/chapter-1/actuators.md", docs[0].Path)
	assert.Equal(t, "docs/intro.md", docs[2].Path)
	assert.Equal(t, "Welcome", docs[2].Title)

	require.Len(t, chunks, 3)
	assert.Equal(t, "doc-001-0001", chunks[0].ChunkID)
	assert.Equal(t, "chapter-1", chunks[1].Chapter)
	assert.Equal(t, "doc-003-0001", chunks[2].ChunkID)
	assert.Equal(t, "intro", chunks[2].Chapter)
}

func TestPipelineRun(t *testing.T) {
	store := &fakeStore{}
	p := New(store, fakeEmbedder{}, Config{DocsDir: writeDocs(t), BatchSize: 2, Concurrency: 2}, log.NewNop())

	report, err := p.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Report{Documents: 3, Chunks: 3, Batches: 2}, report)
	assert.True(t, store.ensured)

	ids := make([]string, len(store.upserted))
	for i, c := range store.upserted {
		ids[i] = c.ChunkID
	}
	sort.Strings(ids)
	assert.Equal(t, []string{"doc-001-0001", "doc-002-0001", "doc-003-0001"}, ids)
}

func TestPipelineRun_Errors(t *testing.T) {
	dir := writeDocs(t)

	_, err := New(&fakeStore{}, fakeEmbedder{short: true}, Config{DocsDir: dir}, log.NewNop()).Run(context.Background())
	assert.ErrorContains(t, err, "vectors")

	boom := errors.New("store down")
	_, err = New(&fakeStore{err: boom}, fakeEmbedder{}, Config{DocsDir: dir}, log.NewNop()).Run(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = New(&fakeStore{}, fakeEmbedder{}, Config{DocsDir: t.TempDir()}, log.NewNop()).Run(context.Background())
	assert.ErrorIs(t, err, ErrNoDocuments)
}

func TestBatch(t *testing.T) {
	chunks := make([]model.Chunk, 5)
	b := batch(chunks, 2)
	require.Len(t, b, 3)
	assert.Len(t, b[2], 1)
	assert.Empty(t, batch(nil, 2))
}
