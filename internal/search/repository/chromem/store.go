package chromem

import (
	"context"
	"fmt"
	"runtime"

	chromemgo "github.com/philippgille/chromem-go"

	"textbook-rag/internal/model"
	"textbook-rag/internal/search/repository"
)

// Search embeds the query and ranks the collection by cosine similarity.
func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.RetrievalResult, error) {
	vectors, err := r.embedder.Embed(ctx, []string{opt.Query})
	if err != nil {
		r.l.Errorf(ctx, "search/repository/chromem.Search: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrEmbedding, err)
	}
	if len(vectors) == 0 {
		r.l.Errorf(ctx, "search/repository/chromem.Search: embedder returned no vectors")
		return nil, fmt.Errorf("%w: embedder returned no vectors", repository.ErrEmbedding)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	n := min(opt.TopK, r.col.Count())
	if n <= 0 {
		return nil, nil
	}

	docs, err := r.col.QueryEmbedding(ctx, vectors[0], n, nil, nil)
	if err != nil {
		r.l.Errorf(ctx, "search/repository/chromem.Search: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}

	results := make([]model.RetrievalResult, 0, len(docs))
	for _, d := range docs {
		res, err := repository.ResultFromPayload(documentPayload(d), float64(d.Similarity))
		if err != nil {
			r.l.Errorf(ctx, "search/repository/chromem.Search: document %s: %v", d.ID, err)
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// ChapterChunks returns all documents whose chapter metadata equals chapter.
func (r *implRepository) ChapterChunks(ctx context.Context, chapter string) ([]model.Chunk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := r.col.Count()
	if total == 0 || r.vectorSize <= 0 {
		return nil, nil
	}

	// Any unit vector works: the filter selects, the ranking is discarded.
	probe := make([]float32, r.vectorSize)
	probe[0] = 1

	where := map[string]string{repository.KeyChapter: chapter}
	docs, err := r.col.QueryEmbedding(ctx, probe, total, where, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}

	chunks := make([]model.Chunk, 0, len(docs))
	for _, d := range docs {
		c, err := repository.ChunkFromPayload(documentPayload(d))
		if err != nil {
			return nil, err
		}
		chunks = append(chunks, c)
	}
	repository.SortChapter(chunks)
	return chunks, nil
}

// EnsureCollection is a no-op: the collection is created when the store opens.
func (r *implRepository) EnsureCollection(ctx context.Context) error {
	return nil
}

// UpsertChunks adds documents with their precomputed vectors, replacing existing ids.
func (r *implRepository) UpsertChunks(ctx context.Context, chunks []model.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("search/repository/chromem: %d chunks but %d vectors", len(chunks), len(vectors))
	}

	docs := make([]chromemgo.Document, len(chunks))
	for i, c := range chunks {
		docs[i] = chromemgo.Document{
			ID:        c.ChunkID,
			Content:   c.Text,
			Metadata:  repository.ChunkMetadata(c),
			Embedding: vectors[i],
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.col.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		r.l.Errorf(ctx, "search/repository/chromem.UpsertChunks: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	return nil
}

// Count returns the number of stored documents.
func (r *implRepository) Count(ctx context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.col.Count(), nil
}

// Ping always succeeds for the embedded store.
func (r *implRepository) Ping(ctx context.Context) error {
	return nil
}

// documentPayload merges string metadata with the document text.
func documentPayload(d chromemgo.Result) map[string]any {
	p := make(map[string]any, len(d.Metadata)+1)
	for k, v := range d.Metadata {
		p[k] = v
	}
	p[repository.KeyText] = d.Content
	return p
}
