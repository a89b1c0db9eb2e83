package qdrant

import (
	"context"
	"fmt"

	"textbook-rag/internal/model"
	"textbook-rag/internal/search/repository"
	pkgQdrant "textbook-rag/pkg/qdrant"
)

// Search embeds the query and returns the top-k chunks as ranked by Qdrant.
func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) ([]model.RetrievalResult, error) {
	vectors, err := r.embedder.Embed(ctx, []string{opt.Query})
	if err != nil {
		r.l.Errorf(ctx, "search/repository/qdrant.Search: failed to generate query embedding: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrEmbedding, err)
	}
	if len(vectors) == 0 {
		r.l.Errorf(ctx, "search/repository/qdrant.Search: embedder returned no vectors")
		return nil, fmt.Errorf("%w: embedder returned no vectors", repository.ErrEmbedding)
	}

	resp, err := r.client.SearchPoints(ctx, r.collectionName, pkgQdrant.SearchRequest{
		Vector:      vectors[0],
		Limit:       opt.TopK,
		WithPayload: true,
	})
	if err != nil {
		r.l.Errorf(ctx, "search/repository/qdrant.Search: failed to search: %v", err)
		return nil, fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}

	results := make([]model.RetrievalResult, 0, len(resp.Result))
	for _, scored := range resp.Result {
		res, err := repository.ResultFromPayload(scored.Payload, scored.Score)
		if err != nil {
			r.l.Errorf(ctx, "search/repository/qdrant.Search: point %v: %v", scored.ID, err)
			return nil, err
		}
		results = append(results, res)
	}

	r.l.Debugf(ctx, "search/repository/qdrant.Search: found %d results", len(results))
	return results, nil
}

// ChapterChunks scrolls every point whose chapter payload equals chapter.
func (r *implRepository) ChapterChunks(ctx context.Context, chapter string) ([]model.Chunk, error) {
	req := pkgQdrant.ScrollRequest{
		Limit:       scrollPageSize,
		WithPayload: true,
		Filter: &pkgQdrant.Filter{
			Must: []pkgQdrant.Condition{{Key: repository.KeyChapter, Match: pkgQdrant.Match{Value: chapter}}},
		},
	}

	var chunks []model.Chunk
	for {
		resp, err := r.client.Scroll(ctx, r.collectionName, req)
		if err != nil {
			r.l.Errorf(ctx, "search/repository/qdrant.ChapterChunks: %v", err)
			return nil, fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
		}
		for _, rec := range resp.Result.Points {
			c, err := repository.ChunkFromPayload(rec.Payload)
			if err != nil {
				r.l.Errorf(ctx, "search/repository/qdrant.ChapterChunks: point %v: %v", rec.ID, err)
				return nil, err
			}
			chunks = append(chunks, c)
		}
		if resp.Result.NextPageOffset == nil {
			break
		}
		req.Offset = resp.Result.NextPageOffset
	}

	repository.SortChapter(chunks)
	return chunks, nil
}
