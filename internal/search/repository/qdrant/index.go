package qdrant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"textbook-rag/internal/model"
	"textbook-rag/internal/search/repository"
	pkgQdrant "textbook-rag/pkg/qdrant"
)

// pointNamespace derives deterministic point ids from chunk ids.
var pointNamespace = uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

// EnsureCollection creates the collection with cosine distance when missing.
func (r *implRepository) EnsureCollection(ctx context.Context) error {
	_, err := r.client.GetCollection(ctx, r.collectionName)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pkgQdrant.ErrCollectionNotFound) {
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}

	err = r.client.CreateCollection(ctx, pkgQdrant.CreateCollectionRequest{
		Name:    r.collectionName,
		Vectors: pkgQdrant.VectorConfig{Size: r.vectorSize, Distance: "Cosine"},
	})
	if err != nil {
		return fmt.Errorf("%w: create collection: %w", repository.ErrUnavailable, err)
	}
	r.l.Infof(ctx, "search/repository/qdrant.EnsureCollection: created %s (size=%d)", r.collectionName, r.vectorSize)
	return nil
}

// UpsertChunks stores chunks with their vectors. Re-ingesting a chunk id overwrites its point.
func (r *implRepository) UpsertChunks(ctx context.Context, chunks []model.Chunk, vectors [][]float32) error {
	if len(chunks) != len(vectors) {
		return fmt.Errorf("search/repository/qdrant: %d chunks but %d vectors", len(chunks), len(vectors))
	}
	if len(chunks) == 0 {
		return nil
	}

	points := make([]pkgQdrant.Point, len(chunks))
	for i, c := range chunks {
		points[i] = pkgQdrant.Point{
			ID:      chunkIDToUUID(c.ChunkID),
			Vector:  vectors[i],
			Payload: repository.ChunkPayload(c),
		}
	}

	if err := r.client.UpsertPoints(ctx, r.collectionName, pkgQdrant.UpsertPointsRequest{Points: points}); err != nil {
		r.l.Errorf(ctx, "search/repository/qdrant.UpsertChunks: %v", err)
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	return nil
}

// Count returns the number of points in the collection.
func (r *implRepository) Count(ctx context.Context) (int, error) {
	info, err := r.client.GetCollection(ctx, r.collectionName)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	return info.Result.PointsCount, nil
}

// Ping checks that Qdrant answers.
func (r *implRepository) Ping(ctx context.Context) error {
	if err := r.client.Health(ctx); err != nil {
		return fmt.Errorf("%w: %w", repository.ErrUnavailable, err)
	}
	return nil
}

// chunkIDToUUID maps a chunk id to the UUID v5 Qdrant accepts as a point id.
func chunkIDToUUID(chunkID string) string {
	return uuid.NewSHA1(pointNamespace, []byte(chunkID)).String()
}
