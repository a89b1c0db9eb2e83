package repository

import (
	"context"

	"textbook-rag/internal/model"
)

// Retriever embeds a query and returns the nearest chunks in descending score order.
type Retriever interface {
	Search(ctx context.Context, opt SearchOptions) ([]model.RetrievalResult, error)
}

// ChapterReader returns every stored chunk of one chapter, ordered by chunk id.
type ChapterReader interface {
	ChapterChunks(ctx context.Context, chapter string) ([]model.Chunk, error)
}

// Indexer writes chunks with precomputed document embeddings.
type Indexer interface {
	EnsureCollection(ctx context.Context) error
	UpsertChunks(ctx context.Context, chunks []model.Chunk, vectors [][]float32) error
	Count(ctx context.Context) (int, error)
}

// Repository is the composed interface of a vector store backend.
type Repository interface {
	Retriever
	ChapterReader
	Indexer
	Ping(ctx context.Context) error
}
