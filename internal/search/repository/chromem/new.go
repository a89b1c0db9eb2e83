// Package chromem is an embedded, file-persisted vector store backend for
// single-node deployments and local development.
package chromem

import (
	"context"
	"fmt"
	"sync"

	chromemgo "github.com/philippgille/chromem-go"

	"textbook-rag/internal/search/repository"
	pkgLog "textbook-rag/pkg/log"
	"textbook-rag/pkg/voyage"
)

type implRepository struct {
	mu         sync.RWMutex
	col        *chromemgo.Collection
	embedder   voyage.IVoyage
	vectorSize int
	l          pkgLog.Logger
}

// Config locates the on-disk database.
type Config struct {
	Path           string
	Compress       bool
	CollectionName string
	VectorSize     int
}

// New opens (or creates) the persistent database and its collection.
func New(cfg Config, embedder voyage.IVoyage, l pkgLog.Logger) (repository.Repository, error) {
	db, err := chromemgo.NewPersistentDB(cfg.Path, cfg.Compress)
	if err != nil {
		return nil, fmt.Errorf("search/repository/chromem: open %s: %w", cfg.Path, err)
	}
	return newWithDB(db, cfg, embedder, l)
}

func newWithDB(db *chromemgo.DB, cfg Config, embedder voyage.IVoyage, l pkgLog.Logger) (repository.Repository, error) {
	r := &implRepository{embedder: embedder, vectorSize: cfg.VectorSize, l: l}
	col, err := db.GetOrCreateCollection(cfg.CollectionName, nil, r.embedDocument)
	if err != nil {
		return nil, fmt.Errorf("search/repository/chromem: collection %s: %w", cfg.CollectionName, err)
	}
	r.col = col
	return r, nil
}

// embedDocument is only called by chromem for documents added without a vector.
func (r *implRepository) embedDocument(ctx context.Context, text string) ([]float32, error) {
	vectors, err := r.embedder.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, err
	}
	return vectors[0], nil
}
