// Package backend builds the configured vector store.
package backend

import (
	"fmt"

	"textbook-rag/config"
	"textbook-rag/internal/search/repository"
	"textbook-rag/internal/search/repository/chromem"
	"textbook-rag/internal/search/repository/qdrant"
	pkgLog "textbook-rag/pkg/log"
	pkgQdrant "textbook-rag/pkg/qdrant"
	"textbook-rag/pkg/voyage"
)

// NewEmbedder returns the Voyage client shared by retrieval and ingestion.
func NewEmbedder(cfg config.VoyageConfig) (*voyage.Client, error) {
	client, err := voyage.New(cfg.APIKey)
	if err != nil {
		return nil, err
	}
	return client.WithModel(cfg.Model), nil
}

// New returns the repository selected by vector_store.backend.
func New(cfg *config.Config, embedder voyage.IVoyage, l pkgLog.Logger) (repository.Repository, error) {
	switch cfg.VectorStore.Backend {
	case config.BackendQdrant:
		var opts []pkgQdrant.Option
		if cfg.Qdrant.APIKey != "" {
			opts = append(opts, pkgQdrant.WithAPIKey(cfg.Qdrant.APIKey))
		}
		client := pkgQdrant.NewClient(cfg.Qdrant.URL, opts...)
		return qdrant.New(client, embedder, cfg.Qdrant.CollectionName, cfg.Qdrant.VectorSize, l), nil
	case config.BackendChromem:
		return chromem.New(chromem.Config{
			Path:           cfg.Chromem.Path,
			Compress:       cfg.Chromem.Compress,
			CollectionName: cfg.Qdrant.CollectionName,
			VectorSize:     cfg.Qdrant.VectorSize,
		}, embedder, l)
	default:
		return nil, fmt.Errorf("unknown vector store backend %q", cfg.VectorStore.Backend)
	}
}
