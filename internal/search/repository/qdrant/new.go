package qdrant

import (
	"textbook-rag/internal/search/repository"
	pkgLog "textbook-rag/pkg/log"
	pkgQdrant "textbook-rag/pkg/qdrant"
	"textbook-rag/pkg/voyage"
)

const scrollPageSize = 100

type implRepository struct {
	client         *pkgQdrant.Client
	embedder       voyage.IVoyage
	collectionName string
	vectorSize     int
	l              pkgLog.Logger
}

// New creates a Qdrant-backed vector store repository.
func New(client *pkgQdrant.Client, embedder voyage.IVoyage, collectionName string, vectorSize int, l pkgLog.Logger) repository.Repository {
	return &implRepository{
		client:         client,
		embedder:       embedder,
		collectionName: collectionName,
		vectorSize:     vectorSize,
		l:              l,
	}
}
