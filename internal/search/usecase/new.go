package usecase

import (
	"textbook-rag/internal/search"
	"textbook-rag/internal/search/repository"
	"textbook-rag/pkg/log"
)

type implUseCase struct {
	retriever repository.Retriever
	limits    search.Limits
	l         log.Logger
}

// New creates the search UseCase.
func New(retriever repository.Retriever, limits search.Limits, l log.Logger) search.UseCase {
	if limits.DefaultTopK <= 0 {
		limits.DefaultTopK = 5
	}
	if limits.MaxTopK <= 0 {
		limits.MaxTopK = 20
	}
	if limits.MaxQueryLength <= 0 {
		limits.MaxQueryLength = 500
	}
	return &implUseCase{retriever: retriever, limits: limits, l: l}
}
