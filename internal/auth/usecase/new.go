package usecase

import (
	"textbook-rag/internal/auth"
	"textbook-rag/internal/auth/repository"
	"textbook-rag/pkg/encrypter"
	"textbook-rag/pkg/log"
	"textbook-rag/pkg/scope"
)

const minPasswordLength = 8

// implUseCase is the private implementation of auth.UseCase.
type implUseCase struct {
	repo   repository.Repository
	enc    encrypter.Encrypter
	tokens scope.Manager
	l      log.Logger
}

// New creates a new auth UseCase implementation.
func New(repo repository.Repository, enc encrypter.Encrypter, tokens scope.Manager, l log.Logger) auth.UseCase {
	return &implUseCase{
		repo:   repo,
		enc:    enc,
		tokens: tokens,
		l:      l,
	}
}
