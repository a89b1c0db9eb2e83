package usecase

import (
	"time"

	"textbook-rag/internal/chat"
	"textbook-rag/internal/search/repository"
	"textbook-rag/internal/session"
	"textbook-rag/pkg/llmprovider"
	"textbook-rag/pkg/log"
)

const (
	DefaultMaxMessageLength = 500
	DefaultTopK             = 5
	DefaultTemperature      = 0.7
	DefaultMaxTokens        = 1000
	DefaultSlowThreshold    = 5 * time.Second

	logQueryRunes = 50
)

type implUseCase struct {
	l         log.Logger
	sessions  *session.Store
	retriever repository.Retriever
	llm       llmprovider.Generator
	cfg       chat.Config
	now       func() time.Time
}

// New creates the chat orchestrator.
func New(sessions *session.Store, retriever repository.Retriever, llm llmprovider.Generator, cfg chat.Config, l log.Logger) chat.UseCase {
	if cfg.MaxMessageLength <= 0 {
		cfg.MaxMessageLength = DefaultMaxMessageLength
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.Temperature < 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = DefaultMaxTokens
	}
	if cfg.SlowThreshold <= 0 {
		cfg.SlowThreshold = DefaultSlowThreshold
	}
	return &implUseCase{
		l:         l,
		sessions:  sessions,
		retriever: retriever,
		llm:       llm,
		cfg:       cfg,
		now:       time.Now,
	}
}
