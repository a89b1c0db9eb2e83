package usecase

import (
	"time"

	"textbook-rag/internal/chapter"
	"textbook-rag/internal/search/repository"
	"textbook-rag/pkg/llmprovider"
	"textbook-rag/pkg/log"
)

const (
	DefaultMaxContentChars = 24000

	personalizeTemperature = 0.7
	translateTemperature   = 0.3
	contentMaxTokens       = 4000
	titleMaxTokens         = 200
)

// DefaultValidSlugs are the chapters of the textbook.
var DefaultValidSlugs = []string{"intro", "chapter-1", "chapter-2", "chapter-3", "chapter-4", "chapter-5", "chapter-6"}

type implUseCase struct {
	reader   repository.ChapterReader
	llm      llmprovider.Generator
	profiles chapter.ProfileSource
	cfg      chapter.Config
	valid    map[string]bool
	l        log.Logger
	now      func() time.Time
}

// New creates the chapter UseCase. profiles may be nil when accounts are disabled.
func New(reader repository.ChapterReader, llm llmprovider.Generator, profiles chapter.ProfileSource, cfg chapter.Config, l log.Logger) chapter.UseCase {
	if cfg.MaxContentChars <= 0 {
		cfg.MaxContentChars = DefaultMaxContentChars
	}
	if len(cfg.ValidSlugs) == 0 {
		cfg.ValidSlugs = DefaultValidSlugs
	}
	valid := make(map[string]bool, len(cfg.ValidSlugs))
	for _, s := range cfg.ValidSlugs {
		valid[s] = true
	}
	return &implUseCase{
		reader:   reader,
		llm:      llm,
		profiles: profiles,
		cfg:      cfg,
		valid:    valid,
		l:        l,
		now:      time.Now,
	}
}
