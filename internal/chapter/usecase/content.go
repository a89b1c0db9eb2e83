package usecase

import (
	"context"
	"fmt"
	"strings"

	"textbook-rag/internal/chapter"
	"textbook-rag/internal/prompt"
	"textbook-rag/pkg/llmprovider"
)

type chapterContent struct {
	title   string
	content string
	chunks  int
}

// loadChapter joins the stored chunks of slug in order and truncates the result.
func (uc *implUseCase) loadChapter(ctx context.Context, slug string) (chapterContent, error) {
	if !uc.valid[slug] {
		return chapterContent{}, fmt.Errorf("%w: must be one of %s", chapter.ErrInvalidChapter, strings.Join(uc.cfg.ValidSlugs, ", "))
	}

	chunks, err := uc.reader.ChapterChunks(ctx, slug)
	if err != nil {
		uc.l.Errorf(ctx, "chapter.usecase.loadChapter ChapterChunks %s: %v", slug, err)
		return chapterContent{}, err
	}
	if len(chunks) == 0 {
		return chapterContent{}, chapter.ErrChapterNotFound
	}

	title := chunks[0].Title
	if title == "" {
		title = "Chapter: " + slug
	}

	parts := make([]string, 0, len(chunks))
	for _, c := range chunks {
		if c.Text != "" {
			parts = append(parts, c.Text)
		}
	}

	content, truncated := prompt.Truncate(strings.Join(parts, "\n\n"), uc.cfg.MaxContentChars)
	if truncated {
		uc.l.Warnf(ctx, "chapter.usecase.loadChapter: %s truncated to %d chars", slug, uc.cfg.MaxContentChars)
	}
	uc.l.Infof(ctx, "chapter.usecase.loadChapter: %d chunks for %s", len(chunks), slug)

	return chapterContent{title: title, content: content, chunks: len(chunks)}, nil
}

func tokens(resp *llmprovider.Response) int {
	if n := resp.TokensUsed(); n != nil {
		return *n
	}
	return 0
}
