package usecase

import (
	"context"
	"fmt"
	"strings"

	"textbook-rag/internal/chapter"
	"textbook-rag/internal/model"
	"textbook-rag/internal/prompt"
	"textbook-rag/pkg/llmprovider"
)

// Translate renders a chapter in Urdu for an authenticated reader.
func (uc *implUseCase) Translate(ctx context.Context, sc model.Scope, input chapter.TranslateInput) (chapter.TranslateOutput, error) {
	start := uc.now()

	if !sc.Authenticated() {
		return chapter.TranslateOutput{}, chapter.ErrUnauthenticated
	}

	ch, err := uc.loadChapter(ctx, input.ChapterID)
	if err != nil {
		return chapter.TranslateOutput{}, err
	}

	title, titleTokens := uc.translateTitle(ctx, ch.title)

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    toLLMMessages(prompt.Translation(ch.content)),
		Temperature: translateTemperature,
		MaxTokens:   contentMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chapter.usecase.Translate GenerateContent %s: %v", input.ChapterID, err)
		return chapter.TranslateOutput{}, fmt.Errorf("%w: %w", chapter.ErrGenerationFailed, err)
	}

	now := uc.now()
	out := chapter.TranslateOutput{
		ChapterID:         input.ChapterID,
		OriginalTitle:     ch.title,
		TranslatedTitle:   title,
		TranslatedContent: resp.Content,
		SourceLanguage:    chapter.SourceLanguage,
		TargetLanguage:    chapter.TargetLanguage,
		TranslatedAt:      now.UTC(),
		ProcessingTimeMS:  now.Sub(start).Milliseconds(),
		TokensUsed:        tokens(resp) + titleTokens,
		UserID:            sc.UserID,
	}
	uc.l.Infof(ctx, "chapter.usecase.Translate: %s for %s in %dms", out.ChapterID, out.UserID, out.ProcessingTimeMS)
	return out, nil
}

// translateTitle falls back to the English title when generation fails.
func (uc *implUseCase) translateTitle(ctx context.Context, title string) (string, int) {
	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    toLLMMessages(prompt.TitleTranslation(title)),
		Temperature: translateTemperature,
		MaxTokens:   titleMaxTokens,
	})
	if err != nil {
		uc.l.Warnf(ctx, "chapter.usecase.translateTitle: %v", err)
		return title, 0
	}
	translated := strings.TrimSpace(resp.Content)
	if translated == "" {
		return title, tokens(resp)
	}
	return translated, tokens(resp)
}
