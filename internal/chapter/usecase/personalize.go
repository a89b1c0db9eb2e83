package usecase

import (
	"context"
	"fmt"

	"textbook-rag/internal/chapter"
	"textbook-rag/internal/model"
	"textbook-rag/internal/prompt"
	"textbook-rag/pkg/llmprovider"
)

// Personalize adapts a chapter to the reader's profile.
func (uc *implUseCase) Personalize(ctx context.Context, sc model.Scope, input chapter.PersonalizeInput) (chapter.PersonalizeOutput, error) {
	start := uc.now()

	profile, err := uc.resolveProfile(ctx, sc, input.Profile)
	if err != nil {
		return chapter.PersonalizeOutput{}, err
	}

	ch, err := uc.loadChapter(ctx, input.ChapterSlug)
	if err != nil {
		return chapter.PersonalizeOutput{}, err
	}

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    toLLMMessages(prompt.Personalization(profile, ch.content)),
		Temperature: personalizeTemperature,
		MaxTokens:   contentMaxTokens,
	})
	if err != nil {
		uc.l.Errorf(ctx, "chapter.usecase.Personalize GenerateContent %s: %v", input.ChapterSlug, err)
		return chapter.PersonalizeOutput{}, fmt.Errorf("%w: %w", chapter.ErrGenerationFailed, err)
	}

	out := chapter.PersonalizeOutput{
		ChapterSlug:         input.ChapterSlug,
		OriginalTitle:       ch.title,
		PersonalizedContent: resp.Content,
		ProcessingTimeMS:    uc.now().Sub(start).Milliseconds(),
		TokensUsed:          tokens(resp),
		ProfileSummary:      prompt.ProfileSummary(profile),
	}
	uc.l.Infof(ctx, "chapter.usecase.Personalize: %s in %dms, %d tokens", out.ChapterSlug, out.ProcessingTimeMS, out.TokensUsed)
	return out, nil
}

// resolveProfile prefers the profile in the request and falls back to the
// stored one for an authenticated caller.
func (uc *implUseCase) resolveProfile(ctx context.Context, sc model.Scope, p *model.UserProfile) (model.UserProfile, error) {
	if p != nil {
		if err := p.Validate(); err != nil {
			return model.UserProfile{}, err
		}
		return *p, nil
	}
	if !sc.Authenticated() || uc.profiles == nil {
		return model.UserProfile{}, chapter.ErrProfileRequired
	}

	stored, err := uc.profiles.Profile(ctx, sc.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "chapter.usecase.resolveProfile %s: %v", sc.UserID, err)
		return model.UserProfile{}, chapter.ErrProfileRequired
	}
	if err := stored.Validate(); err != nil {
		return model.UserProfile{}, chapter.ErrProfileRequired
	}
	return stored, nil
}

func toLLMMessages(msgs []model.Message) []llmprovider.Message {
	out := make([]llmprovider.Message, len(msgs))
	for i, m := range msgs {
		out[i] = llmprovider.Message{Role: string(m.Role), Content: m.Content}
	}
	return out
}
