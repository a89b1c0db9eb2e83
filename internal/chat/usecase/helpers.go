package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"textbook-rag/internal/chat"
	"textbook-rag/internal/model"
	"textbook-rag/internal/search/repository"
	"textbook-rag/internal/session"
	"textbook-rag/pkg/llmprovider"
)

func (uc *implUseCase) validate(input chat.ChatInput) error {
	if strings.TrimSpace(input.Message) == "" {
		return &chat.Error{Kind: chat.KindValidation, Err: chat.ErrEmptyMessage}
	}
	if utf8.RuneCountInString(input.Message) > uc.cfg.MaxMessageLength {
		return &chat.Error{Kind: chat.KindValidation,
			Err: fmt.Errorf("%w of %d characters", chat.ErrMessageTooLong, uc.cfg.MaxMessageLength)}
	}
	if input.SessionID != "" && !session.ValidID(input.SessionID) {
		return &chat.Error{Kind: chat.KindValidation, Err: chat.ErrInvalidSessionID}
	}
	return nil
}

func (uc *implUseCase) retrievalError(ctx context.Context, sessionID, query string, err error) error {
	var kind chat.Kind
	switch {
	case errors.Is(err, repository.ErrUnavailable):
		kind = chat.KindRetrievalUnavailable
	case errors.Is(err, repository.ErrEmbedding):
		kind = chat.KindEmbeddingFailure
	case errors.Is(err, repository.ErrMalformedPayload):
		kind = chat.KindMalformedPayload
	default:
		kind = chat.KindUnexpected
	}
	uc.logFailure(ctx, kind, sessionID, query, err)
	return &chat.Error{Kind: kind, Err: err}
}

func (uc *implUseCase) generationError(ctx context.Context, sessionID, query string, err error) error {
	var kind chat.Kind
	switch llmprovider.Classify(err) {
	case llmprovider.ErrRateLimited:
		kind = chat.KindGenerationRateLimited
	case llmprovider.ErrUnreachable:
		kind = chat.KindGenerationUnreachable
	case llmprovider.ErrUpstream:
		kind = chat.KindGenerationUpstream
	default:
		kind = chat.KindUnexpected
	}
	uc.logFailure(ctx, kind, sessionID, query, err)
	return &chat.Error{Kind: kind, Err: err}
}

func (uc *implUseCase) logFailure(ctx context.Context, kind chat.Kind, sessionID, query string, err error) {
	q := truncateRunes(query, logQueryRunes)
	if kind == chat.KindUnexpected {
		uc.l.Errorf(ctx, "chat.usecase.Chat: unexpected error session=%s query=%q: %v", sessionID, q, err)
		return
	}
	uc.l.Warnf(ctx, "chat.usecase.Chat: %s session=%s query=%q: %v", kind, sessionID, q, err)
}

func toLLMMessages(msgs []model.Message) []llmprovider.Message {
	out := make([]llmprovider.Message, len(msgs))
	for i, m := range msgs {
		out[i] = llmprovider.Message{Role: string(m.Role), Content: m.Content}
	}
	return out
}

func toSources(results []model.RetrievalResult) []chat.Source {
	sources := make([]chat.Source, len(results))
	for i, r := range results {
		sources[i] = chat.Source{ChunkID: r.ChunkID, Title: r.Title, Slug: r.Slug, Score: r.Score}
	}
	return sources
}

// truncateRunes cuts s to n runes for logging.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
