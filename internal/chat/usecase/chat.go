package usecase

import (
	"context"

	"textbook-rag/internal/chat"
	"textbook-rag/internal/model"
	"textbook-rag/internal/prompt"
	"textbook-rag/internal/search/repository"
	"textbook-rag/pkg/llmprovider"
)

// Chat runs one turn. The session is only updated after a reply is obtained,
// so a failed turn leaves no trace in its history.
func (uc *implUseCase) Chat(ctx context.Context, sc model.Scope, input chat.ChatInput) (chat.ChatOutput, error) {
	start := uc.now()

	if err := uc.validate(input); err != nil {
		return chat.ChatOutput{}, err
	}

	if n := uc.sessions.Sweep(); n > 0 {
		uc.l.Debugf(ctx, "chat.usecase.Chat: swept %d expired sessions", n)
	}

	sess, created := uc.sessions.ResolveOrCreate(input.SessionID)
	if created {
		uc.l.Infof(ctx, "chat.usecase.Chat: new session %s user=%s", sess.ID(), sc.UserID)
	}

	results, err := uc.retriever.Search(ctx, repository.SearchOptions{Query: input.Message, TopK: uc.cfg.TopK})
	if err != nil {
		return chat.ChatOutput{}, uc.retrievalError(ctx, sess.ID(), input.Message, err)
	}

	msgs := prompt.Build(input.Message, prompt.FormatContext(results), sess.History())

	resp, err := uc.llm.GenerateContent(ctx, &llmprovider.Request{
		Messages:    toLLMMessages(msgs),
		Temperature: uc.cfg.Temperature,
		MaxTokens:   uc.cfg.MaxTokens,
	})
	if err != nil {
		return chat.ChatOutput{}, uc.generationError(ctx, sess.ID(), input.Message, err)
	}

	uc.sessions.RecordExchange(sess, input.Message, resp.Content)

	elapsed := uc.now().Sub(start)
	if elapsed > uc.cfg.SlowThreshold {
		uc.l.Warnf(ctx, "chat.usecase.Chat: slow response session=%s elapsed=%s query=%q",
			sess.ID(), elapsed, truncateRunes(input.Message, logQueryRunes))
	}

	return chat.ChatOutput{
		SessionID: sess.ID(),
		Message:   resp.Content,
		Sources:   toSources(results),
		Metadata: chat.Metadata{
			ResponseTimeMS: elapsed.Milliseconds(),
			TokensUsed:     resp.TokensUsed(),
			ContextChunks:  len(results),
		},
	}, nil
}
