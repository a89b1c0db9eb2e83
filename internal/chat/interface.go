package chat

import (
	"context"

	"textbook-rag/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Chat answers one message within a session, creating the session when needed.
	Chat(ctx context.Context, sc model.Scope, input ChatInput) (ChatOutput, error)
	// EndSession deletes a session.
	EndSession(ctx context.Context, sessionID string) error
}
