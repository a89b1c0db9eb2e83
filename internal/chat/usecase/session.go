package usecase

import (
	"context"

	"textbook-rag/internal/chat"
	"textbook-rag/internal/session"
)

// EndSession deletes a live session.
func (uc *implUseCase) EndSession(ctx context.Context, sessionID string) error {
	if !session.ValidID(sessionID) {
		return &chat.Error{Kind: chat.KindValidation, Err: chat.ErrInvalidSessionID}
	}
	if !uc.sessions.Delete(sessionID) {
		return &chat.Error{Kind: chat.KindSessionNotFound, Err: chat.ErrSessionNotFound}
	}
	uc.l.Infof(ctx, "chat.usecase.EndSession: ended session %s", sessionID)
	return nil
}
