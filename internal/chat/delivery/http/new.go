package http

import (
	"github.com/gin-gonic/gin"

	"textbook-rag/internal/chat"
	"textbook-rag/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	EndSession(c *gin.Context)
}

type handler struct {
	l                log.Logger
	uc               chat.UseCase
	maxMessageLength int
}

// New creates a new HTTP handler for the chat domain. maxMessageLength is only
// used to render the validation message.
func New(l log.Logger, uc chat.UseCase, maxMessageLength int) Handler {
	return &handler{l: l, uc: uc, maxMessageLength: maxMessageLength}
}
