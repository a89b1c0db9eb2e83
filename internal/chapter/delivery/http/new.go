package http

import (
	"github.com/gin-gonic/gin"

	"textbook-rag/internal/chapter"
	"textbook-rag/pkg/log"
)

// Handler is the public interface for the chapter HTTP delivery layer.
type Handler interface {
	Personalize(c *gin.Context)
	Translate(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc chapter.UseCase
}

// New creates a new HTTP handler for the chapter domain.
func New(l log.Logger, uc chapter.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
