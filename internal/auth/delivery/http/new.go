package http

import (
	"github.com/gin-gonic/gin"

	"textbook-rag/config"
	"textbook-rag/internal/auth"
	"textbook-rag/pkg/log"
)

// Handler is the public interface for the auth HTTP delivery layer.
type Handler interface {
	SignUp(c *gin.Context)
	SignIn(c *gin.Context)
	Session(c *gin.Context)
	SignOut(c *gin.Context)
}

type handler struct {
	l      log.Logger
	uc     auth.UseCase
	cookie config.AuthConfig
}

// New creates a new HTTP handler for the auth domain.
func New(l log.Logger, uc auth.UseCase, cookie config.AuthConfig) Handler {
	return &handler{l: l, uc: uc, cookie: cookie}
}
