package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chat endpoints. mw runs before Chat only.
func RegisterRoutes(r gin.IRoutes, h Handler, mw ...gin.HandlerFunc) {
	r.POST("/chat", append(mw, h.Chat)...)
	r.DELETE("/chat/sessions/:session_id", h.EndSession)
}
