package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the auth endpoints under /api/auth.
func RegisterRoutes(r gin.IRouter, h Handler) {
	g := r.Group("/api/auth")
	g.POST("/sign-up", h.SignUp)
	g.POST("/sign-in", h.SignIn)
	g.GET("/session", h.Session)
	g.POST("/sign-out", h.SignOut)
}
