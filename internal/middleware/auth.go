package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"textbook-rag/pkg/log"
	"textbook-rag/pkg/response"
	"textbook-rag/pkg/scope"
)

// Identify resolves the caller from the session cookie or a Bearer token.
// Missing or invalid credentials leave the request anonymous.
func (mw Middleware) Identify() gin.HandlerFunc {
	return func(c *gin.Context) {
		if mw.tokens == nil {
			c.Next()
			return
		}

		token := mw.token(c)
		if token == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		sc, err := mw.tokens.Verify(token)
		if err != nil {
			mw.l.Debugf(ctx, "middleware.Identify: %v", err)
			c.Next()
			return
		}

		ctx = log.WithUserID(scope.SetScopeToContext(ctx, sc), sc.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// Auth rejects anonymous requests. It must run after Identify.
func (mw Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !scope.GetScopeFromContext(c.Request.Context()).Authenticated() {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

func (mw Middleware) token(c *gin.Context) string {
	if h := c.GetHeader("Authorization"); h != "" {
		if rest, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(rest)
		}
	}
	if v, err := c.Cookie(mw.cookieName); err == nil {
		return v
	}
	return ""
}
