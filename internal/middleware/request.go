package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"textbook-rag/pkg/log"
)

const HeaderRequestID = "X-Request-ID"

// RequestLogger tags each request with an id and logs its outcome.
func (mw Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Header(HeaderRequestID, id)
		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		ctx = c.Request.Context()
		switch {
		case status >= 500:
			mw.l.Errorf(ctx, "http: %s %s -> %d (%s) %s", c.Request.Method, c.FullPath(), status, latency, c.Errors.String())
		case status >= 400:
			mw.l.Warnf(ctx, "http: %s %s -> %d (%s)", c.Request.Method, c.FullPath(), status, latency)
		default:
			mw.l.Infof(ctx, "http: %s %s -> %d (%s)", c.Request.Method, c.FullPath(), status, latency)
		}
	}
}
