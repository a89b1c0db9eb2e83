package middleware

import (
	"textbook-rag/config"
	"textbook-rag/pkg/log"
	"textbook-rag/pkg/scope"
)

// Config selects the behaviour of the shared HTTP middleware.
type Config struct {
	CookieName string
	CORS       config.CORSConfig
	RateLimit  config.RateLimitConfig
}

type Middleware struct {
	l          log.Logger
	tokens     scope.Manager
	cookieName string
	origins    map[string]bool
	anyOrigin  bool
	limiter    *rateLimiter
}

// New builds the middleware set. tokens may be nil when accounts are disabled;
// every request is then anonymous.
func New(l log.Logger, tokens scope.Manager, cfg Config) Middleware {
	mw := Middleware{
		l:          l,
		tokens:     tokens,
		cookieName: cfg.CookieName,
		origins:    make(map[string]bool, len(cfg.CORS.AllowedOrigins)),
		limiter:    newRateLimiter(cfg.RateLimit),
	}
	if mw.cookieName == "" {
		mw.cookieName = "session_token"
	}
	for _, o := range cfg.CORS.AllowedOrigins {
		if o == "*" {
			mw.anyOrigin = true
			continue
		}
		mw.origins[o] = true
	}
	return mw
}
