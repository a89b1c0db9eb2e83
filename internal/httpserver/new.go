package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	authHTTP "textbook-rag/internal/auth/delivery/http"
	chapterHTTP "textbook-rag/internal/chapter/delivery/http"
	chatHTTP "textbook-rag/internal/chat/delivery/http"
	"textbook-rag/internal/middleware"
	searchHTTP "textbook-rag/internal/search/delivery/http"
	"textbook-rag/pkg/log"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	chatHandler    chatHTTP.Handler
	searchHandler  searchHTTP.Handler
	chapterHandler chapterHTTP.Handler
	authHandler    authHTTP.Handler

	// Health
	vectorStore  Pinger
	postgres     Pinger
	llmProviders int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	ChatHandler    chatHTTP.Handler
	SearchHandler  searchHTTP.Handler
	ChapterHandler chapterHTTP.Handler
	// AuthHandler is nil when accounts are disabled.
	AuthHandler authHTTP.Handler

	VectorStore Pinger
	// Postgres is nil when accounts are disabled.
	Postgres     Pinger
	LLMProviders int
}

// New creates a new HTTPServer instance with every route mapped.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		chatHandler:    cfg.ChatHandler,
		searchHandler:  cfg.SearchHandler,
		chapterHandler: cfg.ChapterHandler,
		authHandler:    cfg.AuthHandler,
		vectorStore:    cfg.VectorStore,
		postgres:       cfg.Postgres,
		llmProviders:   cfg.LLMProviders,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() *gin.Engine {
	return srv.gin
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil || srv.searchHandler == nil || srv.chapterHandler == nil {
		return errors.New("chat, search and chapter handlers are required")
	}
	if srv.vectorStore == nil {
		return errors.New("vector store is required")
	}
	return nil
}
