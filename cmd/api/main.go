package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"textbook-rag/config"
	_ "textbook-rag/docs" // Swagger docs
	authHTTP "textbook-rag/internal/auth/delivery/http"
	authRepo "textbook-rag/internal/auth/repository/postgre"
	authUC "textbook-rag/internal/auth/usecase"
	"textbook-rag/internal/chapter"
	chapterHTTP "textbook-rag/internal/chapter/delivery/http"
	chapterUC "textbook-rag/internal/chapter/usecase"
	"textbook-rag/internal/chat"
	chatHTTP "textbook-rag/internal/chat/delivery/http"
	chatUC "textbook-rag/internal/chat/usecase"
	"textbook-rag/internal/httpserver"
	"textbook-rag/internal/middleware"
	"textbook-rag/internal/search"
	searchHTTP "textbook-rag/internal/search/delivery/http"
	"textbook-rag/internal/search/repository/backend"
	searchUC "textbook-rag/internal/search/usecase"
	"textbook-rag/internal/session"
	"textbook-rag/pkg/encrypter"
	"textbook-rag/pkg/llmprovider"
	"textbook-rag/pkg/log"
	"textbook-rag/pkg/postgres"
	"textbook-rag/pkg/scope"
)

// @title       Textbook RAG API
// @description Retrieval-augmented chat, search, personalization and translation for the Physical AI and Humanoid Robotics textbook.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Textbook RAG API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. LLM providers
	providers, initErrs, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		os.Exit(1)
	}
	for _, e := range initErrs {
		logger.Warnf(ctx, "LLM provider skipped: %v", e)
	}
	llm := llmprovider.NewManager(providers, llmprovider.ManagerConfig(cfg.LLM), logger)
	logger.Infof(ctx, "LLM providers ready: %d", len(providers))

	// 4. Vector store
	embedder, err := backend.NewEmbedder(cfg.Voyage)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Voyage client: %v", err)
		os.Exit(1)
	}
	vectors, err := backend.New(cfg, embedder, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize vector store: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Vector store backend: %s", cfg.VectorStore.Backend)

	// 5. Accounts (optional)
	var (
		db          *sql.DB
		accounts    httpserver.Pinger
		tokens      scope.Manager
		authHandler authHTTP.Handler
		profiles    chapter.ProfileSource
	)
	if cfg.Postgres.DSN != "" {
		db, err = postgres.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
			os.Exit(1)
		}
		defer db.Close()

		tokens, err = scope.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		if err != nil {
			logger.Errorf(ctx, "Failed to initialize token manager: %v", err)
			os.Exit(1)
		}

		repo := authRepo.New(db, logger)
		if err := repo.Migrate(ctx); err != nil {
			logger.Errorf(ctx, "Failed to migrate accounts schema: %v", err)
			os.Exit(1)
		}
		uc := authUC.New(repo, encrypter.New(0), tokens, logger)
		authHandler = authHTTP.New(logger, uc, cfg.Auth)
		profiles = uc
		accounts = repo
		logger.Info(ctx, "Accounts enabled")
	} else {
		logger.Warn(ctx, "postgres.dsn is empty: accounts, stored profiles and /translate are disabled")
	}

	// 6. Domains
	sessions := session.NewStore(session.Config{MaxTurns: cfg.Session.MaxTurns, Timeout: cfg.Session.Timeout})

	chatCfg := chat.Config{
		MaxMessageLength: cfg.Chat.MaxMessageLength,
		TopK:             cfg.Chat.TopK,
		Temperature:      cfg.Chat.Temperature,
		MaxTokens:        cfg.Chat.MaxTokens,
		SlowThreshold:    cfg.Chat.SlowThreshold,
	}
	chatHandler := chatHTTP.New(logger, chatUC.New(sessions, vectors, llm, chatCfg, logger), cfg.Chat.MaxMessageLength)

	searchHandler := searchHTTP.New(logger, searchUC.New(vectors, search.Limits{
		DefaultTopK:    cfg.Search.DefaultTopK,
		MaxTopK:        cfg.Search.MaxTopK,
		MaxQueryLength: cfg.Search.MaxQueryLength,
	}, logger))

	chapterHandler := chapterHTTP.New(logger, chapterUC.New(vectors, llm, profiles, chapter.Config{
		MaxContentChars: cfg.Chapter.MaxContentChars,
		ValidSlugs:      cfg.Chapter.ValidSlugs,
	}, logger))

	// 7. HTTP Server
	srvCfg := httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware: middleware.New(logger, tokens, middleware.Config{
			CookieName: cfg.Auth.CookieName,
			CORS:       cfg.CORS,
			RateLimit:  cfg.RateLimit,
		}),
		ChatHandler:    chatHandler,
		SearchHandler:  searchHandler,
		ChapterHandler: chapterHandler,
		AuthHandler:    authHandler,
		VectorStore:    vectors,
		Postgres:       accounts,
		LLMProviders:   len(providers),
	}

	httpServer, err := httpserver.New(logger, srvCfg)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		os.Exit(1)
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		os.Exit(1)
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
