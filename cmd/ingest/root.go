package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"textbook-rag/config"
	"textbook-rag/internal/search/repository"
	"textbook-rag/internal/search/repository/backend"
	"textbook-rag/pkg/log"
	"textbook-rag/pkg/voyage"
)

var rootCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Index the textbook into the vector store",
	Long: `ingest walks the docs tree, splits every markdown page into chunks,
embeds them with Voyage and upserts them into the configured vector store.`,
	SilenceUsage: true,
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// env holds what every subcommand needs.
type env struct {
	cfg      *config.Config
	l        log.Logger
	embedder *voyage.Client
	repo     repository.Repository
}

func loadEnv(withStore bool) (*env, error) {
	cfg, err := config.LoadForIngest()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	e := &env{
		cfg: cfg,
		l: log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		}),
	}
	if !withStore {
		return e, nil
	}

	e.embedder, err = backend.NewEmbedder(cfg.Voyage)
	if err != nil {
		return nil, fmt.Errorf("voyage: %w", err)
	}
	e.repo, err = backend.New(cfg, e.embedder, e.l)
	if err != nil {
		return nil, err
	}
	return e, nil
}
