package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"textbook-rag/internal/ingest"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Parse, chunk, embed and upsert the docs tree",
	RunE:  runIngest,
}

var (
	runDocsDir string
	runDryRun  bool
)

func init() {
	runCmd.Flags().StringVar(&runDocsDir, "docs", "", "Docs directory (overrides ingest.docs_dir)")
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "Parse and chunk only; print the plan without embedding")
	rootCmd.AddCommand(runCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(!runDryRun)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	cfg := ingest.Config{
		DocsDir:      e.cfg.Ingest.DocsDir,
		BatchSize:    e.cfg.Ingest.BatchSize,
		Concurrency:  e.cfg.Ingest.Concurrency,
		ChunkSize:    e.cfg.Ingest.ChunkSize,
		ChunkOverlap: e.cfg.Ingest.ChunkOverlap,
	}
	if runDocsDir != "" {
		cfg.DocsDir = runDocsDir
	}

	if runDryRun {
		p := ingest.New(nil, nil, cfg, e.l)
		docs, chunks, err := p.Plan(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, d := range docs {
			fmt.Fprintf(out, "%03d  %-40s  chapter=%s slug=%s\n", d.Number, d.Path, d.Chapter, d.Slug)
		}
		fmt.Fprintf(out, "\n%d documents, %d chunks\n", len(docs), len(chunks))
		return nil
	}

	p := ingest.New(e.repo, e.embedder, cfg, e.l)
	report, err := p.Run(ctx)
	if err != nil {
		return err
	}

	total, err := e.repo.Count(ctx)
	if err != nil {
		e.l.Warnf(ctx, "ingest.run: count after ingest: %v", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Ingested %d documents as %d chunks in %d batches (collection now holds %d points)\n",
		report.Documents, report.Chunks, report.Batches, total)
	return nil
}
