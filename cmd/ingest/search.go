package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textbook-rag/internal/search"
	"textbook-rag/internal/search/usecase"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Run a similarity query against the index",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var searchTopK int

func init() {
	searchCmd.Flags().IntVarP(&searchTopK, "top-k", "k", 5, "Number of results")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	e, err := loadEnv(true)
	if err != nil {
		return err
	}

	uc := usecase.New(e.repo, search.Limits{
		DefaultTopK:    e.cfg.Search.DefaultTopK,
		MaxTopK:        e.cfg.Search.MaxTopK,
		MaxQueryLength: e.cfg.Search.MaxQueryLength,
	}, e.l)

	out, err := uc.Search(cmd.Context(), search.SearchInput{Query: strings.Join(args, " "), TopK: &searchTopK})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(out.Results) == 0 {
		fmt.Fprintln(w, "no results")
		return nil
	}
	for i, r := range out.Results {
		fmt.Fprintf(w, "%d. [%.3f] %s (%s)\n   %s\n", i+1, r.Score, r.Title, r.SourcePath, r.Snippet)
	}
	return nil
}
