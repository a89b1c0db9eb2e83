package ingest

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"textbook-rag/internal/model"
	"textbook-rag/internal/search/repository"
	"textbook-rag/pkg/log"
)

const (
	DefaultBatchSize   = 64
	DefaultConcurrency = 4
)

var ErrNoDocuments = errors.New("no markdown documents found")

// Embedder produces document-side embeddings.
type Embedder interface {
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
}

type Config struct {
	DocsDir      string
	BatchSize    int
	Concurrency  int
	ChunkSize    int
	ChunkOverlap int
}

// Report summarises one ingestion run.
type Report struct {
	Documents int
	Chunks    int
	Batches   int
}

// Pipeline reads a docs tree, chunks it, embeds the chunks and writes them to a vector store.
type Pipeline struct {
	store    repository.Indexer
	embedder Embedder
	chunker  *Chunker
	cfg      Config
	l        log.Logger
}

func New(store repository.Indexer, embedder Embedder, cfg Config, l log.Logger) *Pipeline {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = DefaultConcurrency
	}
	return &Pipeline{
		store:    store,
		embedder: embedder,
		chunker:  NewChunker(cfg.ChunkSize, cfg.ChunkOverlap),
		cfg:      cfg,
		l:        l,
	}
}

// Discover returns the markdown files under the docs directory in sorted order.
func (p *Pipeline) Discover() ([]string, error) {
	var files []string
	err := filepath.WalkDir(p.cfg.DocsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".md", ".mdx":
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", p.cfg.DocsDir, err)
	}
	if len(files) == 0 {
		return nil, ErrNoDocuments
	}
	sort.Strings(files)
	return files, nil
}

// Plan parses and chunks every document without touching the vector store.
func (p *Pipeline) Plan(ctx context.Context) ([]Document, []model.Chunk, error) {
	files, err := p.Discover()
	if err != nil {
		return nil, nil, err
	}

	root := filepath.Base(filepath.Clean(p.cfg.DocsDir))
	docs := make([]Document, 0, len(files))
	var chunks []model.Chunk
	for i, f := range files {
		src, err := os.ReadFile(f)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", f, err)
		}
		rel, err := filepath.Rel(p.cfg.DocsDir, f)
		if err != nil {
			return nil, nil, err
		}

		doc, err := ParseDocument(filepath.ToSlash(filepath.Join(root, rel)), i+1, src)
		if err != nil {
			return nil, nil, err
		}
		docChunks, err := p.chunker.Chunk(doc)
		if err != nil {
			return nil, nil, err
		}
		p.l.Debugf(ctx, "ingest.Plan: %s -> %d chunks (slug=%s chapter=%s)", doc.Path, len(docChunks), doc.Slug, doc.Chapter)

		docs = append(docs, doc)
		chunks = append(chunks, docChunks...)
	}
	return docs, chunks, nil
}

// Run ingests the docs tree. Batches are embedded and upserted concurrently;
// the first failure cancels the rest.
func (p *Pipeline) Run(ctx context.Context) (Report, error) {
	docs, chunks, err := p.Plan(ctx)
	if err != nil {
		return Report{}, err
	}

	if err := p.store.EnsureCollection(ctx); err != nil {
		return Report{}, fmt.Errorf("ensure collection: %w", err)
	}

	batches := batch(chunks, p.cfg.BatchSize)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.cfg.Concurrency)

	for i, b := range batches {
		g.Go(func() error {
			if err := p.index(gctx, b); err != nil {
				return fmt.Errorf("batch %d/%d: %w", i+1, len(batches), err)
			}
			p.l.Infof(gctx, "ingest.Run: batch %d/%d upserted (%d chunks)", i+1, len(batches), len(b))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	return Report{Documents: len(docs), Chunks: len(chunks), Batches: len(batches)}, nil
}

func (p *Pipeline) index(ctx context.Context, chunks []model.Chunk) error {
	texts := make([]string, len(chunks))
	for i, c := range chunks {
		texts[i] = c.Text
	}

	vectors, err := p.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return fmt.Errorf("embed: %w", err)
	}
	if len(vectors) != len(chunks) {
		return fmt.Errorf("embed: got %d vectors for %d chunks", len(vectors), len(chunks))
	}
	return p.store.UpsertChunks(ctx, chunks, vectors)
}

func batch(chunks []model.Chunk, size int) [][]model.Chunk {
	var out [][]model.Chunk
	for start := 0; start < len(chunks); start += size {
		end := min(start+size, len(chunks))
		out = append(out, chunks[start:end])
	}
	return out
}
