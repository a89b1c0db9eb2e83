package qdrant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"textbook-rag/internal/model"
	"textbook-rag/internal/search/repository"
	"textbook-rag/internal/search/repository/qdrant"
	"textbook-rag/pkg/log"
	pkgQdrant "textbook-rag/pkg/qdrant"
	"textbook-rag/pkg/voyage"
)

func newVoyage(t *testing.T) *voyage.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req voyage.EmbedRequest
		json.NewDecoder(r.Body).Decode(&req)
		if len(req.Input) > 0 && strings.Contains(req.Input[0], "error_embed") {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		resp := voyage.EmbedResponse{}
		for i := range req.Input {
			resp.Data = append(resp.Data, voyage.EmbeddingData{Index: i, Embedding: []float32{0.1, 0.2, 0.3}})
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)

	c, err := voyage.New("test-key")
	if err != nil {
		t.Fatal(err)
	}
	return c.WithBaseURL(srv.URL)
}

func payload(id, chapter string, order int) map[string]any {
	return map[string]any{
		"chunk_id":    id,
		"text":        "text of " + id,
		"source_path": "docs/" + chapter + "/page.md",
		"slug":        chapter + "-page",
		"title":       "Page",
		"chapter":     chapter,
		"order_index": order,
	}
}

func TestSearch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/collections/book_vectors/points/search", func(w http.ResponseWriter, r *http.Request) {
		var req pkgQdrant.SearchRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Limit != 2 || !req.WithPayload {
			t.Errorf("unexpected search request %+v", req)
		}
		json.NewEncoder(w).Encode(pkgQdrant.SearchResponse{Result: []pkgQdrant.ScoredPoint{
			{ID: "u1", Score: 0.91, Payload: payload("doc-001-0001", "chapter-1", 1)},
			{ID: "u2", Score: 0.72, Payload: payload("doc-002-0004", "chapter-2", 4)},
		}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	repo := qdrant.New(pkgQdrant.NewClient(srv.URL), newVoyage(t), "book_vectors", 3, log.NewNop())

	results, err := repo.Search(context.Background(), repository.SearchOptions{Query: "what is a humanoid", TopK: 2})
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
	if results[0].ChunkID != "doc-001-0001" || results[0].Score != 0.91 || results[1].ChunkID != "doc-002-0004" {
		t.Errorf("results out of store order: %+v", results)
	}
}

func TestSearchErrors(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name:    "embedding failure",
			query:   "error_embed",
			handler: func(w http.ResponseWriter, r *http.Request) {},
			wantErr: repository.ErrEmbedding,
		},
		{
			name:  "store failure",
			query: "ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: repository.ErrUnavailable,
		},
		{
			name:  "malformed payload",
			query: "ok",
			handler: func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(pkgQdrant.SearchResponse{Result: []pkgQdrant.ScoredPoint{
					{ID: "u1", Score: 0.5, Payload: map[string]any{"text": "no ids"}},
				}})
			},
			wantErr: repository.ErrMalformedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			repo := qdrant.New(pkgQdrant.NewClient(srv.URL), newVoyage(t), "book_vectors", 3, log.NewNop())

			_, err := repo.Search(context.Background(), repository.SearchOptions{Query: tt.query, TopK: 5})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Search() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

type stubEmbedder struct {
	vectors [][]float32
	err     error
}

func (s stubEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	return s.vectors, s.err
}

func (s stubEmbedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	return s.vectors, s.err
}

func TestSearchEmbeddingErrorDetail(t *testing.T) {
	cause := errors.New("voyage: 401 unauthorized")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("store must not be queried without a query vector")
	}))
	defer srv.Close()

	repo := qdrant.New(pkgQdrant.NewClient(srv.URL), stubEmbedder{err: cause}, "book_vectors", 3, log.NewNop())
	_, err := repo.Search(context.Background(), repository.SearchOptions{Query: "q", TopK: 5})
	if !errors.Is(err, repository.ErrEmbedding) || !errors.Is(err, cause) {
		t.Errorf("Search() error = %v, want ErrEmbedding wrapping %v", err, cause)
	}

	repo = qdrant.New(pkgQdrant.NewClient(srv.URL), stubEmbedder{}, "book_vectors", 3, log.NewNop())
	_, err = repo.Search(context.Background(), repository.SearchOptions{Query: "q", TopK: 5})
	if !errors.Is(err, repository.ErrEmbedding) {
		t.Fatalf("Search() error = %v, want ErrEmbedding", err)
	}
	if strings.Contains(err.Error(), "<nil>") || !strings.Contains(err.Error(), "no vectors") {
		t.Errorf("Search() error = %q, want a no-vectors message", err.Error())
	}
}

func TestSearchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	repo := qdrant.New(pkgQdrant.NewClient(url), newVoyage(t), "book_vectors", 3, log.NewNop())
	_, err := repo.Search(context.Background(), repository.SearchOptions{Query: "q", TopK: 5})
	if !errors.Is(err, repository.ErrUnavailable) {
		t.Errorf("expected ErrUnavailable, got %v", err)
	}
}

func TestChapterChunksPaginates(t *testing.T) {
	calls := 0
	mux := http.NewServeMux()
	mux.HandleFunc("/collections/book_vectors/points/scroll", func(w http.ResponseWriter, r *http.Request) {
		var req pkgQdrant.ScrollRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Filter == nil || req.Filter.Must[0].Key != "chapter" || req.Filter.Must[0].Match.Value != "chapter-1" {
			t.Errorf("unexpected filter %+v", req.Filter)
		}
		calls++
		var resp pkgQdrant.ScrollResponse
		if req.Offset == nil {
			resp.Result.Points = []pkgQdrant.Record{{ID: "a", Payload: payload("doc-001-0002", "chapter-1", 2)}}
			resp.Result.NextPageOffset = "b"
		} else {
			resp.Result.Points = []pkgQdrant.Record{{ID: "b", Payload: payload("doc-001-0001", "chapter-1", 1)}}
		}
		json.NewEncoder(w).Encode(resp)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	repo := qdrant.New(pkgQdrant.NewClient(srv.URL), newVoyage(t), "book_vectors", 3, log.NewNop())
	chunks, err := repo.ChapterChunks(context.Background(), "chapter-1")
	if err != nil {
		t.Fatalf("ChapterChunks() error = %v", err)
	}
	if calls != 2 {
		t.Errorf("scroll calls = %d, want 2", calls)
	}
	if len(chunks) != 2 || chunks[0].ChunkID != "doc-001-0001" || chunks[1].ChunkID != "doc-001-0002" {
		t.Errorf("chunks not ordered: %+v", chunks)
	}
}

func TestEnsureCollectionAndUpsert(t *testing.T) {
	var created pkgQdrant.VectorConfig
	var upserted pkgQdrant.UpsertPointsRequest
	mux := http.NewServeMux()
	mux.HandleFunc("/collections/book_vectors", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.WriteHeader(http.StatusNotFound)
		case http.MethodPut:
			var req pkgQdrant.CreateCollectionRequest
			json.NewDecoder(r.Body).Decode(&req)
			created = req.Vectors
			w.Write([]byte(`{"result":true}`))
		}
	})
	mux.HandleFunc("/collections/book_vectors/points", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&upserted)
		w.Write([]byte(`{"result":{}}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	repo := qdrant.New(pkgQdrant.NewClient(srv.URL), newVoyage(t), "book_vectors", 1024, log.NewNop())
	ctx := context.Background()

	if err := repo.EnsureCollection(ctx); err != nil {
		t.Fatalf("EnsureCollection() error = %v", err)
	}
	if created.Size != 1024 || created.Distance != "Cosine" {
		t.Errorf("created = %+v", created)
	}

	chunks := []model.Chunk{{ChunkID: "doc-001-0001", Text: "t", SourcePath: "docs/intro.md", Slug: "intro", Chapter: "intro", OrderIndex: 1}}
	if err := repo.UpsertChunks(ctx, chunks, [][]float32{{1, 0, 0}}); err != nil {
		t.Fatalf("UpsertChunks() error = %v", err)
	}
	if len(upserted.Points) != 1 {
		t.Fatalf("points = %d", len(upserted.Points))
	}
	id, _ := upserted.Points[0].ID.(string)
	if len(id) != 36 || upserted.Points[0].Payload["chunk_id"] != "doc-001-0001" {
		t.Errorf("unexpected point %+v", upserted.Points[0])
	}

	if err := repo.UpsertChunks(ctx, chunks, nil); err == nil {
		t.Error("expected length mismatch error")
	}
}
