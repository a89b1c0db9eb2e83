package http

import (
	"textbook-rag/internal/model"
	"textbook-rag/internal/search"
)

type searchReq struct {
	Query string `json:"query" example:"What sensors do humanoid robots use?"`
	TopK  *int   `json:"top_k,omitempty" example:"5"`
}

func (r searchReq) toInput() search.SearchInput {
	return search.SearchInput{Query: r.Query, TopK: r.TopK}
}

type resultResp struct {
	ChunkID    string  `json:"chunk_id"`
	Snippet    string  `json:"snippet"`
	SourcePath string  `json:"source_path"`
	Slug       string  `json:"slug"`
	Title      string  `json:"title,omitempty"`
	Score      float64 `json:"score"`
}

type searchResp struct {
	Query   string       `json:"query"`
	Results []resultResp `json:"results"`
}

func newResultResp(r model.RetrievalResult) resultResp {
	return resultResp{
		ChunkID:    r.ChunkID,
		Snippet:    r.Snippet,
		SourcePath: r.SourcePath,
		Slug:       r.Slug,
		Title:      r.Title,
		Score:      r.Score,
	}
}

func (h *handler) newSearchResp(out search.SearchOutput) searchResp {
	results := make([]resultResp, len(out.Results))
	for i, r := range out.Results {
		results[i] = newResultResp(r)
	}
	return searchResp{Query: out.Query, Results: results}
}
