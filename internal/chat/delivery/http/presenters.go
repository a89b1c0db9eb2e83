package http

import (
	"textbook-rag/internal/chat"
)

type chatReq struct {
	Message   string `json:"message" example:"What is ROS 2?"`
	SessionID string `json:"session_id,omitempty" example:"3f1c2a7e-6b7d-4f0a-9b8e-1f2d3c4b5a69"`
}

func (r chatReq) toInput() chat.ChatInput {
	return chat.ChatInput{Message: r.Message, SessionID: r.SessionID}
}

type sourceResp struct {
	ChunkID string  `json:"chunk_id"`
	Title   string  `json:"title,omitempty"`
	Slug    string  `json:"slug"`
	Score   float64 `json:"score"`
}

type metadataResp struct {
	ResponseTimeMS int64 `json:"response_time_ms"`
	TokensUsed     *int  `json:"tokens_used,omitempty"`
	ContextChunks  int   `json:"context_chunks"`
}

type chatResp struct {
	SessionID string       `json:"session_id"`
	Message   string       `json:"message"`
	Sources   []sourceResp `json:"sources"`
	Metadata  metadataResp `json:"metadata"`
}

type endSessionResp struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

func (h *handler) newChatResp(out chat.ChatOutput) chatResp {
	sources := make([]sourceResp, len(out.Sources))
	for i, s := range out.Sources {
		sources[i] = sourceResp{ChunkID: s.ChunkID, Title: s.Title, Slug: s.Slug, Score: s.Score}
	}
	return chatResp{
		SessionID: out.SessionID,
		Message:   out.Message,
		Sources:   sources,
		Metadata: metadataResp{
			ResponseTimeMS: out.Metadata.ResponseTimeMS,
			TokensUsed:     out.Metadata.TokensUsed,
			ContextChunks:  out.Metadata.ContextChunks,
		},
	}
}
