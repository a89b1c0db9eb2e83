package http

import (
	"github.com/gin-gonic/gin"

	"textbook-rag/pkg/response"
	"textbook-rag/pkg/scope"
)

// Chat godoc
// @Summary     Ask the textbook assistant
// @Description Answers a question grounded in retrieved textbook passages. Omit session_id to start a new conversation.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     429 {object} response.Resp "Generation service busy"
// @Failure     502 {object} response.Resp "Generation or embedding failure"
// @Failure     503 {object} response.Resp "Vector store unreachable"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Chat(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newChatResp(out))
}

// EndSession godoc
// @Summary     End a chat session
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} endSessionResp
// @Failure     400 {object} response.Resp "Invalid session id"
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /chat/sessions/{session_id} [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("session_id")

	if err := h.uc.EndSession(ctx, id); err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, endSessionResp{SessionID: id, Message: "Session ended successfully"})
}
