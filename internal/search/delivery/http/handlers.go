package http

import (
	"github.com/gin-gonic/gin"

	"textbook-rag/pkg/response"
)

// Search godoc
// @Summary     Semantic search over the textbook
// @Description Embeds the query and returns the most similar chunks, highest score first.
// @Tags        Search
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Search query"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     502 {object} response.Resp "Embedding failure"
// @Failure     503 {object} response.Resp "Vector store unreachable"
// @Router      /search [POST]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSearchReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "search.delivery.http.Search: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSearchResp(out))
}
