package http

import (
	"github.com/gin-gonic/gin"

	"textbook-rag/pkg/response"
	"textbook-rag/pkg/scope"
)

// Personalize godoc
// @Summary     Personalize a chapter
// @Description Rewrites a chapter for the reader's programming level, hardware background and goals. Signed-in readers may omit user_profile.
// @Tags        Chapter
// @Accept      json
// @Produce     json
// @Param       body body personalizeReq true "Chapter and profile"
// @Success     200 {object} personalizeResp
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     404 {object} response.Resp "Chapter content not found"
// @Failure     502 {object} response.Resp "Generation failure"
// @Router      /personalize [POST]
func (h *handler) Personalize(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPersonalizeReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Personalize(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newPersonalizeResp(out))
}

// Translate godoc
// @Summary     Translate a chapter to Urdu
// @Tags        Chapter
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body translateReq true "Chapter"
// @Success     200 {object} translateResp
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     401 {object} response.Resp "Not signed in"
// @Failure     404 {object} response.Resp "Chapter content not found"
// @Failure     502 {object} response.Resp "Generation failure"
// @Router      /translate [POST]
func (h *handler) Translate(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTranslateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Translate(ctx, scope.GetScopeFromContext(ctx), req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTranslateResp(out))
}
