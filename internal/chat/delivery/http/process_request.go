package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "textbook-rag/pkg/errors"
)

func (h *handler) processChatReq(c *gin.Context) (chatReq, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("Invalid request body")
	}
	return req, nil
}
