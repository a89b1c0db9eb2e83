package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "textbook-rag/pkg/errors"
)

func (h *handler) processSearchReq(c *gin.Context) (searchReq, error) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("Invalid request body")
	}
	return req, nil
}
