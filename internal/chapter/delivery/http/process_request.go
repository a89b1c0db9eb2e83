package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "textbook-rag/pkg/errors"
)

func (h *handler) processPersonalizeReq(c *gin.Context) (personalizeReq, error) {
	var req personalizeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("Invalid request body")
	}
	return req, nil
}

func (h *handler) processTranslateReq(c *gin.Context) (translateReq, error) {
	var req translateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("Invalid request body")
	}
	return req, nil
}
