package http

import (
	"github.com/gin-gonic/gin"

	pkgErrors "textbook-rag/pkg/errors"
)

func (h *handler) processSignUpReq(c *gin.Context) (signUpReq, error) {
	var req signUpReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("Invalid request body")
	}
	return req, nil
}

func (h *handler) processSignInReq(c *gin.Context) (signInReq, error) {
	var req signInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewValidationError("Invalid request body")
	}
	return req, nil
}
