package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the chapter endpoints. mw runs before both handlers;
// authMW additionally guards /translate.
func RegisterRoutes(r gin.IRoutes, h Handler, authMW gin.HandlerFunc, mw ...gin.HandlerFunc) {
	r.POST("/personalize", append(mw, h.Personalize)...)

	translate := append([]gin.HandlerFunc{}, mw...)
	if authMW != nil {
		translate = append(translate, authMW)
	}
	r.POST("/translate", append(translate, h.Translate)...)
}
