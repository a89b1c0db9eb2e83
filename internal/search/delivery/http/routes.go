package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps the search endpoint. mw runs before the handler.
func RegisterRoutes(r gin.IRoutes, h Handler, mw ...gin.HandlerFunc) {
	r.POST("/search", append(mw, h.Search)...)
}
