package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	authHTTP "textbook-rag/internal/auth/delivery/http"
	chapterHTTP "textbook-rag/internal/chapter/delivery/http"
	chatHTTP "textbook-rag/internal/chat/delivery/http"
	searchHTTP "textbook-rag/internal/search/delivery/http"
	"textbook-rag/pkg/response"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.CustomRecovery(func(c *gin.Context, rec any) {
		srv.l.Errorf(c.Request.Context(), "httpserver: panic recovered: %v", rec)
		response.InternalError(c, fmt.Errorf("panic: %v", rec))
		c.Abort()
	}))
	srv.gin.Use(srv.mw.RequestLogger(), srv.mw.CORS(), srv.mw.Identify())

	srv.l.Infof(context.Background(), "CORS mode: %s", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes. Generation and retrieval
// endpoints share the per-IP rate limit.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	limited := srv.mw.RateLimit()

	chatHTTP.RegisterRoutes(srv.gin, srv.chatHandler, limited)
	searchHTTP.RegisterRoutes(srv.gin, srv.searchHandler, limited)
	chapterHTTP.RegisterRoutes(srv.gin, srv.chapterHandler, srv.mw.Auth(), limited)

	if srv.authHandler != nil {
		authHTTP.RegisterRoutes(srv.gin, srv.authHandler)
		srv.l.Infof(ctx, "Auth routes registered under /api/auth")
	} else {
		srv.l.Infof(ctx, "Auth not configured, skipping /api/auth routes")
	}
}
