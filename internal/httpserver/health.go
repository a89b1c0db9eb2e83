package httpserver

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"textbook-rag/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "textbook-rag"

	healthTimeout = 3 * time.Second
)

// Overall and per-dependency states.
const (
	StatusOK            = "ok"
	StatusDegraded      = "degraded"
	StatusError         = "error"
	StatusNotConfigured = "not_configured"
)

type dependencyStatus struct {
	Status    string `json:"status"`
	Error     string `json:"error,omitempty"`
	Providers *int   `json:"providers,omitempty"`
}

type healthResp struct {
	Status   string                      `json:"status"`
	Version  string                      `json:"version"`
	Service  string                      `json:"service"`
	Services map[string]dependencyStatus `json:"services"`
}

// checkHealth pings every dependency concurrently within healthTimeout.
func (srv *HTTPServer) checkHealth(ctx context.Context) healthResp {
	ctx, cancel := context.WithTimeout(ctx, healthTimeout)
	defer cancel()

	var mu sync.Mutex
	services := make(map[string]dependencyStatus, 3)
	set := func(name string, err error) {
		st := dependencyStatus{Status: StatusOK}
		if err != nil {
			st = dependencyStatus{Status: StatusError, Error: err.Error()}
			srv.l.Warnf(ctx, "httpserver.health: %s: %v", name, err)
		}
		mu.Lock()
		services[name] = st
		mu.Unlock()
	}

	if srv.postgres == nil {
		services["postgres"] = dependencyStatus{Status: StatusNotConfigured}
	}

	var g errgroup.Group
	g.Go(func() error {
		set("vector_store", srv.vectorStore.Ping(ctx))
		return nil
	})
	if srv.postgres != nil {
		g.Go(func() error {
			set("postgres", srv.postgres.Ping(ctx))
			return nil
		})
	}
	_ = g.Wait()

	n := srv.llmProviders
	llm := dependencyStatus{Status: StatusOK, Providers: &n}
	if n == 0 {
		llm.Status = StatusError
	}
	services["llm"] = llm

	status := StatusOK
	switch {
	case services["vector_store"].Status == StatusError || llm.Status == StatusError:
		status = StatusError
	case services["postgres"].Status == StatusError:
		status = StatusDegraded
	}

	return healthResp{Status: status, Version: HealthVersion, Service: ServiceName, Services: services}
}

// healthCheck reports per-dependency status
// @Summary Health Check
// @Description Overall status is ok, degraded (accounts database down) or error (vector store or LLM unavailable)
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp}
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.checkHealth(c.Request.Context()))
}

// readyCheck handles readiness check
// @Summary Readiness Check
// @Description 200 only when every dependency is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp{data=healthResp}
// @Failure 503 {object} response.Resp{data=healthResp}
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	h := srv.checkHealth(c.Request.Context())
	if h.Status != StatusOK {
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "Service not ready",
			Data:      h,
		})
		return
	}
	response.OK(c, h)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  StatusOK,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
