package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fairgate/eventrag/pkg/knowledge"
)

// Build information - can be set at build time using ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	kb *knowledge.Base
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(kb *knowledge.Base) *HealthHandler {
	return &HealthHandler{kb: kb}
}

// HealthCheck handles GET /health - basic liveness check.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "eventrag",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"version":   Version,
	})
}

// ReadinessCheck handles GET /ready. The store is in-memory, so readiness
// is just "the seed was loaded".
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	facts := h.kb.Store().Len()
	status := http.StatusOK
	state := "ready"
	if facts == 0 {
		status = http.StatusServiceUnavailable
		state = "not_ready"
	}
	c.JSON(status, gin.H{
		"status":    state,
		"service":   "eventrag",
		"facts":     facts,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
