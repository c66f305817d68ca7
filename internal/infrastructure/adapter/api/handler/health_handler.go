package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/database"
)

// HealthChecker reports database reachability and pool usage
type HealthChecker interface {
	Health(ctx context.Context) (database.PoolStats, error)
}

type healthResponse struct {
	Status   string              `json:"status"`
	Database *database.PoolStats `json:"database,omitempty"`
	Error    string              `json:"error,omitempty"`
}

// HealthHandler serves the liveness check
type HealthHandler struct {
	checker HealthChecker
	logger  coreport.Logger
}

// NewHealthHandler creates a new health handler instance
func NewHealthHandler(checker HealthChecker, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{checker: checker, logger: logger}
}

// Check handles GET /health
func (h *HealthHandler) Check(c *gin.Context) {
	stats, err := h.checker.Health(c.Request.Context())
	if err != nil {
		h.logger.Error("Health check failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusServiceUnavailable, healthResponse{Status: "unavailable", Error: "database unreachable"})
		return
	}
	c.JSON(http.StatusOK, healthResponse{Status: "ok", Database: &stats})
}
