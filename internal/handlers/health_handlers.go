package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler exposes the service health probe.
type HealthHandler struct {
	common *CommonServices
}

// NewHealthHandler creates a handler with its shared dependencies
func NewHealthHandler(common *CommonServices) *HealthHandler {
	return &HealthHandler{common: common}
}

// HealthCheck godoc
// @Summary Service health probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if h.common.dbPool != nil {
		if err := h.common.dbPool.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unhealthy",
				"error":  "database unreachable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "subsync-api",
	})
}
