package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SyncHandler exposes the catch-up synchronizer over HTTP.
type SyncHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewSyncHandler creates a handler with its shared dependencies
func NewSyncHandler(common *CommonServices, logger *zap.Logger) *SyncHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &SyncHandler{
		common: common,
		logger: logger,
	}
}

// SyncSubscriptions godoc
// @Summary Reconcile all live local subscriptions against provider state
// @Tags sync
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /sync-subscriptions [post]
func (h *SyncHandler) SyncSubscriptions(c *gin.Context) {
	result, err := h.common.Sync.SyncSubscriptions(c.Request.Context())
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Subscription sync failed", err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{
		"message": "Subscription sync complete",
		"updated": result.Updated,
		"errors":  result.Errors,
		"total":   result.Total,
	})
}
