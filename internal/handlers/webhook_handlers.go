package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives provider webhook events.
type WebhookHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewWebhookHandler creates a handler with its shared dependencies
func NewWebhookHandler(common *CommonServices, logger *zap.Logger) *WebhookHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &WebhookHandler{
		common: common,
		logger: logger,
	}
}

// HandleWebhook godoc
// @Summary Receive a provider webhook event
// @Description Verifies the event signature and dispatches it. Once the signature checks out the event is always acknowledged with 200; processing failures are logged so the provider does not retry events that will never succeed.
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Router /webhook [post]
func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to read request body", err)
		return
	}

	event, err := h.common.Provider.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Webhook signature verification failed", err)
		return
	}

	if err := h.common.Dispatcher.Dispatch(c.Request.Context(), event); err != nil {
		// Lenient acknowledgement: the signature was valid, so the event is
		// acked regardless of processing outcome.
		h.logger.Error("Webhook event processing failed",
			zap.String("event_id", event.ExternalID),
			zap.String("event_type", event.Type),
			zap.Error(err))
	}

	sendSuccess(c, http.StatusOK, gin.H{"received": true})
}
