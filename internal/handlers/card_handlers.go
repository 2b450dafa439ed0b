package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CardHandler manages stored payment method endpoints
type CardHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewCardHandler creates a handler with its shared dependencies
func NewCardHandler(common *CommonServices, logger *zap.Logger) *CardHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &CardHandler{
		common: common,
		logger: logger,
	}
}

// CardRequest identifies a payment method in card mutations.
type CardRequest struct {
	PaymentMethodID string `json:"paymentMethodId" binding:"required"`
	SetDefault      bool   `json:"setDefault"`
}

// findCustomerForUser resolves the provider customer for a path user ID,
// writing the error response itself on failure.
func (h *CardHandler) findCustomerForUser(c *gin.Context) (string, bool) {
	userID := c.Param("userId")
	if userID == "" {
		sendError(c, http.StatusBadRequest, "User ID is required", nil)
		return "", false
	}

	customer, found, err := h.common.Provider.FindCustomerByUserID(c.Request.Context(), userID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to look up customer", err)
		return "", false
	}
	if !found {
		sendError(c, http.StatusNotFound, "No billing customer for user", nil)
		return "", false
	}

	return customer.ExternalID, true
}

// CreateCard godoc
// @Summary Attach a payment method to a user's customer
// @Tags cards
// @Accept json
// @Produce json
// @Param userId path string true "Application user ID"
// @Param request body CardRequest true "Payment method"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /create-card/{userId} [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	customerID, ok := h.findCustomerForUser(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	card, err := h.common.Provider.AttachPaymentMethod(ctx, customerID, req.PaymentMethodID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to attach payment method", err)
		return
	}

	if req.SetDefault {
		if err := h.common.Provider.SetDefaultPaymentMethod(ctx, customerID, req.PaymentMethodID); err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to set default payment method", err)
			return
		}
		card.IsDefault = true
	}

	sendSuccess(c, http.StatusCreated, gin.H{"card": card})
}

// ListCards godoc
// @Summary List a user's stored cards
// @Tags cards
// @Produce json
// @Param userId path string true "Application user ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cards/{userId} [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	customerID, ok := h.findCustomerForUser(c)
	if !ok {
		return
	}

	cards, err := h.common.Provider.ListPaymentMethods(c.Request.Context(), customerID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list payment methods", err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{
		"object": "list",
		"data":   cards,
	})
}

// SetDefaultCard godoc
// @Summary Set a user's default card
// @Tags cards
// @Accept json
// @Produce json
// @Param userId path string true "Application user ID"
// @Param request body CardRequest true "Payment method"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cards/default/{userId} [post]
func (h *CardHandler) SetDefaultCard(c *gin.Context) {
	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	customerID, ok := h.findCustomerForUser(c)
	if !ok {
		return
	}

	if err := h.common.Provider.SetDefaultPaymentMethod(c.Request.Context(), customerID, req.PaymentMethodID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to set default payment method", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Default payment method updated")
}

// DeleteCard godoc
// @Summary Detach a card from a user's customer
// @Tags cards
// @Accept json
// @Produce json
// @Param userId path string true "Application user ID"
// @Param request body CardRequest true "Payment method"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /cards/delete/{userId} [post]
func (h *CardHandler) DeleteCard(c *gin.Context) {
	var req CardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	if _, ok := h.findCustomerForUser(c); !ok {
		return
	}

	if err := h.common.Provider.DetachPaymentMethod(c.Request.Context(), req.PaymentMethodID); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to detach payment method", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Payment method removed")
}
