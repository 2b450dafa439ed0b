package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
)

// SubscriptionHandler manages subscription-related HTTP endpoints
type SubscriptionHandler struct {
	common *CommonServices
	logger *zap.Logger
}

// NewSubscriptionHandler creates a handler with its shared dependencies
func NewSubscriptionHandler(common *CommonServices, logger *zap.Logger) *SubscriptionHandler {
	if logger == nil {
		logger = zap.L()
	}
	return &SubscriptionHandler{
		common: common,
		logger: logger,
	}
}

// CreateSubscriptionSessionRequest is the payload for bootstrapping a
// client-side subscription flow.
type CreateSubscriptionSessionRequest struct {
	UserID string `json:"userId" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Name   string `json:"name"`
	PlanID string `json:"planId"`
	// PriceID overrides the plan-to-price mapping when set.
	PriceID string `json:"priceId"`
}

// SubscriptionSessionResponse carries everything a mobile client needs to
// present a payment sheet.
type SubscriptionSessionResponse struct {
	CustomerID              string `json:"customerId"`
	CustomerEmail           string `json:"customerEmail"`
	EphemeralKeySecret      string `json:"customerEphemeralKeySecret"`
	SetupIntentID           string `json:"setupIntentId"`
	SetupIntentClientSecret string `json:"setupIntentClientSecret"`
	PriceID                 string `json:"priceId"`
	PlanID                  string `json:"planId"`
}

// CreateSubscriptionRequest is the payload for creating a subscription.
type CreateSubscriptionRequest struct {
	UserID          string `json:"userId" binding:"required"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	PlanID          string `json:"planId"`
	PriceID         string `json:"priceId"`
	CustomerID      string `json:"customerId"`
	SetupIntentID   string `json:"setupIntentId"`
	PaymentMethodID string `json:"paymentMethodId"`
}

// SubscriptionSummary is the client-facing shape of a provider subscription.
type SubscriptionSummary struct {
	ID                 string `json:"id"`
	Status             string `json:"status"`
	PlanName           string `json:"planName"`
	CurrentPeriodStart int64  `json:"currentPeriodStart,omitempty"`
	CurrentPeriodEnd   int64  `json:"currentPeriodEnd,omitempty"`
	CancelAtPeriodEnd  bool   `json:"cancelAtPeriodEnd"`
}

func toSubscriptionSummary(sub billing.Subscription) SubscriptionSummary {
	summary := SubscriptionSummary{
		ID:                 sub.ExternalID,
		Status:             sub.Status,
		CurrentPeriodStart: sub.CurrentPeriodStart,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
		CancelAtPeriodEnd:  sub.CancelAtPeriodEnd,
	}
	if len(sub.Items) > 0 {
		if sub.Items[0].PriceNickname != "" {
			summary.PlanName = sub.Items[0].PriceNickname
		} else {
			summary.PlanName = sub.Items[0].PriceInterval
		}
		if summary.CurrentPeriodStart == 0 {
			summary.CurrentPeriodStart = sub.Items[0].PeriodStart
		}
		if summary.CurrentPeriodEnd == 0 {
			summary.CurrentPeriodEnd = sub.Items[0].PeriodEnd
		}
	}
	return summary
}

// liveStatuses are provider statuses treated as an active subscription for
// client-facing lookups.
var liveStatuses = map[string]bool{
	"active":   true,
	"trialing": true,
	"past_due": true,
}

// CreateSubscriptionSession godoc
// @Summary Bootstrap a subscription payment session
// @Description Ensures a provider customer exists for the user and returns the ephemeral key and setup intent secrets for the client payment sheet
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body CreateSubscriptionSessionRequest true "Session details"
// @Success 200 {object} SubscriptionSessionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /create-subscription-session [post]
func (h *SubscriptionHandler) CreateSubscriptionSession(c *gin.Context) {
	var req CreateSubscriptionSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	priceID := req.PriceID
	if priceID == "" {
		priceID = h.common.GetConfig().PriceForPlan(req.PlanID)
	}
	if priceID == "" {
		sendError(c, http.StatusBadRequest, "No price configured for plan", nil)
		return
	}

	ctx := c.Request.Context()

	customer, err := h.common.Resolver.GetOrCreateCustomer(ctx, req.UserID, req.Email, req.Name)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to prepare customer", err)
		return
	}

	ephemeralKey, err := h.common.Provider.CreateEphemeralKey(ctx, customer.ExternalID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create ephemeral key", err)
		return
	}

	setupIntent, err := h.common.Provider.CreateSetupIntent(ctx, customer.ExternalID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create setup intent", err)
		return
	}

	sendSuccess(c, http.StatusOK, SubscriptionSessionResponse{
		CustomerID:              customer.ExternalID,
		CustomerEmail:           customer.Email,
		EphemeralKeySecret:      ephemeralKey,
		SetupIntentID:           setupIntent.ExternalID,
		SetupIntentClientSecret: setupIntent.ClientSecret,
		PriceID:                 priceID,
		PlanID:                  req.PlanID,
	})
}

// CreateSubscription godoc
// @Summary Create a subscription
// @Description Creates the provider subscription for a user and records the first local period row
// @Tags subscriptions
// @Accept json
// @Produce json
// @Param request body CreateSubscriptionRequest true "Subscription details"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /create-subscription [post]
func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request payload", err)
		return
	}

	priceID := req.PriceID
	if priceID == "" {
		priceID = h.common.GetConfig().PriceForPlan(req.PlanID)
	}
	if priceID == "" {
		sendError(c, http.StatusBadRequest, "No price configured for plan", nil)
		return
	}

	ctx := c.Request.Context()

	customerID := req.CustomerID
	if customerID == "" {
		customer, err := h.common.Resolver.GetOrCreateCustomer(ctx, req.UserID, req.Email, req.Name)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to prepare customer", err)
			return
		}
		customerID = customer.ExternalID
	}

	paymentMethodID := req.PaymentMethodID
	if paymentMethodID == "" && req.SetupIntentID != "" {
		setupIntent, err := h.common.Provider.GetSetupIntent(ctx, req.SetupIntentID)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to load setup intent", err)
			return
		}
		paymentMethodID = setupIntent.PaymentMethodID
	}

	if paymentMethodID != "" {
		if err := h.common.Provider.SetDefaultPaymentMethod(ctx, customerID, paymentMethodID); err != nil {
			h.logger.Warn("Failed to set default payment method before subscribing",
				zap.String("stripe_customer_id", customerID),
				zap.Error(err))
		}
	}

	sub, err := h.common.Provider.CreateSubscription(ctx, billing.CreateSubscriptionParams{
		CustomerID:      customerID,
		PriceID:         priceID,
		PaymentMethodID: paymentMethodID,
		Metadata: map[string]string{
			"userId": req.UserID,
		},
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create subscription", err)
		return
	}

	row, err := h.common.Reconciler.Reconcile(ctx, sub, req.UserID)
	if err != nil {
		// The provider subscription exists; the local row will catch up via
		// webhooks or the sync pass.
		h.logger.Warn("Subscription created but local reconciliation failed",
			zap.String("stripe_subscription_id", sub.ExternalID),
			zap.Error(err))
	}

	response := gin.H{
		"subscription": toSubscriptionSummary(sub),
		"clientSecret": sub.ClientSecret,
	}
	if row != nil {
		response["subscriptionRowId"] = row.ID
	}

	sendSuccess(c, http.StatusCreated, response)
}

// GetSubscriptionByCustomer godoc
// @Summary Get the active subscription for a provider customer
// @Tags subscriptions
// @Produce json
// @Param customerId path string true "Provider customer ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /subscription/{customerId} [get]
func (h *SubscriptionHandler) GetSubscriptionByCustomer(c *gin.Context) {
	customerID := c.Param("customerId")
	if customerID == "" {
		sendError(c, http.StatusBadRequest, "Customer ID is required", nil)
		return
	}

	h.respondWithCustomerSubscription(c, customerID)
}

// GetSubscriptionByUser godoc
// @Summary Get the active subscription for an application user
// @Tags subscriptions
// @Produce json
// @Param userId path string true "Application user ID"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} ErrorResponse
// @Router /subscription/user/{userId} [get]
func (h *SubscriptionHandler) GetSubscriptionByUser(c *gin.Context) {
	userID := c.Param("userId")
	if userID == "" {
		sendError(c, http.StatusBadRequest, "User ID is required", nil)
		return
	}

	customer, found, err := h.common.Provider.FindCustomerByUserID(c.Request.Context(), userID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to look up customer", err)
		return
	}
	if !found {
		sendSuccess(c, http.StatusOK, gin.H{"hasSubscription": false})
		return
	}

	h.respondWithCustomerSubscription(c, customer.ExternalID)
}

func (h *SubscriptionHandler) respondWithCustomerSubscription(c *gin.Context, customerID string) {
	subs, err := h.common.Provider.ListSubscriptionsByCustomer(c.Request.Context(), customerID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to list subscriptions", err)
		return
	}

	for _, sub := range subs {
		if liveStatuses[sub.Status] {
			summary := toSubscriptionSummary(sub)
			sendSuccess(c, http.StatusOK, gin.H{
				"hasSubscription":   true,
				"status":            summary.Status,
				"currentPeriodEnd":  summary.CurrentPeriodEnd,
				"cancelAtPeriodEnd": summary.CancelAtPeriodEnd,
				"subscription":      summary,
			})
			return
		}
	}

	sendSuccess(c, http.StatusOK, gin.H{"hasSubscription": false})
}

// CancelSubscription godoc
// @Summary Cancel a subscription at period end
// @Description Flags the provider subscription to cancel when the current period ends; the local row closes out when the deletion webhook arrives
// @Tags subscriptions
// @Produce json
// @Param subscriptionId path string true "Provider subscription ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /subscription/cancel/{subscriptionId} [post]
func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	subscriptionID := c.Param("subscriptionId")
	if subscriptionID == "" {
		sendError(c, http.StatusBadRequest, "Subscription ID is required", nil)
		return
	}

	sub, err := h.common.Provider.CancelSubscriptionAtPeriodEnd(c.Request.Context(), subscriptionID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to cancel subscription", err)
		return
	}

	sendSuccess(c, http.StatusOK, gin.H{
		"message":      "Subscription will cancel at period end",
		"subscription": toSubscriptionSummary(sub),
	})
}
