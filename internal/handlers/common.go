package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
	"github.com/subsync/subsync-api/internal/config"
	"github.com/subsync/subsync-api/internal/logger"
	"github.com/subsync/subsync-api/internal/services"
)

// CommonServices holds the shared dependencies used across handlers. All
// datastore access goes through the services; handlers keep the pool only
// for the health probe's connectivity ping.
type CommonServices struct {
	dbPool     *pgxpool.Pool
	cfg        *config.Config
	Provider   billing.Provider
	Resolver   *services.CustomerResolver
	Reconciler *services.ReconcilerService
	Payments   *services.PaymentService
	Dispatcher *services.WebhookDispatcher
	Sync       *services.SyncService
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Message string `json:"message"`
}

// CommonServicesConfig contains all dependencies needed to create CommonServices
type CommonServicesConfig struct {
	DBPool     *pgxpool.Pool // Optional: for the health probe ping
	Config     *config.Config
	Provider   billing.Provider
	Resolver   *services.CustomerResolver
	Reconciler *services.ReconcilerService
	Payments   *services.PaymentService
	Dispatcher *services.WebhookDispatcher
	Sync       *services.SyncService
}

// NewCommonServices creates a new instance of CommonServices.
func NewCommonServices(cfg CommonServicesConfig) *CommonServices {
	return &CommonServices{
		dbPool:     cfg.DBPool,
		cfg:        cfg.Config,
		Provider:   cfg.Provider,
		Resolver:   cfg.Resolver,
		Reconciler: cfg.Reconciler,
		Payments:   cfg.Payments,
		Dispatcher: cfg.Dispatcher,
		Sync:       cfg.Sync,
	}
}

// GetConfig returns the runtime configuration
func (s *CommonServices) GetConfig() *config.Config {
	return s.cfg
}

// sendError is a helper function that combines logging and error response.
// It logs the error with the given message and sends a JSON error response.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	response := struct {
		Error         string `json:"error"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}{
		Error:         message,
		CorrelationID: correlationID,
	}

	c.JSON(statusCode, response)
}

// sendSuccess is a helper function that sends a success response
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage is a helper function that sends a success message
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}
