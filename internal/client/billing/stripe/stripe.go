// Package stripe implements the billing.Provider interface on top of the
// stripe-go v82 client API.
package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
)

// Ensure Service implements the billing.Provider interface
var _ billing.Provider = (*Service)(nil)

// Service implements billing.Provider for Stripe. Method implementations for
// specific resources (Customer, Subscription, Invoice, PaymentMethod,
// Webhook) are in separate files within this package.
type Service struct {
	client        *stripe.Client
	webhookSecret string
	logger        *zap.Logger
}

// NewService creates a new instance of Service.
// It does not yet configure the API key, that happens in Configure.
func NewService(logger *zap.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// GetServiceName returns the name of the service.
func (s *Service) GetServiceName() string {
	return "stripe"
}

// Configure initializes the Stripe service with API key and webhook secret.
func (s *Service) Configure(ctx context.Context, apiKey, webhookSecret string) error {
	if apiKey == "" {
		return fmt.Errorf("stripe API key not provided in configuration")
	}
	if webhookSecret == "" {
		return fmt.Errorf("stripe webhook secret not provided in configuration")
	}

	s.client = stripe.NewClient(apiKey, nil)
	s.webhookSecret = webhookSecret

	return nil
}

// CheckConnection verifies that the service can connect to Stripe by making a
// simple, non-mutating API call.
func (s *Service) CheckConnection(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("stripe client not configured. Call Configure first")
	}

	_, err := s.client.V1Accounts.Retrieve(ctx, &stripe.AccountRetrieveParams{})
	if err != nil {
		return fmt.Errorf("failed to connect to Stripe: %w", err)
	}
	return nil
}
