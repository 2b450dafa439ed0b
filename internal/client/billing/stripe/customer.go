package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
)

// Metadata keys stamped onto Stripe customers so webhook events can be
// joined back to an application user. MetadataUserIDKey is the primary key;
// MetadataLegacyUserIDKey is kept for customers created by the previous
// generation of this service.
const (
	MetadataUserIDKey       = "userId"
	MetadataLegacyUserIDKey = "supabase_user_id"
)

// mapStripeCustomerToBillingCustomer converts a Stripe Customer object to the
// canonical billing.Customer.
func mapStripeCustomerToBillingCustomer(stripeCust *stripe.Customer) billing.Customer {
	if stripeCust == nil {
		return billing.Customer{}
	}

	return billing.Customer{
		ExternalID: stripeCust.ID,
		Email:      stripeCust.Email,
		Name:       stripeCust.Name,
		Metadata:   stripeCust.Metadata,
	}
}

// CreateCustomer creates a new customer in Stripe with the application user
// ID stamped into metadata under both known keys.
func (s *Service) CreateCustomer(ctx context.Context, params billing.CreateCustomerParams) (billing.Customer, error) {
	if s.client == nil {
		return billing.Customer{}, fmt.Errorf("stripe client not configured")
	}

	createParams := &stripe.CustomerCreateParams{
		Email: stripe.String(params.Email),
		Metadata: map[string]string{
			MetadataUserIDKey:       params.UserID,
			MetadataLegacyUserIDKey: params.UserID,
		},
	}
	if params.Name != "" {
		createParams.Name = stripe.String(params.Name)
	}

	s.logger.Info("Creating Stripe customer", zap.String("user_id", params.UserID), zap.String("email", params.Email))

	newCustomer, err := s.client.V1Customers.Create(ctx, createParams)
	if err != nil {
		s.logger.Error("Failed to create Stripe customer", zap.Error(err), zap.String("user_id", params.UserID))
		return billing.Customer{}, fmt.Errorf("stripe_service.CreateCustomer: %w", err)
	}

	s.logger.Info("Successfully created Stripe customer", zap.String("stripe_customer_id", newCustomer.ID))
	return mapStripeCustomerToBillingCustomer(newCustomer), nil
}

// GetCustomer retrieves a customer by its external ID from Stripe.
func (s *Service) GetCustomer(ctx context.Context, externalID string) (billing.Customer, error) {
	if s.client == nil {
		return billing.Customer{}, fmt.Errorf("stripe client not configured")
	}

	stripeCust, err := s.client.V1Customers.Retrieve(ctx, externalID, &stripe.CustomerRetrieveParams{})
	if err != nil {
		s.logger.Error("Failed to fetch Stripe customer", zap.Error(err), zap.String("stripe_customer_id", externalID))
		return billing.Customer{}, fmt.Errorf("stripe_service.GetCustomer: %w", err)
	}

	return mapStripeCustomerToBillingCustomer(stripeCust), nil
}

// FindCustomerByUserID searches Stripe for a customer carrying the given
// application user ID under either metadata key. Returns found=false when no
// customer matches.
func (s *Service) FindCustomerByUserID(ctx context.Context, userID string) (billing.Customer, bool, error) {
	if s.client == nil {
		return billing.Customer{}, false, fmt.Errorf("stripe client not configured")
	}

	params := &stripe.CustomerSearchParams{
		SearchParams: stripe.SearchParams{
			Query: fmt.Sprintf("metadata['%s']:'%s' OR metadata['%s']:'%s'",
				MetadataUserIDKey, userID, MetadataLegacyUserIDKey, userID),
			Limit: stripe.Int64(1),
		},
	}

	for stripeCust, err := range s.client.V1Customers.Search(ctx, params) {
		if err != nil {
			s.logger.Error("Error searching Stripe customers", zap.Error(err), zap.String("user_id", userID))
			return billing.Customer{}, false, fmt.Errorf("stripe_service.FindCustomerByUserID: %w", err)
		}
		if stripeCust == nil {
			continue
		}
		return mapStripeCustomerToBillingCustomer(stripeCust), true, nil
	}

	return billing.Customer{}, false, nil
}

// CreateEphemeralKey issues a short-lived key allowing a mobile client to act
// on the customer directly.
func (s *Service) CreateEphemeralKey(ctx context.Context, customerID string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("stripe client not configured")
	}

	params := &stripe.EphemeralKeyCreateParams{
		Customer:      stripe.String(customerID),
		StripeVersion: stripe.String(stripe.APIVersion),
	}

	key, err := s.client.V1EphemeralKeys.Create(ctx, params)
	if err != nil {
		s.logger.Error("Failed to create Stripe ephemeral key", zap.Error(err), zap.String("stripe_customer_id", customerID))
		return "", fmt.Errorf("stripe_service.CreateEphemeralKey: %w", err)
	}

	return key.Secret, nil
}
