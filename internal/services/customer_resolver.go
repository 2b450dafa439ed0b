package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/cache"
	"github.com/subsync/subsync-api/internal/client/billing"
	"github.com/subsync/subsync-api/internal/db"
	"github.com/subsync/subsync-api/internal/logger"
)

// Metadata keys under which provider customers carry the application user ID.
// The legacy key survives from the previous generation of this service.
const (
	metadataUserIDKey       = "userId"
	metadataLegacyUserIDKey = "supabase_user_id"
)

// CustomerResolver maps provider customer IDs back to application users. It
// tries an ordered chain of strategies and returns found=false when every
// strategy misses; callers treat that as a signal to drop the event rather
// than fail.
type CustomerResolver struct {
	queries  db.Querier
	provider billing.Provider
	cache    *cache.CustomerCache
}

// NewCustomerResolver creates a CustomerResolver. The cache may be nil, in
// which case resolution always goes to the provider first.
func NewCustomerResolver(queries db.Querier, provider billing.Provider, customerCache *cache.CustomerCache) *CustomerResolver {
	return &CustomerResolver{
		queries:  queries,
		provider: provider,
		cache:    customerCache,
	}
}

// ResolveUserID resolves a provider customer ID to an application user ID.
// Strategies run in order: cache, provider customer metadata, local
// subscriptions table. Provider errors are swallowed so a flaky provider
// lookup falls through to the local table instead of failing the event.
func (r *CustomerResolver) ResolveUserID(ctx context.Context, customerID string) (string, bool) {
	if customerID == "" {
		return "", false
	}

	if userID, ok := r.cache.GetUserID(ctx, customerID); ok {
		return userID, true
	}

	if userID, ok := r.resolveFromProviderMetadata(ctx, customerID); ok {
		r.cache.SetUserID(ctx, customerID, userID)
		return userID, true
	}

	if userID, ok := r.resolveFromLocalTable(ctx, customerID); ok {
		r.cache.SetUserID(ctx, customerID, userID)
		return userID, true
	}

	logger.Log.Warn("Unable to resolve user for customer", zap.String("stripe_customer_id", customerID))
	return "", false
}

func (r *CustomerResolver) resolveFromProviderMetadata(ctx context.Context, customerID string) (string, bool) {
	customer, err := r.provider.GetCustomer(ctx, customerID)
	if err != nil {
		logger.Log.Warn("Provider customer lookup failed, falling back to local table",
			zap.String("stripe_customer_id", customerID),
			zap.Error(err))
		return "", false
	}

	if userID := customer.Metadata[metadataUserIDKey]; userID != "" {
		return userID, true
	}
	if userID := customer.Metadata[metadataLegacyUserIDKey]; userID != "" {
		return userID, true
	}
	return "", false
}

func (r *CustomerResolver) resolveFromLocalTable(ctx context.Context, customerID string) (string, bool) {
	userID, err := r.queries.GetUserIDByStripeCustomerID(ctx, customerID)
	if err != nil {
		return "", false
	}
	return userID, userID != ""
}

// GetOrCreateCustomer finds the provider customer for an application user,
// creating one with the user ID stamped into metadata when none exists.
func (r *CustomerResolver) GetOrCreateCustomer(ctx context.Context, userID, email, name string) (billing.Customer, error) {
	if userID == "" {
		return billing.Customer{}, fmt.Errorf("user ID is required")
	}

	customer, found, err := r.provider.FindCustomerByUserID(ctx, userID)
	if err != nil {
		return billing.Customer{}, fmt.Errorf("customer lookup failed: %w", err)
	}
	if found {
		r.cache.SetUserID(ctx, customer.ExternalID, userID)
		return customer, nil
	}

	customer, err = r.provider.CreateCustomer(ctx, billing.CreateCustomerParams{
		UserID: userID,
		Email:  email,
		Name:   name,
	})
	if err != nil {
		return billing.Customer{}, fmt.Errorf("customer creation failed: %w", err)
	}

	logger.Log.Info("Created provider customer for user",
		zap.String("user_id", userID),
		zap.String("stripe_customer_id", customer.ExternalID))

	r.cache.SetUserID(ctx, customer.ExternalID, userID)
	return customer, nil
}
