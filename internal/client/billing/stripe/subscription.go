package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
)

// mapStripeSubscriptionItemToBillingItem converts a Stripe SubscriptionItem
// to billing.SubscriptionItem. Billing periods are item-level on the current
// API version.
func mapStripeSubscriptionItemToBillingItem(stripeItem *stripe.SubscriptionItem) billing.SubscriptionItem {
	if stripeItem == nil {
		return billing.SubscriptionItem{}
	}

	item := billing.SubscriptionItem{
		ExternalID:  stripeItem.ID,
		Quantity:    int(stripeItem.Quantity),
		PeriodStart: stripeItem.CurrentPeriodStart,
		PeriodEnd:   stripeItem.CurrentPeriodEnd,
	}

	if stripeItem.Price != nil {
		item.PriceID = stripeItem.Price.ID
		item.PriceNickname = stripeItem.Price.Nickname
		if stripeItem.Price.Recurring != nil {
			item.PriceInterval = string(stripeItem.Price.Recurring.Interval)
		}
	}

	return item
}

// mapStripeSubscriptionToBillingSubscription converts a Stripe Subscription
// object to the canonical billing.Subscription.
func mapStripeSubscriptionToBillingSubscription(stripeSub *stripe.Subscription) billing.Subscription {
	if stripeSub == nil {
		return billing.Subscription{}
	}

	var items []billing.SubscriptionItem
	var primaryCurrentPeriodStart int64
	var primaryCurrentPeriodEnd int64

	if stripeSub.Items != nil && len(stripeSub.Items.Data) > 0 {
		items = make([]billing.SubscriptionItem, len(stripeSub.Items.Data))
		for i, item := range stripeSub.Items.Data {
			items[i] = mapStripeSubscriptionItemToBillingItem(item)
		}
		if stripeSub.Items.Data[0] != nil {
			primaryCurrentPeriodStart = stripeSub.Items.Data[0].CurrentPeriodStart
			primaryCurrentPeriodEnd = stripeSub.Items.Data[0].CurrentPeriodEnd
		}
	}

	var customerID string
	if stripeSub.Customer != nil {
		customerID = stripeSub.Customer.ID
	}

	var latestInvoiceID string
	var clientSecret string
	if stripeSub.LatestInvoice != nil {
		latestInvoiceID = stripeSub.LatestInvoice.ID
		if stripeSub.LatestInvoice.ConfirmationSecret != nil {
			clientSecret = stripeSub.LatestInvoice.ConfirmationSecret.ClientSecret
		}
	}

	return billing.Subscription{
		ExternalID:         stripeSub.ID,
		CustomerID:         customerID,
		Status:             string(stripeSub.Status),
		CurrentPeriodStart: primaryCurrentPeriodStart,
		CurrentPeriodEnd:   primaryCurrentPeriodEnd,
		StartDate:          stripeSub.StartDate,
		TrialEnd:           stripeSub.TrialEnd,
		CancelAtPeriodEnd:  stripeSub.CancelAtPeriodEnd,
		CanceledAt:         stripeSub.CanceledAt,
		EndedAt:            stripeSub.EndedAt,
		Items:              items,
		Metadata:           stripeSub.Metadata,
		LatestInvoiceID:    latestInvoiceID,
		ClientSecret:       clientSecret,
	}
}

// CreateSubscription creates a new subscription in Stripe. The subscription
// is created with default_incomplete payment behavior so the client confirms
// the first payment with the returned client secret.
func (s *Service) CreateSubscription(ctx context.Context, params billing.CreateSubscriptionParams) (billing.Subscription, error) {
	if s.client == nil {
		return billing.Subscription{}, fmt.Errorf("stripe client not configured")
	}

	if params.PriceID == "" {
		return billing.Subscription{}, fmt.Errorf("subscription must have a price")
	}

	createParams := &stripe.SubscriptionCreateParams{
		Customer: stripe.String(params.CustomerID),
		Items: []*stripe.SubscriptionCreateItemParams{
			{
				Price: stripe.String(params.PriceID),
			},
		},
		Metadata:        params.Metadata,
		PaymentBehavior: stripe.String("default_incomplete"),
	}
	if params.PaymentMethodID != "" {
		createParams.DefaultPaymentMethod = stripe.String(params.PaymentMethodID)
	}

	createParams.AddExpand("latest_invoice.confirmation_secret")

	s.logger.Info("Creating Stripe subscription",
		zap.String("stripe_customer_id", params.CustomerID),
		zap.String("price_id", params.PriceID))

	newStripeSub, err := s.client.V1Subscriptions.Create(ctx, createParams)
	if err != nil {
		s.logger.Error("Failed to create Stripe subscription", zap.Error(err), zap.String("stripe_customer_id", params.CustomerID))
		return billing.Subscription{}, fmt.Errorf("stripe_service.CreateSubscription: %w", err)
	}

	mappedSub := mapStripeSubscriptionToBillingSubscription(newStripeSub)
	s.logger.Info("Successfully created Stripe subscription", zap.String("stripe_subscription_id", newStripeSub.ID))
	return mappedSub, nil
}

// GetSubscription retrieves a subscription by its external ID from Stripe.
func (s *Service) GetSubscription(ctx context.Context, externalID string) (billing.Subscription, error) {
	if s.client == nil {
		return billing.Subscription{}, fmt.Errorf("stripe client not configured")
	}

	params := &stripe.SubscriptionRetrieveParams{}
	params.AddExpand("latest_invoice")

	stripeSub, err := s.client.V1Subscriptions.Retrieve(ctx, externalID, params)
	if err != nil {
		s.logger.Error("Failed to fetch Stripe subscription", zap.Error(err), zap.String("stripe_subscription_id", externalID))
		return billing.Subscription{}, fmt.Errorf("stripe_service.GetSubscription: %w", err)
	}

	return mapStripeSubscriptionToBillingSubscription(stripeSub), nil
}

// ListSubscriptionsByCustomer retrieves all subscriptions for a customer,
// including ended and canceled ones.
func (s *Service) ListSubscriptionsByCustomer(ctx context.Context, customerID string) ([]billing.Subscription, error) {
	if s.client == nil {
		return nil, fmt.Errorf("stripe client not configured")
	}

	listParams := &stripe.SubscriptionListParams{
		Customer: stripe.String(customerID),
		Status:   stripe.String("all"),
	}
	listParams.AddExpand("data.latest_invoice")

	var subscriptions []billing.Subscription

	for stripeSub, err := range s.client.V1Subscriptions.List(ctx, listParams) {
		if err != nil {
			s.logger.Error("Error iterating Stripe subscriptions list", zap.Error(err), zap.String("stripe_customer_id", customerID))
			return nil, fmt.Errorf("stripe_service.ListSubscriptionsByCustomer: error during iteration: %w", err)
		}
		if stripeSub == nil {
			continue
		}
		subscriptions = append(subscriptions, mapStripeSubscriptionToBillingSubscription(stripeSub))
	}

	return subscriptions, nil
}

// CancelSubscriptionAtPeriodEnd flags a subscription to cancel when the
// current period ends. The local row stays untouched here; the
// customer.subscription.deleted webhook closes it out when the period lapses.
func (s *Service) CancelSubscriptionAtPeriodEnd(ctx context.Context, externalID string) (billing.Subscription, error) {
	if s.client == nil {
		return billing.Subscription{}, fmt.Errorf("stripe client not configured")
	}

	s.logger.Info("Updating Stripe subscription to cancel at period end", zap.String("stripe_subscription_id", externalID))

	updateParams := &stripe.SubscriptionUpdateParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	}
	updateParams.AddExpand("latest_invoice")

	updatedStripeSub, err := s.client.V1Subscriptions.Update(ctx, externalID, updateParams)
	if err != nil {
		s.logger.Error("Failed to cancel Stripe subscription", zap.Error(err), zap.String("stripe_subscription_id", externalID))
		return billing.Subscription{}, fmt.Errorf("stripe_service.CancelSubscriptionAtPeriodEnd: %w", err)
	}

	mappedSub := mapStripeSubscriptionToBillingSubscription(updatedStripeSub)
	s.logger.Info("Successfully flagged Stripe subscription for cancellation", zap.String("stripe_subscription_id", externalID))

	return mappedSub, nil
}
