package stripe

import (
	"encoding/json"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
)

// VerifyWebhook validates the signature of an incoming webhook payload and
// maps the event data to a canonical billing.WebhookEvent. Subscription and
// invoice events carry a typed payload; every other event type is returned
// with raw data only so callers can acknowledge it untouched.
func (s *Service) VerifyWebhook(payload []byte, signatureHeader string) (billing.WebhookEvent, error) {
	if s.webhookSecret == "" {
		return billing.WebhookEvent{}, fmt.Errorf("stripe service not configured for webhooks (secret missing)")
	}

	event, err := webhook.ConstructEvent(payload, signatureHeader, s.webhookSecret)
	if err != nil {
		s.logger.Error("Webhook signature verification failed", zap.Error(err))
		return billing.WebhookEvent{}, fmt.Errorf("webhook signature verification failed: %w", err)
	}

	s.logger.Info("Received Stripe webhook event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)))

	billingEvent := billing.WebhookEvent{
		ExternalID: event.ID,
		Type:       string(event.Type),
		RawData:    payload,
	}

	switch event.Type {
	case stripe.EventTypeCustomerSubscriptionCreated,
		stripe.EventTypeCustomerSubscriptionUpdated,
		stripe.EventTypeCustomerSubscriptionDeleted:
		var subscription stripe.Subscription
		if err := json.Unmarshal(event.Data.Raw, &subscription); err != nil {
			s.logger.Error("Failed to unmarshal webhook event data for subscription", zap.String("event_type", string(event.Type)), zap.Error(err))
			return billingEvent, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		mapped := mapStripeSubscriptionToBillingSubscription(&subscription)
		billingEvent.Subscription = &mapped

	case stripe.EventTypeInvoicePaymentSucceeded,
		stripe.EventTypeInvoicePaid,
		stripe.EventTypeInvoicePaymentFailed:
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			s.logger.Error("Failed to unmarshal webhook event data for invoice", zap.String("event_type", string(event.Type)), zap.Error(err))
			return billingEvent, fmt.Errorf("failed to unmarshal %s data: %w", event.Type, err)
		}
		mapped := mapStripeInvoiceToBillingInvoice(&invoice)
		billingEvent.Invoice = &mapped

	default:
		s.logger.Debug("Unmapped Stripe webhook event type", zap.String("event_type", string(event.Type)), zap.String("event_id", event.ID))
	}

	return billingEvent, nil
}
