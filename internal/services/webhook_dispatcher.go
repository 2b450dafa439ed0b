package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
	"github.com/subsync/subsync-api/internal/logger"
)

type webhookHandler func(ctx context.Context, event billing.WebhookEvent) error

// WebhookDispatcher routes verified provider events to the reconciler and
// payment recorder. Unrecognized event types are acknowledged untouched.
type WebhookDispatcher struct {
	provider   billing.Provider
	reconciler *ReconcilerService
	payments   *PaymentService
	email      *EmailService
	handlers   map[string]webhookHandler
}

// NewWebhookDispatcher creates a WebhookDispatcher with the event-type
// routing table.
func NewWebhookDispatcher(provider billing.Provider, reconciler *ReconcilerService, payments *PaymentService, email *EmailService) *WebhookDispatcher {
	d := &WebhookDispatcher{
		provider:   provider,
		reconciler: reconciler,
		payments:   payments,
		email:      email,
	}
	d.handlers = map[string]webhookHandler{
		"customer.subscription.created": d.handleSubscriptionChange,
		"customer.subscription.updated": d.handleSubscriptionChange,
		"customer.subscription.deleted": d.handleSubscriptionDeleted,
		"invoice.payment_succeeded":     d.handlePaymentSucceeded,
		"invoice.payment_failed":        d.handlePaymentFailed,
	}
	return d
}

// Dispatch routes a verified event to its handler. Unknown event types return
// nil so the webhook endpoint acknowledges them.
func (d *WebhookDispatcher) Dispatch(ctx context.Context, event billing.WebhookEvent) error {
	handler, ok := d.handlers[event.Type]
	if !ok {
		logger.Log.Debug("Acknowledging unhandled webhook event type",
			zap.String("event_type", event.Type),
			zap.String("event_id", event.ExternalID))
		return nil
	}
	return handler(ctx, event)
}

func (d *WebhookDispatcher) handleSubscriptionChange(ctx context.Context, event billing.WebhookEvent) error {
	if event.Subscription == nil {
		return fmt.Errorf("event %s has no subscription payload", event.ExternalID)
	}
	_, err := d.reconciler.Reconcile(ctx, *event.Subscription, "")
	return err
}

// handleSubscriptionDeleted routes through the dedicated cancel path rather
// than full reconciliation: the provider object is already terminal, so the
// only local work is closing out the active row.
func (d *WebhookDispatcher) handleSubscriptionDeleted(ctx context.Context, event billing.WebhookEvent) error {
	if event.Subscription == nil {
		return fmt.Errorf("event %s has no subscription payload", event.ExternalID)
	}
	_, err := d.reconciler.Cancel(ctx, event.Subscription.ExternalID, "")
	return err
}

func (d *WebhookDispatcher) handlePaymentSucceeded(ctx context.Context, event billing.WebhookEvent) error {
	if event.Invoice == nil {
		return fmt.Errorf("event %s has no invoice payload", event.ExternalID)
	}

	if _, err := d.payments.RecordPayment(ctx, *event.Invoice, nil); err != nil {
		return err
	}

	// A successful payment usually means a new billing period; reconciling
	// the owning subscription keeps the ledger current without waiting for
	// the subscription.updated event.
	if event.Invoice.SubscriptionID != "" {
		_, err := d.reconciler.Reconcile(ctx, billing.Subscription{
			ExternalID: event.Invoice.SubscriptionID,
			CustomerID: event.Invoice.CustomerID,
		}, "")
		return err
	}

	return nil
}

func (d *WebhookDispatcher) handlePaymentFailed(ctx context.Context, event billing.WebhookEvent) error {
	if event.Invoice == nil {
		return fmt.Errorf("event %s has no invoice payload", event.ExternalID)
	}

	if _, err := d.payments.RecordPayment(ctx, *event.Invoice, nil); err != nil {
		return err
	}

	d.notifyPaymentFailed(ctx, *event.Invoice)
	return nil
}

// notifyPaymentFailed sends a failure notice when email is configured. Every
// error here is swallowed: notification problems must not affect event
// acknowledgement.
func (d *WebhookDispatcher) notifyPaymentFailed(ctx context.Context, invoice billing.Invoice) {
	if !d.email.Enabled() || invoice.CustomerID == "" {
		return
	}

	customer, err := d.provider.GetCustomer(ctx, invoice.CustomerID)
	if err != nil || customer.Email == "" {
		logger.Log.Warn("Skipping payment failed email, no customer email",
			zap.String("stripe_customer_id", invoice.CustomerID),
			zap.Error(err))
		return
	}

	amount := invoice.AmountDue
	if amount == 0 {
		amount = invoice.AmountPaid
	}

	if err := d.email.SendPaymentFailed(customer.Email, PaymentFailedData{
		CustomerName: customer.Name,
		Amount:       fmt.Sprintf("%.2f", float64(amount)/100),
		Currency:     invoice.Currency,
		InvoiceURL:   invoice.HostedInvoiceURL,
	}); err != nil {
		logger.Log.Warn("Failed to send payment failed email",
			zap.String("stripe_invoice_id", invoice.ExternalID),
			zap.Error(err))
	}
}
