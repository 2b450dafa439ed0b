package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
)

// mapStripeInvoiceToBillingInvoice converts a Stripe Invoice object to the
// canonical billing.Invoice. On the current API version the owning
// subscription hangs off Invoice.Parent and the payment intent off
// Invoice.Payments; neither is a top-level field anymore.
func mapStripeInvoiceToBillingInvoice(stripeInv *stripe.Invoice) billing.Invoice {
	if stripeInv == nil {
		return billing.Invoice{}
	}

	var customerID string
	if stripeInv.Customer != nil {
		customerID = stripeInv.Customer.ID
	}

	var subscriptionID string
	if stripeInv.Parent != nil && stripeInv.Parent.SubscriptionDetails != nil && stripeInv.Parent.SubscriptionDetails.Subscription != nil {
		subscriptionID = stripeInv.Parent.SubscriptionDetails.Subscription.ID
	}

	var paymentIntentID string
	if stripeInv.Payments != nil && len(stripeInv.Payments.Data) > 0 {
		firstPayment := stripeInv.Payments.Data[0]
		if firstPayment != nil && firstPayment.Payment != nil && firstPayment.Payment.PaymentIntent != nil {
			paymentIntentID = firstPayment.Payment.PaymentIntent.ID
		}
	}

	return billing.Invoice{
		ExternalID:       stripeInv.ID,
		CustomerID:       customerID,
		SubscriptionID:   subscriptionID,
		PaymentIntentID:  paymentIntentID,
		Status:           string(stripeInv.Status),
		AmountDue:        stripeInv.AmountDue,
		AmountPaid:       stripeInv.AmountPaid,
		Currency:         string(stripeInv.Currency),
		Created:          stripeInv.Created,
		AttemptCount:     stripeInv.AttemptCount,
		HostedInvoiceURL: stripeInv.HostedInvoiceURL,
		Metadata:         stripeInv.Metadata,
	}
}

// GetInvoice retrieves an invoice by its external ID from Stripe.
func (s *Service) GetInvoice(ctx context.Context, externalID string) (billing.Invoice, error) {
	if s.client == nil {
		return billing.Invoice{}, fmt.Errorf("stripe client not configured")
	}

	params := &stripe.InvoiceRetrieveParams{}
	params.AddExpand("customer")
	params.AddExpand("parent.subscription_details.subscription")
	params.AddExpand("payments")

	stripeInv, err := s.client.V1Invoices.Retrieve(ctx, externalID, params)
	if err != nil {
		s.logger.Error("Failed to fetch Stripe invoice", zap.Error(err), zap.String("stripe_invoice_id", externalID))
		return billing.Invoice{}, fmt.Errorf("stripe_service.GetInvoice: %w", err)
	}

	return mapStripeInvoiceToBillingInvoice(stripeInv), nil
}
