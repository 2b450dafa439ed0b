// Package billing defines provider-neutral billing types and the Provider
// interface. Concrete implementations (currently Stripe) live in
// subpackages; the rest of the codebase works exclusively with these
// canonical structs so provider SDK types never leak into services or
// handlers.
package billing

import (
	"context"
)

// Customer is the canonical representation of a billing-provider customer.
type Customer struct {
	ExternalID string            `json:"external_id"`
	Email      string            `json:"email"`
	Name       string            `json:"name"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// SubscriptionItem is a single line item on a subscription. Billing periods
// live at the item level on current provider API versions, so each item
// carries its own period boundaries.
type SubscriptionItem struct {
	ExternalID    string `json:"external_id"`
	PriceID       string `json:"price_id"`
	PriceNickname string `json:"price_nickname,omitempty"`
	PriceInterval string `json:"price_interval,omitempty"`
	Quantity      int    `json:"quantity"`
	PeriodStart   int64  `json:"period_start,omitempty"`
	PeriodEnd     int64  `json:"period_end,omitempty"`
}

// Subscription is the canonical representation of a provider subscription.
// All timestamps are Unix seconds as reported by the provider.
type Subscription struct {
	ExternalID         string             `json:"external_id"`
	CustomerID         string             `json:"customer_id"`
	Status             string             `json:"status"`
	CurrentPeriodStart int64              `json:"current_period_start,omitempty"`
	CurrentPeriodEnd   int64              `json:"current_period_end,omitempty"`
	StartDate          int64              `json:"start_date,omitempty"`
	TrialEnd           int64              `json:"trial_end,omitempty"`
	CancelAtPeriodEnd  bool               `json:"cancel_at_period_end"`
	CanceledAt         int64              `json:"canceled_at,omitempty"`
	EndedAt            int64              `json:"ended_at,omitempty"`
	Items              []SubscriptionItem `json:"items,omitempty"`
	Metadata           map[string]string  `json:"metadata,omitempty"`
	LatestInvoiceID    string             `json:"latest_invoice_id,omitempty"`
	// ClientSecret is populated on creation when the provider requires a
	// client-side payment confirmation step.
	ClientSecret string `json:"client_secret,omitempty"`
}

// Invoice is the canonical representation of a provider invoice.
type Invoice struct {
	ExternalID      string            `json:"external_id"`
	CustomerID      string            `json:"customer_id"`
	SubscriptionID  string            `json:"subscription_id,omitempty"`
	PaymentIntentID string            `json:"payment_intent_id,omitempty"`
	Status          string            `json:"status"`
	AmountDue       int64             `json:"amount_due"`
	AmountPaid      int64             `json:"amount_paid"`
	Currency        string            `json:"currency"`
	Created         int64             `json:"created"`
	AttemptCount    int64             `json:"attempt_count"`
	HostedInvoiceURL string           `json:"hosted_invoice_url,omitempty"`
	Metadata        map[string]string `json:"metadata,omitempty"`
}

// PaymentMethod is the canonical representation of a stored card.
type PaymentMethod struct {
	ExternalID string `json:"external_id"`
	Brand      string `json:"brand"`
	Last4      string `json:"last4"`
	ExpMonth   int64  `json:"exp_month"`
	ExpYear    int64  `json:"exp_year"`
	IsDefault  bool   `json:"is_default"`
}

// SetupIntent carries the client-side secrets needed to collect a payment
// method.
type SetupIntent struct {
	ExternalID      string `json:"external_id"`
	ClientSecret    string `json:"client_secret"`
	Status          string `json:"status"`
	PaymentMethodID string `json:"payment_method_id,omitempty"`
}

// WebhookEvent is a verified provider event mapped to canonical payloads.
// Exactly one of Subscription / Invoice is non-nil for event types this
// system processes; both are nil for event types it acknowledges untouched.
type WebhookEvent struct {
	ExternalID   string        `json:"external_id"`
	Type         string        `json:"type"`
	Subscription *Subscription `json:"subscription,omitempty"`
	Invoice      *Invoice      `json:"invoice,omitempty"`
	RawData      []byte        `json:"-"`
}

// CreateCustomerParams are the inputs for customer creation. Metadata keys
// carry the application user ID so webhook events can be joined back to a
// user later.
type CreateCustomerParams struct {
	UserID string
	Email  string
	Name   string
}

// CreateSubscriptionParams are the inputs for subscription creation.
type CreateSubscriptionParams struct {
	CustomerID      string
	PriceID         string
	PaymentMethodID string
	Metadata        map[string]string
}

// Provider is the full surface this system needs from a billing provider.
type Provider interface {
	GetServiceName() string
	CheckConnection(ctx context.Context) error

	CreateCustomer(ctx context.Context, params CreateCustomerParams) (Customer, error)
	GetCustomer(ctx context.Context, externalID string) (Customer, error)
	FindCustomerByUserID(ctx context.Context, userID string) (Customer, bool, error)
	CreateEphemeralKey(ctx context.Context, customerID string) (string, error)

	CreateSetupIntent(ctx context.Context, customerID string) (SetupIntent, error)
	GetSetupIntent(ctx context.Context, externalID string) (SetupIntent, error)

	CreateSubscription(ctx context.Context, params CreateSubscriptionParams) (Subscription, error)
	GetSubscription(ctx context.Context, externalID string) (Subscription, error)
	ListSubscriptionsByCustomer(ctx context.Context, customerID string) ([]Subscription, error)
	CancelSubscriptionAtPeriodEnd(ctx context.Context, externalID string) (Subscription, error)

	GetInvoice(ctx context.Context, externalID string) (Invoice, error)

	ListPaymentMethods(ctx context.Context, customerID string) ([]PaymentMethod, error)
	AttachPaymentMethod(ctx context.Context, customerID string, paymentMethodID string) (PaymentMethod, error)
	DetachPaymentMethod(ctx context.Context, paymentMethodID string) error
	SetDefaultPaymentMethod(ctx context.Context, customerID string, paymentMethodID string) error

	VerifyWebhook(payload []byte, signatureHeader string) (WebhookEvent, error)
}
