package stripe

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
)

// mapStripePaymentMethodToBillingPaymentMethod converts a Stripe
// PaymentMethod to the canonical billing.PaymentMethod.
func mapStripePaymentMethodToBillingPaymentMethod(stripePM *stripe.PaymentMethod, defaultPMID string) billing.PaymentMethod {
	if stripePM == nil {
		return billing.PaymentMethod{}
	}

	pm := billing.PaymentMethod{
		ExternalID: stripePM.ID,
		IsDefault:  defaultPMID != "" && stripePM.ID == defaultPMID,
	}

	if stripePM.Card != nil {
		pm.Brand = string(stripePM.Card.Brand)
		pm.Last4 = stripePM.Card.Last4
		pm.ExpMonth = stripePM.Card.ExpMonth
		pm.ExpYear = stripePM.Card.ExpYear
	}

	return pm
}

// CreateSetupIntent creates an off-session setup intent for collecting a card.
func (s *Service) CreateSetupIntent(ctx context.Context, customerID string) (billing.SetupIntent, error) {
	if s.client == nil {
		return billing.SetupIntent{}, fmt.Errorf("stripe client not configured")
	}

	params := &stripe.SetupIntentCreateParams{
		Customer:           stripe.String(customerID),
		Usage:              stripe.String("off_session"),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
	}

	intent, err := s.client.V1SetupIntents.Create(ctx, params)
	if err != nil {
		s.logger.Error("Failed to create Stripe setup intent", zap.Error(err), zap.String("stripe_customer_id", customerID))
		return billing.SetupIntent{}, fmt.Errorf("stripe_service.CreateSetupIntent: %w", err)
	}

	return mapStripeSetupIntentToBillingSetupIntent(intent), nil
}

// GetSetupIntent retrieves a setup intent by its external ID from Stripe.
func (s *Service) GetSetupIntent(ctx context.Context, externalID string) (billing.SetupIntent, error) {
	if s.client == nil {
		return billing.SetupIntent{}, fmt.Errorf("stripe client not configured")
	}

	intent, err := s.client.V1SetupIntents.Retrieve(ctx, externalID, &stripe.SetupIntentRetrieveParams{})
	if err != nil {
		s.logger.Error("Failed to fetch Stripe setup intent", zap.Error(err), zap.String("setup_intent_id", externalID))
		return billing.SetupIntent{}, fmt.Errorf("stripe_service.GetSetupIntent: %w", err)
	}

	return mapStripeSetupIntentToBillingSetupIntent(intent), nil
}

func mapStripeSetupIntentToBillingSetupIntent(intent *stripe.SetupIntent) billing.SetupIntent {
	if intent == nil {
		return billing.SetupIntent{}
	}

	si := billing.SetupIntent{
		ExternalID:   intent.ID,
		ClientSecret: intent.ClientSecret,
		Status:       string(intent.Status),
	}
	if intent.PaymentMethod != nil {
		si.PaymentMethodID = intent.PaymentMethod.ID
	}
	return si
}

// ListPaymentMethods lists the card payment methods attached to a customer,
// flagging the customer's default.
func (s *Service) ListPaymentMethods(ctx context.Context, customerID string) ([]billing.PaymentMethod, error) {
	if s.client == nil {
		return nil, fmt.Errorf("stripe client not configured")
	}

	defaultPMID, err := s.defaultPaymentMethodID(ctx, customerID)
	if err != nil {
		// The default marker is cosmetic; listing proceeds without it.
		s.logger.Warn("Failed to resolve default payment method", zap.Error(err), zap.String("stripe_customer_id", customerID))
	}

	listParams := &stripe.PaymentMethodListParams{
		Customer: stripe.String(customerID),
		Type:     stripe.String(string(stripe.PaymentMethodTypeCard)),
	}

	var methods []billing.PaymentMethod
	for stripePM, err := range s.client.V1PaymentMethods.List(ctx, listParams) {
		if err != nil {
			s.logger.Error("Error iterating Stripe payment methods list", zap.Error(err), zap.String("stripe_customer_id", customerID))
			return nil, fmt.Errorf("stripe_service.ListPaymentMethods: error during iteration: %w", err)
		}
		if stripePM == nil {
			continue
		}
		methods = append(methods, mapStripePaymentMethodToBillingPaymentMethod(stripePM, defaultPMID))
	}

	return methods, nil
}

// AttachPaymentMethod attaches a payment method to a customer.
func (s *Service) AttachPaymentMethod(ctx context.Context, customerID string, paymentMethodID string) (billing.PaymentMethod, error) {
	if s.client == nil {
		return billing.PaymentMethod{}, fmt.Errorf("stripe client not configured")
	}

	params := &stripe.PaymentMethodAttachParams{
		Customer: stripe.String(customerID),
	}

	stripePM, err := s.client.V1PaymentMethods.Attach(ctx, paymentMethodID, params)
	if err != nil {
		s.logger.Error("Failed to attach Stripe payment method", zap.Error(err),
			zap.String("stripe_customer_id", customerID),
			zap.String("payment_method_id", paymentMethodID))
		return billing.PaymentMethod{}, fmt.Errorf("stripe_service.AttachPaymentMethod: %w", err)
	}

	s.logger.Info("Successfully attached Stripe payment method",
		zap.String("stripe_customer_id", customerID),
		zap.String("payment_method_id", paymentMethodID))
	return mapStripePaymentMethodToBillingPaymentMethod(stripePM, ""), nil
}

// DetachPaymentMethod removes a payment method from its customer.
func (s *Service) DetachPaymentMethod(ctx context.Context, paymentMethodID string) error {
	if s.client == nil {
		return fmt.Errorf("stripe client not configured")
	}

	_, err := s.client.V1PaymentMethods.Detach(ctx, paymentMethodID, &stripe.PaymentMethodDetachParams{})
	if err != nil {
		s.logger.Error("Failed to detach Stripe payment method", zap.Error(err), zap.String("payment_method_id", paymentMethodID))
		return fmt.Errorf("stripe_service.DetachPaymentMethod: %w", err)
	}

	return nil
}

// SetDefaultPaymentMethod sets the customer's default payment method for
// invoices.
func (s *Service) SetDefaultPaymentMethod(ctx context.Context, customerID string, paymentMethodID string) error {
	if s.client == nil {
		return fmt.Errorf("stripe client not configured")
	}

	params := &stripe.CustomerUpdateParams{
		InvoiceSettings: &stripe.CustomerUpdateInvoiceSettingsParams{
			DefaultPaymentMethod: stripe.String(paymentMethodID),
		},
	}

	_, err := s.client.V1Customers.Update(ctx, customerID, params)
	if err != nil {
		s.logger.Error("Failed to set default Stripe payment method", zap.Error(err),
			zap.String("stripe_customer_id", customerID),
			zap.String("payment_method_id", paymentMethodID))
		return fmt.Errorf("stripe_service.SetDefaultPaymentMethod: %w", err)
	}

	return nil
}

func (s *Service) defaultPaymentMethodID(ctx context.Context, customerID string) (string, error) {
	params := &stripe.CustomerRetrieveParams{}
	params.AddExpand("invoice_settings.default_payment_method")

	stripeCust, err := s.client.V1Customers.Retrieve(ctx, customerID, params)
	if err != nil {
		return "", err
	}
	if stripeCust.InvoiceSettings != nil && stripeCust.InvoiceSettings.DefaultPaymentMethod != nil {
		return stripeCust.InvoiceSettings.DefaultPaymentMethod.ID, nil
	}
	return "", nil
}
