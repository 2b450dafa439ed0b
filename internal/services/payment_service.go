package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
	"github.com/subsync/subsync-api/internal/db"
	"github.com/subsync/subsync-api/internal/logger"
)

// PaymentService records provider invoices as local payment rows. Rows are
// append-only: webhook replays and retried invoices insert again rather than
// upsert, keeping every attempt visible.
type PaymentService struct {
	queries  db.Querier
	resolver *CustomerResolver
}

// NewPaymentService creates a PaymentService.
func NewPaymentService(queries db.Querier, resolver *CustomerResolver) *PaymentService {
	return &PaymentService{
		queries:  queries,
		resolver: resolver,
	}
}

// classifyInvoiceStatus maps a provider invoice status onto the local payment
// status vocabulary.
func classifyInvoiceStatus(status string) string {
	switch status {
	case "paid":
		return "completed"
	case "open":
		return "pending"
	case "uncollectible", "void":
		return "failed"
	default:
		return "pending"
	}
}

// RecordPayment inserts a payment row for a provider invoice. The optional
// subscriptionRowID links the payment to a known local subscription row; when
// absent, the latest local row for the invoice's subscription is used if one
// exists. Returns (nil, nil) when no owning user can be resolved.
func (s *PaymentService) RecordPayment(ctx context.Context, invoice billing.Invoice, subscriptionRowID *uuid.UUID) (*db.Payment, error) {
	if invoice.ExternalID == "" {
		return nil, fmt.Errorf("invoice ID is required")
	}

	userID, ok := s.resolveInvoiceUser(ctx, invoice)
	if !ok {
		logger.Log.Warn("Dropping invoice event, no user resolved",
			zap.String("stripe_invoice_id", invoice.ExternalID),
			zap.String("stripe_customer_id", invoice.CustomerID))
		return nil, nil
	}

	amountMinor := invoice.AmountPaid
	if amountMinor == 0 {
		amountMinor = invoice.AmountDue
	}

	paymentID := invoice.PaymentIntentID
	if paymentID == "" {
		paymentID = invoice.ExternalID
	}

	transactionDate := time.Now().UTC()
	if invoice.Created > 0 {
		transactionDate = toBillingTime(invoice.Created)
	}

	subscriptionRef := pgtype.UUID{}
	if subscriptionRowID != nil {
		subscriptionRef = pgtype.UUID{Bytes: [16]byte(*subscriptionRowID), Valid: true}
	} else if invoice.SubscriptionID != "" {
		if row, err := s.queries.GetLatestSubscriptionByStripeID(ctx, invoice.SubscriptionID); err == nil {
			subscriptionRef = pgtype.UUID{Bytes: [16]byte(row.ID), Valid: true}
		}
	}

	payment, err := s.queries.CreatePayment(ctx, db.CreatePaymentParams{
		UserID:          userID,
		SubscriptionID:  subscriptionRef,
		Amount:          float64(amountMinor) / 100,
		StripePaymentID: paymentID,
		PaymentStatus:   classifyInvoiceStatus(invoice.Status),
		TransactionDate: pgtype.Timestamptz{Time: transactionDate, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment row: %w", err)
	}

	logger.Log.Info("Recorded payment",
		zap.String("user_id", userID),
		zap.String("stripe_payment_id", payment.StripePaymentID),
		zap.String("payment_status", payment.PaymentStatus),
		zap.Float64("amount", payment.Amount))

	return &payment, nil
}

func (s *PaymentService) resolveInvoiceUser(ctx context.Context, invoice billing.Invoice) (string, bool) {
	if userID := invoice.Metadata[metadataUserIDKey]; userID != "" {
		return userID, true
	}
	if userID := invoice.Metadata[metadataLegacyUserIDKey]; userID != "" {
		return userID, true
	}
	return s.resolver.ResolveUserID(ctx, invoice.CustomerID)
}
