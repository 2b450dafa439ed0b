package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/subsync/subsync-api/internal/client/billing"
	"github.com/subsync/subsync-api/internal/db"
	"github.com/subsync/subsync-api/internal/mocks"
)

func newPaymentServiceForTest(t *testing.T) (*PaymentService, *mocks.MockQuerier, *mocks.MockProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	querier := mocks.NewMockQuerier(ctrl)
	provider := mocks.NewMockProvider(ctrl)
	resolver := NewCustomerResolver(querier, provider, nil)
	return NewPaymentService(querier, resolver), querier, provider
}

func TestClassifyInvoiceStatus(t *testing.T) {
	tests := []struct {
		status string
		want   string
	}{
		{"paid", "completed"},
		{"open", "pending"},
		{"uncollectible", "failed"},
		{"void", "failed"},
		{"draft", "pending"},
		{"", "pending"},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyInvoiceStatus(tt.status))
		})
	}
}

func TestRecordPayment_InsertsRow(t *testing.T) {
	svc, querier, _ := newPaymentServiceForTest(t)
	ctx := context.Background()

	invoice := billing.Invoice{
		ExternalID:      "in_123",
		CustomerID:      "cus_123",
		PaymentIntentID: "pi_123",
		Status:          "paid",
		AmountPaid:      2599,
		Created:         1700000000,
		Metadata:        map[string]string{"userId": "user-1"},
	}

	querier.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
			assert.Equal(t, "user-1", arg.UserID)
			assert.Equal(t, "pi_123", arg.StripePaymentID)
			assert.Equal(t, "completed", arg.PaymentStatus)
			assert.Equal(t, 25.99, arg.Amount)
			assert.Equal(t, toBillingTime(1700000000), arg.TransactionDate.Time)
			assert.False(t, arg.SubscriptionID.Valid)
			return db.Payment{ID: uuid.New(), UserID: arg.UserID, Amount: arg.Amount, StripePaymentID: arg.StripePaymentID, PaymentStatus: arg.PaymentStatus}, nil
		})

	payment, err := svc.RecordPayment(ctx, invoice, nil)
	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, 25.99, payment.Amount)
}

func TestRecordPayment_ReplayInsertsAgain(t *testing.T) {
	svc, querier, _ := newPaymentServiceForTest(t)
	ctx := context.Background()

	invoice := billing.Invoice{
		ExternalID:      "in_123",
		CustomerID:      "cus_123",
		PaymentIntentID: "pi_123",
		Status:          "paid",
		AmountPaid:      1000,
		Metadata:        map[string]string{"userId": "user-1"},
	}

	querier.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		Return(db.Payment{ID: uuid.New()}, nil).
		Times(2)

	_, err := svc.RecordPayment(ctx, invoice, nil)
	require.NoError(t, err)
	_, err = svc.RecordPayment(ctx, invoice, nil)
	require.NoError(t, err)
}

func TestRecordPayment_FailedInvoiceFallsBackToAmountDue(t *testing.T) {
	svc, querier, _ := newPaymentServiceForTest(t)
	ctx := context.Background()

	invoice := billing.Invoice{
		ExternalID: "in_456",
		CustomerID: "cus_123",
		Status:     "open",
		AmountDue:  4999,
		AmountPaid: 0,
		Metadata:   map[string]string{"userId": "user-1"},
	}

	querier.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
			assert.Equal(t, 49.99, arg.Amount)
			assert.Equal(t, "pending", arg.PaymentStatus)
			// No payment intent on the invoice, so the invoice ID stands in.
			assert.Equal(t, "in_456", arg.StripePaymentID)
			return db.Payment{ID: uuid.New()}, nil
		})

	_, err := svc.RecordPayment(ctx, invoice, nil)
	require.NoError(t, err)
}

func TestRecordPayment_LinksLatestSubscriptionRow(t *testing.T) {
	svc, querier, _ := newPaymentServiceForTest(t)
	ctx := context.Background()

	rowID := uuid.New()
	invoice := billing.Invoice{
		ExternalID:     "in_789",
		CustomerID:     "cus_123",
		SubscriptionID: "sub_123",
		Status:         "paid",
		AmountPaid:     1000,
		Metadata:       map[string]string{"userId": "user-1"},
	}

	querier.EXPECT().
		GetLatestSubscriptionByStripeID(gomock.Any(), "sub_123").
		Return(db.Subscription{ID: rowID}, nil)
	querier.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
			require.True(t, arg.SubscriptionID.Valid)
			assert.Equal(t, [16]byte(rowID), arg.SubscriptionID.Bytes)
			return db.Payment{ID: uuid.New()}, nil
		})

	_, err := svc.RecordPayment(ctx, invoice, nil)
	require.NoError(t, err)
}

func TestRecordPayment_ExplicitSubscriptionRowWins(t *testing.T) {
	svc, querier, _ := newPaymentServiceForTest(t)
	ctx := context.Background()

	rowID := uuid.New()
	invoice := billing.Invoice{
		ExternalID:     "in_789",
		CustomerID:     "cus_123",
		SubscriptionID: "sub_123",
		Status:         "paid",
		AmountPaid:     1000,
		Metadata:       map[string]string{"userId": "user-1"},
	}

	// No lookup by provider subscription ID when a row is handed in.
	querier.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
			require.True(t, arg.SubscriptionID.Valid)
			assert.Equal(t, [16]byte(rowID), arg.SubscriptionID.Bytes)
			return db.Payment{ID: uuid.New()}, nil
		})

	_, err := svc.RecordPayment(ctx, invoice, &rowID)
	require.NoError(t, err)
}

func TestRecordPayment_DropsWhenNoUserResolved(t *testing.T) {
	svc, querier, provider := newPaymentServiceForTest(t)
	ctx := context.Background()

	invoice := billing.Invoice{
		ExternalID: "in_123",
		CustomerID: "cus_unknown",
		Status:     "paid",
		AmountPaid: 1000,
	}

	provider.EXPECT().
		GetCustomer(gomock.Any(), "cus_unknown").
		Return(billing.Customer{ExternalID: "cus_unknown"}, nil)
	querier.EXPECT().
		GetUserIDByStripeCustomerID(gomock.Any(), "cus_unknown").
		Return("", pgx.ErrNoRows)

	payment, err := svc.RecordPayment(ctx, invoice, nil)
	require.NoError(t, err)
	assert.Nil(t, payment)
}

func TestRecordPayment_RequiresInvoiceID(t *testing.T) {
	svc, _, _ := newPaymentServiceForTest(t)

	_, err := svc.RecordPayment(context.Background(), billing.Invoice{}, nil)
	require.Error(t, err)
}
