package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/subsync/subsync-api/internal/client/billing"
	"github.com/subsync/subsync-api/internal/db"
	"github.com/subsync/subsync-api/internal/logger"
	"github.com/subsync/subsync-api/internal/mocks"
)

func init() {
	logger.InitLogger("test")
}

func newReconcilerForTest(t *testing.T) (*ReconcilerService, *mocks.MockQuerier, *mocks.MockProvider) {
	t.Helper()
	ctrl := gomock.NewController(t)
	querier := mocks.NewMockQuerier(ctrl)
	provider := mocks.NewMockProvider(ctrl)
	resolver := NewCustomerResolver(querier, provider, nil)
	return NewReconcilerService(querier, provider, resolver), querier, provider
}

func TestToBillingTime(t *testing.T) {
	got := toBillingTime(1700000000)
	want := time.Unix(1700000000, 0).UTC().Add(-3 * time.Hour)
	assert.Equal(t, want, got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestPlanNameFor(t *testing.T) {
	tests := []struct {
		name string
		sub  billing.Subscription
		want string
	}{
		{
			name: "nickname wins",
			sub: billing.Subscription{Items: []billing.SubscriptionItem{
				{PriceNickname: "Pro Plan", PriceInterval: "month"},
			}},
			want: "Pro Plan",
		},
		{
			name: "interval when no nickname",
			sub: billing.Subscription{Items: []billing.SubscriptionItem{
				{PriceInterval: "year"},
			}},
			want: "year",
		},
		{
			name: "default when item is bare",
			sub:  billing.Subscription{Items: []billing.SubscriptionItem{{}}},
			want: "monthly",
		},
		{
			name: "default when no items",
			sub:  billing.Subscription{},
			want: "monthly",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, planNameFor(tt.sub))
		})
	}
}

func TestPeriodStart_FallbackChain(t *testing.T) {
	top := billing.Subscription{
		CurrentPeriodStart: 1700000000,
		Items:              []billing.SubscriptionItem{{PeriodStart: 1600000000}},
		StartDate:          1500000000,
	}
	assert.Equal(t, toBillingTime(1700000000), periodStart(top))

	itemLevel := billing.Subscription{
		Items:     []billing.SubscriptionItem{{PeriodStart: 1600000000}},
		StartDate: 1500000000,
	}
	assert.Equal(t, toBillingTime(1600000000), periodStart(itemLevel))

	startOnly := billing.Subscription{StartDate: 1500000000}
	assert.Equal(t, toBillingTime(1500000000), periodStart(startOnly))

	// No timestamps at all falls back to the current time, unshifted.
	before := time.Now().UTC()
	got := periodStart(billing.Subscription{})
	assert.WithinDuration(t, before, got, 5*time.Second)
}

func TestPeriodEnd(t *testing.T) {
	start := toBillingTime(1700000000)

	t.Run("missing end floored to one day after start", func(t *testing.T) {
		end := periodEnd(billing.Subscription{}, start)
		require.True(t, end.Valid)
		assert.Equal(t, start.Add(24*time.Hour), end.Time)
	})

	t.Run("trial end used as last resort", func(t *testing.T) {
		end := periodEnd(billing.Subscription{TrialEnd: 1702592000}, start)
		require.True(t, end.Valid)
		assert.Equal(t, toBillingTime(1702592000), end.Time)
	})

	t.Run("end at or before start floored to one day", func(t *testing.T) {
		end := periodEnd(billing.Subscription{CurrentPeriodEnd: 1700000000}, start)
		require.True(t, end.Valid)
		assert.Equal(t, start.Add(24*time.Hour), end.Time)
	})
}

func TestReconcile_CreatesNewPeriodRow(t *testing.T) {
	svc, querier, provider := newReconcilerForTest(t)
	ctx := context.Background()

	sub := billing.Subscription{
		ExternalID:         "sub_123",
		CustomerID:         "cus_123",
		Status:             "active",
		CurrentPeriodStart: 1700000000,
		CurrentPeriodEnd:   1702592000,
		Items:              []billing.SubscriptionItem{{PriceNickname: "Pro Plan"}},
		Metadata:           map[string]string{"userId": "user-1"},
	}

	provider.EXPECT().GetSubscription(gomock.Any(), "sub_123").Return(sub, nil)
	querier.EXPECT().
		GetSubscriptionByStripePeriod(gomock.Any(), gomock.Any()).
		Return(db.Subscription{}, pgx.ErrNoRows)
	querier.EXPECT().
		GetCurrentSubscriptionByUser(gomock.Any(), "user-1").
		Return(db.Subscription{}, pgx.ErrNoRows)
	querier.EXPECT().
		CreateSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
			assert.Equal(t, "user-1", arg.UserID)
			assert.Equal(t, "cus_123", arg.StripeCustomerID)
			assert.Equal(t, "sub_123", arg.StripeSubscriptionID)
			assert.Equal(t, "active", arg.Status)
			assert.Equal(t, "Pro Plan", arg.PlanName)
			assert.Equal(t, toBillingTime(1700000000), arg.StartDate.Time)
			require.True(t, arg.EndDate.Valid)
			assert.Equal(t, toBillingTime(1702592000), arg.EndDate.Time)
			return db.Subscription{ID: uuid.New(), UserID: arg.UserID, Status: arg.Status, PlanName: arg.PlanName}, nil
		})

	row, err := svc.Reconcile(ctx, billing.Subscription{ExternalID: "sub_123"}, "")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "active", row.Status)
}

func TestReconcile_PatchesDuplicatePeriod(t *testing.T) {
	svc, querier, provider := newReconcilerForTest(t)
	ctx := context.Background()

	sub := billing.Subscription{
		ExternalID:         "sub_123",
		CustomerID:         "cus_123",
		Status:             "past_due",
		CurrentPeriodStart: 1700000000,
		CurrentPeriodEnd:   1702592000,
		Metadata:           map[string]string{"userId": "user-1"},
	}
	existingID := uuid.New()

	provider.EXPECT().GetSubscription(gomock.Any(), "sub_123").Return(sub, nil)
	querier.EXPECT().
		GetSubscriptionByStripePeriod(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.GetSubscriptionByStripePeriodParams) (db.Subscription, error) {
			assert.Equal(t, "sub_123", arg.StripeSubscriptionID)
			assert.Equal(t, toBillingTime(1700000000), arg.StartDate.Time)
			return db.Subscription{ID: existingID, Status: "active"}, nil
		})
	querier.EXPECT().
		UpdateSubscriptionPeriod(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.UpdateSubscriptionPeriodParams) (db.Subscription, error) {
			assert.Equal(t, existingID, arg.ID)
			assert.Equal(t, "past_due", arg.Status)
			return db.Subscription{ID: existingID, Status: arg.Status}, nil
		})

	row, err := svc.Reconcile(ctx, billing.Subscription{ExternalID: "sub_123"}, "")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, existingID, row.ID)
	assert.Equal(t, "past_due", row.Status)
}

func TestReconcile_RollsOverPriorPeriod(t *testing.T) {
	svc, querier, provider := newReconcilerForTest(t)
	ctx := context.Background()

	sub := billing.Subscription{
		ExternalID:         "sub_123",
		CustomerID:         "cus_123",
		Status:             "active",
		CurrentPeriodStart: 1702592000,
		CurrentPeriodEnd:   1705184000,
		Metadata:           map[string]string{"userId": "user-1"},
	}
	priorID := uuid.New()
	priorEnd := pgtype.Timestamptz{Time: toBillingTime(1702592000), Valid: true}

	provider.EXPECT().GetSubscription(gomock.Any(), "sub_123").Return(sub, nil)
	querier.EXPECT().
		GetSubscriptionByStripePeriod(gomock.Any(), gomock.Any()).
		Return(db.Subscription{}, pgx.ErrNoRows)
	querier.EXPECT().
		GetCurrentSubscriptionByUser(gomock.Any(), "user-1").
		Return(db.Subscription{
			ID:        priorID,
			UserID:    "user-1",
			Status:    "active",
			StartDate: pgtype.Timestamptz{Time: toBillingTime(1700000000), Valid: true},
			EndDate:   priorEnd,
		}, nil)
	querier.EXPECT().
		CompleteSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CompleteSubscriptionParams) (db.Subscription, error) {
			assert.Equal(t, priorID, arg.ID)
			assert.Equal(t, priorEnd, arg.EndDate)
			return db.Subscription{ID: priorID, Status: "completed"}, nil
		})
	querier.EXPECT().
		CreateSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
			assert.Equal(t, toBillingTime(1702592000), arg.StartDate.Time)
			return db.Subscription{ID: uuid.New(), Status: arg.Status}, nil
		})

	row, err := svc.Reconcile(ctx, billing.Subscription{ExternalID: "sub_123"}, "")
	require.NoError(t, err)
	require.NotNil(t, row)
}

func TestReconcile_DropsWhenNoUserResolved(t *testing.T) {
	svc, querier, provider := newReconcilerForTest(t)
	ctx := context.Background()

	sub := billing.Subscription{
		ExternalID:         "sub_123",
		CustomerID:         "cus_123",
		Status:             "active",
		CurrentPeriodStart: 1700000000,
	}

	provider.EXPECT().GetSubscription(gomock.Any(), "sub_123").Return(sub, nil)
	provider.EXPECT().
		GetCustomer(gomock.Any(), "cus_123").
		Return(billing.Customer{ExternalID: "cus_123"}, nil)
	querier.EXPECT().
		GetUserIDByStripeCustomerID(gomock.Any(), "cus_123").
		Return("", pgx.ErrNoRows)

	row, err := svc.Reconcile(ctx, billing.Subscription{ExternalID: "sub_123"}, "")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestReconcile_UsesPayloadWhenFetchFails(t *testing.T) {
	svc, querier, provider := newReconcilerForTest(t)
	ctx := context.Background()

	payload := billing.Subscription{
		ExternalID:         "sub_123",
		CustomerID:         "cus_123",
		Status:             "active",
		CurrentPeriodStart: 1700000000,
		Metadata:           map[string]string{"supabase_user_id": "user-legacy"},
	}

	provider.EXPECT().GetSubscription(gomock.Any(), "sub_123").Return(billing.Subscription{}, assert.AnError)
	querier.EXPECT().
		GetSubscriptionByStripePeriod(gomock.Any(), gomock.Any()).
		Return(db.Subscription{}, pgx.ErrNoRows)
	querier.EXPECT().
		GetCurrentSubscriptionByUser(gomock.Any(), "user-legacy").
		Return(db.Subscription{}, pgx.ErrNoRows)
	querier.EXPECT().
		CreateSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
			assert.Equal(t, "user-legacy", arg.UserID)
			return db.Subscription{ID: uuid.New()}, nil
		})

	row, err := svc.Reconcile(ctx, payload, "")
	require.NoError(t, err)
	require.NotNil(t, row)
}

func TestReconcile_RequiresSubscriptionID(t *testing.T) {
	svc, _, _ := newReconcilerForTest(t)

	_, err := svc.Reconcile(context.Background(), billing.Subscription{}, "user-1")
	require.Error(t, err)
}

func TestCancel_ClosesActiveRow(t *testing.T) {
	svc, querier, provider := newReconcilerForTest(t)
	ctx := context.Background()

	sub := billing.Subscription{
		ExternalID:       "sub_123",
		CustomerID:       "cus_123",
		Status:           "canceled",
		CanceledAt:       1701000000,
		CurrentPeriodEnd: 1702592000,
		Metadata:         map[string]string{"userId": "user-1"},
	}
	rowID := uuid.New()

	provider.EXPECT().GetSubscription(gomock.Any(), "sub_123").Return(sub, nil)
	querier.EXPECT().
		GetCurrentSubscriptionByStripeID(gomock.Any(), "sub_123").
		Return(db.Subscription{ID: rowID, Status: "active"}, nil)
	querier.EXPECT().
		CancelSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CancelSubscriptionParams) (db.Subscription, error) {
			assert.Equal(t, rowID, arg.ID)
			assert.Equal(t, toBillingTime(1701000000), arg.CanceledDate.Time)
			assert.Equal(t, toBillingTime(1702592000), arg.EndDate.Time)
			return db.Subscription{ID: rowID, Status: "canceled"}, nil
		})

	row, err := svc.Cancel(ctx, "sub_123", "")
	require.NoError(t, err)
	require.NotNil(t, row)
	assert.Equal(t, "canceled", row.Status)
}

func TestCancel_NoActiveRow(t *testing.T) {
	svc, querier, provider := newReconcilerForTest(t)
	ctx := context.Background()

	provider.EXPECT().
		GetSubscription(gomock.Any(), "sub_gone").
		Return(billing.Subscription{
			ExternalID: "sub_gone",
			Metadata:   map[string]string{"userId": "user-1"},
		}, nil)
	querier.EXPECT().
		GetCurrentSubscriptionByStripeID(gomock.Any(), "sub_gone").
		Return(db.Subscription{}, pgx.ErrNoRows)

	row, err := svc.Cancel(ctx, "sub_gone", "")
	require.NoError(t, err)
	assert.Nil(t, row)
}

func TestMergeMetadata(t *testing.T) {
	fetched := map[string]string{"userId": "fetched-user"}
	event := map[string]string{"userId": "event-user", "plan": "pro"}

	merged := mergeMetadata(fetched, event)

	// Fetched values win; event only fills gaps.
	assert.Equal(t, "fetched-user", merged["userId"])
	assert.Equal(t, "pro", merged["plan"])
}
