package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
	"github.com/subsync/subsync-api/internal/db"
	"github.com/subsync/subsync-api/internal/logger"
)

// providerTimeOffset converts provider-reported UTC timestamps into the
// datastore's billing timezone (UTC-3). Every provider timestamp is shifted
// by this offset before it is stored or compared against stored rows.
const providerTimeOffset = -3 * time.Hour

// defaultPlanName is stored when neither the price nickname nor the billing
// interval is available on the subscription.
const defaultPlanName = "monthly"

// ReconcilerService converts provider subscription state into local
// subscription rows. Rows form an append-only period ledger: each billing
// period gets its own row, keyed by (stripe_subscription_id, start_date),
// and the prior period's row transitions to 'completed' on rollover.
type ReconcilerService struct {
	queries  db.Querier
	provider billing.Provider
	resolver *CustomerResolver
}

// NewReconcilerService creates a ReconcilerService.
func NewReconcilerService(queries db.Querier, provider billing.Provider, resolver *CustomerResolver) *ReconcilerService {
	return &ReconcilerService{
		queries:  queries,
		provider: provider,
		resolver: resolver,
	}
}

// toBillingTime converts a provider Unix timestamp to the stored billing
// timezone.
func toBillingTime(unixSeconds int64) time.Time {
	return time.Unix(unixSeconds, 0).UTC().Add(providerTimeOffset)
}

// planNameFor derives the stored plan name: price nickname first, then the
// billing interval, then the default.
func planNameFor(sub billing.Subscription) string {
	if len(sub.Items) > 0 {
		if nickname := sub.Items[0].PriceNickname; nickname != "" {
			return nickname
		}
		if interval := sub.Items[0].PriceInterval; interval != "" {
			return interval
		}
	}
	return defaultPlanName
}

// periodStart derives the period start: top-level current_period_start,
// item-level period start, subscription start date, then now.
func periodStart(sub billing.Subscription) time.Time {
	if sub.CurrentPeriodStart > 0 {
		return toBillingTime(sub.CurrentPeriodStart)
	}
	if len(sub.Items) > 0 && sub.Items[0].PeriodStart > 0 {
		return toBillingTime(sub.Items[0].PeriodStart)
	}
	if sub.StartDate > 0 {
		return toBillingTime(sub.StartDate)
	}
	return time.Now().UTC()
}

// periodEnd derives the period end: top-level current_period_end, item-level
// period end, then trial end. An end that is missing or at or before the
// start is floored to start plus one day so the row never represents an
// empty period.
func periodEnd(sub billing.Subscription, start time.Time) pgtype.Timestamptz {
	var endUnix int64
	switch {
	case sub.CurrentPeriodEnd > 0:
		endUnix = sub.CurrentPeriodEnd
	case len(sub.Items) > 0 && sub.Items[0].PeriodEnd > 0:
		endUnix = sub.Items[0].PeriodEnd
	case sub.TrialEnd > 0:
		endUnix = sub.TrialEnd
	default:
		return pgtype.Timestamptz{Time: start.Add(24 * time.Hour), Valid: true}
	}

	end := toBillingTime(endUnix)
	if !end.After(start) {
		end = start.Add(24 * time.Hour)
	}
	return pgtype.Timestamptz{Time: end, Valid: true}
}

// resolveSubscriptionUser resolves the owning user: explicit argument first,
// then subscription metadata, then the resolver chain.
func (s *ReconcilerService) resolveSubscriptionUser(ctx context.Context, sub billing.Subscription, userID string) (string, bool) {
	if userID != "" {
		return userID, true
	}
	if id := sub.Metadata[metadataUserIDKey]; id != "" {
		return id, true
	}
	if id := sub.Metadata[metadataLegacyUserIDKey]; id != "" {
		return id, true
	}
	return s.resolver.ResolveUserID(ctx, sub.CustomerID)
}

// Reconcile folds a provider subscription into the local ledger. The
// subscription is re-fetched by ID so webhook payloads that arrive stale or
// partial do not poison the row; on fetch failure the payload is used as-is.
// Returns (nil, nil) when no owning user can be resolved; the event is
// dropped by design.
func (s *ReconcilerService) Reconcile(ctx context.Context, sub billing.Subscription, userID string) (*db.Subscription, error) {
	if sub.ExternalID == "" {
		return nil, fmt.Errorf("subscription ID is required")
	}

	fetched, err := s.provider.GetSubscription(ctx, sub.ExternalID)
	if err != nil {
		logger.Log.Warn("Provider subscription fetch failed, using event payload",
			zap.String("stripe_subscription_id", sub.ExternalID),
			zap.Error(err))
	} else {
		fetched.Metadata = mergeMetadata(fetched.Metadata, sub.Metadata)
		sub = fetched
	}

	resolvedUserID, ok := s.resolveSubscriptionUser(ctx, sub, userID)
	if !ok {
		logger.Log.Warn("Dropping subscription event, no user resolved",
			zap.String("stripe_subscription_id", sub.ExternalID),
			zap.String("stripe_customer_id", sub.CustomerID))
		return nil, nil
	}

	plan := planNameFor(sub)
	start := periodStart(sub)
	end := periodEnd(sub, start)
	startTs := pgtype.Timestamptz{Time: start, Valid: true}

	// Duplicate-period guard: a row for this exact provider period is
	// patched in place, never duplicated.
	existing, err := s.queries.GetSubscriptionByStripePeriod(ctx, db.GetSubscriptionByStripePeriodParams{
		StripeSubscriptionID: sub.ExternalID,
		StartDate:            startTs,
	})
	if err == nil {
		updated, err := s.queries.UpdateSubscriptionPeriod(ctx, db.UpdateSubscriptionPeriodParams{
			ID:       existing.ID,
			Status:   sub.Status,
			PlanName: plan,
			EndDate:  end,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to update subscription period: %w", err)
		}
		logger.Log.Info("Updated existing subscription period",
			zap.String("stripe_subscription_id", sub.ExternalID),
			zap.String("subscription_id", updated.ID.String()),
			zap.String("status", updated.Status))
		return &updated, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to check for existing period: %w", err)
	}

	// Rollover: the user's current row belongs to an older period, so it is
	// closed out as completed before the new period's row is inserted.
	current, err := s.queries.GetCurrentSubscriptionByUser(ctx, resolvedUserID)
	if err == nil && !current.StartDate.Time.Equal(start) {
		rolloverEnd := current.EndDate
		if !rolloverEnd.Valid {
			rolloverEnd = startTs
		}
		if _, err := s.queries.CompleteSubscription(ctx, db.CompleteSubscriptionParams{
			ID:      current.ID,
			EndDate: rolloverEnd,
		}); err != nil {
			return nil, fmt.Errorf("failed to complete prior subscription period: %w", err)
		}
		logger.Log.Info("Rolled over subscription period",
			zap.String("user_id", resolvedUserID),
			zap.String("completed_subscription_id", current.ID.String()))
	} else if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to load current subscription: %w", err)
	}

	created, err := s.queries.CreateSubscription(ctx, db.CreateSubscriptionParams{
		UserID:               resolvedUserID,
		StripeCustomerID:     sub.CustomerID,
		StripeSubscriptionID: sub.ExternalID,
		Status:               sub.Status,
		PlanName:             plan,
		StartDate:            startTs,
		EndDate:              end,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create subscription row: %w", err)
	}

	logger.Log.Info("Created subscription period row",
		zap.String("user_id", resolvedUserID),
		zap.String("stripe_subscription_id", sub.ExternalID),
		zap.String("subscription_id", created.ID.String()),
		zap.String("status", created.Status),
		zap.String("plan_name", created.PlanName))

	return &created, nil
}

// Cancel closes out the local row for a provider subscription that has been
// deleted. Returns (nil, nil) when no active local row exists.
func (s *ReconcilerService) Cancel(ctx context.Context, subscriptionID string, userID string) (*db.Subscription, error) {
	if subscriptionID == "" {
		return nil, fmt.Errorf("subscription ID is required")
	}

	sub := billing.Subscription{ExternalID: subscriptionID}
	fetched, err := s.provider.GetSubscription(ctx, subscriptionID)
	if err != nil {
		logger.Log.Warn("Provider subscription fetch failed during cancel",
			zap.String("stripe_subscription_id", subscriptionID),
			zap.Error(err))
	} else {
		sub = fetched
	}

	if resolved, ok := s.resolveSubscriptionUser(ctx, sub, userID); ok {
		userID = resolved
	}

	canceledAt := time.Now().UTC()
	if sub.CanceledAt > 0 {
		canceledAt = toBillingTime(sub.CanceledAt)
	}

	endDate := pgtype.Timestamptz{Time: canceledAt, Valid: true}
	if sub.CurrentPeriodEnd > 0 {
		endDate = pgtype.Timestamptz{Time: toBillingTime(sub.CurrentPeriodEnd), Valid: true}
	} else if len(sub.Items) > 0 && sub.Items[0].PeriodEnd > 0 {
		endDate = pgtype.Timestamptz{Time: toBillingTime(sub.Items[0].PeriodEnd), Valid: true}
	}

	current, err := s.queries.GetCurrentSubscriptionByStripeID(ctx, subscriptionID)
	if errors.Is(err, pgx.ErrNoRows) {
		logger.Log.Info("No active local row for canceled subscription",
			zap.String("stripe_subscription_id", subscriptionID),
			zap.String("user_id", userID))
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load active subscription: %w", err)
	}

	canceled, err := s.queries.CancelSubscription(ctx, db.CancelSubscriptionParams{
		ID:           current.ID,
		CanceledDate: pgtype.Timestamptz{Time: canceledAt, Valid: true},
		EndDate:      endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cancel subscription row: %w", err)
	}

	logger.Log.Info("Canceled subscription row",
		zap.String("stripe_subscription_id", subscriptionID),
		zap.String("subscription_id", canceled.ID.String()))

	return &canceled, nil
}

// mergeMetadata overlays event metadata onto fetched metadata; event keys win
// only where the fetched object has no value.
func mergeMetadata(fetched, event map[string]string) map[string]string {
	if len(event) == 0 {
		return fetched
	}
	if fetched == nil {
		fetched = make(map[string]string, len(event))
	}
	for k, v := range event {
		if _, ok := fetched[k]; !ok {
			fetched[k] = v
		}
	}
	return fetched
}
