package services

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/client/billing"
	"github.com/subsync/subsync-api/internal/db"
	"github.com/subsync/subsync-api/internal/logger"
)

// syncStatuses are the local statuses the catch-up pass considers live.
var syncStatuses = []string{"active", "trialing", "past_due"}

// SyncResult summarizes a catch-up pass.
type SyncResult struct {
	Updated int `json:"updated"`
	Errors  int `json:"errors"`
	Total   int `json:"total"`
}

// SyncService walks the live local rows and reconciles any whose provider
// state has drifted, catching up on webhooks that were missed or dropped.
// Rows are processed sequentially; per-row failures are counted and skipped.
type SyncService struct {
	queries    db.Querier
	provider   billing.Provider
	reconciler *ReconcilerService
}

// NewSyncService creates a SyncService.
func NewSyncService(queries db.Querier, provider billing.Provider, reconciler *ReconcilerService) *SyncService {
	return &SyncService{
		queries:    queries,
		provider:   provider,
		reconciler: reconciler,
	}
}

// SyncSubscriptions reconciles every live local row against provider state.
// The pass itself only fails when the local rows cannot be loaded; everything
// downstream is counted per row.
func (s *SyncService) SyncSubscriptions(ctx context.Context) (SyncResult, error) {
	rows, err := s.queries.ListSubscriptionsByStatus(ctx, syncStatuses)
	if err != nil {
		return SyncResult{}, errors.Wrap(err, "failed to list live subscriptions")
	}

	result := SyncResult{Total: len(rows)}

	for _, row := range rows {
		sub, err := s.provider.GetSubscription(ctx, row.StripeSubscriptionID)
		if err != nil {
			logger.Log.Warn("Sync: provider fetch failed",
				zap.String("stripe_subscription_id", row.StripeSubscriptionID),
				zap.Error(err))
			result.Errors++
			continue
		}

		if !s.hasDrift(row, sub) {
			continue
		}

		if _, err := s.reconciler.Reconcile(ctx, sub, row.UserID); err != nil {
			logger.Log.Warn("Sync: reconcile failed",
				zap.String("stripe_subscription_id", row.StripeSubscriptionID),
				zap.Error(err))
			result.Errors++
			continue
		}
		result.Updated++
	}

	logger.Log.Info("Subscription sync pass complete",
		zap.Int("total", result.Total),
		zap.Int("updated", result.Updated),
		zap.Int("errors", result.Errors))

	return result, nil
}

// hasDrift reports whether the provider subscription disagrees with the local
// row on status or period end.
func (s *SyncService) hasDrift(row db.Subscription, sub billing.Subscription) bool {
	if sub.Status != row.Status {
		return true
	}

	providerEnd := periodEnd(sub, periodStart(sub))
	if providerEnd.Valid != row.EndDate.Valid {
		return true
	}
	if providerEnd.Valid && !providerEnd.Time.Truncate(time.Second).Equal(row.EndDate.Time.Truncate(time.Second)) {
		return true
	}
	return false
}
