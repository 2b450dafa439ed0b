package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/subsync/subsync-api/internal/client/billing"
	"github.com/subsync/subsync-api/internal/db"
	"github.com/subsync/subsync-api/internal/logger"
	"github.com/subsync/subsync-api/internal/mocks"
	"github.com/subsync/subsync-api/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
}

type webhookTestEnv struct {
	router   *gin.Engine
	querier  *mocks.MockQuerier
	provider *mocks.MockProvider
}

func newWebhookTestEnv(t *testing.T) *webhookTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	querier := mocks.NewMockQuerier(ctrl)
	provider := mocks.NewMockProvider(ctrl)

	resolver := services.NewCustomerResolver(querier, provider, nil)
	reconciler := services.NewReconcilerService(querier, provider, resolver)
	payments := services.NewPaymentService(querier, resolver)
	email := services.NewEmailService("", "")
	dispatcher := services.NewWebhookDispatcher(provider, reconciler, payments, email)

	common := NewCommonServices(CommonServicesConfig{
		Provider:   provider,
		Resolver:   resolver,
		Reconciler: reconciler,
		Payments:   payments,
		Dispatcher: dispatcher,
	})

	router := gin.New()
	handler := NewWebhookHandler(common, logger.Log)
	router.POST("/webhook", handler.HandleWebhook)

	return &webhookTestEnv{router: router, querier: querier, provider: provider}
}

func (e *webhookTestEnv) post(t *testing.T, body []byte, signature string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewReader(body))
	req.Header.Set("Stripe-Signature", signature)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestHandleWebhook_InvalidSignature(t *testing.T) {
	env := newWebhookTestEnv(t)

	payload := []byte(`{"type":"customer.subscription.updated"}`)
	env.provider.EXPECT().
		VerifyWebhook(payload, "bad-sig").
		Return(billing.WebhookEvent{}, assert.AnError)

	rec := env.post(t, payload, "bad-sig")

	// Bad signature is the only webhook failure that is not acknowledged.
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "signature")
}

func TestHandleWebhook_AcknowledgesUnknownEventType(t *testing.T) {
	env := newWebhookTestEnv(t)

	payload := []byte(`{"type":"customer.created"}`)
	env.provider.EXPECT().
		VerifyWebhook(payload, "sig").
		Return(billing.WebhookEvent{ExternalID: "evt_1", Type: "customer.created"}, nil)

	rec := env.post(t, payload, "sig")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}

func TestHandleWebhook_ProcessingErrorStillAcknowledged(t *testing.T) {
	env := newWebhookTestEnv(t)

	sub := billing.Subscription{
		ExternalID:         "sub_123",
		CustomerID:         "cus_123",
		Status:             "active",
		CurrentPeriodStart: 1700000000,
		Metadata:           map[string]string{"userId": "user-1"},
	}
	payload := []byte(`{"type":"customer.subscription.updated"}`)

	env.provider.EXPECT().
		VerifyWebhook(payload, "sig").
		Return(billing.WebhookEvent{
			ExternalID:   "evt_1",
			Type:         "customer.subscription.updated",
			Subscription: &sub,
		}, nil)
	env.provider.EXPECT().GetSubscription(gomock.Any(), "sub_123").Return(sub, nil)
	env.querier.EXPECT().
		GetSubscriptionByStripePeriod(gomock.Any(), gomock.Any()).
		Return(db.Subscription{}, assert.AnError)

	rec := env.post(t, payload, "sig")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}

func TestHandleWebhook_SubscriptionEventPersists(t *testing.T) {
	env := newWebhookTestEnv(t)

	sub := billing.Subscription{
		ExternalID:         "sub_123",
		CustomerID:         "cus_123",
		Status:             "active",
		CurrentPeriodStart: 1700000000,
		CurrentPeriodEnd:   1702592000,
		Metadata:           map[string]string{"userId": "user-1"},
	}
	payload := []byte(`{"type":"customer.subscription.created"}`)

	env.provider.EXPECT().
		VerifyWebhook(payload, "sig").
		Return(billing.WebhookEvent{
			ExternalID:   "evt_1",
			Type:         "customer.subscription.created",
			Subscription: &sub,
		}, nil)
	env.provider.EXPECT().GetSubscription(gomock.Any(), "sub_123").Return(sub, nil)
	env.querier.EXPECT().
		GetSubscriptionByStripePeriod(gomock.Any(), gomock.Any()).
		Return(db.Subscription{}, pgx.ErrNoRows)
	env.querier.EXPECT().
		GetCurrentSubscriptionByUser(gomock.Any(), "user-1").
		Return(db.Subscription{}, pgx.ErrNoRows)
	env.querier.EXPECT().
		CreateSubscription(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateSubscriptionParams) (db.Subscription, error) {
			assert.Equal(t, "user-1", arg.UserID)
			return db.Subscription{ID: uuid.New(), Status: arg.Status}, nil
		})

	rec := env.post(t, payload, "sig")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"received":true}`, rec.Body.String())
}
