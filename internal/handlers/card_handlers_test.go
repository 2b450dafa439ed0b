package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/subsync/subsync-api/internal/client/billing"
	"github.com/subsync/subsync-api/internal/logger"
	"github.com/subsync/subsync-api/internal/mocks"
)

type cardTestEnv struct {
	router   *gin.Engine
	provider *mocks.MockProvider
}

func newCardTestEnv(t *testing.T) *cardTestEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)

	common := NewCommonServices(CommonServicesConfig{
		Provider: provider,
	})

	router := gin.New()
	handler := NewCardHandler(common, logger.Log)
	router.POST("/create-card/:userId", handler.CreateCard)
	router.GET("/cards/:userId", handler.ListCards)
	router.POST("/cards/default/:userId", handler.SetDefaultCard)
	router.POST("/cards/delete/:userId", handler.DeleteCard)

	return &cardTestEnv{router: router, provider: provider}
}

func (e *cardTestEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var raw []byte
	if body != nil {
		var err error
		raw, err = json.Marshal(body)
		require.NoError(t, err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestCreateCard_SetsDefault(t *testing.T) {
	env := newCardTestEnv(t)

	env.provider.EXPECT().
		FindCustomerByUserID(gomock.Any(), "user-1").
		Return(billing.Customer{ExternalID: "cus_123"}, true, nil)
	env.provider.EXPECT().
		AttachPaymentMethod(gomock.Any(), "cus_123", "pm_123").
		Return(billing.PaymentMethod{ExternalID: "pm_123", Brand: "visa", Last4: "4242"}, nil)
	env.provider.EXPECT().
		SetDefaultPaymentMethod(gomock.Any(), "cus_123", "pm_123").
		Return(nil)

	rec := env.do(t, http.MethodPost, "/create-card/user-1", gin.H{
		"paymentMethodId": "pm_123",
		"setDefault":      true,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]billing.PaymentMethod
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "pm_123", resp["card"].ExternalID)
	assert.True(t, resp["card"].IsDefault)
}

func TestCreateCard_UnknownUser(t *testing.T) {
	env := newCardTestEnv(t)

	env.provider.EXPECT().
		FindCustomerByUserID(gomock.Any(), "user-unknown").
		Return(billing.Customer{}, false, nil)

	rec := env.do(t, http.MethodPost, "/create-card/user-unknown", gin.H{
		"paymentMethodId": "pm_123",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListCards(t *testing.T) {
	env := newCardTestEnv(t)

	env.provider.EXPECT().
		FindCustomerByUserID(gomock.Any(), "user-1").
		Return(billing.Customer{ExternalID: "cus_123"}, true, nil)
	env.provider.EXPECT().
		ListPaymentMethods(gomock.Any(), "cus_123").
		Return([]billing.PaymentMethod{
			{ExternalID: "pm_1", Brand: "visa", Last4: "4242", IsDefault: true},
			{ExternalID: "pm_2", Brand: "mastercard", Last4: "4444"},
		}, nil)

	rec := env.do(t, http.MethodGet, "/cards/user-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Object string                  `json:"object"`
		Data   []billing.PaymentMethod `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "list", resp.Object)
	require.Len(t, resp.Data, 2)
	assert.True(t, resp.Data[0].IsDefault)
}

func TestDeleteCard(t *testing.T) {
	env := newCardTestEnv(t)

	env.provider.EXPECT().
		FindCustomerByUserID(gomock.Any(), "user-1").
		Return(billing.Customer{ExternalID: "cus_123"}, true, nil)
	env.provider.EXPECT().
		DetachPaymentMethod(gomock.Any(), "pm_123").
		Return(nil)

	rec := env.do(t, http.MethodPost, "/cards/delete/user-1", gin.H{
		"paymentMethodId": "pm_123",
	})

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSetDefaultCard_MissingPaymentMethod(t *testing.T) {
	env := newCardTestEnv(t)

	rec := env.do(t, http.MethodPost, "/cards/default/user-1", gin.H{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
