package services

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailService_DisabledWithoutAPIKey(t *testing.T) {
	svc := NewEmailService("", "billing@example.com")
	assert.False(t, svc.Enabled())

	// Sending through a disabled service is a silent no-op.
	err := svc.SendPaymentFailed("user@example.com", PaymentFailedData{})
	assert.NoError(t, err)
}

func TestEmailService_NilReceiver(t *testing.T) {
	var svc *EmailService
	assert.False(t, svc.Enabled())
}

func TestPaymentFailedTemplate(t *testing.T) {
	var body bytes.Buffer
	err := paymentFailedTemplate.Execute(&body, PaymentFailedData{
		CustomerName: "Jordan",
		Amount:       "25.99",
		Currency:     "usd",
		InvoiceURL:   "https://invoice.example.com/in_123",
	})
	require.NoError(t, err)

	html := body.String()
	assert.Contains(t, html, "Jordan")
	assert.Contains(t, html, "25.99 usd")
	assert.Contains(t, html, "https://invoice.example.com/in_123")
}

func TestPaymentFailedTemplate_FallbackGreeting(t *testing.T) {
	var body bytes.Buffer
	err := paymentFailedTemplate.Execute(&body, PaymentFailedData{Amount: "10.00", Currency: "eur"})
	require.NoError(t, err)

	assert.Contains(t, body.String(), "Hi there")
	assert.NotContains(t, body.String(), "href")
}
