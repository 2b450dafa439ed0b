package services

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/subsync/subsync-api/internal/logger"
)

// EmailService sends billing notification emails through Resend. Constructed
// without an API key it becomes a no-op, so email is strictly optional.
type EmailService struct {
	client    *resend.Client
	fromEmail string
}

// NewEmailService creates an EmailService. An empty apiKey disables sending.
func NewEmailService(apiKey string, fromEmail string) *EmailService {
	s := &EmailService{fromEmail: fromEmail}
	if apiKey != "" {
		s.client = resend.NewClient(apiKey)
	}
	return s
}

// Enabled reports whether the service is configured to send.
func (s *EmailService) Enabled() bool {
	return s != nil && s.client != nil
}

// PaymentFailedData carries the template fields for a payment-failure notice.
type PaymentFailedData struct {
	CustomerName string
	Amount       string
	Currency     string
	InvoiceURL   string
}

var paymentFailedTemplate = template.Must(template.New("payment_failed").Parse(`
<p>Hi {{if .CustomerName}}{{.CustomerName}}{{else}}there{{end}},</p>
<p>We were unable to collect your latest subscription payment of
{{.Amount}} {{.Currency}}.</p>
{{if .InvoiceURL}}<p><a href="{{.InvoiceURL}}">Update your payment details</a>
to keep your subscription active.</p>{{end}}
<p>We will retry the charge automatically over the next few days.</p>
`))

// SendPaymentFailed sends a payment-failure notice. Failures are logged and
// returned; callers on the webhook path swallow the error so email problems
// never affect event acknowledgement.
func (s *EmailService) SendPaymentFailed(toEmail string, data PaymentFailedData) error {
	if !s.Enabled() {
		return nil
	}
	if toEmail == "" {
		return fmt.Errorf("recipient email is required")
	}

	var body bytes.Buffer
	if err := paymentFailedTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render payment failed template: %w", err)
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{toEmail},
		Subject: "Your subscription payment failed",
		Html:    body.String(),
	}

	sent, err := s.client.Emails.Send(params)
	if err != nil {
		logger.Log.Error("failed to send payment failed email",
			zap.Error(err),
			zap.String("to", toEmail))
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.Log.Info("payment failed email sent",
		zap.String("email_id", sent.Id),
		zap.String("to", toEmail))

	return nil
}
