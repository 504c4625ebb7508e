package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"cleansched/internal/pkg/config"
	"cleansched/internal/pkg/errs"
)

const resendAPI = "https://api.resend.com/emails"

type Mailer interface {
	Send(ctx context.Context, event MailEvent) error
}

type resendPayload struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
	Text    string `json:"text,omitempty"`
}

// ResendMailer renders a mail event and posts it to the Resend API.
// Without an API key it degrades to a logged mock send, which keeps local
// and CI runs working against the full pipeline.
type ResendMailer struct {
	cfg    config.MailConfig
	client *http.Client
}

func NewResendMailer(cfg config.MailConfig) Mailer {
	return &ResendMailer{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *ResendMailer) Send(ctx context.Context, event MailEvent) error {
	subject, html := renderMail(event)

	if m.cfg.APIKey == "" {
		slog.Info("mock email send, no mail API key configured",
			"to", event.Email, "subject", subject)
		return nil
	}

	body, err := json.Marshal(resendPayload{
		From:    m.cfg.From,
		To:      event.Email,
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return errs.Wrap(err, "failed to marshal mail payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendAPI, bytes.NewReader(body))
	if err != nil {
		return errs.Wrap(err, "failed to build mail request")
	}
	req.Header.Set("Authorization", "Bearer "+m.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return errs.Wrap(err, "failed to send mail")
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return errs.New("mail API error: " + resp.Status)
	}
	return nil
}

func renderMail(event MailEvent) (subject, html string) {
	switch event.Kind {
	case KeyBookingServed:
		subject = "Your cleaning service has been completed"
		html = fmt.Sprintf(`
			<h2>Service completed</h2>
			<p>Your booking <b>%s</b> has been marked as served.</p>
			<p>Thank you for choosing us.</p>`, event.BookingID)
	case KeyBookingRescheduled:
		date := ""
		if event.CleaningDate != nil {
			date = event.CleaningDate.Format("Monday, 2 January 2006 15:04")
		}
		subject = "Your cleaning has been rescheduled"
		html = fmt.Sprintf(`
			<h2>Booking rescheduled</h2>
			<p>Your booking <b>%s</b> has a new cleaning date:</p>
			<h3>%s</h3>`, event.BookingID, date)
	case KeyPaymentCompleted:
		amount := int64(0)
		if event.Amount != nil {
			amount = *event.Amount
		}
		subject = "Payment received"
		html = fmt.Sprintf(`
			<h2>Payment confirmed</h2>
			<p>We received your payment of <b>%d</b> for booking <b>%s</b>.</p>
			<p>Your booking is now complete.</p>`, amount, event.BookingID)
	default:
		subject = "Booking update"
		html = fmt.Sprintf("<p>Booking %s updated.</p>", event.BookingID)
	}
	return subject, html
}
