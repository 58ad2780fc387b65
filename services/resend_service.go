package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jsabonet/milagre-car-site-sub000/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// ErrEmailDisabled is returned when RESEND_API_KEY is not configured.
var ErrEmailDisabled = errors.New("email delivery is not configured")

// ResendClient handles email sending via Resend API
type ResendClient struct {
	apiKey     string
	from       string
	notifyTo   string
	endpoint   string
	httpClient *http.Client
}

// NewResendClient reads RESEND_API_KEY, RESEND_FROM_EMAIL and
// LEADS_NOTIFY_EMAIL from the environment.
func NewResendClient() (*ResendClient, error) {
	apiKey := os.Getenv("RESEND_API_KEY")
	if apiKey == "" {
		return nil, ErrEmailDisabled
	}

	from := os.Getenv("RESEND_FROM_EMAIL")
	if from == "" {
		from = "Milagre Car <noreply@milagrecar.co.mz>"
	}

	return &ResendClient{
		apiKey:     apiKey,
		from:       from,
		notifyTo:   os.Getenv("LEADS_NOTIFY_EMAIL"),
		endpoint:   resendEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// NewResendClientWithEndpoint is used by tests to point the client at a fake API.
func NewResendClientWithEndpoint(apiKey, from, notifyTo, endpoint string) *ResendClient {
	return &ResendClient{
		apiKey:     apiKey,
		from:       from,
		notifyTo:   notifyTo,
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// SendLeadNotification tells the dealership a contact message arrived.
// carTitle is empty for general enquiries.
func (r *ResendClient) SendLeadNotification(ctx context.Context, msg models.ContactMessage, carTitle string) error {
	if r.notifyTo == "" {
		log.Printf("[resend] LEADS_NOTIFY_EMAIL not set, skipping lead notification %s", msg.ID)
		return nil
	}

	subject := fmt.Sprintf("New enquiry from %s", msg.Name)
	if carTitle != "" {
		subject = fmt.Sprintf("New enquiry about %s", carTitle)
	}

	payload := map[string]interface{}{
		"from":     r.from,
		"to":       r.notifyTo,
		"reply_to": msg.Email,
		"subject":  subject,
		"html":     buildLeadHTML(msg, carTitle),
	}
	if err := r.send(ctx, payload); err != nil {
		return err
	}

	log.Printf("[resend] lead notification sent for message %s", msg.ID)
	return nil
}

// SendLeadAcknowledgement confirms receipt to the person who wrote in.
func (r *ResendClient) SendLeadAcknowledgement(ctx context.Context, msg models.ContactMessage) error {
	payload := map[string]interface{}{
		"from":    r.from,
		"to":      msg.Email,
		"subject": "We received your message | Milagre Car",
		"html": fmt.Sprintf(`<!doctype html>
<html>
  <body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; color: #1a1a1a; line-height: 1.6;">
    <p style="font-size: 17px;">Hi <strong>%s</strong>,</p>
    <p style="font-size: 15px; color: #626262;">Thanks for getting in touch. One of our sales team will reply within one working day.</p>
    <p style="font-size: 13px; color: #9a9a9a;">Milagre Car</p>
  </body>
</html>`, html.EscapeString(msg.Name)),
	}
	return r.send(ctx, payload)
}

func (r *ResendClient) send(ctx context.Context, payload map[string]interface{}) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[resend] failed to marshal payload: %v", err)
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		log.Printf("[resend] failed to send request: %v", err)
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		log.Printf("[resend] api returned status %d: %s", resp.StatusCode, string(body))
		return fmt.Errorf("resend api error: status %d", resp.StatusCode)
	}
	return nil
}

func buildLeadHTML(msg models.ContactMessage, carTitle string) string {
	about := "General enquiry"
	if carTitle != "" {
		about = carTitle
	}
	return fmt.Sprintf(`<!doctype html>
<html>
  <body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif; color: #1a1a1a; line-height: 1.6;">
    <div style="max-width: 600px; margin: 0 auto;">
      <p style="font-size: 22px; font-weight: 700;">New website enquiry</p>
      <table style="font-size: 14px;">
        <tr><td style="color: #626262; padding-right: 16px;">Name</td><td>%s</td></tr>
        <tr><td style="color: #626262; padding-right: 16px;">Email</td><td>%s</td></tr>
        <tr><td style="color: #626262; padding-right: 16px;">Phone</td><td>%s</td></tr>
        <tr><td style="color: #626262; padding-right: 16px;">About</td><td>%s</td></tr>
        <tr><td style="color: #626262; padding-right: 16px;">Subject</td><td>%s</td></tr>
      </table>
      <p style="font-size: 15px; white-space: pre-wrap; border-top: 1px solid #e5e5e0; padding-top: 16px;">%s</p>
    </div>
  </body>
</html>`,
		html.EscapeString(msg.Name),
		html.EscapeString(msg.Email),
		html.EscapeString(msg.Phone),
		html.EscapeString(about),
		html.EscapeString(msg.Subject),
		html.EscapeString(msg.Message),
	)
}

var (
	resendClient     *ResendClient
	resendClientInit bool
)

// GetResendClient returns the shared client, or nil when email is disabled.
func GetResendClient() *ResendClient {
	if !resendClientInit {
		resendClientInit = true
		client, err := NewResendClient()
		if err != nil {
			log.Printf("⚠️  %v, lead emails disabled", err)
			return nil
		}
		resendClient = client
	}
	return resendClient
}
