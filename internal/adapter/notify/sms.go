package notify

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// HTTPSMSSender posts messages to a Twilio-style REST endpoint. The
// call is synchronous; a non-2xx response is a failed send.
type HTTPSMSSender struct {
	client     *http.Client
	messageURL string
	accountSID string
	authToken  string
	from       string
}

type SMSConfig struct {
	MessageURL string
	AccountSID string
	AuthToken  string
	From       string
	HTTPClient *http.Client
}

func NewHTTPSMSSender(cfg SMSConfig) *HTTPSMSSender {
	client := cfg.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPSMSSender{
		client:     client,
		messageURL: cfg.MessageURL,
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.From,
	}
}

func (s *HTTPSMSSender) Send(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.from)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.messageURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("post sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sms api returned %d: %s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}
	return nil
}
