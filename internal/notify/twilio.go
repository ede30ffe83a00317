package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mira-care/mira-agent/internal/config"
)

const (
	defaultTwilioBaseURL = "https://api.twilio.com"

	// voiceInstructionsURL is the TwiML document played on emergency calls
	voiceInstructionsURL = "http://demo.twilio.com/docs/voice.xml"
)

// Twilio implements Gateway against the Twilio REST API
type Twilio struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	client     *http.Client
}

// NewTwilio creates a Twilio gateway from configuration. Returns nil
// when credentials are incomplete; the notifier treats a nil gateway
// as unconfigured and fails fast.
func NewTwilio(cfg config.GatewayConfig) *Twilio {
	if !cfg.Configured() {
		return nil
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultTwilioBaseURL
	}
	return &Twilio{
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.FromNumber,
		baseURL:    strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// SendSMS sends one text message and returns the provider message SID
func (t *Twilio) SendSMS(ctx context.Context, to, body string) (string, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.from)
	form.Set("Body", body)

	return t.post(ctx, "sms", "/Messages.json", form)
}

// PlaceCall initiates one outbound voice call and returns the call SID
func (t *Twilio) PlaceCall(ctx context.Context, to string) (string, error) {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.from)
	form.Set("Url", voiceInstructionsURL)

	return t.post(ctx, "call", "/Calls.json", form)
}

func (t *Twilio) post(ctx context.Context, op, resource string, form url.Values) (string, error) {
	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s%s", t.baseURL, t.accountSID, resource)

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(t.accountSID, t.authToken)

	resp, err := t.client.Do(req)
	if err != nil {
		return "", &DeliveryError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &DeliveryError{
			Op:     op,
			Status: resp.StatusCode,
			Err:    fmt.Errorf("%s", strings.TrimSpace(string(data))),
		}
	}

	var parsed struct {
		SID string `json:"sid"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", &DeliveryError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	if parsed.SID == "" {
		return "", &DeliveryError{Op: op, Err: fmt.Errorf("missing sid in response")}
	}

	return parsed.SID, nil
}
