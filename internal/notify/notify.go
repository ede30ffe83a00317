// Package notify executes escalation decisions against the outbound
// SMS/voice gateway. Delivery failures degrade to false outcome flags;
// they never abort the chat turn that triggered them.
package notify

import (
	"context"
	"log"

	"github.com/mira-care/mira-agent/internal/policy"
	"github.com/mira-care/mira-agent/internal/store"
)

// Gateway is the interface for the outbound communication provider
type Gateway interface {
	// SendSMS sends a text message and returns the provider message id
	SendSMS(ctx context.Context, to, body string) (string, error)

	// PlaceCall initiates a voice call and returns the provider call id
	PlaceCall(ctx context.Context, to string) (string, error)
}

// Outcome reports what the notifier actually delivered
type Outcome struct {
	SMSSent       bool
	CallInitiated bool
}

// Notifier turns an escalation decision into gateway calls: SMS with
// bounded retries, calls with a single attempt.
type Notifier struct {
	gateway Gateway
	retry   RetryConfig
}

// NewNotifier creates a Notifier. A nil gateway is valid and makes
// every Execute fail fast with ErrNotConfigured.
func NewNotifier(gateway Gateway) *Notifier {
	return &Notifier{
		gateway: gateway,
		retry:   DefaultRetryConfig,
	}
}

// NewNotifierWithRetry creates a Notifier with custom retry settings
func NewNotifierWithRetry(gateway Gateway, retry RetryConfig) *Notifier {
	return &Notifier{gateway: gateway, retry: retry}
}

// Execute carries out the decided action against the contact.
//
// For emergency_call decisions the urgent SMS goes out first,
// unconditionally; the call follows regardless of the SMS outcome. The
// call gets exactly one attempt: retrying an emergency call doubles
// outbound contact noise for a time-sensitive channel.
//
// The returned error reports the most severe failure for logging.
// Outcome flags are authoritative either way.
func (n *Notifier) Execute(ctx context.Context, decision policy.Decision, contact *store.Contact, excerpt string) (Outcome, error) {
	var out Outcome

	if decision.Action == policy.ActionNone || contact == nil {
		return out, nil
	}
	if n.gateway == nil {
		return out, ErrNotConfigured
	}

	body := RenderSMS(decision.Template, contact.Name, excerpt)

	result := retryFixed(ctx, n.retry, func(ctx context.Context) error {
		sid, err := n.gateway.SendSMS(ctx, contact.PhoneNumber, body)
		if err != nil {
			return err
		}
		log.Printf("notify: SMS sent to %s, sid %s", contact.PhoneNumber, sid)
		return nil
	})
	out.SMSSent = result.Success
	errSMS := result.LastErr
	if !result.Success {
		log.Printf("notify: SMS delivery failed after %d attempts: %v", result.Attempts, result.LastErr)
	}

	if decision.Action != policy.ActionEmergencyCall {
		return out, errSMS
	}

	sid, err := n.gateway.PlaceCall(ctx, contact.PhoneNumber)
	if err != nil {
		log.Printf("notify: emergency call failed: %v", err)
		return out, err
	}
	log.Printf("notify: emergency call placed to %s, sid %s", contact.PhoneNumber, sid)
	out.CallInitiated = true

	return out, errSMS
}
