// Package chat sequences one inbound message through reply generation,
// severity classification, escalation, and audit logging.
package chat

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/mira-care/mira-agent/internal/audit"
	"github.com/mira-care/mira-agent/internal/cache"
	"github.com/mira-care/mira-agent/internal/notify"
	"github.com/mira-care/mira-agent/internal/policy"
	"github.com/mira-care/mira-agent/internal/severity"
	"github.com/mira-care/mira-agent/internal/store"
)

// ErrMissingInput indicates the request lacked a user id or message.
// Surfaced to the transport layer as a 400; nothing is logged or sent
// for such requests.
var ErrMissingInput = errors.New("user_id and message required")

// ReplyGenerator produces the empathetic reply text
type ReplyGenerator interface {
	Generate(ctx context.Context, userMessage string) string
}

// Classifier assesses message severity
type Classifier interface {
	Classify(ctx context.Context, text string) severity.Assessment
}

// ContactDirectory looks up the pre-registered primary contact
type ContactDirectory interface {
	PrimaryContact(ctx context.Context, userID string) (*store.Contact, error)
}

// Result is the assembled outcome of one chat turn
type Result struct {
	Response        string
	Assessment      severity.Assessment
	CrisisDetected  bool
	Recommended     policy.Action
	ActionTaken     policy.Action
	SMSSent         bool
	CallInitiated   bool
	ContactNotified bool
}

// Mediator is the single entry point for one inbound message. All
// collaborators are injected once at startup and reused for the
// process lifetime.
type Mediator struct {
	replies    ReplyGenerator
	classifier Classifier
	contacts   ContactDirectory // nil when storage is unconfigured
	notifier   *notify.Notifier
	audit      *audit.Logger
	transcript *cache.Transcript // nil when redis is unconfigured
	thresholds policy.Thresholds
}

// NewMediator wires the chat pipeline. contacts and transcript may be
// nil when their backing services are unconfigured.
func NewMediator(
	replies ReplyGenerator,
	classifier Classifier,
	contacts ContactDirectory,
	notifier *notify.Notifier,
	auditLog *audit.Logger,
	transcript *cache.Transcript,
	thresholds policy.Thresholds,
) *Mediator {
	return &Mediator{
		replies:    replies,
		classifier: classifier,
		contacts:   contacts,
		notifier:   notifier,
		audit:      auditLog,
		transcript: transcript,
		thresholds: thresholds,
	}
}

// Handle runs the full sequence for one turn: validate, log inbound,
// generate and log the reply, classify, decide, notify, record. The
// order is fixed; once validation passes the turn always completes and
// returns a usable Result no matter which collaborators fail.
func (m *Mediator) Handle(ctx context.Context, userID, message string) (*Result, error) {
	message = strings.TrimSpace(message)
	if userID == "" || message == "" {
		return nil, ErrMissingInput
	}

	m.audit.LogChat(ctx, userID, store.SenderUser, message)
	m.transcript.Record(ctx, userID, store.SenderUser, message)

	response := m.replies.Generate(ctx, message)
	m.audit.LogChat(ctx, userID, store.SenderAgent, response)
	m.transcript.Record(ctx, userID, store.SenderAgent, response)

	assessment := m.classifier.Classify(ctx, message)
	eligible := policy.Eligible(assessment, m.thresholds)

	// Contact lookup is lazy: skipped entirely below the lowest gate.
	var contact *store.Contact
	if eligible && m.contacts != nil {
		var err error
		contact, err = m.contacts.PrimaryContact(ctx, userID)
		if err != nil {
			log.Printf("chat: contact lookup failed for user %s: %v", userID, err)
			contact = nil
		}
	}

	decision := policy.Decide(assessment, contact, m.thresholds)

	outcome, err := m.notifier.Execute(ctx, decision, contact, notify.Excerpt(message))
	if err != nil {
		// Notification failures never abort the response.
		log.Printf("chat: notification error for user %s: %v", userID, err)
	}

	taken := actionTaken(outcome)

	if eligible {
		rec := &store.CrisisRecord{
			UserID:        userID,
			Message:       message,
			ModelResponse: response,
			Severity:      string(assessment.Label),
			Score:         assessment.Score,
			SMSSent:       outcome.SMSSent,
			CallInitiated: outcome.CallInitiated,
			ActionTaken:   string(taken),
		}
		if contact != nil {
			rec.ContactName = contact.Name
			rec.ContactNumber = contact.PhoneNumber
		}
		m.audit.LogCrisis(ctx, rec)
	}

	return &Result{
		Response:        response,
		Assessment:      assessment,
		CrisisDetected:  eligible,
		Recommended:     policy.Recommended(assessment.Label),
		ActionTaken:     taken,
		SMSSent:         outcome.SMSSent,
		CallInitiated:   outcome.CallInitiated,
		ContactNotified: outcome.SMSSent || outcome.CallInitiated,
	}, nil
}

// actionTaken reduces delivery outcomes to the recorded action: what
// actually happened, not what was intended.
func actionTaken(out notify.Outcome) policy.Action {
	switch {
	case out.CallInitiated:
		return policy.ActionEmergencyCall
	case out.SMSSent:
		return policy.ActionSendSMS
	default:
		return policy.ActionNone
	}
}
