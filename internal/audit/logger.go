// Package audit provides best-effort durable logging of chat turns and
// crisis determinations. Store failures are captured and emitted to a
// sink; they never propagate to the chat caller.
package audit

import (
	"context"
	"log"
	"time"

	"github.com/mira-care/mira-agent/internal/store"
)

// Store is the subset of storage operations the audit layer uses
type Store interface {
	InsertChat(ctx context.Context, userID, sender, message string) error
	InsertCrisis(ctx context.Context, rec *store.CrisisRecord) error
}

// Logger writes audit records with swallow-and-report error semantics.
// A nil store disables persistence entirely; every call becomes a
// no-op, matching an unconfigured storage collaborator.
type Logger struct {
	store Store
	sink  *Sink
}

// NewLogger creates an audit logger. Both arguments may be nil.
func NewLogger(s Store, sink *Sink) *Logger {
	return &Logger{store: s, sink: sink}
}

// LogChat appends one transcript message. Called twice per turn, for
// the inbound message and the generated reply, before severity is
// known.
func (l *Logger) LogChat(ctx context.Context, userID, sender, message string) {
	if l.store == nil {
		return
	}
	if err := l.store.InsertChat(ctx, userID, sender, message); err != nil {
		l.report("log_chat", userID, err)
	}
}

// LogCrisis writes one crisis determination with final delivery flags.
func (l *Logger) LogCrisis(ctx context.Context, rec *store.CrisisRecord) {
	if l.store == nil {
		return
	}
	if err := l.store.InsertCrisis(ctx, rec); err != nil {
		l.report("log_crisis", rec.UserID, err)
	}
}

func (l *Logger) report(op, userID string, err error) {
	log.Printf("audit: %s failed for user %s: %v", op, userID, err)
	if l.sink != nil {
		l.sink.Record(Failure{
			Op:         op,
			UserID:     userID,
			Err:        err,
			OccurredAt: time.Now().UTC(),
		})
	}
}
