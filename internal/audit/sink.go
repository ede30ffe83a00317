package audit

import "time"

// Failure records one swallowed audit-store error
type Failure struct {
	Op         string // "log_chat" or "log_crisis"
	UserID     string
	Err        error
	OccurredAt time.Time
}

// Sink buffers swallowed audit failures for an observability consumer.
// Recording never blocks: when the buffer is full the failure is
// dropped, because audit observability must not slow a chat turn.
type Sink struct {
	Capacity int
	failures chan Failure
}

// NewSink creates a failure sink with the specified capacity
func NewSink(capacity int) *Sink {
	return &Sink{
		Capacity: capacity,
		failures: make(chan Failure, capacity),
	}
}

// Record adds a failure to the sink without blocking
func (s *Sink) Record(f Failure) {
	select {
	case s.failures <- f:
	default:
	}
}

// Failures exposes the buffered failures for consumption
func (s *Sink) Failures() <-chan Failure {
	return s.failures
}

// Close shuts down the sink
func (s *Sink) Close() error {
	close(s.failures)
	return nil
}
