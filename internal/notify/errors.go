package notify

import (
	"errors"
	"fmt"
)

// ErrNotConfigured indicates the outbound gateway has no usable
// credentials. Callers must not retry: the condition is permanent for
// the process lifetime, unlike a transient delivery failure.
var ErrNotConfigured = errors.New("gateway not configured")

// DeliveryError wraps a transient failure from the gateway API
type DeliveryError struct {
	Op     string // "sms" or "call"
	Status int
	Err    error
}

func (e *DeliveryError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("gateway %s failed with status %d: %v", e.Op, e.Status, e.Err)
	}
	return fmt.Sprintf("gateway %s failed: %v", e.Op, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
