package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMessage indicates Complete was called with an empty user message
	ErrEmptyMessage = errors.New("user message cannot be empty")

	// ErrEmptyReply indicates the backend returned no usable text
	ErrEmptyReply = errors.New("provider returned empty reply")

	// ErrNotConfigured indicates the provider is missing required credentials
	ErrNotConfigured = errors.New("provider not configured")
)

// APIError wraps a non-success HTTP status from an inference backend
type APIError struct {
	Provider Type
	Status   int
	Body     string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s API returned %d: %s", e.Provider, e.Status, e.Body)
	}
	return fmt.Sprintf("%s API returned %d", e.Provider, e.Status)
}
