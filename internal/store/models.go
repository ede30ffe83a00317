package store

import "time"

// Sender identifies who produced a transcript message
const (
	SenderUser  = "user"
	SenderAgent = "mira"
)

// ChatMessage is one row of the chat transcript. Rows are append-only
// and never mutated.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CrisisRecord captures one crisis determination: what was said, what
// the agent replied, how it was classified, and what actually happened.
// Created exactly once per escalation-eligible turn, never mutated.
type CrisisRecord struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Message       string    `json:"message"`
	ModelResponse string    `json:"model_response"`
	Severity      string    `json:"severity"`
	Score         float64   `json:"score"`
	SMSSent       bool      `json:"sms_sent"`
	CallInitiated bool      `json:"call_initiated"`
	ContactName   string    `json:"contact_name,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	ActionTaken   string    `json:"action_taken"`
	DetectedAt    time.Time `json:"detected_at"`
}

// Contact is a pre-registered emergency contact. At most one
// is_primary=true contact is expected per user; none is valid and
// means no notification is possible.
type Contact struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Name          string `json:"name"`
	PhoneNumber   string `json:"phone_number"`
	IsPrimary     bool   `json:"is_primary"`
	OptedIn       bool   `json:"opted_in"`
	AllowAutoCall bool   `json:"allow_auto_call"`
}
