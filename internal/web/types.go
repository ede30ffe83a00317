package web

// ChatRequest is the POST /api/mira_chat body
type ChatRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

// ChatResponse is the assembled payload for one chat turn
type ChatResponse struct {
	Response          string  `json:"response"`
	CrisisDetected    bool    `json:"crisis_detected"`
	Severity          string  `json:"severity"`
	SeverityScore     float64 `json:"severity_score"`
	ActionRecommended string  `json:"action_recommended"`
	ActionTaken       string  `json:"action_taken"`
	ContactNotified   bool    `json:"contact_notified"`
	SMSSent           bool    `json:"sms_sent"`
	CallInitiated     bool    `json:"call_initiated"`
}
