package policy

import (
	"github.com/mira-care/mira-agent/internal/severity"
	"github.com/mira-care/mira-agent/internal/store"
)

// Action is the concrete escalation outcome for one turn
type Action string

const (
	ActionNone          Action = "none"
	ActionMonitorOnly   Action = "monitor_only"
	ActionSendSMS       Action = "send_sms"
	ActionEmergencyCall Action = "emergency_call"
)

// Template selects the outbound SMS wording
type Template string

const (
	TemplateModerate Template = "moderate"
	TemplateUrgent   Template = "urgent"
)

// Thresholds are the score gates for escalation. Scores act as a
// trigger independent of label: the keyword path only ever produces
// 0.0/0.7/0.95 while the model path is finer grained, and gating on
// score prevents under-reaction to a borderline label with a high
// score.
type Thresholds struct {
	SMS  float64
	Call float64
}

// DefaultThresholds match the deployed configuration defaults.
var DefaultThresholds = Thresholds{SMS: 0.45, Call: 0.80}

// Decision is the transient outcome of policy evaluation. Action
// already accounts for consent: an emergency_call decision means the
// contact allows auto-calling; a severe assessment without that
// consent degrades to send_sms with the urgent template.
type Decision struct {
	Action   Action
	Template Template
}

// Decide maps an assessment and the (possibly absent) primary contact
// to a concrete action. Pure function: same inputs, same decision.
func Decide(a severity.Assessment, contact *store.Contact, th Thresholds) Decision {
	if contact == nil || !contact.OptedIn {
		return Decision{Action: ActionNone}
	}

	switch {
	case a.Label == severity.LabelSevere || a.Score >= th.Call:
		if contact.AllowAutoCall {
			return Decision{Action: ActionEmergencyCall, Template: TemplateUrgent}
		}
		return Decision{Action: ActionSendSMS, Template: TemplateUrgent}

	case a.Label == severity.LabelModerate || a.Score >= th.SMS:
		return Decision{Action: ActionSendSMS, Template: TemplateModerate}

	default:
		return Decision{Action: ActionNone}
	}
}

// Eligible reports whether a turn warrants contact lookup and a crisis
// record: any non-none label, or a score at the SMS gate or above.
func Eligible(a severity.Assessment, th Thresholds) bool {
	return a.Label != severity.LabelNone || a.Score >= th.SMS
}

// Recommended maps a label to the action the classifier alone would
// suggest, independent of consent or delivery outcomes. Reported to
// callers alongside the action actually taken.
func Recommended(label severity.Label) Action {
	switch label {
	case severity.LabelSevere:
		return ActionEmergencyCall
	case severity.LabelModerate:
		return ActionSendSMS
	default:
		return ActionMonitorOnly
	}
}
