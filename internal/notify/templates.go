package notify

import (
	"fmt"

	"github.com/mira-care/mira-agent/internal/policy"
)

// excerptLimit is the maximum message length included in outbound
// notifications before truncation.
const excerptLimit = 120

// smsTemplates keys outbound wording by escalation template.
var smsTemplates = map[policy.Template]string{
	policy.TemplateModerate: `Hi %s, Mira alert: your contact is in distress. Excerpt: "%s". Please reach out when possible.`,
	policy.TemplateUrgent:   `URGENT: %s, your contact may be at immediate risk. Excerpt: "%s". Please contact them or emergency services now.`,
}

// Excerpt truncates a message to 120 characters, appending an ellipsis
// marker only when truncation happened.
func Excerpt(message string) string {
	runes := []rune(message)
	if len(runes) <= excerptLimit {
		return message
	}
	return string(runes[:excerptLimit]) + "..."
}

// RenderSMS formats the outbound SMS body for a template. An empty
// contact name falls back to a neutral greeting.
func RenderSMS(tmpl policy.Template, contactName, excerpt string) string {
	if contactName == "" {
		contactName = "there"
	}
	return fmt.Sprintf(smsTemplates[tmpl], contactName, excerpt)
}
