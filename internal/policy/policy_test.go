package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mira-care/mira-agent/internal/severity"
	"github.com/mira-care/mira-agent/internal/store"
)

func consentingContact() *store.Contact {
	return &store.Contact{
		UserID:        "u1",
		Name:          "Jamie",
		PhoneNumber:   "+15550100",
		IsPrimary:     true,
		OptedIn:       true,
		AllowAutoCall: true,
	}
}

func TestDecideNoContact(t *testing.T) {
	severe := severity.Assessment{Label: severity.LabelSevere, Score: 0.95}

	t.Run("nil contact means no action at any severity", func(t *testing.T) {
		d := Decide(severe, nil, DefaultThresholds)
		assert.Equal(t, ActionNone, d.Action)
	})

	t.Run("not opted in means no action at any severity", func(t *testing.T) {
		c := consentingContact()
		c.OptedIn = false
		d := Decide(severe, c, DefaultThresholds)
		assert.Equal(t, ActionNone, d.Action)
	})
}

func TestDecideSeverePath(t *testing.T) {
	t.Run("severe label with auto-call consent", func(t *testing.T) {
		d := Decide(severity.Assessment{Label: severity.LabelSevere, Score: 0.95}, consentingContact(), DefaultThresholds)
		assert.Equal(t, ActionEmergencyCall, d.Action)
		assert.Equal(t, TemplateUrgent, d.Template)
	})

	t.Run("severe label without auto-call consent degrades to SMS", func(t *testing.T) {
		c := consentingContact()
		c.AllowAutoCall = false
		d := Decide(severity.Assessment{Label: severity.LabelSevere, Score: 0.95}, c, DefaultThresholds)
		assert.Equal(t, ActionSendSMS, d.Action)
		assert.Equal(t, TemplateUrgent, d.Template, "urgent wording even when only texting")
	})

	t.Run("score at call threshold triggers call path regardless of label", func(t *testing.T) {
		d := Decide(severity.Assessment{Label: severity.LabelModerate, Score: 0.80}, consentingContact(), DefaultThresholds)
		assert.Equal(t, ActionEmergencyCall, d.Action)
	})
}

func TestDecideModeratePath(t *testing.T) {
	t.Run("moderate label", func(t *testing.T) {
		d := Decide(severity.Assessment{Label: severity.LabelModerate, Score: 0.7}, consentingContact(), DefaultThresholds)
		assert.Equal(t, ActionSendSMS, d.Action)
		assert.Equal(t, TemplateModerate, d.Template)
	})

	t.Run("score at SMS threshold triggers SMS regardless of label", func(t *testing.T) {
		d := Decide(severity.Assessment{Label: severity.LabelNone, Score: 0.45}, consentingContact(), DefaultThresholds)
		assert.Equal(t, ActionSendSMS, d.Action)
	})

	t.Run("below every gate means no action", func(t *testing.T) {
		d := Decide(severity.Assessment{Label: severity.LabelNone, Score: 0.44}, consentingContact(), DefaultThresholds)
		assert.Equal(t, ActionNone, d.Action)
	})
}

func TestDecideDeterminism(t *testing.T) {
	a := severity.Assessment{Label: severity.LabelModerate, Score: 0.7}
	c := consentingContact()

	first := Decide(a, c, DefaultThresholds)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Decide(a, c, DefaultThresholds))
	}
}

func TestEligible(t *testing.T) {
	assert.True(t, Eligible(severity.Assessment{Label: severity.LabelModerate, Score: 0.7}, DefaultThresholds))
	assert.True(t, Eligible(severity.Assessment{Label: severity.LabelNone, Score: 0.5}, DefaultThresholds))
	assert.False(t, Eligible(severity.Assessment{Label: severity.LabelNone, Score: 0.1}, DefaultThresholds))
	assert.False(t, Eligible(severity.Assessment{Label: severity.LabelNone, Score: 0.0}, DefaultThresholds))
}

func TestRecommended(t *testing.T) {
	assert.Equal(t, ActionEmergencyCall, Recommended(severity.LabelSevere))
	assert.Equal(t, ActionSendSMS, Recommended(severity.LabelModerate))
	assert.Equal(t, ActionMonitorOnly, Recommended(severity.LabelNone))
}
