package severity

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/mira-care/mira-agent/internal/provider"
)

// Label is the coarse risk bucket for a message
type Label string

const (
	LabelNone     Label = "none"
	LabelModerate Label = "moderate"
	LabelSevere   Label = "severe"
)

// Keyword-path scores are fixed, not tunable per match.
const (
	severeScore   = 0.95
	moderateScore = 0.7
)

// Assessment is the classifier output: a label plus a continuous risk
// score in [0, 1]. The two axes are independent; escalation policy
// gates on score first and label second.
type Assessment struct {
	Label Label   `json:"label"`
	Score float64 `json:"score"`
}

// Classifier maps raw message text to an Assessment. The keyword fast
// path always produces a result; when a model is set, a successful
// model call overrides the keyword result entirely.
type Classifier struct {
	model provider.Provider
}

// NewClassifier creates a classifier. A nil model disables the
// model-override path and keeps keyword-only behavior.
func NewClassifier(model provider.Provider) *Classifier {
	return &Classifier{model: model}
}

// Classify assesses the self-harm risk of a single message.
//
// The keyword scan runs first and is the result of record when the
// model is unavailable or returns something unusable: model failures
// are logged and discarded, never surfaced.
func (c *Classifier) Classify(ctx context.Context, text string) Assessment {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Assessment{Label: LabelNone, Score: 0.0}
	}

	result := keywordScan(normalized)

	if c.model != nil {
		if modelResult, err := c.classifyWithModel(ctx, text); err != nil {
			log.Printf("severity: model classification unavailable, keeping keyword result: %v", err)
		} else {
			result = modelResult
		}
	}

	return result
}

// keywordScan applies the two ordered phrase sets. Severe wins over
// moderate; no hit yields the none/0.0 baseline.
func keywordScan(normalized string) Assessment {
	for _, phrase := range severeKeywords {
		if strings.Contains(normalized, phrase) {
			return Assessment{Label: LabelSevere, Score: severeScore}
		}
	}
	for _, phrase := range moderateKeywords {
		if strings.Contains(normalized, phrase) {
			return Assessment{Label: LabelModerate, Score: moderateScore}
		}
	}
	return Assessment{Label: LabelNone, Score: 0.0}
}

const classifierInstruction = "You are a mental health crisis classifier. " +
	"Analyze the following message and return only JSON: " +
	`{"label": "none|moderate|severe", "score": 0.0-1.0}.`

// classifyWithModel asks the model for a strict JSON assessment.
// Malformed JSON, unknown labels, and transport failures all reject
// the model result; out-of-range scores are clamped to [0, 1].
func (c *Classifier) classifyWithModel(ctx context.Context, text string) (Assessment, error) {
	prompt := fmt.Sprintf("Message: %q", text)

	raw, err := c.model.Complete(ctx, classifierInstruction, prompt)
	if err != nil {
		return Assessment{}, err
	}

	var parsed struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return Assessment{}, fmt.Errorf("parse classifier JSON: %w", err)
	}

	label := Label(strings.ToLower(strings.TrimSpace(parsed.Label)))
	switch label {
	case LabelNone, LabelModerate, LabelSevere:
	default:
		return Assessment{}, fmt.Errorf("unknown severity label %q", parsed.Label)
	}

	return Assessment{Label: label, Score: clamp(parsed.Score)}, nil
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}
