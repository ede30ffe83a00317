package reply

import (
	"context"
	"log"
	"strings"

	"github.com/mira-care/mira-agent/internal/provider"
)

// rolePrefixes are stripped from the front of replies when a model
// echoes its role label back.
var rolePrefixes = []string{"mira:", "assistant:", "ai:"}

// Generator produces the empathetic reply for a user message by trying
// each provider in order. It never fails: when the whole chain is down
// it returns a fixed fallback sentence.
type Generator struct {
	providers []provider.Provider
}

// NewGenerator creates a Generator over an ordered provider chain.
// An empty chain is valid and always yields the fallback sentence.
func NewGenerator(providers []provider.Provider) *Generator {
	return &Generator{providers: providers}
}

// Generate returns a non-empty reply to the user message. Each provider
// gets a single attempt; any failure falls through to the next one.
func (g *Generator) Generate(ctx context.Context, userMessage string) string {
	for _, p := range g.providers {
		text, err := p.Complete(ctx, personaPrompt, userMessage)
		if err != nil {
			log.Printf("reply: provider %s failed: %v", p.Name(), err)
			continue
		}
		if cleaned := stripRolePrefix(text); cleaned != "" {
			return cleaned
		}
		log.Printf("reply: provider %s returned empty text", p.Name())
	}
	return fallbackReply
}

// stripRolePrefix removes a leading role label ("mira:", "assistant:",
// "ai:") case-insensitively, keeping the text after the first colon.
func stripRolePrefix(text string) string {
	trimmed := strings.TrimSpace(text)
	lower := strings.ToLower(trimmed)
	for _, prefix := range rolePrefixes {
		if strings.HasPrefix(lower, prefix) {
			return strings.TrimSpace(trimmed[len(prefix):])
		}
	}
	return trimmed
}
