package provider

import "context"

// Type identifies which inference provider to use
type Type string

const (
	// TypeOllama uses a local Ollama server
	TypeOllama Type = "ollama"

	// TypeOpenAI uses the OpenAI chat completions API
	TypeOpenAI Type = "openai"
)

// Provider defines the interface for chat inference backends
type Provider interface {
	// Complete sends the system prompt and user message to the backend
	// and returns the assistant text. Returns an error if the backend
	// fails, the response is malformed, or the context is cancelled.
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)

	// Name returns the provider type identifier
	Name() Type
}
