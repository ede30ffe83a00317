package provider

import "github.com/mira-care/mira-agent/internal/config"

// Chain builds the ordered reply provider list from configuration:
// Ollama first, then OpenAI when a key is present. The list may be
// empty if neither backend is configured.
func Chain(cfg config.InferenceConfig) []Provider {
	var providers []Provider

	if cfg.OllamaHost != "" {
		providers = append(providers, NewOllama(cfg.OllamaHost, cfg.OllamaModel))
	}

	if cfg.OpenAIKey != "" {
		providers = append(providers, NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL))
	}

	return providers
}

// ClassifierModel returns the provider used for model-based severity
// classification, or nil when no remote key is configured. The keyword
// fast path covers the nil case.
func ClassifierModel(cfg config.InferenceConfig) Provider {
	if cfg.OpenAIKey == "" {
		return nil
	}
	model := NewOpenAI(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIBaseURL)
	model.Temperature = 0.2
	model.MaxTokens = 60
	return model
}
