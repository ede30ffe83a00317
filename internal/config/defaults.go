package config

const (
	DefaultAddr          = ":8001"
	DefaultOllamaHost    = "http://127.0.0.1:11434"
	DefaultOllamaModel   = "mistral:latest"
	DefaultOpenAIModel   = "gpt-4o-mini"
	DefaultSQLitePath    = "mira.db"
	DefaultSMSThreshold  = 0.45
	DefaultCallThreshold = 0.80
	DefaultLogLevel      = "info"
)

// DefaultConfig returns a Config with all default values applied.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr: DefaultAddr,
		},
		Inference: InferenceConfig{
			OllamaHost:  DefaultOllamaHost,
			OllamaModel: DefaultOllamaModel,
			OpenAIModel: DefaultOpenAIModel,
		},
		Storage: StorageConfig{
			Path: DefaultSQLitePath,
		},
		Policy: PolicyConfig{
			SMSThreshold:  DefaultSMSThreshold,
			CallThreshold: DefaultCallThreshold,
		},
		LogLevel: DefaultLogLevel,
	}
}
