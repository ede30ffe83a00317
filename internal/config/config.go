package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the Mira agent.
// It is immutable after creation via LoadConfig().
type Config struct {
	// Server contains HTTP listener settings
	Server ServerConfig `yaml:"server"`

	// Inference contains the reply/classifier provider chain settings
	Inference InferenceConfig `yaml:"inference"`

	// Gateway contains outbound SMS/voice gateway credentials
	Gateway GatewayConfig `yaml:"gateway"`

	// Storage contains the audit store settings
	Storage StorageConfig `yaml:"storage"`

	// Redis contains the recent-transcript cache settings
	Redis RedisConfig `yaml:"redis"`

	// Policy contains escalation thresholds
	Policy PolicyConfig `yaml:"policy"`

	// LogLevel controls log verbosity (debug, info, warn, error)
	LogLevel string `yaml:"log_level"`
}

// ServerConfig controls the HTTP listener.
type ServerConfig struct {
	// Addr is the listen address (e.g., ":8001")
	Addr string `yaml:"addr"`

	// Debug enables gin debug mode and the permissive debug routes
	Debug bool `yaml:"debug"`
}

// InferenceConfig controls the inference provider chain.
// The reply generator tries Ollama first, then OpenAI, then a fixed
// fallback sentence. The model classifier uses OpenAI when a key is set.
type InferenceConfig struct {
	// OllamaHost is the base URL of the local Ollama server
	OllamaHost string `yaml:"ollama_host"`

	// OllamaModel is the model name passed to Ollama
	OllamaModel string `yaml:"ollama_model"`

	// OpenAIKey is the API key for the remote provider (empty = disabled)
	OpenAIKey string `yaml:"openai_key"`

	// OpenAIModel is the chat model used for replies and classification
	OpenAIModel string `yaml:"openai_model"`

	// OpenAIBaseURL overrides the API endpoint (used in tests)
	OpenAIBaseURL string `yaml:"openai_base_url,omitempty"`
}

// GatewayConfig holds Twilio-compatible gateway credentials.
// All three of AccountSID, AuthToken and FromNumber must be set for the
// gateway to be considered configured.
type GatewayConfig struct {
	AccountSID string `yaml:"account_sid"`
	AuthToken  string `yaml:"auth_token"`
	FromNumber string `yaml:"from_number"`

	// BaseURL overrides the gateway API endpoint (used in tests)
	BaseURL string `yaml:"base_url,omitempty"`
}

// Configured reports whether the gateway has usable credentials.
func (g GatewayConfig) Configured() bool {
	return g.AccountSID != "" && g.AuthToken != "" && g.FromNumber != ""
}

// StorageConfig selects the audit store backend.
type StorageConfig struct {
	// Driver is "postgres", "sqlite", or "" (audit logging disabled)
	Driver string `yaml:"driver"`

	// DSN is the postgres connection string (driver=postgres)
	DSN string `yaml:"dsn"`

	// Path is the database file path (driver=sqlite)
	Path string `yaml:"path"`
}

// RedisConfig controls the optional recent-transcript cache.
type RedisConfig struct {
	// Addr is the redis host:port (empty = cache disabled)
	Addr string `yaml:"addr"`
}

// PolicyConfig holds the escalation thresholds.
type PolicyConfig struct {
	// SMSThreshold is the minimum score that triggers an SMS
	SMSThreshold float64 `yaml:"sms_threshold"`

	// CallThreshold is the minimum score that triggers an emergency call
	CallThreshold float64 `yaml:"call_threshold"`
}

// LoadConfig loads configuration from the given path.
// It applies defaults, then file values, then environment overrides,
// then validates.
//
// A missing config file is not an error; defaults plus environment
// variables are enough to run.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		if data, err := os.ReadFile(path); err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}
