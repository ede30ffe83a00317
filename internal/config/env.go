package config

import (
	"os"
	"strconv"
)

// envOverrides maps environment variables to config field setters.
// The variable names match the original deployment environment so an
// existing .env keeps working.
var envOverrides = []struct {
	envVar string
	apply  func(*Config, string)
}{
	{
		envVar: "PORT",
		apply: func(c *Config, v string) {
			c.Server.Addr = ":" + v
		},
	},
	{
		envVar: "OLLAMA_HOST",
		apply: func(c *Config, v string) {
			c.Inference.OllamaHost = v
		},
	},
	{
		envVar: "OLLAMA_MODEL",
		apply: func(c *Config, v string) {
			c.Inference.OllamaModel = v
		},
	},
	{
		envVar: "OPENAI_API_KEY",
		apply: func(c *Config, v string) {
			c.Inference.OpenAIKey = v
		},
	},
	{
		envVar: "TWILIO_ACCOUNT_SID",
		apply: func(c *Config, v string) {
			c.Gateway.AccountSID = v
		},
	},
	{
		envVar: "TWILIO_AUTH_TOKEN",
		apply: func(c *Config, v string) {
			c.Gateway.AuthToken = v
		},
	},
	{
		envVar: "TWILIO_FROM_NUMBER",
		apply: func(c *Config, v string) {
			c.Gateway.FromNumber = v
		},
	},
	{
		envVar: "DATABASE_URL",
		apply: func(c *Config, v string) {
			c.Storage.Driver = "postgres"
			c.Storage.DSN = v
		},
	},
	{
		envVar: "REDIS_URL",
		apply: func(c *Config, v string) {
			c.Redis.Addr = v
		},
	},
	{
		envVar: "SMS_THRESHOLD",
		apply: func(c *Config, v string) {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.Policy.SMSThreshold = f
			}
		},
	},
	{
		envVar: "CALL_THRESHOLD",
		apply: func(c *Config, v string) {
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				c.Policy.CallThreshold = f
			}
		},
	},
	{
		envVar: "MIRA_LOG_LEVEL",
		apply: func(c *Config, v string) {
			c.LogLevel = v
		},
	},
}

// applyEnvOverrides modifies config in place with environment variable values.
func applyEnvOverrides(cfg *Config) {
	for _, override := range envOverrides {
		if val := os.Getenv(override.envVar); val != "" {
			override.apply(cfg, val)
		}
	}
}
