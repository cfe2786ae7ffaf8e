package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds every runtime setting the application needs. It is loaded once
// at startup and passed explicitly into the services that need it, so nothing
// reads the environment at request time.
type Config struct {
	AppPort                int    `mapstructure:"APP_PORT"`
	DatabasePath           string `mapstructure:"DATABASE_PATH"`
	UpstreamURL            string `mapstructure:"UPSTREAM_URL"`
	UpstreamAPIKey         string `mapstructure:"UPSTREAM_API_KEY"`
	UpstreamTimeoutSeconds int    `mapstructure:"UPSTREAM_TIMEOUT_SECONDS"`
	DefaultModel           string `mapstructure:"DEFAULT_MODEL"`
	AvailableModels        string `mapstructure:"AVAILABLE_MODELS"`
	RateLimitRequests      int    `mapstructure:"RATE_LIMIT_REQUESTS"`
	RateLimitWindowSeconds int    `mapstructure:"RATE_LIMIT_WINDOW_SECONDS"`
	LogLevel               string `mapstructure:"LOG_LEVEL"`
}

func LoadConfig() (*Config, error) {
	viper.SetDefault("APP_PORT", 8080)
	viper.SetDefault("DATABASE_PATH", "/data/arena.db")
	viper.SetDefault("UPSTREAM_URL", "https://openrouter.ai/api/v1")
	viper.SetDefault("UPSTREAM_API_KEY", "")
	viper.SetDefault("UPSTREAM_TIMEOUT_SECONDS", 60)
	viper.SetDefault("DEFAULT_MODEL", "openai/gpt-4o-mini")
	viper.SetDefault("AVAILABLE_MODELS", "openai/gpt-4o-mini,openai/gpt-4o,anthropic/claude-3.5-sonnet,google/gemini-flash-1.5,meta-llama/llama-3.1-70b-instruct")
	viper.SetDefault("RATE_LIMIT_REQUESTS", 60)
	viper.SetDefault("RATE_LIMIT_WINDOW_SECONDS", 60)
	viper.SetDefault("LOG_LEVEL", "INFO")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// ModelList splits the comma-separated AVAILABLE_MODELS value into identifiers.
func (c *Config) ModelList() []string {
	parts := strings.Split(c.AvailableModels, ",")
	models := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			models = append(models, trimmed)
		}
	}
	return models
}

// UpstreamTimeout returns the per-call upstream timeout as a duration.
func (c *Config) UpstreamTimeout() time.Duration {
	return time.Duration(c.UpstreamTimeoutSeconds) * time.Second
}

// RateLimitWindow returns the rolling rate-limit window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}
