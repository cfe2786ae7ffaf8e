package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestModelList(t *testing.T) {
	cfg := &Config{AvailableModels: "openai/gpt-4o-mini, anthropic/claude-3.5-sonnet ,,google/gemini-flash-1.5"}

	assert.Equal(t, []string{
		"openai/gpt-4o-mini",
		"anthropic/claude-3.5-sonnet",
		"google/gemini-flash-1.5",
	}, cfg.ModelList())
}

func TestModelList_Empty(t *testing.T) {
	cfg := &Config{AvailableModels: ""}
	assert.Empty(t, cfg.ModelList())
}

func TestDurations(t *testing.T) {
	cfg := &Config{UpstreamTimeoutSeconds: 60, RateLimitWindowSeconds: 30}
	assert.Equal(t, 60*time.Second, cfg.UpstreamTimeout())
	assert.Equal(t, 30*time.Second, cfg.RateLimitWindow())
}
