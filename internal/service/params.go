package service

import (
	"modelarena/internal/llm"
	"modelarena/internal/model"
)

// Generation parameter bounds. Absent or non-positive max_tokens falls back
// to the default; values above the ceiling are clamped down. Temperature is
// clamped into [0, 2].
const (
	defaultMaxTokens   = 1000
	maxTokensCeiling   = 4000
	defaultTemperature = 0.7
	minTemperature     = 0.0
	maxTemperature     = 2.0
)

// normalizeMaxTokens applies the default and ceiling to a requested token
// budget.
func normalizeMaxTokens(requested int) int {
	if requested <= 0 {
		return defaultMaxTokens
	}
	if requested > maxTokensCeiling {
		return maxTokensCeiling
	}
	return requested
}

// normalizeTemperature applies the default for an absent temperature and
// clamps present values into the allowed range.
func normalizeTemperature(requested *float64) float64 {
	if requested == nil {
		return defaultTemperature
	}
	switch {
	case *requested < minTemperature:
		return minTemperature
	case *requested > maxTemperature:
		return maxTemperature
	}
	return *requested
}

// toWireMessages converts client messages into the upstream wire shape,
// preserving order.
func toWireMessages(messages []model.ChatMessage) []llm.Message {
	wire := make([]llm.Message, len(messages))
	for i, m := range messages {
		wire[i] = llm.Message{Role: m.Role, Content: m.Content}
	}
	return wire
}
