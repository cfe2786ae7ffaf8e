package model

import (
	"encoding/json"
	"time"
)

// ChatMessage is a single turn in a conversation. The message order is
// chronological and preserved end-to-end.
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=user assistant system"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest is the client payload for a single-model completion.
// Model, MaxTokens and Temperature are optional; the service fills in
// configured defaults and clamps out-of-range values.
type ChatRequest struct {
	Messages    []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	Model       string        `json:"model,omitempty"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

// CompareRequest is the client payload for the multi-model comparison
// endpoint. It carries a list of 1 to 5 model identifiers instead of a
// single model.
type CompareRequest struct {
	Messages    []ChatMessage `json:"messages" validate:"required,min=1,dive"`
	Models      []string      `json:"models" validate:"required,min=1,max=5,dive,required"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

// ChatResponse is the normalized result of a single-model completion.
// Usage is passed through from the upstream service untouched.
type ChatResponse struct {
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	Model        string          `json:"model"`
	Usage        json.RawMessage `json:"usage,omitempty"`
	FinishReason string          `json:"finish_reason,omitempty"`
}

// ModelResult is the per-model outcome of one leg of a comparison. It is
// created once the leg settles and never mutated afterwards. On failure,
// Message carries a human-readable description and ErrorType the classified
// status code; Usage and FinishReason are only set on success.
type ModelResult struct {
	Model        string          `json:"model"`
	Success      bool            `json:"success"`
	Message      string          `json:"message"`
	Usage        json.RawMessage `json:"usage,omitempty"`
	FinishReason string          `json:"finish_reason,omitempty"`
	ErrorType    int             `json:"error_type,omitempty"`
}

// CompareResponse is the aggregate comparison result. Results has exactly the
// same length and index-to-model correspondence as the requested model list.
type CompareResponse struct {
	Success      bool          `json:"success"`
	ComparisonID string        `json:"comparison_id"`
	Results      []ModelResult `json:"results"`
	Timestamp    time.Time     `json:"timestamp"`
}

// ModelsInfo describes the model catalog exposed to clients.
type ModelsInfo struct {
	Current   string   `json:"current"`
	Available []string `json:"available"`
}

// Account is a stored player account. Username is the lookup key; Profile is
// an opaque JSON document the server stores but never interprets.
type Account struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Profile   json.RawMessage `json:"profile,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
