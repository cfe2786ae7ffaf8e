package service

import (
	"context"
	"fmt"

	"modelarena/internal/config"
	apperrors "modelarena/internal/errors"
	"modelarena/internal/llm"
	"modelarena/internal/model"
)

// ChatService forwards a single validated conversation to one upstream model
// and normalizes the result.
type ChatService struct {
	llm llm.Provider
	cfg *config.Config
}

func NewChatService(llmProvider llm.Provider, cfg *config.Config) *ChatService {
	return &ChatService{llm: llmProvider, cfg: cfg}
}

// CreateCompletion performs exactly one upstream call for the request. It
// fails fast with a configuration error when no upstream credential is set,
// before any network activity. Parameter defaults and clamping are applied
// here so the upstream always sees normalized values.
func (s *ChatService) CreateCompletion(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error) {
	if s.cfg.UpstreamAPIKey == "" {
		return nil, fmt.Errorf("%w: upstream API key is not configured", apperrors.ErrConfiguration)
	}

	modelID := req.Model
	if modelID == "" {
		modelID = s.cfg.DefaultModel
	}

	resp, err := s.llm.CreateCompletion(ctx, &llm.CompletionRequest{
		Model:       modelID,
		Messages:    toWireMessages(req.Messages),
		MaxTokens:   normalizeMaxTokens(req.MaxTokens),
		Temperature: normalizeTemperature(req.Temperature),
	})
	if err != nil {
		return nil, err
	}

	return &model.ChatResponse{
		Success:      true,
		Message:      resp.Message,
		Model:        modelID,
		Usage:        resp.Usage,
		FinishReason: resp.FinishReason,
	}, nil
}
