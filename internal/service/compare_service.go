package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"modelarena/internal/config"
	apperrors "modelarena/internal/errors"
	"modelarena/internal/llm"
	"modelarena/internal/model"
)

// CompareService fans a single conversation out to several upstream models
// concurrently and aggregates their independent results.
type CompareService struct {
	llm llm.Provider
	cfg *config.Config
}

func NewCompareService(llmProvider llm.Provider, cfg *config.Config) *CompareService {
	return &CompareService{llm: llmProvider, cfg: cfg}
}

// Compare launches one upstream call per requested model and waits for every
// call to settle before responding. Each goroutine writes only its own
// pre-allocated result slot, so the output keeps the exact index-to-model
// correspondence of the request no matter which calls finish first. A failed
// leg is captured in its slot; it never cancels or blocks the other legs and
// never fails the batch.
func (s *CompareService) Compare(ctx context.Context, req *model.CompareRequest) (*model.CompareResponse, error) {
	if s.cfg.UpstreamAPIKey == "" {
		return nil, fmt.Errorf("%w: upstream API key is not configured", apperrors.ErrConfiguration)
	}

	messages := toWireMessages(req.Messages)
	maxTokens := normalizeMaxTokens(req.MaxTokens)
	temperature := normalizeTemperature(req.Temperature)

	results := make([]model.ModelResult, len(req.Models))
	var wg sync.WaitGroup
	for i, modelID := range req.Models {
		wg.Add(1)
		go func(slot int, modelID string) {
			defer wg.Done()
			results[slot] = s.callModel(ctx, modelID, messages, maxTokens, temperature)
		}(i, modelID)
	}
	wg.Wait()

	return &model.CompareResponse{
		Success:      true,
		ComparisonID: uuid.NewString(),
		Results:      results,
		Timestamp:    time.Now().UTC(),
	}, nil
}

// callModel runs one leg of the fan-out and wraps its outcome, success or
// failure, into an immutable ModelResult.
func (s *CompareService) callModel(ctx context.Context, modelID string, messages []llm.Message, maxTokens int, temperature float64) model.ModelResult {
	resp, err := s.llm.CreateCompletion(ctx, &llm.CompletionRequest{
		Model:       modelID,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: temperature,
	})
	if err != nil {
		classification := ClassifyError(err)
		slog.Warn("Comparison leg failed", "model", modelID, "status", classification.Status, "error", err)
		return model.ModelResult{
			Model:     modelID,
			Success:   false,
			Message:   classification.Message,
			ErrorType: classification.Status,
		}
	}

	return model.ModelResult{
		Model:        modelID,
		Success:      true,
		Message:      resp.Message,
		Usage:        resp.Usage,
		FinishReason: resp.FinishReason,
	}
}
