package service

import (
	"context"

	"modelarena/internal/config"
	"modelarena/internal/model"
)

// ModelService exposes the model catalog the proxy is configured with.
type ModelService struct {
	cfg *config.Config
}

func NewModelService(cfg *config.Config) *ModelService {
	return &ModelService{cfg: cfg}
}

// List returns the configured default model and the identifiers available
// for chat and comparison requests.
func (s *ModelService) List(_ context.Context) *model.ModelsInfo {
	return &model.ModelsInfo{
		Current:   s.cfg.DefaultModel,
		Available: s.cfg.ModelList(),
	}
}
