package interfaces

import (
	"context"

	"modelarena/internal/model"
)

// This file defines the interfaces for our core services.
// Depending on these interfaces, instead of concrete implementations, allows for
// decoupling (e.g., API layer from Service layer) and easier testing via mocking.

// ChatService defines the contract for the single-model proxy path.
type ChatService interface {
	CreateCompletion(ctx context.Context, req *model.ChatRequest) (*model.ChatResponse, error)
}

// CompareService defines the contract for the multi-model fan-out path.
type CompareService interface {
	Compare(ctx context.Context, req *model.CompareRequest) (*model.CompareResponse, error)
}

// ModelService defines the contract for the model catalog.
type ModelService interface {
	List(ctx context.Context) *model.ModelsInfo
}

// AccountService defines the contract for the account store.
type AccountService interface {
	Create(ctx context.Context, username string, profile []byte) (*model.Account, error)
	Get(ctx context.Context, username string) (*model.Account, error)
	Delete(ctx context.Context, username string) error
}
