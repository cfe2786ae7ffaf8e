package repository

import (
	"context"

	"modelarena/internal/model"
)

// AccountRepository defines the interface for account storage operations.
// This interface makes it easy to switch database implementations.
type AccountRepository interface {
	CreateAccount(ctx context.Context, account *model.Account) error
	GetAccountByUsername(ctx context.Context, username string) (*model.Account, error)
	DeleteAccount(ctx context.Context, username string) error
}
