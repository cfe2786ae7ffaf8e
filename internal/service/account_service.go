package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	apperrors "modelarena/internal/errors"
	"modelarena/internal/model"
	"modelarena/internal/repository"
)

// AccountService implements the trivial key-based account store. Username is
// the only lookup key; there are no invariants beyond its uniqueness.
type AccountService struct {
	repo repository.AccountRepository
}

func NewAccountService(repo repository.AccountRepository) *AccountService {
	return &AccountService{repo: repo}
}

// Create stores a new account under its username.
func (s *AccountService) Create(ctx context.Context, username string, profile []byte) (*model.Account, error) {
	account := &model.Account{
		ID:        uuid.NewString(),
		Username:  username,
		Profile:   profile,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateAccount(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, fmt.Errorf("%w: username %q is already taken", apperrors.ErrConflict, username)
		}
		return nil, fmt.Errorf("could not create account: %w", err)
	}
	return account, nil
}

// Get looks an account up by username.
func (s *AccountService) Get(ctx context.Context, username string) (*model.Account, error) {
	account, err := s.repo.GetAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %q", apperrors.ErrNotFound, username)
		}
		return nil, fmt.Errorf("could not get account: %w", err)
	}
	return account, nil
}

// Delete removes an account by username.
func (s *AccountService) Delete(ctx context.Context, username string) error {
	if err := s.repo.DeleteAccount(ctx, username); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fmt.Errorf("%w: account %q", apperrors.ErrNotFound, username)
		}
		return fmt.Errorf("could not delete account: %w", err)
	}
	return nil
}
