package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "modelarena/internal/errors"
	"modelarena/internal/model"
	"modelarena/internal/repository"
	mock_repo "modelarena/internal/repository/mocks"
	"modelarena/internal/service"
)

func TestAccountService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success assigns an ID and creation time", func(t *testing.T) {
		repo := mock_repo.NewMockAccountRepository(t)
		svc := service.NewAccountService(repo)

		repo.On("CreateAccount", ctx, mock.MatchedBy(func(a *model.Account) bool {
			return a.Username == "player-one" && a.ID != "" && !a.CreatedAt.IsZero()
		})).Return(nil).Once()

		account, err := svc.Create(ctx, "player-one", []byte(`{"level": 3}`))
		require.NoError(t, err)
		assert.Equal(t, "player-one", account.Username)
		assert.NotEmpty(t, account.ID)
		assert.JSONEq(t, `{"level": 3}`, string(account.Profile))
	})

	t.Run("Duplicate username maps to a conflict", func(t *testing.T) {
		repo := mock_repo.NewMockAccountRepository(t)
		svc := service.NewAccountService(repo)

		repo.On("CreateAccount", ctx, mock.Anything).Return(repository.ErrDuplicate).Once()

		_, err := svc.Create(ctx, "player-one", nil)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestAccountService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := mock_repo.NewMockAccountRepository(t)
		svc := service.NewAccountService(repo)

		stored := &model.Account{ID: "id-1", Username: "player-one"}
		repo.On("GetAccountByUsername", ctx, "player-one").Return(stored, nil).Once()

		account, err := svc.Get(ctx, "player-one")
		require.NoError(t, err)
		assert.Equal(t, stored, account)
	})

	t.Run("Unknown username maps to not found", func(t *testing.T) {
		repo := mock_repo.NewMockAccountRepository(t)
		svc := service.NewAccountService(repo)

		repo.On("GetAccountByUsername", ctx, "ghost").Return(nil, repository.ErrNotFound).Once()

		_, err := svc.Get(ctx, "ghost")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestAccountService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := mock_repo.NewMockAccountRepository(t)
		svc := service.NewAccountService(repo)

		repo.On("DeleteAccount", ctx, "player-one").Return(nil).Once()
		assert.NoError(t, svc.Delete(ctx, "player-one"))
	})

	t.Run("Unknown username maps to not found", func(t *testing.T) {
		repo := mock_repo.NewMockAccountRepository(t)
		svc := service.NewAccountService(repo)

		repo.On("DeleteAccount", ctx, "ghost").Return(repository.ErrNotFound).Once()
		assert.ErrorIs(t, svc.Delete(ctx, "ghost"), apperrors.ErrNotFound)
	})

	t.Run("Other repository errors are not swallowed", func(t *testing.T) {
		repo := mock_repo.NewMockAccountRepository(t)
		svc := service.NewAccountService(repo)

		repo.On("DeleteAccount", ctx, "player-one").Return(errors.New("disk full")).Once()
		err := svc.Delete(ctx, "player-one")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, apperrors.ErrNotFound)
	})
}
