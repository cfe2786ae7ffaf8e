package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/mattn/go-sqlite3"

	"modelarena/internal/model"
)

type sqliteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) AccountRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) CreateAccount(ctx context.Context, account *model.Account) error {
	var profile sql.NullString
	if len(account.Profile) > 0 && string(account.Profile) != "null" {
		profile.String = string(account.Profile)
		profile.Valid = true
	}

	query := "INSERT INTO accounts (id, username, profile, created_at) VALUES (?, ?, ?, ?)"
	_, err := r.db.ExecContext(ctx, query, account.ID, account.Username, profile, account.CreatedAt)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *sqliteRepository) GetAccountByUsername(ctx context.Context, username string) (*model.Account, error) {
	query := "SELECT id, username, profile, created_at FROM accounts WHERE username = ?"
	row := r.db.QueryRowContext(ctx, query, username)

	var account model.Account
	var profile sql.NullString
	err := row.Scan(&account.ID, &account.Username, &profile, &account.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if profile.Valid {
		account.Profile = json.RawMessage(profile.String)
	}
	return &account, nil
}

func (r *sqliteRepository) DeleteAccount(ctx context.Context, username string) error {
	query := "DELETE FROM accounts WHERE username = ?"
	result, err := r.db.ExecContext(ctx, query, username)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
