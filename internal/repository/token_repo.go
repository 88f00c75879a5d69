package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gamestore/internal/models"

	"github.com/google/uuid"
)

type TokenRepository struct {
	db *sql.DB
}

func NewTokenRepository(db *sql.DB) *TokenRepository {
	return &TokenRepository{db: db}
}

var _ Tokens = (*TokenRepository)(nil)

const (
	insertTokenSQL = `INSERT INTO tokens (id, token) VALUES (?, ?)`
	selectTokenSQL = `SELECT id FROM tokens WHERE token = ?`
	deleteTokenSQL = `DELETE FROM tokens WHERE token = ?`
)

// Save adds a freshly issued token string to the allow-list.
func (r *TokenRepository) Save(ctx context.Context, token string) error {
	row := models.Token{ID: uuid.NewString(), Token: token}
	if _, err := r.db.ExecContext(ctx, insertTokenSQL, row.ID, row.Token); err != nil {
		return fmt.Errorf("insert token: %w", err)
	}
	return nil
}

// Exists reports whether the exact token string is still on the allow-list.
func (r *TokenRepository) Exists(ctx context.Context, token string) (bool, error) {
	var id string
	err := r.db.QueryRowContext(ctx, selectTokenSQL, token).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("select token: %w", err)
	}
	return true, nil
}

// Delete removes the token row matching the exact string. Deleting a
// token that is already gone is not an error (logout is idempotent).
func (r *TokenRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.ExecContext(ctx, deleteTokenSQL, token); err != nil {
		return fmt.Errorf("delete token: %w", err)
	}
	return nil
}
