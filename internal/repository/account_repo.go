package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gamestore/internal/models"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// Ensure implementation of Accounts interface at compile time.
var _ Accounts = (*AccountRepository)(nil)

const (
	insertAccountSQL      = `INSERT INTO users (username, email, password_hash) VALUES (?, ?, ?)`
	selectAccountByEmail  = `SELECT id, username, email, password_hash FROM users WHERE email = ?`
	updateAccountPassword = `UPDATE users SET password_hash = ? WHERE email = ?`
)

// Create inserts a new account and returns its ID. Duplicate username or
// email surfaces as the UNIQUE constraint error from the driver.
func (r *AccountRepository) Create(ctx context.Context, username, email, passwordHash string) (int, error) {
	res, err := r.db.ExecContext(ctx, insertAccountSQL, username, email, passwordHash)
	if err != nil {
		return 0, fmt.Errorf("insert account %q: %w", email, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for account %q: %w", email, err)
	}
	return int(lastID), nil
}

// GetByEmail fetches an account by exact email match. Returns (nil, nil) if not found.
func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	err := r.db.QueryRowContext(ctx, selectAccountByEmail, email).
		Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select account %q: %w", email, err)
	}
	return &u, nil
}

// UpdatePasswordHash replaces the stored hash for the account with the given email.
func (r *AccountRepository) UpdatePasswordHash(ctx context.Context, email, passwordHash string) error {
	if _, err := r.db.ExecContext(ctx, updateAccountPassword, passwordHash, email); err != nil {
		return fmt.Errorf("update password for account %q: %w", email, err)
	}
	return nil
}
