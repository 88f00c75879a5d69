package repository

import (
	"context"
	"database/sql"

	"gamestore/internal/models"
)

type Accounts interface {
	Create(ctx context.Context, username, email, passwordHash string) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, email, passwordHash string) error
}

type Tokens interface {
	Save(ctx context.Context, token string) error
	Exists(ctx context.Context, token string) (bool, error)
	Delete(ctx context.Context, token string) error
}

// FreeGames and OfficialGames share the same CRUD shape; the paid table
// additionally carries a price column.
type FreeGames interface {
	Create(ctx context.Context, g models.FreeGame) (*models.FreeGame, error)
	List(ctx context.Context) ([]models.FreeGame, error)
	GetByName(ctx context.Context, name string) (*models.FreeGame, error)
	Update(ctx context.Context, id int, g models.FreeGame) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

type OfficialGames interface {
	Create(ctx context.Context, g models.OfficialGame) (*models.OfficialGame, error)
	List(ctx context.Context) ([]models.OfficialGame, error)
	GetByName(ctx context.Context, name string) (*models.OfficialGame, error)
	Update(ctx context.Context, id int, g models.OfficialGame) (int64, error)
	DeleteByName(ctx context.Context, name string) (int64, error)
}

type Repository struct {
	Accounts      Accounts
	Tokens        Tokens
	FreeGames     FreeGames
	OfficialGames OfficialGames
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Accounts:      NewAccountRepository(db),
		Tokens:        NewTokenRepository(db),
		FreeGames:     NewFreeGameRepository(db),
		OfficialGames: NewOfficialGameRepository(db),
	}
}
