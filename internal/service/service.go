package service

import (
	"context"

	"gamestore/internal/models"
	"gamestore/internal/repository"
)

// Authorization covers the whole account/session lifecycle: registration,
// login, per-request authentication, logout and password changes.
type Authorization interface {
	Register(ctx context.Context, username, email, password string) (int, error)
	Login(ctx context.Context, email, password string) (string, error)
	Authenticate(ctx context.Context, accessToken string) (*models.User, error)
	Logout(ctx context.Context, accessToken string) error
	ChangePassword(ctx context.Context, email, newPassword string) error
}

// FreeGames exposes CRUD over the free catalog.
type FreeGames interface {
	Create(ctx context.Context, g models.FreeGame) (*models.FreeGame, error)
	List(ctx context.Context) ([]models.FreeGame, error)
	GetByName(ctx context.Context, name string) (*models.FreeGame, error)
	Update(ctx context.Context, id int, g models.FreeGame) error
	DeleteByName(ctx context.Context, name string) (int64, error)
}

// OfficialGames exposes CRUD over the paid catalog.
type OfficialGames interface {
	Create(ctx context.Context, g models.OfficialGame) (*models.OfficialGame, error)
	List(ctx context.Context) ([]models.OfficialGame, error)
	GetByName(ctx context.Context, name string) (*models.OfficialGame, error)
	Update(ctx context.Context, id int, g models.OfficialGame) error
	DeleteByName(ctx context.Context, name string) (int64, error)
}

// Service aggregates all sub-services behind one handle for the HTTP layer.
type Service struct {
	Authorization Authorization
	FreeGames     FreeGames
	OfficialGames OfficialGames
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Accounts, repos.Tokens, signingKey),
		FreeGames:     NewFreeCatalogService(repos.FreeGames),
		OfficialGames: NewOfficialCatalogService(repos.OfficialGames),
	}
}
