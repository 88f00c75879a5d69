package service

import (
	"context"
	"errors"

	"gamestore/internal/models"
	"gamestore/internal/repository"
)

// ErrGameNotFound means the targeted catalog row does not exist.
var ErrGameNotFound = errors.New("game not found")

// FreeCatalogService implements CRUD over the free catalog table.
type FreeCatalogService struct {
	games repository.FreeGames
}

func NewFreeCatalogService(games repository.FreeGames) *FreeCatalogService {
	return &FreeCatalogService{games: games}
}

var _ FreeGames = (*FreeCatalogService)(nil)

func (s *FreeCatalogService) Create(ctx context.Context, g models.FreeGame) (*models.FreeGame, error) {
	return s.games.Create(ctx, g)
}

func (s *FreeCatalogService) List(ctx context.Context) ([]models.FreeGame, error) {
	return s.games.List(ctx)
}

// GetByName returns the first match; names are not unique.
func (s *FreeCatalogService) GetByName(ctx context.Context, name string) (*models.FreeGame, error) {
	g, err := s.games.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	return g, nil
}

// Update replaces every field of the targeted row.
func (s *FreeCatalogService) Update(ctx context.Context, id int, g models.FreeGame) error {
	n, err := s.games.Update(ctx, id, g)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGameNotFound
	}
	return nil
}

// DeleteByName removes all rows with the given name. Zero matches is not
// an error; the count lets callers report what happened.
func (s *FreeCatalogService) DeleteByName(ctx context.Context, name string) (int64, error) {
	return s.games.DeleteByName(ctx, name)
}

// OfficialCatalogService implements CRUD over the paid catalog table.
type OfficialCatalogService struct {
	games repository.OfficialGames
}

func NewOfficialCatalogService(games repository.OfficialGames) *OfficialCatalogService {
	return &OfficialCatalogService{games: games}
}

var _ OfficialGames = (*OfficialCatalogService)(nil)

func (s *OfficialCatalogService) Create(ctx context.Context, g models.OfficialGame) (*models.OfficialGame, error) {
	return s.games.Create(ctx, g)
}

func (s *OfficialCatalogService) List(ctx context.Context) ([]models.OfficialGame, error) {
	return s.games.List(ctx)
}

func (s *OfficialCatalogService) GetByName(ctx context.Context, name string) (*models.OfficialGame, error) {
	g, err := s.games.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrGameNotFound
	}
	return g, nil
}

func (s *OfficialCatalogService) Update(ctx context.Context, id int, g models.OfficialGame) error {
	n, err := s.games.Update(ctx, id, g)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (s *OfficialCatalogService) DeleteByName(ctx context.Context, name string) (int64, error) {
	return s.games.DeleteByName(ctx, name)
}
