package service

import (
	"context"
	"testing"

	"gamestore/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFreeGames struct {
	rows   []models.FreeGame
	nextID int
}

func newFakeFreeGames() *fakeFreeGames {
	return &fakeFreeGames{nextID: 1}
}

func (f *fakeFreeGames) Create(_ context.Context, g models.FreeGame) (*models.FreeGame, error) {
	g.ID = f.nextID
	f.nextID++
	f.rows = append(f.rows, g)
	return &g, nil
}

func (f *fakeFreeGames) List(_ context.Context) ([]models.FreeGame, error) {
	return f.rows, nil
}

func (f *fakeFreeGames) GetByName(_ context.Context, name string) (*models.FreeGame, error) {
	for i := range f.rows {
		if f.rows[i].Name == name {
			return &f.rows[i], nil
		}
	}
	return nil, nil
}

func (f *fakeFreeGames) Update(_ context.Context, id int, g models.FreeGame) (int64, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			g.ID = id
			f.rows[i] = g
			return 1, nil
		}
	}
	return 0, nil
}

func (f *fakeFreeGames) DeleteByName(_ context.Context, name string) (int64, error) {
	var kept []models.FreeGame
	var n int64
	for _, row := range f.rows {
		if row.Name == name {
			n++
			continue
		}
		kept = append(kept, row)
	}
	f.rows = kept
	return n, nil
}

func TestFreeCatalog_CreateThenGetByName(t *testing.T) {
	svc := NewFreeCatalogService(newFakeFreeGames())
	ctx := context.Background()

	created, err := svc.Create(ctx, models.FreeGame{Name: "pong", Description: "d", ImageURL: "u"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotZero(t, created.ID)

	got, err := svc.GetByName(ctx, "pong")
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.ImageURL, got.ImageURL)
}

func TestFreeCatalog_GetByName_FirstMatchWins(t *testing.T) {
	svc := NewFreeCatalogService(newFakeFreeGames())
	ctx := context.Background()

	first, err := svc.Create(ctx, models.FreeGame{Name: "pong", Description: "old", ImageURL: "u"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.FreeGame{Name: "pong", Description: "new", ImageURL: "u"})
	require.NoError(t, err)

	got, err := svc.GetByName(ctx, "pong")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestFreeCatalog_GetByName_NotFound(t *testing.T) {
	svc := NewFreeCatalogService(newFakeFreeGames())

	_, err := svc.GetByName(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestFreeCatalog_UpdateTargetsSingleRow(t *testing.T) {
	repo := newFakeFreeGames()
	svc := NewFreeCatalogService(repo)
	ctx := context.Background()

	a, err := svc.Create(ctx, models.FreeGame{Name: "a", Description: "da", ImageURL: "ua"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.FreeGame{Name: "b", Description: "db", ImageURL: "ub"})
	require.NoError(t, err)

	err = svc.Update(ctx, a.ID, models.FreeGame{Name: "a2", Description: "da2", ImageURL: "ua2"})
	require.NoError(t, err)

	assert.Equal(t, "a2", repo.rows[0].Name)
	assert.Equal(t, "b", repo.rows[1].Name, "other row untouched")
}

func TestFreeCatalog_UpdateMissingRow(t *testing.T) {
	svc := NewFreeCatalogService(newFakeFreeGames())

	err := svc.Update(context.Background(), 99, models.FreeGame{Name: "n", Description: "d", ImageURL: "u"})
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestFreeCatalog_DeleteByNameRemovesAllMatches(t *testing.T) {
	repo := newFakeFreeGames()
	svc := NewFreeCatalogService(repo)
	ctx := context.Background()

	for _, name := range []string{"pong", "pong", "snake"} {
		_, err := svc.Create(ctx, models.FreeGame{Name: name, Description: "d", ImageURL: "u"})
		require.NoError(t, err)
	}

	n, err := svc.DeleteByName(ctx, "pong")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
	require.Len(t, repo.rows, 1)
	assert.Equal(t, "snake", repo.rows[0].Name)

	// zero matches is not an error
	n, err = svc.DeleteByName(ctx, "pong")
	require.NoError(t, err)
	assert.Zero(t, n)
}
