package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gamestore/internal/models"
)

// Both catalog tables share the same CRUD shape. Query text is kept as
// consts per table so tests can assert against the exact SQL.

const (
	insertFreeGameSQL       = `INSERT INTO free_games (name, description, image_url) VALUES (?, ?, ?)`
	selectFreeGamesSQL      = `SELECT id, name, description, image_url FROM free_games`
	selectFreeGameByNameSQL = `SELECT id, name, description, image_url FROM free_games WHERE name = ? LIMIT 1`
	updateFreeGameSQL       = `UPDATE free_games SET name = ?, description = ?, image_url = ? WHERE id = ?`
	deleteFreeGameByNameSQL = `DELETE FROM free_games WHERE name = ?`

	insertOfficialGameSQL       = `INSERT INTO official_games (name, description, image_url, price) VALUES (?, ?, ?, ?)`
	selectOfficialGamesSQL      = `SELECT id, name, description, image_url, price FROM official_games`
	selectOfficialGameByNameSQL = `SELECT id, name, description, image_url, price FROM official_games WHERE name = ? LIMIT 1`
	updateOfficialGameSQL       = `UPDATE official_games SET name = ?, description = ?, image_url = ?, price = ? WHERE id = ?`
	deleteOfficialGameByNameSQL = `DELETE FROM official_games WHERE name = ?`
)

type FreeGameRepository struct {
	db *sql.DB
}

func NewFreeGameRepository(db *sql.DB) *FreeGameRepository {
	return &FreeGameRepository{db: db}
}

var _ FreeGames = (*FreeGameRepository)(nil)

// Create inserts a new free game and returns the stored row.
func (r *FreeGameRepository) Create(ctx context.Context, g models.FreeGame) (*models.FreeGame, error) {
	res, err := r.db.ExecContext(ctx, insertFreeGameSQL, g.Name, g.Description, g.ImageURL)
	if err != nil {
		return nil, fmt.Errorf("insert free game %q: %w", g.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for free game %q: %w", g.Name, err)
	}
	g.ID = int(lastID)
	return &g, nil
}

// List returns every free game, unpaginated.
func (r *FreeGameRepository) List(ctx context.Context) ([]models.FreeGame, error) {
	rows, err := r.db.QueryContext(ctx, selectFreeGamesSQL)
	if err != nil {
		return nil, fmt.Errorf("select free games: %w", err)
	}
	defer rows.Close()

	out := make([]models.FreeGame, 0, 16)
	for rows.Next() {
		var g models.FreeGame
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.ImageURL); err != nil {
			return nil, fmt.Errorf("scan free game: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate free games: %w", err)
	}
	return out, nil
}

// GetByName returns the first game matching name. Names are not unique;
// the first row wins. Returns (nil, nil) if not found.
func (r *FreeGameRepository) GetByName(ctx context.Context, name string) (*models.FreeGame, error) {
	var g models.FreeGame
	err := r.db.QueryRowContext(ctx, selectFreeGameByNameSQL, name).
		Scan(&g.ID, &g.Name, &g.Description, &g.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select free game %q: %w", name, err)
	}
	return &g, nil
}

// Update replaces every field of the row with the given id and reports
// how many rows matched.
func (r *FreeGameRepository) Update(ctx context.Context, id int, g models.FreeGame) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateFreeGameSQL, g.Name, g.Description, g.ImageURL, id)
	if err != nil {
		return 0, fmt.Errorf("update free game %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for free game %d: %w", id, err)
	}
	return n, nil
}

// DeleteByName removes every row matching name and reports how many went.
func (r *FreeGameRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteFreeGameByNameSQL, name)
	if err != nil {
		return 0, fmt.Errorf("delete free games %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for free games %q: %w", name, err)
	}
	return n, nil
}

type OfficialGameRepository struct {
	db *sql.DB
}

func NewOfficialGameRepository(db *sql.DB) *OfficialGameRepository {
	return &OfficialGameRepository{db: db}
}

var _ OfficialGames = (*OfficialGameRepository)(nil)

func (r *OfficialGameRepository) Create(ctx context.Context, g models.OfficialGame) (*models.OfficialGame, error) {
	res, err := r.db.ExecContext(ctx, insertOfficialGameSQL, g.Name, g.Description, g.ImageURL, g.Price)
	if err != nil {
		return nil, fmt.Errorf("insert official game %q: %w", g.Name, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("get last insert id for official game %q: %w", g.Name, err)
	}
	g.ID = int(lastID)
	return &g, nil
}

func (r *OfficialGameRepository) List(ctx context.Context) ([]models.OfficialGame, error) {
	rows, err := r.db.QueryContext(ctx, selectOfficialGamesSQL)
	if err != nil {
		return nil, fmt.Errorf("select official games: %w", err)
	}
	defer rows.Close()

	out := make([]models.OfficialGame, 0, 16)
	for rows.Next() {
		var g models.OfficialGame
		if err := rows.Scan(&g.ID, &g.Name, &g.Description, &g.ImageURL, &g.Price); err != nil {
			return nil, fmt.Errorf("scan official game: %w", err)
		}
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate official games: %w", err)
	}
	return out, nil
}

func (r *OfficialGameRepository) GetByName(ctx context.Context, name string) (*models.OfficialGame, error) {
	var g models.OfficialGame
	err := r.db.QueryRowContext(ctx, selectOfficialGameByNameSQL, name).
		Scan(&g.ID, &g.Name, &g.Description, &g.ImageURL, &g.Price)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select official game %q: %w", name, err)
	}
	return &g, nil
}

func (r *OfficialGameRepository) Update(ctx context.Context, id int, g models.OfficialGame) (int64, error) {
	res, err := r.db.ExecContext(ctx, updateOfficialGameSQL, g.Name, g.Description, g.ImageURL, g.Price, id)
	if err != nil {
		return 0, fmt.Errorf("update official game %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for official game %d: %w", id, err)
	}
	return n, nil
}

func (r *OfficialGameRepository) DeleteByName(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteOfficialGameByNameSQL, name)
	if err != nil {
		return 0, fmt.Errorf("delete official games %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected for official games %q: %w", name, err)
	}
	return n, nil
}
