package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"personal_blog/internal/models"
)

type ThemeRepository struct {
	db *sql.DB
}

func NewThemeRepository(db *sql.DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

var _ Themes = (*ThemeRepository)(nil)

const (
	insertThemeSQL     = `INSERT INTO themes (description) VALUES (?)`
	selectThemeByIDSQL = `SELECT id, description FROM themes WHERE id = ?`
	selectAllThemesSQL = `SELECT id, description FROM themes ORDER BY id ASC`
	searchThemesSQL    = `SELECT id, description FROM themes WHERE description LIKE ? ORDER BY id ASC`
	updateThemeSQL     = `UPDATE themes SET description = ? WHERE id = ?`
	deleteThemeSQL     = `DELETE FROM themes WHERE id = ?`
)

func (r *ThemeRepository) Insert(ctx context.Context, t models.Theme) (int, error) {
	res, err := r.db.ExecContext(ctx, insertThemeSQL, t.Description)
	if err != nil {
		return 0, fmt.Errorf("insert theme: %w", err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for theme: %w", err)
	}
	return int(lastID), nil
}

// FindByID fetches a theme by id. Returns (nil, nil) if not found.
func (r *ThemeRepository) FindByID(ctx context.Context, id int) (*models.Theme, error) {
	var t models.Theme
	err := r.db.QueryRowContext(ctx, selectThemeByIDSQL, id).Scan(&t.ID, &t.Description)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select theme %d: %w", id, err)
	}
	return &t, nil
}

func (r *ThemeRepository) FindAll(ctx context.Context) ([]models.Theme, error) {
	return r.queryThemes(ctx, selectAllThemesSQL)
}

// SearchByDescription matches themes whose description contains q.
func (r *ThemeRepository) SearchByDescription(ctx context.Context, q string) ([]models.Theme, error) {
	return r.queryThemes(ctx, searchThemesSQL, "%"+q+"%")
}

func (r *ThemeRepository) queryThemes(ctx context.Context, query string, args ...any) ([]models.Theme, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select themes: %w", err)
	}
	defer rows.Close()

	out := make([]models.Theme, 0, 16)
	for rows.Next() {
		var t models.Theme
		if err := rows.Scan(&t.ID, &t.Description); err != nil {
			return nil, fmt.Errorf("scan theme row: %w", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate theme rows: %w", err)
	}
	return out, nil
}

func (r *ThemeRepository) Update(ctx context.Context, t models.Theme) error {
	res, err := r.db.ExecContext(ctx, updateThemeSQL, t.Description, t.ID)
	if err != nil {
		return fmt.Errorf("update theme %d: %w", t.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for theme %d: %w", t.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("update theme %d: %w", t.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the theme; posts referencing it are cascaded by the schema.
func (r *ThemeRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteThemeSQL, id)
	if err != nil {
		return fmt.Errorf("delete theme %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for theme %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete theme %d: %w", id, ErrNotFound)
	}
	return nil
}
