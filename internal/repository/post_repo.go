package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"personal_blog/internal/models"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

var _ Posts = (*PostRepository)(nil)

// Reads join the theme row so responses can nest it.
const (
	insertPostSQL = `INSERT INTO posts (title, text, date, theme_id, user_id) VALUES (?, ?, ?, ?, ?)`

	selectPostSQL = `
		SELECT p.id, p.title, p.text, p.date, p.theme_id, p.user_id, t.description
		FROM posts p
		JOIN themes t ON t.id = p.theme_id
	`
	selectPostByIDSQL = selectPostSQL + ` WHERE p.id = ?`
	selectAllPostsSQL = selectPostSQL + ` ORDER BY p.id ASC`
	searchPostsSQL    = selectPostSQL + ` WHERE p.title LIKE ? ORDER BY p.id ASC`
	updatePostSQL     = `UPDATE posts SET title = ?, text = ?, date = ?, theme_id = ? WHERE id = ?`
	deletePostSQL     = `DELETE FROM posts WHERE id = ?`
)

func (r *PostRepository) Insert(ctx context.Context, p models.Post) (int, error) {
	res, err := r.db.ExecContext(ctx, insertPostSQL, p.Title, p.Text, p.Date.UTC(), p.ThemeID, p.UserID)
	if err != nil {
		return 0, fmt.Errorf("insert post %q: %w", p.Title, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for post %q: %w", p.Title, err)
	}
	return int(lastID), nil
}

// FindByID fetches a post with its theme joined. Returns (nil, nil) if not found.
func (r *PostRepository) FindByID(ctx context.Context, id int) (*models.Post, error) {
	p, err := scanPost(r.db.QueryRowContext(ctx, selectPostByIDSQL, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select post %d: %w", id, err)
	}
	return p, nil
}

func (r *PostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	return r.queryPosts(ctx, selectAllPostsSQL)
}

// SearchByTitle matches posts whose title contains q.
func (r *PostRepository) SearchByTitle(ctx context.Context, q string) ([]models.Post, error) {
	return r.queryPosts(ctx, searchPostsSQL, "%"+q+"%")
}

func (r *PostRepository) queryPosts(ctx context.Context, query string, args ...any) ([]models.Post, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select posts: %w", err)
	}
	defer rows.Close()

	out := make([]models.Post, 0, 32)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}
		out = append(out, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate post rows: %w", err)
	}
	return out, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanPost(s scanner) (*models.Post, error) {
	var (
		p    models.Post
		desc string
		date time.Time
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Text, &date, &p.ThemeID, &p.UserID, &desc); err != nil {
		return nil, err
	}
	p.Date = date.UTC()
	p.Theme = &models.Theme{ID: p.ThemeID, Description: desc}
	return &p, nil
}

// Update rewrites the mutable columns (author never changes).
// Returns ErrNotFound if no row matched.
func (r *PostRepository) Update(ctx context.Context, p models.Post) error {
	res, err := r.db.ExecContext(ctx, updatePostSQL, p.Title, p.Text, p.Date.UTC(), p.ThemeID, p.ID)
	if err != nil {
		return fmt.Errorf("update post %d: %w", p.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for post %d: %w", p.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("update post %d: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deletePostSQL, id)
	if err != nil {
		return fmt.Errorf("delete post %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for post %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete post %d: %w", id, ErrNotFound)
	}
	return nil
}
