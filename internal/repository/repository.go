package repository

import (
	"context"
	"database/sql"
	"errors"

	"personal_blog/internal/models"
)

// Sentinel errors surfaced by write operations. Read misses on single-row
// lookups are reported as (nil, nil) instead.
var (
	ErrNotFound        = errors.New("no matching row")
	ErrDuplicateHandle = errors.New("login handle already taken")
)

type Users interface {
	Insert(ctx context.Context, u models.User) (int, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByHandle(ctx context.Context, handle string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, u models.User) error
	Delete(ctx context.Context, id int) error
}

type Themes interface {
	Insert(ctx context.Context, t models.Theme) (int, error)
	FindByID(ctx context.Context, id int) (*models.Theme, error)
	FindAll(ctx context.Context) ([]models.Theme, error)
	SearchByDescription(ctx context.Context, q string) ([]models.Theme, error)
	Update(ctx context.Context, t models.Theme) error
	Delete(ctx context.Context, id int) error
}

type Posts interface {
	Insert(ctx context.Context, p models.Post) (int, error)
	FindByID(ctx context.Context, id int) (*models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	SearchByTitle(ctx context.Context, q string) ([]models.Post, error)
	Update(ctx context.Context, p models.Post) error
	Delete(ctx context.Context, id int) error
}

type Repository struct {
	Users  Users
	Themes Themes
	Posts  Posts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users:  NewUserRepository(db),
		Themes: NewThemeRepository(db),
		Posts:  NewPostRepository(db),
	}
}
