package service

import (
	"context"
	"errors"
	"time"

	"personal_blog/internal/models"
	"personal_blog/internal/repository"
)

// Domain errors shared by the resource services. Handlers translate these
// into HTTP statuses; nothing below the handler layer speaks HTTP.
var (
	ErrNotFound        = errors.New("record not found")
	ErrDuplicateHandle = errors.New("login handle already registered")
)

type Authorization interface {
	SignUp(ctx context.Context, p SignUpParams) (models.User, error)
	GenerateToken(ctx context.Context, handle, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Users exposes CRUD over registered accounts (registration goes through
// Authorization so the password is always hashed).
type Users interface {
	List(ctx context.Context) ([]models.User, error)
	GetByID(ctx context.Context, id int) (models.User, error)
	Update(ctx context.Context, p UpdateUserParams) (models.User, error)
	Delete(ctx context.Context, id int) error
}

type Posts interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, id int) (models.Post, error)
	SearchByTitle(ctx context.Context, q string) ([]models.Post, error)
	Create(ctx context.Context, p CreatePostParams) (models.Post, error)
	Update(ctx context.Context, p UpdatePostParams) (models.Post, error)
	Delete(ctx context.Context, id int) error
}

type Themes interface {
	List(ctx context.Context) ([]models.Theme, error)
	GetByID(ctx context.Context, id int) (models.Theme, error)
	SearchByDescription(ctx context.Context, q string) ([]models.Theme, error)
	Create(ctx context.Context, description string) (models.Theme, error)
	Update(ctx context.Context, t models.Theme) (models.Theme, error)
	Delete(ctx context.Context, id int) error
}

// Feed is the in-process pub/sub hub for post lifecycle events.
type Feed interface {
	Subscribe() (<-chan FeedEvent, func())
	Publish(ev FeedEvent)
}

// Config carries the token signing material, loaded once at process start.
type Config struct {
	SigningKey string
	TokenTTL   time.Duration
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Users
	Posts
	Themes
	Feed
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, cfg Config) *Service {
	feed := NewFeedService()
	return &Service{
		Authorization: NewAuthService(repos.Users, cfg),
		Users:         NewUserService(repos.Users),
		Posts:         NewPostService(repos.Posts, repos.Themes, feed),
		Themes:        NewThemeService(repos.Themes),
		Feed:          feed,
	}
}
