package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"personal_blog/internal/models"
	"personal_blog/internal/repository"
)

type PostService struct {
	posts  repository.Posts
	themes repository.Themes
	feed   Feed
}

func NewPostService(posts repository.Posts, themes repository.Themes, feed Feed) *PostService {
	return &PostService{posts: posts, themes: themes, feed: feed}
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	return s.posts.FindAll(ctx)
}

func (s *PostService) GetByID(ctx context.Context, id int) (models.Post, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return models.Post{}, err
	}
	if p == nil {
		return models.Post{}, ErrNotFound
	}
	return *p, nil
}

func (s *PostService) SearchByTitle(ctx context.Context, q string) ([]models.Post, error) {
	return s.posts.SearchByTitle(ctx, q)
}

type CreatePostParams struct {
	Title   string
	Text    string
	ThemeID int
	UserID  int // authenticated author
}

// Create stores a new post under an existing theme and broadcasts it.
func (s *PostService) Create(ctx context.Context, p CreatePostParams) (models.Post, error) {
	theme, err := s.requireTheme(ctx, p.ThemeID)
	if err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		Title:   p.Title,
		Text:    p.Text,
		Date:    time.Now().UTC(),
		ThemeID: p.ThemeID,
		UserID:  p.UserID,
	}
	id, err := s.posts.Insert(ctx, post)
	if err != nil {
		return models.Post{}, err
	}
	post.ID = id
	post.Theme = theme

	s.feed.Publish(FeedEvent{Type: EventPostCreated, Post: post})
	return post, nil
}

type UpdatePostParams struct {
	ID      int
	Title   string
	Text    string
	ThemeID int
}

// Update rewrites title/text/theme, re-stamps the date, and broadcasts the
// result. The author never changes.
func (s *PostService) Update(ctx context.Context, p UpdatePostParams) (models.Post, error) {
	existing, err := s.posts.FindByID(ctx, p.ID)
	if err != nil {
		return models.Post{}, err
	}
	if existing == nil {
		return models.Post{}, ErrNotFound
	}

	theme, err := s.requireTheme(ctx, p.ThemeID)
	if err != nil {
		return models.Post{}, err
	}

	post := *existing
	post.Title = p.Title
	post.Text = p.Text
	post.ThemeID = p.ThemeID
	post.Date = time.Now().UTC()
	post.Theme = theme

	if err := s.posts.Update(ctx, post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Post{}, ErrNotFound
		}
		return models.Post{}, err
	}

	s.feed.Publish(FeedEvent{Type: EventPostUpdated, Post: post})
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id int) error {
	existing, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.feed.Publish(FeedEvent{Type: EventPostDeleted, Post: *existing})
	return nil
}

// requireTheme resolves the referenced theme or fails with ErrNotFound.
func (s *PostService) requireTheme(ctx context.Context, themeID int) (*models.Theme, error) {
	theme, err := s.themes.FindByID(ctx, themeID)
	if err != nil {
		return nil, err
	}
	if theme == nil {
		return nil, fmt.Errorf("theme %d: %w", themeID, ErrNotFound)
	}
	return theme, nil
}
