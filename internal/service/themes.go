package service

import (
	"context"
	"errors"
	"strings"

	"personal_blog/internal/models"
	"personal_blog/internal/repository"
)

type ThemeService struct {
	themes repository.Themes
}

func NewThemeService(themes repository.Themes) *ThemeService {
	return &ThemeService{themes: themes}
}

// ErrEmptyDescription rejects themes whose description is blank after
// trimming.
var ErrEmptyDescription = errors.New("theme description is empty")

func (s *ThemeService) List(ctx context.Context) ([]models.Theme, error) {
	return s.themes.FindAll(ctx)
}

func (s *ThemeService) GetByID(ctx context.Context, id int) (models.Theme, error) {
	t, err := s.themes.FindByID(ctx, id)
	if err != nil {
		return models.Theme{}, err
	}
	if t == nil {
		return models.Theme{}, ErrNotFound
	}
	return *t, nil
}

func (s *ThemeService) SearchByDescription(ctx context.Context, q string) ([]models.Theme, error) {
	return s.themes.SearchByDescription(ctx, q)
}

func (s *ThemeService) Create(ctx context.Context, description string) (models.Theme, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return models.Theme{}, ErrEmptyDescription
	}

	t := models.Theme{Description: description}
	id, err := s.themes.Insert(ctx, t)
	if err != nil {
		return models.Theme{}, err
	}
	t.ID = id
	return t, nil
}

func (s *ThemeService) Update(ctx context.Context, t models.Theme) (models.Theme, error) {
	t.Description = strings.TrimSpace(t.Description)
	if t.Description == "" {
		return models.Theme{}, ErrEmptyDescription
	}

	if err := s.themes.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Theme{}, ErrNotFound
		}
		return models.Theme{}, err
	}
	return t, nil
}

// Delete removes the theme; its posts are cascaded by the store.
func (s *ThemeService) Delete(ctx context.Context, id int) error {
	if err := s.themes.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
