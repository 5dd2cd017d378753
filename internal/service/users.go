package service

import (
	"context"
	"errors"

	"personal_blog/internal/models"
	"personal_blog/internal/repository"
)

type UserService struct {
	users repository.Users
}

func NewUserService(users repository.Users) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.FindAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id int) (models.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if u == nil {
		return models.User{}, ErrNotFound
	}
	return *u, nil
}

// UpdateUserParams carries the fields to change. Empty strings mean "keep
// the stored value"; a non-empty Password is re-hashed before persisting.
type UpdateUserParams struct {
	ID       int
	Name     string
	Handle   string
	Password string
	Photo    string
}

func (s *UserService) Update(ctx context.Context, p UpdateUserParams) (models.User, error) {
	existing, err := s.users.FindByID(ctx, p.ID)
	if err != nil {
		return models.User{}, err
	}
	if existing == nil {
		return models.User{}, ErrNotFound
	}

	u := *existing
	if p.Name != "" {
		u.Name = p.Name
	}
	if p.Handle != "" {
		u.Handle = p.Handle
	}
	if p.Photo != "" {
		u.Photo = p.Photo
	}
	if p.Password != "" {
		hash, err := hashPassword(p.Password)
		if err != nil {
			return models.User{}, err
		}
		u.PasswordHash = hash
	}

	if err := s.users.Update(ctx, u); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateHandle):
			return models.User{}, ErrDuplicateHandle
		case errors.Is(err, repository.ErrNotFound):
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return u, nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
