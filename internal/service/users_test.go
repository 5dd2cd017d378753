package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"personal_blog/internal/models"
	"personal_blog/internal/repository"
)

func TestUserService_GetByID_NotFound(t *testing.T) {
	mock := &mockUserRepo{
		FindByIDFn: func(id int) (*models.User, error) {
			return nil, nil
		},
	}
	svc := NewUserService(mock)

	_, err := svc.GetByID(context.Background(), 9999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	oldHash, err := hashPassword("old-secret")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	existing := &models.User{ID: 7, Name: "Murilo", Handle: "murilo@email.com", PasswordHash: oldHash}

	mock := &mockUserRepo{
		FindByIDFn: func(id int) (*models.User, error) {
			return existing, nil
		},
		UpdateFn: func(u models.User) error { return nil },
	}
	svc := NewUserService(mock)

	u, err := svc.Update(context.Background(), UpdateUserParams{
		ID:       7,
		Name:     "Murilo atualizado",
		Handle:   "murilo-atualizado@email.com",
		Password: "new-secret",
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}

	if u.PasswordHash == "new-secret" {
		t.Fatalf("returned digest equals the submitted plaintext")
	}
	if err := verifyPassword(u.PasswordHash, "new-secret"); err != nil {
		t.Fatalf("new digest does not verify with new password: %v", err)
	}
	if err := verifyPassword(u.PasswordHash, "old-secret"); err == nil {
		t.Fatalf("old password still verifies after the change")
	}
	if u.Name != "Murilo atualizado" || u.Handle != "murilo-atualizado@email.com" {
		t.Fatalf("unexpected updated user: %+v", u)
	}
}

func TestUserService_Update_KeepsDigestWhenPasswordOmitted(t *testing.T) {
	oldHash, err := hashPassword("still-valid")
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	existing := &models.User{ID: 7, Name: "Murilo", Handle: "murilo@email.com", PasswordHash: oldHash}

	mock := &mockUserRepo{
		FindByIDFn: func(id int) (*models.User, error) { return existing, nil },
		UpdateFn:   func(u models.User) error { return nil },
	}
	svc := NewUserService(mock)

	u, err := svc.Update(context.Background(), UpdateUserParams{ID: 7, Name: "Renamed"})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if u.PasswordHash != oldHash {
		t.Fatalf("digest changed although no password was submitted")
	}
	if err := verifyPassword(u.PasswordHash, "still-valid"); err != nil {
		t.Fatalf("old password no longer verifies: %v", err)
	}
	if u.Name != "Renamed" || u.Handle != "murilo@email.com" {
		t.Fatalf("unexpected updated user: %+v", u)
	}
}

func TestUserService_Update_NotFound(t *testing.T) {
	mock := &mockUserRepo{
		FindByIDFn: func(id int) (*models.User, error) { return nil, nil },
		UpdateFn: func(u models.User) error {
			t.Fatal("Update should not be called for a missing user")
			return nil
		},
	}
	svc := NewUserService(mock)

	_, err := svc.Update(context.Background(), UpdateUserParams{ID: 9999, Name: "Teste"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserService_Update_DuplicateHandle(t *testing.T) {
	existing := &models.User{ID: 2, Name: "Bob", Handle: "bob@email.com", PasswordHash: "h"}
	mock := &mockUserRepo{
		FindByIDFn: func(id int) (*models.User, error) { return existing, nil },
		UpdateFn: func(u models.User) error {
			return fmt.Errorf("update user %d: %w", u.ID, repository.ErrDuplicateHandle)
		},
	}
	svc := NewUserService(mock)

	_, err := svc.Update(context.Background(), UpdateUserParams{ID: 2, Handle: "alice@email.com"})
	if !errors.Is(err, ErrDuplicateHandle) {
		t.Fatalf("expected ErrDuplicateHandle, got %v", err)
	}
}

func TestUserService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := &mockUserRepo{
			DeleteFn: func(id int) error { return nil },
		}
		svc := NewUserService(mock)

		if err := svc.Delete(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(mock.deleteCalls) != 1 || mock.deleteCalls[0] != 7 {
			t.Fatalf("unexpected delete calls: %v", mock.deleteCalls)
		}
	})

	t.Run("not found", func(t *testing.T) {
		mock := &mockUserRepo{
			DeleteFn: func(id int) error {
				return fmt.Errorf("delete user %d: %w", id, repository.ErrNotFound)
			},
		}
		svc := NewUserService(mock)

		if err := svc.Delete(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
