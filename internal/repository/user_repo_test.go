package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"
	"testing"

	"personal_blog/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockUserRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	repo := NewUserRepository(db)
	cleanup := func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Fatalf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	}
	return repo, mock, cleanup
}

func TestUserRepository_Insert(t *testing.T) {
	tests := []struct {
		name       string
		user       models.User
		mockExpect func(sqlmock.Sqlmock)
		wantID     int
		wantErr    error
		errContain string
	}{
		{
			name: "success",
			user: models.User{Name: "Alice", Handle: "alice@email.com", PasswordHash: "h123", Photo: "p.jpg"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Alice", "alice@email.com", "h123", "p.jpg").
					WillReturnResult(sqlmock.NewResult(42, 1))
			},
			wantID: 42,
		},
		{
			name: "unique violation maps to ErrDuplicateHandle",
			user: models.User{Name: "Bob", Handle: "alice@email.com", PasswordHash: "h456"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Bob", "alice@email.com", "h456", "").
					WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.handle (2067)"))
			},
			wantErr: ErrDuplicateHandle,
		},
		{
			name: "exec error",
			user: models.User{Name: "Carol", Handle: "carol@email.com", PasswordHash: "h789"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Carol", "carol@email.com", "h789", "").
					WillReturnError(errors.New("db exec failed"))
			},
			errContain: "insert user",
		},
		{
			name: "last insert id error",
			user: models.User{Name: "Dave", Handle: "dave@email.com", PasswordHash: "h000"},
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectExec(regexp.QuoteMeta(insertUserSQL)).
					WithArgs("Dave", "dave@email.com", "h000", "").
					WillReturnResult(sqlmock.NewErrorResult(errors.New("no last id")))
			},
			errContain: "get last insert id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			id, err := repo.Insert(context.Background(), tt.user)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if tt.errContain != "" {
				if err == nil || !strings.Contains(err.Error(), tt.errContain) {
					t.Fatalf("expected error containing %q, got %v", tt.errContain, err)
				}
				if id != 0 {
					t.Fatalf("expected id=0 on error, got %d", id)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if id != tt.wantID {
				t.Fatalf("unexpected id: want %d, got %d", tt.wantID, id)
			}
		})
	}
}

func TestUserRepository_FindByHandle(t *testing.T) {
	tests := []struct {
		name       string
		handle     string
		mockExpect func(sqlmock.Sqlmock)
		wantUser   *models.User
		wantErr    bool
	}{
		{
			name:   "found",
			handle: "alice@email.com",
			mockExpect: func(m sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "handle", "password_hash", "photo"}).
					AddRow(7, "Alice", "alice@email.com", "h123", "p.jpg")
				m.ExpectQuery(regexp.QuoteMeta(selectUserByHandleSQL)).
					WithArgs("alice@email.com").
					WillReturnRows(rows)
			},
			wantUser: &models.User{ID: 7, Name: "Alice", Handle: "alice@email.com", PasswordHash: "h123", Photo: "p.jpg"},
		},
		{
			name:   "not found (ErrNoRows)",
			handle: "missing",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByHandleSQL)).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantUser: nil,
		},
		{
			name:   "query error",
			handle: "bob",
			mockExpect: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(regexp.QuoteMeta(selectUserByHandleSQL)).
					WithArgs("bob").
					WillReturnError(errors.New("db query failed"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock, cleanup := newMockUserRepo(t)
			defer cleanup()

			tt.mockExpect(mock)

			u, err := repo.FindByHandle(context.Background(), tt.handle)

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantUser == nil {
				if u != nil {
					t.Fatalf("expected nil user, got %+v", u)
				}
				return
			}
			if u == nil {
				t.Fatalf("expected user, got nil")
			}
			if *u != *tt.wantUser {
				t.Fatalf("unexpected user: want %+v, got %+v", tt.wantUser, u)
			}
		})
	}
}

func TestUserRepository_FindAll(t *testing.T) {
	repo, mock, cleanup := newMockUserRepo(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "handle", "password_hash", "photo"}).
		AddRow(1, "Alice", "alice@email.com", "h1", nil).
		AddRow(2, "Bob", "bob@email.com", "h2", "b.jpg")
	mock.ExpectQuery(regexp.QuoteMeta(selectAllUsersSQL)).WillReturnRows(rows)

	users, err := repo.FindAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
	if users[0].Photo != "" {
		t.Fatalf("expected empty photo for NULL column, got %q", users[0].Photo)
	}
	if users[1].Handle != "bob@email.com" {
		t.Fatalf("unexpected second user: %+v", users[1])
	}
}

func TestUserRepository_Update(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateUserSQL)).
			WithArgs("Alice", "alice@email.com", "h9", "p.jpg", 7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(context.Background(), models.User{
			ID: 7, Name: "Alice", Handle: "alice@email.com", PasswordHash: "h9", Photo: "p.jpg",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no rows matched", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateUserSQL)).
			WithArgs("Ghost", "ghost@email.com", "h0", "", 9999).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(context.Background(), models.User{
			ID: 9999, Name: "Ghost", Handle: "ghost@email.com", PasswordHash: "h0",
		})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("handle collision", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(updateUserSQL)).
			WithArgs("Bob", "alice@email.com", "h2", "", 2).
			WillReturnError(errors.New("constraint failed: UNIQUE constraint failed: users.handle (2067)"))

		err := repo.Update(context.Background(), models.User{
			ID: 2, Name: "Bob", Handle: "alice@email.com", PasswordHash: "h2",
		})
		if !errors.Is(err, ErrDuplicateHandle) {
			t.Fatalf("expected ErrDuplicateHandle, got %v", err)
		}
	})
}

func TestUserRepository_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteUserSQL)).
			WithArgs(7).
			WillReturnResult(sqlmock.NewResult(0, 1))

		if err := repo.Delete(context.Background(), 7); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no rows matched", func(t *testing.T) {
		repo, mock, cleanup := newMockUserRepo(t)
		defer cleanup()

		mock.ExpectExec(regexp.QuoteMeta(deleteUserSQL)).
			WithArgs(9999).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 9999)
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
