package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"personal_blog/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	insertUserSQL         = `INSERT INTO users (name, handle, password_hash, photo) VALUES (?, ?, ?, ?)`
	selectUserByIDSQL     = `SELECT id, name, handle, password_hash, photo FROM users WHERE id = ?`
	selectUserByHandleSQL = `SELECT id, name, handle, password_hash, photo FROM users WHERE handle = ?`
	selectAllUsersSQL     = `SELECT id, name, handle, password_hash, photo FROM users ORDER BY id ASC`
	updateUserSQL         = `UPDATE users SET name = ?, handle = ?, password_hash = ?, photo = ? WHERE id = ?`
	deleteUserSQL         = `DELETE FROM users WHERE id = ?`
)

// Insert creates a new user and returns its ID. A UNIQUE violation on the
// handle column is reported as ErrDuplicateHandle so racing registrations
// cannot both succeed.
func (r *UserRepository) Insert(ctx context.Context, u models.User) (int, error) {
	res, err := r.db.ExecContext(ctx, insertUserSQL, u.Name, u.Handle, u.PasswordHash, u.Photo)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", u.Handle, ErrDuplicateHandle)
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Handle, err)
	}
	lastID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for user %q: %w", u.Handle, err)
	}
	return int(lastID), nil
}

// FindByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByIDSQL, id), fmt.Sprintf("id %d", id))
}

// FindByHandle fetches a user by login handle. Returns (nil, nil) if not found.
func (r *UserRepository) FindByHandle(ctx context.Context, handle string) (*models.User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, selectUserByHandleSQL, handle), fmt.Sprintf("handle %q", handle))
}

func (r *UserRepository) scanOne(row *sql.Row, what string) (*models.User, error) {
	var (
		u     models.User
		photo sql.NullString
	)
	err := row.Scan(&u.ID, &u.Name, &u.Handle, &u.PasswordHash, &photo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select user %s: %w", what, err)
	}
	u.Photo = photo.String
	return &u, nil
}

// FindAll returns all users ordered by id.
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectAllUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		var (
			u     models.User
			photo sql.NullString
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Handle, &u.PasswordHash, &photo); err != nil {
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		u.Photo = photo.String
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate user rows: %w", err)
	}
	return out, nil
}

// Update rewrites all mutable columns of the row. Returns ErrNotFound if no
// row matched, ErrDuplicateHandle if the new handle collides.
func (r *UserRepository) Update(ctx context.Context, u models.User) error {
	res, err := r.db.ExecContext(ctx, updateUserSQL, u.Name, u.Handle, u.PasswordHash, u.Photo, u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("update user %d: %w", u.ID, ErrDuplicateHandle)
		}
		return fmt.Errorf("update user %d: %w", u.ID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for user %d: %w", u.ID, err)
	}
	if n == 0 {
		return fmt.Errorf("update user %d: %w", u.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the row. Returns ErrNotFound if no row matched.
func (r *UserRepository) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, deleteUserSQL, id)
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for user %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("delete user %d: %w", id, ErrNotFound)
	}
	return nil
}
