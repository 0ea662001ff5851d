package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"taskflow/internal/models"
	"taskflow/internal/repository/dialect"
)

type UserRepository struct {
	db *sql.DB
	d  dialect.Dialect
}

func NewUserRepository(db *sql.DB, d dialect.Dialect) *UserRepository {
	return &UserRepository{db: db, d: d}
}

// Ensure implementation of Users interface at compile time.
var _ Users = (*UserRepository)(nil)

const (
	userColumns = `id, name, email, password_hash, is_admin, registered_at`

	insertUserSQL = `INSERT INTO users (name, email, password_hash, is_admin, registered_at) VALUES (?, ?, ?, ?, ?)`

	selectUserByEmailSQL = `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	selectUserByIDSQL    = `SELECT ` + userColumns + ` FROM users WHERE id = ?`
	selectUsersSQL       = `SELECT ` + userColumns + ` FROM users ORDER BY registered_at DESC, id DESC`

	updatePasswordHashSQL = `UPDATE users SET password_hash = ? WHERE id = ?`
)

// Create inserts a new user and returns its ID. A taken email yields ErrDuplicateEmail.
func (r *UserRepository) Create(ctx context.Context, u models.User) (int, error) {
	id, err := r.d.InsertID(ctx, r.db, insertUserSQL,
		u.Name, u.Email, u.PasswordHash, u.IsAdmin, u.RegisteredAt.UTC())
	if err != nil {
		if dialect.IsUniqueViolation(err) {
			return 0, fmt.Errorf("insert user %q: %w", u.Email, ErrDuplicateEmail)
		}
		return 0, fmt.Errorf("insert user %q: %w", u.Email, err)
	}
	return id, nil
}

// GetByEmail fetches a user by email. Returns (nil, nil) if not found.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, r.d.Rebind(selectUserByEmailSQL), email))
	if err != nil {
		return nil, fmt.Errorf("select user %q: %w", email, err)
	}
	return u, nil
}

// GetByID fetches a user by id. Returns (nil, nil) if not found.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*models.User, error) {
	u, err := scanUser(r.db.QueryRowContext(ctx, r.d.Rebind(selectUserByIDSQL), id))
	if err != nil {
		return nil, fmt.Errorf("select user %d: %w", id, err)
	}
	return u, nil
}

// List returns every user, most recently registered first.
func (r *UserRepository) List(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUsersSQL)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	out := make([]models.User, 0, 16)
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.RegisteredAt = u.RegisteredAt.UTC()
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate users: %w", err)
	}
	return out, nil
}

// UpdatePasswordHash replaces the stored digest for a user.
func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id int, hash string) error {
	if _, err := r.db.ExecContext(ctx, r.d.Rebind(updatePasswordHashSQL), hash, id); err != nil {
		return fmt.Errorf("update password hash for user %d: %w", id, err)
	}
	return nil
}

func scanUser(row *sql.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.IsAdmin, &u.RegisteredAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	u.RegisteredAt = u.RegisteredAt.UTC()
	return &u, nil
}
