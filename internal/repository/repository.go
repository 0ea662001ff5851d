package repository

import (
	"context"
	"database/sql"
	"errors"

	"taskflow/internal/models"
	"taskflow/internal/repository/dialect"
)

// ErrDuplicateEmail is returned by Users.Create when the email is taken.
var ErrDuplicateEmail = errors.New("email already registered")

type Users interface {
	Create(ctx context.Context, u models.User) (int, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	UpdatePasswordHash(ctx context.Context, id int, hash string) error
}

type Tasks interface {
	ListByOwner(ctx context.Context, userID int) ([]models.Task, error)
	ListDatedByOwner(ctx context.Context, userID int) ([]models.Task, error)
	ListAllWithOwner(ctx context.Context) ([]models.TaskWithOwner, error)
	Create(ctx context.Context, t models.Task) (int, error)
	SetCompleted(ctx context.Context, id, userID int, completed bool) (int64, error)
	Delete(ctx context.Context, id, userID int) (int64, error)
}

type Categories interface {
	Create(ctx context.Context, c models.Category) (int, error)
	ListByOwner(ctx context.Context, userID int) ([]models.Category, error)
}

type Stats interface {
	Counts(ctx context.Context) (users, tasks, categories int, err error)
}

type Repository struct {
	Users      Users
	Tasks      Tasks
	Categories Categories
	Stats      Stats
}

func NewRepository(db *sql.DB, d dialect.Dialect) *Repository {
	return &Repository{
		Users:      NewUserRepository(db, d),
		Tasks:      NewTaskRepository(db, d),
		Categories: NewCategoryRepository(db, d),
		Stats:      NewStatsRepository(db),
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func rowsAffected(res sql.Result) int64 {
	n, err := res.RowsAffected()
	if err != nil {
		// some drivers cannot report it; callers treat zero as a no-op anyway
		return 0
	}
	return n
}
