package repository

import (
	"context"
	"database/sql"
	"fmt"
)

type StatsRepository struct {
	db *sql.DB
}

func NewStatsRepository(db *sql.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

var _ Stats = (*StatsRepository)(nil)

const (
	countUsersSQL      = `SELECT COUNT(*) FROM users`
	countTasksSQL      = `SELECT COUNT(*) FROM tasks`
	countCategoriesSQL = `SELECT COUNT(*) FROM categories`
)

// Counts returns row counts for users, tasks and categories.
func (r *StatsRepository) Counts(ctx context.Context) (users, tasks, categories int, err error) {
	for _, q := range []struct {
		sql  string
		dest *int
	}{
		{countUsersSQL, &users},
		{countTasksSQL, &tasks},
		{countCategoriesSQL, &categories},
	} {
		if err = r.db.QueryRowContext(ctx, q.sql).Scan(q.dest); err != nil {
			return 0, 0, 0, fmt.Errorf("%s: %w", q.sql, err)
		}
	}
	return users, tasks, categories, nil
}
