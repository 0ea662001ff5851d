package repository

import (
	"context"
	"database/sql"
	"fmt"

	"taskflow/internal/models"
	"taskflow/internal/repository/dialect"
)

type CategoryRepository struct {
	db *sql.DB
	d  dialect.Dialect
}

func NewCategoryRepository(db *sql.DB, d dialect.Dialect) *CategoryRepository {
	return &CategoryRepository{db: db, d: d}
}

var _ Categories = (*CategoryRepository)(nil)

const (
	insertCategorySQL         = `INSERT INTO categories (name, color, user_id) VALUES (?, ?, ?)`
	selectCategoriesByUserSQL = `SELECT id, name, color, user_id FROM categories WHERE user_id = ? ORDER BY name ASC, id ASC`
)

// Create inserts a category and returns its ID.
func (r *CategoryRepository) Create(ctx context.Context, c models.Category) (int, error) {
	id, err := r.d.InsertID(ctx, r.db, insertCategorySQL, c.Name, c.Color, c.UserID)
	if err != nil {
		return 0, fmt.Errorf("insert category %q: %w", c.Name, err)
	}
	return id, nil
}

// ListByOwner returns the user's categories ordered by name.
func (r *CategoryRepository) ListByOwner(ctx context.Context, userID int) ([]models.Category, error) {
	rows, err := r.db.QueryContext(ctx, r.d.Rebind(selectCategoriesByUserSQL), userID)
	if err != nil {
		return nil, fmt.Errorf("select categories for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Category, 0, 8)
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.UserID); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return out, nil
}
