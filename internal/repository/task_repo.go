package repository

import (
	"context"
	"database/sql"
	"fmt"

	"taskflow/internal/models"
	"taskflow/internal/repository/dialect"
)

type TaskRepository struct {
	db *sql.DB
	d  dialect.Dialect
}

func NewTaskRepository(db *sql.DB, d dialect.Dialect) *TaskRepository {
	return &TaskRepository{db: db, d: d}
}

var _ Tasks = (*TaskRepository)(nil)

const (
	taskColumns = `id, title, description, category, priority, due_date, completed, created_at, user_id`

	// Dated tasks first, by date; ties broken by explicit priority rank, then id.
	taskOrder = ` ORDER BY CASE WHEN due_date IS NULL THEN 1 ELSE 0 END, due_date ASC,` +
		` CASE priority WHEN 'high' THEN 0 WHEN 'medium' THEN 1 ELSE 2 END, id ASC`

	selectTasksByOwnerSQL      = `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?` + taskOrder
	selectDatedTasksByOwnerSQL = `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ? AND due_date IS NOT NULL` + taskOrder

	selectAllTasksWithOwnerSQL = `
		SELECT t.id, t.title, t.description, t.category, t.priority, t.due_date, t.completed, t.created_at, t.user_id,
		       u.name, u.email
		FROM tasks t
		JOIN users u ON t.user_id = u.id
		ORDER BY t.created_at DESC, t.id DESC`

	insertTaskSQL = `
		INSERT INTO tasks (title, description, category, priority, due_date, completed, created_at, user_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	updateTaskCompletedSQL = `UPDATE tasks SET completed = ? WHERE id = ? AND user_id = ?`
	deleteTaskSQL          = `DELETE FROM tasks WHERE id = ? AND user_id = ?`
)

// ListByOwner returns the user's tasks in display order.
func (r *TaskRepository) ListByOwner(ctx context.Context, userID int) ([]models.Task, error) {
	return r.list(ctx, selectTasksByOwnerSQL, userID)
}

// ListDatedByOwner returns the user's tasks that have a due date, in display order.
func (r *TaskRepository) ListDatedByOwner(ctx context.Context, userID int) ([]models.Task, error) {
	return r.list(ctx, selectDatedTasksByOwnerSQL, userID)
}

func (r *TaskRepository) list(ctx context.Context, query string, userID int) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, r.d.Rebind(query), userID)
	if err != nil {
		return nil, fmt.Errorf("select tasks for user %d: %w", userID, err)
	}
	defer rows.Close()

	out := make([]models.Task, 0, 32)
	for rows.Next() {
		var t models.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}

// ListAllWithOwner returns every task joined with its owner, newest first.
func (r *TaskRepository) ListAllWithOwner(ctx context.Context) ([]models.TaskWithOwner, error) {
	rows, err := r.db.QueryContext(ctx, selectAllTasksWithOwnerSQL)
	if err != nil {
		return nil, fmt.Errorf("select all tasks: %w", err)
	}
	defer rows.Close()

	out := make([]models.TaskWithOwner, 0, 64)
	for rows.Next() {
		var t models.TaskWithOwner
		if err := scanTask(rows, &t.Task, &t.OwnerName, &t.OwnerEmail); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}
	return out, nil
}

// Create inserts a task and returns its ID.
func (r *TaskRepository) Create(ctx context.Context, t models.Task) (int, error) {
	id, err := r.d.InsertID(ctx, r.db, insertTaskSQL,
		t.Title,
		nullString(t.Description),
		nullString(t.Category),
		string(t.Priority),
		t.DueDate,
		t.Completed,
		t.CreatedAt.UTC(),
		t.UserID,
	)
	if err != nil {
		return 0, fmt.Errorf("insert task for user %d: %w", t.UserID, err)
	}
	return id, nil
}

// SetCompleted updates the completion flag of a task owned by userID and
// reports how many rows changed. A foreign or missing id changes nothing.
func (r *TaskRepository) SetCompleted(ctx context.Context, id, userID int, completed bool) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(updateTaskCompletedSQL), completed, id, userID)
	if err != nil {
		return 0, fmt.Errorf("update task %d: %w", id, err)
	}
	return rowsAffected(res), nil
}

// Delete removes a task owned by userID and reports how many rows were removed.
func (r *TaskRepository) Delete(ctx context.Context, id, userID int) (int64, error) {
	res, err := r.db.ExecContext(ctx, r.d.Rebind(deleteTaskSQL), id, userID)
	if err != nil {
		return 0, fmt.Errorf("delete task %d: %w", id, err)
	}
	return rowsAffected(res), nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner, t *models.Task, extra ...any) error {
	var (
		description, category sql.NullString
		priority              string
	)
	dest := append([]any{
		&t.ID, &t.Title, &description, &category, &priority, &t.DueDate, &t.Completed, &t.CreatedAt, &t.UserID,
	}, extra...)
	if err := s.Scan(dest...); err != nil {
		return fmt.Errorf("scan task: %w", err)
	}
	t.Description = stringPtr(description)
	t.Category = stringPtr(category)
	t.Priority = models.Priority(priority)
	t.CreatedAt = t.CreatedAt.UTC()
	return nil
}
