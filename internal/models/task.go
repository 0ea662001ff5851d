package models

import "time"

// Task is a single to-do item owned by one user.
type Task struct {
	ID          int       `json:"id"`
	Title       string    `json:"titulo"`
	Description *string   `json:"descripcion"`
	Category    *string   `json:"categoria"`
	Priority    Priority  `json:"prioridad"`
	DueDate     Date      `json:"fecha_limite"`
	Completed   bool      `json:"completada"`
	CreatedAt   time.Time `json:"fecha_creacion"`
	UserID      int       `json:"user_id"`
}

// TaskWithOwner is a task joined with its owner's identity, for moderation views.
type TaskWithOwner struct {
	Task
	OwnerName  string `json:"usuario_nombre"`
	OwnerEmail string `json:"usuario_email"`
}

// Category is a user-defined label with a display color.
type Category struct {
	ID     int    `json:"id"`
	Name   string `json:"nombre"`
	Color  string `json:"color"`
	UserID int    `json:"user_id"`
}

// DefaultCategoryColor is applied when a category is created without a color.
const DefaultCategoryColor = "#4361ee"

// Stats are the aggregate counts shown on the admin dashboard.
type Stats struct {
	TotalUsers      int `json:"total_users"`
	TotalTasks      int `json:"total_tasks"`
	TotalCategories int `json:"total_categories"`
}
