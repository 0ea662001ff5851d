package service

import (
	"context"

	"taskflow/internal/config"
	"taskflow/internal/models"
	"taskflow/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, in RegisterInput) (int, error)
	Login(ctx context.Context, email, password string) (Session, error)
	IssueToken(userID int) (string, error)
	ParseToken(accessToken string) (int, error)
	EnsureAdmin(ctx context.Context, in RegisterInput) (bool, error)
}

// Access resolves a token's user id to a user holding the given role.
type Access interface {
	AuthorizedAs(ctx context.Context, userID int, role models.Role) (*models.User, error)
}

// Tasks manages the caller's own to-do items.
type Tasks interface {
	ListTasks(ctx context.Context, userID int) ([]models.Task, error)
	CreateTask(ctx context.Context, userID int, in TaskInput) (int, error)
	SetTaskCompleted(ctx context.Context, userID, taskID int, completed bool) error
	DeleteTask(ctx context.Context, userID, taskID int) error
}

// Calendar projects dated tasks into display events.
type Calendar interface {
	CalendarEvents(ctx context.Context, userID int) ([]models.CalendarEvent, error)
}

type Categories interface {
	ListCategories(ctx context.Context, userID int) ([]models.Category, error)
	CreateCategory(ctx context.Context, userID int, in CategoryInput) (int, error)
}

// Admin exposes the read-only dashboard views.
type Admin interface {
	Stats(ctx context.Context) (models.Stats, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	ListAllTasks(ctx context.Context) ([]models.TaskWithOwner, error)
}

type Service struct {
	Authorization
	Access
	Tasks
	Calendar
	Categories
	Admin
}

func NewService(repos *repository.Repository, auth config.AuthConfig) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, auth),
		Access:        NewAccessService(repos.Users),
		Tasks:         NewTaskService(repos.Tasks),
		Calendar:      NewCalendarService(repos.Tasks),
		Categories:    NewCategoryService(repos.Categories),
		Admin:         NewAdminService(repos.Users, repos.Tasks, repos.Stats),
	}
}
