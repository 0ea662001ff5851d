package service

import (
	"context"
	"strings"
	"time"

	"taskflow/internal/apperrors"
	"taskflow/internal/models"
	"taskflow/internal/repository"
)

type TaskService struct {
	repo repository.Tasks
	now  func() time.Time
}

func NewTaskService(repo repository.Tasks) *TaskService {
	return &TaskService{repo: repo, now: time.Now}
}

// ListTasks returns the user's tasks ordered by due date (undated last), then
// priority rank, then id.
func (s *TaskService) ListTasks(ctx context.Context, userID int) ([]models.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "list tasks", err)
	}
	if tasks == nil {
		tasks = []models.Task{}
	}
	return tasks, nil
}

func (s *TaskService) CreateTask(ctx context.Context, userID int, in TaskInput) (int, error) {
	t, err := newTask(userID, in, s.now())
	if err != nil {
		return 0, err
	}
	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeInternal, "create task", err)
	}
	return id, nil
}

func newTask(userID int, in TaskInput, now time.Time) (models.Task, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return models.Task{}, apperrors.New(apperrors.CodeValidation, "titulo is required")
	}
	prio, err := models.ParsePriority(in.Priority)
	if err != nil {
		return models.Task{}, apperrors.Wrap(apperrors.CodeValidation, "prioridad must be baja, media or alta", err)
	}
	due, err := models.ParseDate(in.DueDate)
	if err != nil {
		return models.Task{}, apperrors.Wrap(apperrors.CodeValidation, "fecha_limite must be YYYY-MM-DD", err)
	}
	return models.Task{
		Title:       title,
		Description: blankToNil(in.Description),
		Category:    blankToNil(in.Category),
		Priority:    prio,
		DueDate:     due,
		CreatedAt:   now.UTC(),
		UserID:      userID,
	}, nil
}

// SetTaskCompleted updates the completion flag of a task the user owns. A task
// that is missing or owned by someone else is left untouched without error.
func (s *TaskService) SetTaskCompleted(ctx context.Context, userID, taskID int, completed bool) error {
	if _, err := s.repo.SetCompleted(ctx, taskID, userID, completed); err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, "update task", err)
	}
	return nil
}

// DeleteTask removes a task the user owns; foreign or missing ids are a no-op.
func (s *TaskService) DeleteTask(ctx context.Context, userID, taskID int) error {
	if _, err := s.repo.Delete(ctx, taskID, userID); err != nil {
		return apperrors.Wrap(apperrors.CodeInternal, "delete task", err)
	}
	return nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
