package service

import (
	"context"

	"taskflow/internal/apperrors"
	"taskflow/internal/models"
	"taskflow/internal/repository"
)

type AdminService struct {
	users repository.Users
	tasks repository.Tasks
	stats repository.Stats
}

func NewAdminService(users repository.Users, tasks repository.Tasks, stats repository.Stats) *AdminService {
	return &AdminService{users: users, tasks: tasks, stats: stats}
}

// Stats counts every user (admins included), task and category.
func (s *AdminService) Stats(ctx context.Context) (models.Stats, error) {
	u, t, c, err := s.stats.Counts(ctx)
	if err != nil {
		return models.Stats{}, apperrors.Wrap(apperrors.CodeInternal, "count rows", err)
	}
	return models.Stats{TotalUsers: u, TotalTasks: t, TotalCategories: c}, nil
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "list users", err)
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

func (s *AdminService) ListAllTasks(ctx context.Context) ([]models.TaskWithOwner, error) {
	tasks, err := s.tasks.ListAllWithOwner(ctx)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "list all tasks", err)
	}
	if tasks == nil {
		tasks = []models.TaskWithOwner{}
	}
	return tasks, nil
}
