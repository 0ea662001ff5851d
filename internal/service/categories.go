package service

import (
	"context"
	"strings"

	"taskflow/internal/apperrors"
	"taskflow/internal/models"
	"taskflow/internal/repository"
)

type CategoryService struct {
	repo repository.Categories
}

func NewCategoryService(repo repository.Categories) *CategoryService {
	return &CategoryService{repo: repo}
}

func (s *CategoryService) ListCategories(ctx context.Context, userID int) ([]models.Category, error) {
	cats, err := s.repo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, "list categories", err)
	}
	if cats == nil {
		cats = []models.Category{}
	}
	return cats, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, userID int, in CategoryInput) (int, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return 0, apperrors.New(apperrors.CodeValidation, "nombre is required")
	}
	color := strings.TrimSpace(in.Color)
	if color == "" {
		color = models.DefaultCategoryColor
	}
	id, err := s.repo.Create(ctx, models.Category{Name: name, Color: color, UserID: userID})
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeInternal, "create category", err)
	}
	return id, nil
}
