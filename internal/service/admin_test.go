package service

import (
	"context"
	"errors"
	"testing"

	"taskflow/internal/apperrors"
	"taskflow/internal/models"
)

func TestAccessService_AuthorizedAs(t *testing.T) {
	users := map[int]*models.User{
		1: {ID: 1, Name: "Administrador", IsAdmin: true},
		2: {ID: 2, Name: "Ana"},
	}
	repo := &mockUsers{
		GetByIDFn: func(id int) (*models.User, error) {
			if id == 500 {
				return nil, errors.New("db down")
			}
			return users[id], nil
		},
	}
	svc := NewAccessService(repo)

	tests := []struct {
		name     string
		userID   int
		role     models.Role
		wantCode apperrors.Code
	}{
		{"admin as admin", 1, models.RoleAdmin, ""},
		{"admin as user", 1, models.RoleUser, ""},
		{"user as user", 2, models.RoleUser, ""},
		{"user as admin", 2, models.RoleAdmin, apperrors.CodeForbidden},
		{"deleted user", 3, models.RoleUser, apperrors.CodeTokenInvalid},
		{"lookup failure", 500, models.RoleAdmin, apperrors.CodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := svc.AuthorizedAs(context.Background(), tt.userID, tt.role)
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("AuthorizedAs: %v", err)
				}
				if u.ID != tt.userID {
					t.Fatalf("got user %d", u.ID)
				}
				return
			}
			if got := apperrors.CodeOf(err); got != tt.wantCode {
				t.Fatalf("code = %s, want %s", got, tt.wantCode)
			}
		})
	}
}

func TestAdminService_Views(t *testing.T) {
	users := &mockUsers{ListFn: func() ([]models.User, error) { return nil, nil }}
	tasks := &mockTasks{ListAllWithOwnerFn: func() ([]models.TaskWithOwner, error) {
		return []models.TaskWithOwner{{Task: models.Task{ID: 1}, OwnerName: "Ana", OwnerEmail: "ana@x.com"}}, nil
	}}
	svc := NewAdminService(users, tasks, &mockStats{users: 2, tasks: 5, categories: 1})
	ctx := context.Background()

	st, err := svc.Stats(ctx)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st != (models.Stats{TotalUsers: 2, TotalTasks: 5, TotalCategories: 1}) {
		t.Fatalf("Stats = %+v", st)
	}

	list, err := svc.ListUsers(ctx)
	if err != nil || list == nil {
		t.Fatalf("ListUsers = %#v, %v", list, err)
	}

	all, err := svc.ListAllTasks(ctx)
	if err != nil || len(all) != 1 || all[0].OwnerEmail != "ana@x.com" {
		t.Fatalf("ListAllTasks = %+v, %v", all, err)
	}
}

func TestAdminService_StatsError(t *testing.T) {
	svc := NewAdminService(&mockUsers{}, &mockTasks{}, &mockStats{err: errors.New("boom")})
	if _, err := svc.Stats(context.Background()); apperrors.CodeOf(err) != apperrors.CodeInternal {
		t.Fatalf("expected internal error, got %v", err)
	}
}

func TestCategoryService_CreateCategory(t *testing.T) {
	tests := []struct {
		name      string
		in        CategoryInput
		wantColor string
		wantCode  apperrors.Code
	}{
		{"default color", CategoryInput{Name: " Casa "}, models.DefaultCategoryColor, ""},
		{"custom color", CategoryInput{Name: "Trabajo", Color: "#ff0000"}, "#ff0000", ""},
		{"missing name", CategoryInput{Name: " "}, "", apperrors.CodeValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockCategories{CreateFn: func(models.Category) (int, error) { return 8, nil }}
			id, err := NewCategoryService(repo).CreateCategory(context.Background(), 2, tt.in)
			if tt.wantCode != "" {
				if apperrors.CodeOf(err) != tt.wantCode {
					t.Fatalf("code = %s, want %s", apperrors.CodeOf(err), tt.wantCode)
				}
				return
			}
			if err != nil || id != 8 {
				t.Fatalf("CreateCategory = %d, %v", id, err)
			}
			got := repo.created[0]
			if got.Color != tt.wantColor || got.UserID != 2 || got.Name == "" || got.Name[0] == ' ' {
				t.Fatalf("created = %+v", got)
			}
		})
	}
}

func TestCategoryService_ListCategories_NeverNil(t *testing.T) {
	repo := &mockCategories{ListByOwnerFn: func(int) ([]models.Category, error) { return nil, nil }}
	got, err := NewCategoryService(repo).ListCategories(context.Background(), 1)
	if err != nil || got == nil {
		t.Fatalf("ListCategories = %#v, %v", got, err)
	}
}
