package service

import (
	"context"

	"taskflow/internal/models"
)

// mockUsers is a lightweight in-test mock for repository.Users.
type mockUsers struct {
	CreateFn             func(u models.User) (int, error)
	GetByEmailFn         func(email string) (*models.User, error)
	GetByIDFn            func(id int) (*models.User, error)
	ListFn               func() ([]models.User, error)
	UpdatePasswordHashFn func(id int, hash string) error

	created      []models.User
	emailLookups []string
	rehashed     map[int]string
}

func (m *mockUsers) Create(_ context.Context, u models.User) (int, error) {
	m.created = append(m.created, u)
	return m.CreateFn(u)
}

func (m *mockUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	m.emailLookups = append(m.emailLookups, email)
	return m.GetByEmailFn(email)
}

func (m *mockUsers) GetByID(_ context.Context, id int) (*models.User, error) {
	return m.GetByIDFn(id)
}

func (m *mockUsers) List(_ context.Context) ([]models.User, error) {
	return m.ListFn()
}

func (m *mockUsers) UpdatePasswordHash(_ context.Context, id int, hash string) error {
	if m.rehashed == nil {
		m.rehashed = map[int]string{}
	}
	m.rehashed[id] = hash
	if m.UpdatePasswordHashFn == nil {
		return nil
	}
	return m.UpdatePasswordHashFn(id, hash)
}

// mockTasks is a lightweight in-test mock for repository.Tasks.
type mockTasks struct {
	ListByOwnerFn      func(userID int) ([]models.Task, error)
	ListDatedByOwnerFn func(userID int) ([]models.Task, error)
	ListAllWithOwnerFn func() ([]models.TaskWithOwner, error)
	CreateFn           func(t models.Task) (int, error)
	SetCompletedFn     func(id, userID int, completed bool) (int64, error)
	DeleteFn           func(id, userID int) (int64, error)

	created []models.Task
}

func (m *mockTasks) ListByOwner(_ context.Context, userID int) ([]models.Task, error) {
	return m.ListByOwnerFn(userID)
}

func (m *mockTasks) ListDatedByOwner(_ context.Context, userID int) ([]models.Task, error) {
	return m.ListDatedByOwnerFn(userID)
}

func (m *mockTasks) ListAllWithOwner(_ context.Context) ([]models.TaskWithOwner, error) {
	return m.ListAllWithOwnerFn()
}

func (m *mockTasks) Create(_ context.Context, t models.Task) (int, error) {
	m.created = append(m.created, t)
	return m.CreateFn(t)
}

func (m *mockTasks) SetCompleted(_ context.Context, id, userID int, completed bool) (int64, error) {
	return m.SetCompletedFn(id, userID, completed)
}

func (m *mockTasks) Delete(_ context.Context, id, userID int) (int64, error) {
	return m.DeleteFn(id, userID)
}

type mockCategories struct {
	CreateFn      func(c models.Category) (int, error)
	ListByOwnerFn func(userID int) ([]models.Category, error)

	created []models.Category
}

func (m *mockCategories) Create(_ context.Context, c models.Category) (int, error) {
	m.created = append(m.created, c)
	return m.CreateFn(c)
}

func (m *mockCategories) ListByOwner(_ context.Context, userID int) ([]models.Category, error) {
	return m.ListByOwnerFn(userID)
}

type mockStats struct {
	users, tasks, categories int
	err                      error
}

func (m *mockStats) Counts(context.Context) (int, int, int, error) {
	return m.users, m.tasks, m.categories, m.err
}
