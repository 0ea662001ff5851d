package handlers

import (
	"context"
	"net/http"
	"time"

	"taskflow/internal/apperrors"
	"taskflow/internal/models"
	"taskflow/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	registerID  int
	registerErr error
	session     service.Session
	loginErr    error
	tokens      map[string]int // token -> user id; anything else fails
	parseErr    error
	adminMade   bool

	lastRegister   service.RegisterInput
	lastLoginEmail string
	lastLoginPass  string
	lastParseToken string
}

func (m *mockAuth) Register(_ context.Context, in service.RegisterInput) (int, error) {
	m.lastRegister = in
	return m.registerID, m.registerErr
}

func (m *mockAuth) Login(_ context.Context, email, password string) (service.Session, error) {
	m.lastLoginEmail = email
	m.lastLoginPass = password
	return m.session, m.loginErr
}

func (m *mockAuth) IssueToken(userID int) (string, error) {
	for tok, id := range m.tokens {
		if id == userID {
			return tok, nil
		}
	}
	return "", apperrors.New(apperrors.CodeInternal, "no token")
}

func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	if m.parseErr != nil {
		return 0, m.parseErr
	}
	if id, ok := m.tokens[token]; ok {
		return id, nil
	}
	return 0, service.ErrTokenInvalid
}

func (m *mockAuth) EnsureAdmin(context.Context, service.RegisterInput) (bool, error) {
	return m.adminMade, nil
}

type mockAccess struct {
	users map[int]*models.User
	err   error
}

func (m *mockAccess) AuthorizedAs(_ context.Context, userID int, role models.Role) (*models.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[userID]
	if !ok {
		return nil, service.ErrTokenInvalid
	}
	if !u.Has(role) {
		return nil, apperrors.New(apperrors.CodeForbidden, "forbidden")
	}
	return u, nil
}

type setCompletedCall struct {
	userID, taskID int
	completed      bool
}

type mockTasks struct {
	byUser    map[int][]models.Task
	listErr   error
	createID  int
	createErr error
	updateErr error
	deleteErr error

	listCalls   int
	lastCreate  service.TaskInput
	createOwner int
	updates     []setCompletedCall
	deletes     [][2]int // {userID, taskID}
}

func (m *mockTasks) ListTasks(_ context.Context, userID int) ([]models.Task, error) {
	m.listCalls++
	if m.listErr != nil {
		return nil, m.listErr
	}
	if ts := m.byUser[userID]; ts != nil {
		return ts, nil
	}
	return []models.Task{}, nil
}

func (m *mockTasks) CreateTask(_ context.Context, userID int, in service.TaskInput) (int, error) {
	m.createOwner = userID
	m.lastCreate = in
	return m.createID, m.createErr
}

func (m *mockTasks) SetTaskCompleted(_ context.Context, userID, taskID int, completed bool) error {
	m.updates = append(m.updates, setCompletedCall{userID, taskID, completed})
	return m.updateErr
}

func (m *mockTasks) DeleteTask(_ context.Context, userID, taskID int) error {
	m.deletes = append(m.deletes, [2]int{userID, taskID})
	return m.deleteErr
}

type mockCalendar struct {
	events   []models.CalendarEvent
	err      error
	lastUser int
}

func (m *mockCalendar) CalendarEvents(_ context.Context, userID int) ([]models.CalendarEvent, error) {
	m.lastUser = userID
	return m.events, m.err
}

type mockCategories struct {
	list      []models.Category
	createID  int
	createErr error
	lastInput service.CategoryInput
}

func (m *mockCategories) ListCategories(context.Context, int) ([]models.Category, error) {
	return m.list, nil
}

func (m *mockCategories) CreateCategory(_ context.Context, _ int, in service.CategoryInput) (int, error) {
	m.lastInput = in
	return m.createID, m.createErr
}

type mockAdmin struct {
	stats models.Stats
	users []models.User
	tasks []models.TaskWithOwner
	err   error
}

func (m *mockAdmin) Stats(context.Context) (models.Stats, error) { return m.stats, m.err }

func (m *mockAdmin) ListUsers(context.Context) ([]models.User, error) { return m.users, m.err }

func (m *mockAdmin) ListAllTasks(context.Context) ([]models.TaskWithOwner, error) {
	return m.tasks, m.err
}

// ---- Shared Test Helpers ----

const (
	tokenAna   = "tok-ana"
	tokenAdmin = "tok-admin"
	tokenGone  = "tok-gone" // user id with no stored account
	idAna      = 2
	idAdmin    = 1
	idGone     = 999
)

func newMockAuth() *mockAuth {
	return &mockAuth{tokens: map[string]int{tokenAna: idAna, tokenAdmin: idAdmin, tokenGone: idGone}}
}

func newMockAccess() *mockAccess {
	return &mockAccess{users: map[int]*models.User{
		idAdmin: {ID: idAdmin, Name: "Administrador", Email: "admin@taskflow.com", IsAdmin: true},
		idAna:   {ID: idAna, Name: "Ana", Email: "ana@x.com", RegisteredAt: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)},
	}}
}

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	if s.Access == nil {
		s.Access = newMockAccess()
	}
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
