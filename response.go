package taskflow

import "time"

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error string `json:"error" example:"unauthorized"`
}

// MessageResponse acknowledges a mutation.
type MessageResponse struct {
	Message string `json:"message" example:"Tarea actualizada"`
}

// CreatedResponse acknowledges a creation and carries the new row id.
type CreatedResponse struct {
	Message string `json:"message" example:"Tarea creada"`
	ID      int    `json:"id" example:"1"`
}

// RegisterResponse is returned by POST /api/register.
type RegisterResponse struct {
	Message string `json:"message" example:"Registrado"`
	UserID  int    `json:"user_id" example:"2"`
}

// UserSummary is the public identity returned at login.
type UserSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"nombre"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// LoginResponse is returned by POST /api/login.
type LoginResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	User      UserSummary `json:"user"`
	Redirect  string      `json:"redirect" example:"/tasks"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
}
