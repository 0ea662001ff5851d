package models

import "time"

// Role is a capability a user can be authorized as.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"nombre"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // don’t expose hash
	IsAdmin      bool      `json:"is_admin"`
	RegisteredAt time.Time `json:"fecha_registro"`
}

// Has reports whether the user holds the given role. Every user holds RoleUser.
func (u User) Has(role Role) bool {
	switch role {
	case RoleUser:
		return true
	case RoleAdmin:
		return u.IsAdmin
	default:
		return false
	}
}
