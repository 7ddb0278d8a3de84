package domain

import "time"

type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleEngineer UserRole = "engineer"
)

type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email" validate:"required,email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	DisplayName  string    `json:"display_name,omitempty"`
	Position     string    `json:"position,omitempty"`
	Disabled     bool      `json:"disabled"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
