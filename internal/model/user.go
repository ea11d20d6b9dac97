package model

import "time"

// Role is a platform role. Users created without a role carry none until
// one is explicitly set.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// User represents a platform account, keyed by email.
type User struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	Role      *Role     `json:"role,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UpsertUserRequest is the payload for PUT /users/:email.
type UpsertUserRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url"`
	Role     *Role  `json:"role" binding:"omitempty,oneof=student instructor admin"`
}

// CreateUserRequest is the payload for POST /user.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	PhotoURL string `json:"photo_url" binding:"omitempty,url"`
	Role     *Role  `json:"role" binding:"omitempty,oneof=student instructor admin"`
}
