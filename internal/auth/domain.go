package auth

import "time"

// Roles assignable to API users.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is an API account. PasswordHash never leaves the backend.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
