package model

import "time"

// User represents a user in the database.
type User struct {
	ID        int64
	Username  string
	AuthHash  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse represents the identity created by a successful registration.
// Registration does not log the user in; login is a separate explicit step.
type RegisterResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse represents a successful login with a signed bearer token.
type LoginResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"userID"`
}
