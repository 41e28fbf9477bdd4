package api

import "github.com/villafrance/frontend/internal/domain"

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
	Phone     string `json:"phone,omitempty"`
}

type ProfileUpdateRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// Response DTOs

// AuthResponse is returned by both login and register: a bearer token
// plus the profile it belongs to.
type AuthResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type,omitempty"`
	User        domain.UserProfile `json:"user"`
}

// ErrorResponse is the backend's error body shape.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
