package handler

import (
	"github.com/whiskerworks/cat-registry/internal/core/domain"
)

// messageResponse is the envelope returned by every mutating operation: a
// short human-readable message plus the affected record.
type messageResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// errorResponse is the standard error envelope rendered by the central error
// handler; declared here for the API docs.
type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	UserName string `json:"user_name" validate:"required,min=2"`
	Email    string `json:"email"     validate:"required,min=2,email"`
	Password string `json:"password"  validate:"required,min=5"`
	// Role is deliberately absent: registration always stores "user".
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type updateUserRequest struct {
	UserName string `json:"user_name,omitempty" validate:"omitempty,min=2"`
	Email    string `json:"email,omitempty"     validate:"omitempty,min=2,email"`
	Password string `json:"password,omitempty"  validate:"omitempty,min=5"`
}

// userResponse is the public projection of a user. Password and role are
// never present, on any path.
type userResponse struct {
	ID       string `json:"id"`
	UserName string `json:"user_name"`
	Email    string `json:"email"`
}

type loginResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

func toUserResponse(p domain.UserProfile) userResponse {
	return userResponse{ID: p.ID, UserName: p.UserName, Email: p.Email}
}
