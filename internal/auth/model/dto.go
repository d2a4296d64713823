// Package model provides DTOs and token claims for the auth module.
package model

// RegisterRequest represents a new user registration.
// ProgramOfStudy is required for students only.
type RegisterRequest struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required"`
	Email          string `json:"email" binding:"required"`
	FirstName      string `json:"first_name" binding:"required"`
	LastName       string `json:"last_name" binding:"required"`
	UserType       string `json:"user_type" binding:"required"`
	ProgramOfStudy string `json:"program_of_study"`
}

// LoginRequest represents a credential check and token request.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued bearer token and the resolved role.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	UserType    Role   `json:"user_type"`
}
