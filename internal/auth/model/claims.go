package model

import "github.com/golang-jwt/jwt/v5"

// Role is the identity kind carried in issued tokens. Liaison is not a
// role: it is derived per team from who created it.
type Role string

const (
	// RoleStudent marks a student identity.
	RoleStudent Role = "student"
	// RoleInstructor marks an instructor identity.
	RoleInstructor Role = "instructor"
)

// Claims is the JWT payload for issued bearer tokens.
// Subject carries the username.
type Claims struct {
	Role Role `json:"role"`
	jwt.RegisteredClaims
}
