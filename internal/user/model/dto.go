// Package model provides domain models and DTOs for the user module.
package model

// StudentInfo represents a student in API responses.
type StudentInfo struct {
	Username       string `json:"username"`
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	Email          string `json:"email"`
	ProgramOfStudy string `json:"program_of_study"`
}

// StudentsResponse wraps the student listing.
type StudentsResponse struct {
	Students []StudentInfo `json:"students"`
}
