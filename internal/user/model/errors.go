package model

import "errors"

var (
	// ErrStudentNotFound indicates that the requested student does not exist.
	ErrStudentNotFound = errors.New("student not found")
	// ErrInstructorNotFound indicates that the requested instructor does not exist.
	ErrInstructorNotFound = errors.New("instructor not found")
	// ErrUsernameTaken indicates that a user with the username already exists.
	ErrUsernameTaken = errors.New("a user with that username already exists")
)
