package model

import "errors"

var (
	// ErrBadCredentials indicates an unknown username or a wrong password.
	ErrBadCredentials = errors.New("bad credentials")
	// ErrInvalidUserType indicates a user type other than student or instructor.
	ErrInvalidUserType = errors.New("the user type specified is not valid")
	// ErrInvalidEmail indicates a malformed contact email.
	ErrInvalidEmail = errors.New("the email entered is invalid")
	// ErrMissingProgram indicates a student registration without a program of study.
	ErrMissingProgram = errors.New("program of study was not specified")
)
