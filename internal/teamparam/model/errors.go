package model

import "errors"

var (
	// ErrNotInstructor indicates that only instructors may define team parameters.
	ErrNotInstructor = errors.New("acting user is not a registered instructor")
	// ErrTeamParamNotFound indicates that the requested team parameter does not exist.
	ErrTeamParamNotFound = errors.New("team parameter not found")
	// ErrTeamParamExists indicates that the course section already has team parameters.
	ErrTeamParamExists = errors.New("team parameters already exist for this course section")
	// ErrInvalidSizeBounds indicates that the size bounds do not satisfy 1 <= min <= max.
	ErrInvalidSizeBounds = errors.New("size bounds must satisfy 1 <= minimum <= maximum")
	// ErrInvalidDeadline indicates an unparseable formation deadline.
	ErrInvalidDeadline = errors.New("deadline is not in the format dd/mm/yyyy hh:mm:ss")
)
