package model

import "errors"

// ErrCourseNotFound indicates that no course exists for the code and section.
var ErrCourseNotFound = errors.New("course not found")
