// Package model provides domain models and DTOs for the teamparam module.
package model

// CreateTeamParamRequest represents an instructor defining team parameters
// for a course section.
type CreateTeamParamRequest struct {
	CourseCode    string `json:"course_code" binding:"required"`
	CourseSection string `json:"course_section" binding:"required"`
	MinimumSize   int    `json:"minimum_num_students" binding:"required"`
	MaximumSize   int    `json:"maximum_num_students" binding:"required"`
	Deadline      string `json:"deadline" binding:"required"`
}

// TeamParamInfo represents a team parameter joined with its course and
// instructor display data.
type TeamParamInfo struct {
	ID             string `json:"id"`
	CourseID       string `json:"course_id"`
	CourseCode     string `json:"course_code"`
	CourseSection  string `json:"course_section"`
	InstructorName string `json:"instructor_name"`
	MinimumSize    int    `json:"minimum_num_students"`
	MaximumSize    int    `json:"maximum_num_students"`
	Deadline       string `json:"deadline"`
}

// OpenTeamParamsResponse lists the parameters still open to the caller.
type OpenTeamParamsResponse struct {
	TeamParams []TeamParamInfo `json:"team_params"`
}
