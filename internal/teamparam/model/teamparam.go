package model

import "time"

// DeadlineLayout is the wire format for formation deadlines.
const DeadlineLayout = "02/01/2006 15:04:05"

// TeamParameter is the instructor-defined formation policy for one course
// section: size bounds and a formation deadline. Exactly one exists per
// course offering.
type TeamParameter struct {
	ID                 string    `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	CourseID           string    `gorm:"column:course_id;type:uuid;not null;uniqueIndex:idx_team_parameters_course" json:"course_id"`
	InstructorUsername string    `gorm:"column:instructor_username;type:varchar(255);not null" json:"instructor_username"`
	MinimumSize        int       `gorm:"column:min_size;not null" json:"minimum_num_students"`
	MaximumSize        int       `gorm:"column:max_size;not null" json:"maximum_num_students"`
	Deadline           time.Time `gorm:"column:deadline;type:timestamptz;not null" json:"-"`
	CreatedAt          time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (TeamParameter) TableName() string {
	return "team_parameters"
}
