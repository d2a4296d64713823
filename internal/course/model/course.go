// Package model provides the course reference entity.
package model

// Course identifies one taught offering (code + section).
// Reference data: rows are seeded by migration and never written by this service.
type Course struct {
	ID            string `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	CourseCode    string `gorm:"column:course_code;type:varchar(16);not null;uniqueIndex:idx_courses_code_section" json:"course_code"`
	CourseSection string `gorm:"column:course_section;type:varchar(1);not null;uniqueIndex:idx_courses_code_section" json:"course_section"`
}

// TableName specifies the table name for GORM.
func (Course) TableName() string {
	return "courses"
}
