package model

import "time"

// Student represents a registered student.
// Matches the students table schema. Immutable once created except
// credential rotation, which is handled outside this service.
type Student struct {
	Username       string    `gorm:"primaryKey;column:username;type:varchar(255)" json:"username"`
	FirstName      string    `gorm:"column:first_name;type:varchar(255);not null" json:"first_name"`
	LastName       string    `gorm:"column:last_name;type:varchar(255);not null" json:"last_name"`
	Email          string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	ProgramOfStudy string    `gorm:"column:program_of_study;type:varchar(255);not null" json:"program_of_study"`
	PasswordHash   string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	CreatedAt      time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Student) TableName() string {
	return "students"
}

// Instructor represents a registered instructor.
// Matches the instructors table schema.
type Instructor struct {
	Username     string    `gorm:"primaryKey;column:username;type:varchar(255)" json:"username"`
	FirstName    string    `gorm:"column:first_name;type:varchar(255);not null" json:"first_name"`
	LastName     string    `gorm:"column:last_name;type:varchar(255);not null" json:"last_name"`
	Email        string    `gorm:"column:email;type:varchar(255);not null" json:"email"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Instructor) TableName() string {
	return "instructors"
}

// DisplayName returns the instructor's full name.
func (i Instructor) DisplayName() string {
	return i.FirstName + " " + i.LastName
}
