// Package repository provides data access for students and instructors.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	userModel "github.com/teamforge/teamforge/internal/user/model"
)

// Repository defines data access operations for students and instructors.
type Repository interface {
	// GetStudent finds a student by username.
	GetStudent(ctx context.Context, username string) (*userModel.Student, error)

	// GetInstructor finds an instructor by username.
	GetInstructor(ctx context.Context, username string) (*userModel.Instructor, error)

	// UsernameExists reports whether the username is taken by a student or an instructor.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// CreateStudent inserts a new student.
	CreateStudent(ctx context.Context, student *userModel.Student) error

	// CreateInstructor inserts a new instructor.
	CreateInstructor(ctx context.Context, instructor *userModel.Instructor) error

	// ListStudents returns every registered student ordered by username.
	ListStudents(ctx context.Context) ([]userModel.Student, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new user repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetStudent finds a student by username.
func (r *repository) GetStudent(ctx context.Context, username string) (*userModel.Student, error) {
	var student userModel.Student
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&student).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrStudentNotFound
		}
		return nil, err
	}
	return &student, nil
}

// GetInstructor finds an instructor by username.
func (r *repository) GetInstructor(ctx context.Context, username string) (*userModel.Instructor, error) {
	var instructor userModel.Instructor
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&instructor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, userModel.ErrInstructorNotFound
		}
		return nil, err
	}
	return &instructor, nil
}

// UsernameExists reports whether the username is taken by a student or an instructor.
func (r *repository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&userModel.Student{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	err = r.db.WithContext(ctx).
		Model(&userModel.Instructor{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateStudent inserts a new student.
func (r *repository) CreateStudent(ctx context.Context, student *userModel.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

// CreateInstructor inserts a new instructor.
func (r *repository) CreateInstructor(ctx context.Context, instructor *userModel.Instructor) error {
	return r.db.WithContext(ctx).Create(instructor).Error
}

// ListStudents returns every registered student ordered by username.
func (r *repository) ListStudents(ctx context.Context) ([]userModel.Student, error) {
	var students []userModel.Student
	err := r.db.WithContext(ctx).
		Order("username ASC").
		Find(&students).Error
	if err != nil {
		return nil, err
	}
	return students, nil
}
