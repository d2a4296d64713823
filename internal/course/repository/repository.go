// Package repository provides read-only access to the course registry.
package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	courseModel "github.com/teamforge/teamforge/internal/course/model"
)

// Repository defines read-only course lookups.
type Repository interface {
	// GetByCodeAndSection finds a course by its code and section.
	GetByCodeAndSection(ctx context.Context, code, section string) (*courseModel.Course, error)

	// GetByID finds a course by id.
	GetByID(ctx context.Context, id string) (*courseModel.Course, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new course repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// GetByCodeAndSection finds a course by its code and section.
func (r *repository) GetByCodeAndSection(ctx context.Context, code, section string) (*courseModel.Course, error) {
	var course courseModel.Course
	err := r.db.WithContext(ctx).
		Where("course_code = ? AND course_section = ?", code, section).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, courseModel.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// GetByID finds a course by id.
func (r *repository) GetByID(ctx context.Context, id string) (*courseModel.Course, error) {
	var course courseModel.Course
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, courseModel.ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}
