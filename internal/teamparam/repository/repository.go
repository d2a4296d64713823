// Package repository provides data access for team parameters.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	teamparamModel "github.com/teamforge/teamforge/internal/teamparam/model"
)

// Repository defines data access operations for team parameters.
type Repository interface {
	// Create inserts a new team parameter.
	Create(ctx context.Context, param *teamparamModel.TeamParameter) error

	// GetByID finds a team parameter by id.
	GetByID(ctx context.Context, id string) (*teamparamModel.TeamParameter, error)

	// ListOpenFor returns every team parameter under which username is not
	// already a team member, ordered by creation time then id.
	ListOpenFor(ctx context.Context, username string) ([]teamparamModel.TeamParameter, error)
}

type repository struct {
	db *gorm.DB
}

// New creates a new teamparam repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a new team parameter.
func (r *repository) Create(ctx context.Context, param *teamparamModel.TeamParameter) error {
	err := r.db.WithContext(ctx).Create(param).Error
	if err != nil {
		if isDuplicateError(err) {
			return teamparamModel.ErrTeamParamExists
		}
		return err
	}
	return nil
}

// isDuplicateError checks for a unique constraint violation.
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "UNIQUE constraint")
}

// GetByID finds a team parameter by id.
func (r *repository) GetByID(ctx context.Context, id string) (*teamparamModel.TeamParameter, error) {
	var param teamparamModel.TeamParameter
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&param).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamparamModel.ErrTeamParamNotFound
		}
		return nil, err
	}
	return &param, nil
}

// ListOpenFor returns every team parameter under which username is not
// already a team member, ordered by creation time then id.
func (r *repository) ListOpenFor(ctx context.Context, username string) ([]teamparamModel.TeamParameter, error) {
	var params []teamparamModel.TeamParameter
	err := r.db.WithContext(ctx).
		Where("NOT EXISTS (?)",
			r.db.Table("team_members").
				Select("1").
				Where("team_members.team_param_id = team_parameters.id").
				Where("team_members.username = ?", username),
		).
		Order("created_at ASC, id ASC").
		Find(&params).Error
	if err != nil {
		return nil, err
	}
	if params == nil {
		params = []teamparamModel.TeamParameter{}
	}
	return params, nil
}
