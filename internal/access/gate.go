// Package access resolves caller roles for authorization decisions.
//
// The gate exposes three independent predicates ("is this username a
// student?", "is this username an instructor?", "is this username the
// liaison of team T?"). Liaison is a derived property of a team, not a
// third identity kind.
package access

import (
	"context"

	"gorm.io/gorm"

	teamModel "github.com/teamforge/teamforge/internal/team/model"
	userModel "github.com/teamforge/teamforge/internal/user/model"
)

// Gate answers role questions about a caller identity.
type Gate interface {
	// IsStudent reports whether username belongs to a registered student.
	IsStudent(ctx context.Context, username string) (bool, error)

	// IsInstructor reports whether username belongs to a registered instructor.
	IsInstructor(ctx context.Context, username string) (bool, error)

	// IsLiaisonOf reports whether username created (and therefore leads) the team.
	IsLiaisonOf(ctx context.Context, username, teamID string) (bool, error)
}

type gate struct {
	db *gorm.DB
}

// New creates a gate backed by the entity store.
func New(db *gorm.DB) Gate {
	return &gate{db: db}
}

// IsStudent reports whether username belongs to a registered student.
func (g *gate) IsStudent(ctx context.Context, username string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Model(&userModel.Student{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsInstructor reports whether username belongs to a registered instructor.
func (g *gate) IsInstructor(ctx context.Context, username string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Model(&userModel.Instructor{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// IsLiaisonOf reports whether username created (and therefore leads) the team.
func (g *gate) IsLiaisonOf(ctx context.Context, username, teamID string) (bool, error) {
	var count int64
	err := g.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ? AND liaison_username = ?", teamID, username).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
