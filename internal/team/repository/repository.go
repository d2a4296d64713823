// Package repository provides data access for teams, rosters and join requests.
package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	teamModel "github.com/teamforge/teamforge/internal/team/model"
)

// Repository defines data access operations for the team module.
type Repository interface {
	// Create inserts a team together with its initial roster.
	Create(ctx context.Context, team *teamModel.Team, members []teamModel.TeamMember) error

	// GetByID finds a team by id.
	GetByID(ctx context.Context, id string) (*teamModel.Team, error)

	// GetByIDForUpdate finds a team by id and locks its row for the
	// duration of the surrounding transaction.
	GetByIDForUpdate(ctx context.Context, id string) (*teamModel.Team, error)

	// NameExists reports whether any team already uses the name.
	NameExists(ctx context.Context, name string) (bool, error)

	// ListAll returns every team ordered by creation time.
	ListAll(ctx context.Context) ([]teamModel.Team, error)

	// ListIncompleteByParam returns the incomplete teams under a team parameter.
	ListIncompleteByParam(ctx context.Context, teamParamID string) ([]teamModel.Team, error)

	// ListByLiaison returns the teams the username leads.
	ListByLiaison(ctx context.Context, username string) ([]teamModel.Team, error)

	// GetMembers returns the roster of a team in insertion order.
	GetMembers(ctx context.Context, teamID string) ([]teamModel.TeamMember, error)

	// TeamedUsernames returns which of the usernames are already members of
	// some team under the team parameter.
	TeamedUsernames(ctx context.Context, teamParamID string, usernames []string) (map[string]bool, error)

	// GetJoinRequests returns the pending requests of a team, oldest first.
	GetJoinRequests(ctx context.Context, teamID string) ([]teamModel.TeamJoinRequest, error)

	// AddJoinRequest records a pending join request.
	AddJoinRequest(ctx context.Context, request *teamModel.TeamJoinRequest) error

	// AddMembers appends roster entries.
	AddMembers(ctx context.Context, members []teamModel.TeamMember) error

	// RemoveJoinRequests prunes pending requests for the usernames.
	RemoveJoinRequests(ctx context.Context, teamID string, usernames []string) error

	// UpdateTeam persists the team's derived fields (status, size).
	UpdateTeam(ctx context.Context, team *teamModel.Team) error
}

type repository struct {
	db *gorm.DB
}

// New creates a new team repository instance.
func New(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts a team together with its initial roster.
// Callers run this inside a transaction; the unique indexes on the team
// name and on (team_param_id, username) back up the engine-level checks.
func (r *repository) Create(ctx context.Context, team *teamModel.Team, members []teamModel.TeamMember) error {
	if err := r.db.WithContext(ctx).Create(team).Error; err != nil {
		if isDuplicateError(err) {
			return teamModel.ErrTeamExists
		}
		return err
	}
	if len(members) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&members).Error
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

// GetByID finds a team by id.
func (r *repository) GetByID(ctx context.Context, id string) (*teamModel.Team, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate finds a team by id and locks its row.
func (r *repository) GetByIDForUpdate(ctx context.Context, id string) (*teamModel.Team, error) {
	return r.getByID(ctx, id, true)
}

func (r *repository) getByID(ctx context.Context, id string, forUpdate bool) (*teamModel.Team, error) {
	q := r.db.WithContext(ctx)
	// sqlite serializes writers on its own and rejects FOR UPDATE syntax.
	if forUpdate && r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var team teamModel.Team
	err := q.Where("id = ?", id).First(&team).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, teamModel.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

// NameExists reports whether any team already uses the name.
// Uniqueness is global, not scoped to the team parameter.
func (r *repository) NameExists(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("name = ?", name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListAll returns every team ordered by creation time.
func (r *repository) ListAll(ctx context.Context) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// ListIncompleteByParam returns the incomplete teams under a team parameter.
func (r *repository) ListIncompleteByParam(ctx context.Context, teamParamID string) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("team_param_id = ? AND status = ?", teamParamID, teamModel.StatusIncomplete).
		Order("created_at ASC, id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// ListByLiaison returns the teams the username leads.
func (r *repository) ListByLiaison(ctx context.Context, username string) ([]teamModel.Team, error) {
	var teams []teamModel.Team
	err := r.db.WithContext(ctx).
		Where("liaison_username = ?", username).
		Order("created_at ASC, id ASC").
		Find(&teams).Error
	if err != nil {
		return nil, err
	}
	return teams, nil
}

// GetMembers returns the roster of a team in insertion order.
func (r *repository) GetMembers(ctx context.Context, teamID string) ([]teamModel.TeamMember, error) {
	var members []teamModel.TeamMember
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("position ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

// TeamedUsernames returns which of the usernames are already members of
// some team under the team parameter.
func (r *repository) TeamedUsernames(ctx context.Context, teamParamID string, usernames []string) (map[string]bool, error) {
	taken := make(map[string]bool, len(usernames))
	if len(usernames) == 0 {
		return taken, nil
	}

	var rows []teamModel.TeamMember
	err := r.db.WithContext(ctx).
		Where("team_param_id = ? AND username IN ?", teamParamID, usernames).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		taken[row.Username] = true
	}
	return taken, nil
}

// GetJoinRequests returns the pending requests of a team, oldest first.
func (r *repository) GetJoinRequests(ctx context.Context, teamID string) ([]teamModel.TeamJoinRequest, error) {
	var requests []teamModel.TeamJoinRequest
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("requested_at ASC, username ASC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

// AddJoinRequest records a pending join request.
func (r *repository) AddJoinRequest(ctx context.Context, request *teamModel.TeamJoinRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// AddMembers appends roster entries.
func (r *repository) AddMembers(ctx context.Context, members []teamModel.TeamMember) error {
	if len(members) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&members).Error
}

// RemoveJoinRequests prunes pending requests for the usernames.
func (r *repository) RemoveJoinRequests(ctx context.Context, teamID string, usernames []string) error {
	if len(usernames) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("team_id = ? AND username IN ?", teamID, usernames).
		Delete(&teamModel.TeamJoinRequest{}).Error
}

// UpdateTeam persists the team's derived fields (status, size).
func (r *repository) UpdateTeam(ctx context.Context, team *teamModel.Team) error {
	return r.db.WithContext(ctx).
		Model(&teamModel.Team{}).
		Where("id = ?", team.ID).
		Updates(map[string]interface{}{
			"status":     team.Status,
			"team_size":  team.TeamSize,
			"updated_at": team.UpdatedAt,
		}).Error
}
