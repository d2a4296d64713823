package model

import (
	"time"
)

// TeamStatus is the derived completion state of a team.
type TeamStatus string

const (
	// StatusIncomplete means the roster has not reached the maximum size.
	StatusIncomplete TeamStatus = "incomplete"
	// StatusComplete means the roster reached the maximum size. Terminal:
	// no remove or leave operation exists.
	StatusComplete TeamStatus = "complete"
)

// StatusFor derives the team status from the roster size and the
// parameter's maximum size.
func StatusFor(size, maximumSize int) TeamStatus {
	if size == maximumSize {
		return StatusComplete
	}
	return StatusIncomplete
}

// Team represents a formed (or forming) team under one team parameter.
// Matches the teams table schema. The liaison is the student who created
// the team; it never changes and is always a member.
type Team struct {
	ID              string     `gorm:"primaryKey;column:id;type:uuid" json:"id"`
	TeamParamID     string     `gorm:"column:team_param_id;type:uuid;not null;index:idx_teams_team_param" json:"team_param_id"`
	Name            string     `gorm:"column:name;type:varchar(255);not null;uniqueIndex:idx_teams_name" json:"name"`
	LiaisonUsername string     `gorm:"column:liaison_username;type:varchar(255);not null;index:idx_teams_liaison" json:"liaison"`
	Status          TeamStatus `gorm:"column:status;type:varchar(16);not null" json:"status"`
	TeamSize        int        `gorm:"column:team_size;not null" json:"team_size"`
	CreatedAt       time.Time  `gorm:"column:created_at;type:timestamptz;not null;default:now()" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (Team) TableName() string {
	return "teams"
}

// TeamMember is one accepted roster entry. The team parameter id is
// denormalized so the unique index can enforce one-team-per-parameter
// at the storage level as a backstop for the engine check.
type TeamMember struct {
	TeamID      string `gorm:"primaryKey;column:team_id;type:uuid" json:"-"`
	Username    string `gorm:"primaryKey;column:username;type:varchar(255);uniqueIndex:idx_team_members_param_user" json:"username"`
	TeamParamID string `gorm:"column:team_param_id;type:uuid;not null;uniqueIndex:idx_team_members_param_user" json:"-"`
	Position    int    `gorm:"column:position;not null" json:"-"`
}

// TableName specifies the table name for GORM.
func (TeamMember) TableName() string {
	return "team_members"
}

// TeamJoinRequest is one pending join request awaiting liaison approval.
type TeamJoinRequest struct {
	TeamID      string    `gorm:"primaryKey;column:team_id;type:uuid" json:"-"`
	Username    string    `gorm:"primaryKey;column:username;type:varchar(255)" json:"username"`
	RequestedAt time.Time `gorm:"column:requested_at;type:timestamptz;not null;default:now()" json:"-"`
}

// TableName specifies the table name for GORM.
func (TeamJoinRequest) TableName() string {
	return "team_join_requests"
}
