// Package model provides domain models and DTOs for the team module.
package model

import "time"

// CreateTeamRequest represents the request to create a team.
// The creator becomes the liaison and is added to the roster if absent.
type CreateTeamRequest struct {
	TeamParamID string   `json:"team_param_id" binding:"required"`
	TeamName    string   `json:"team_name" binding:"required"`
	TeamMembers []string `json:"team_members" binding:"required"`
}

// JoinTeamsRequest represents a batch request to join one or more teams.
type JoinTeamsRequest struct {
	TeamIDs []string `json:"team_ids" binding:"required"`
}

// AcceptMembersRequest represents a liaison accepting members into a team.
type AcceptMembersRequest struct {
	TeamID    string   `json:"team_id" binding:"required"`
	Usernames []string `json:"list_of_usernames" binding:"required"`
}

// TeamResponse represents a team with its roster and pending requests.
type TeamResponse struct {
	ID               string     `json:"id"`
	TeamParamID      string     `json:"team_param_id"`
	Name             string     `json:"team_name"`
	Liaison          string     `json:"liaison"`
	Status           TeamStatus `json:"status"`
	TeamSize         int        `json:"team_size"`
	Members          []string   `json:"team_members"`
	RequestedMembers []string   `json:"requested_members"`
	CreatedAt        time.Time  `json:"date_of_creation"`
}

// TeamsResponse wraps a team listing.
type TeamsResponse struct {
	Teams []TeamResponse `json:"teams"`
}

// RequestedMembersResponse lists the pending requesters of one team.
type RequestedMembersResponse struct {
	RequestedMembers []string `json:"requested_members"`
}

// JoinTeamsResponse reports the teams a join request was recorded against.
// The batch is applied in a single transaction, so it is all-or-nothing.
type JoinTeamsResponse struct {
	JoinedTeamIDs []string `json:"joined_team_ids"`
}
