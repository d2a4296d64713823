package model

import (
	"errors"
	"fmt"
)

var (
	// ErrTeamNotFound indicates that the requested team does not exist.
	ErrTeamNotFound = errors.New("team not found")
	// ErrNotStudent indicates that the acting user is not a registered student.
	ErrNotStudent = errors.New("acting user is not a registered student")
	// ErrNotLiaison indicates that only the team's liaison may perform the operation.
	ErrNotLiaison = errors.New("only the liaison of the team can perform this operation")
	// ErrEmptyTeamName indicates that the proposed team name is empty.
	ErrEmptyTeamName = errors.New("team name must be provided")
	// ErrTeamExists indicates a team name collision.
	ErrTeamExists = errors.New("a team already exists with the given team name")
	// ErrTeamComplete indicates that the team already has the maximum number of members.
	ErrTeamComplete = errors.New("the team already has the maximum number of members")
	// ErrEmptyUsernames indicates that the usernames to accept were not provided.
	ErrEmptyUsernames = errors.New("the members to add to the team must be provided")
	// ErrEmptyTeamIDs indicates that no target teams were provided.
	ErrEmptyTeamIDs = errors.New("at least one team id must be provided")
	// ErrAlreadyRequested indicates the acting user is already a member or a
	// pending requester of one of the selected teams.
	ErrAlreadyRequested = errors.New("already a member or pending requester of one or more selected teams")
)

// CapacityError reports a violated size bound of the team parameter.
type CapacityError struct {
	// Bound is "minimum" or "maximum".
	Bound string
	// Limit is the violated bound's value.
	Limit int
}

func (e *CapacityError) Error() string {
	if e.Bound == "minimum" {
		return fmt.Sprintf("not enough members selected, the minimum required is %d", e.Limit)
	}
	return fmt.Sprintf("too many members selected, the maximum allowed is %d", e.Limit)
}

// UnknownMemberError names a username that does not resolve to a student.
type UnknownMemberError struct {
	Username string
}

func (e *UnknownMemberError) Error() string {
	return fmt.Sprintf("%s is not a valid student username", e.Username)
}

// AlreadyMemberError names a username that is already on the team's roster.
type AlreadyMemberError struct {
	Username string
}

func (e *AlreadyMemberError) Error() string {
	return fmt.Sprintf("%s is already a member of the team", e.Username)
}

// AlreadyTeamedError names a username that is already on some team under
// the same team parameter.
type AlreadyTeamedError struct {
	Username string
}

func (e *AlreadyTeamedError) Error() string {
	return fmt.Sprintf("%s is already in a team", e.Username)
}
