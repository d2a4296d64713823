// Package service implements the team-formation rules: capacity checks,
// roster uniqueness and the request/accept workflow.
package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamforge/teamforge/internal/access"
	teamModel "github.com/teamforge/teamforge/internal/team/model"
	"github.com/teamforge/teamforge/internal/team/repository"
	teamparamRepository "github.com/teamforge/teamforge/internal/teamparam/repository"
)

// Service defines the team-formation operations.
type Service interface {
	// CreateTeam validates and creates a team. The acting student becomes
	// the liaison and is added to the roster if absent.
	CreateTeam(ctx context.Context, actingUsername string, req *teamModel.CreateTeamRequest) (*teamModel.TeamResponse, error)

	// ListTeams returns every team with roster and pending requests.
	ListTeams(ctx context.Context) (*teamModel.TeamsResponse, error)

	// ListIncompleteTeams returns the incomplete teams under a team parameter.
	ListIncompleteTeams(ctx context.Context, actingUsername, teamParamID string) (*teamModel.TeamsResponse, error)

	// ListLiaisonTeams returns the teams the acting student leads.
	ListLiaisonTeams(ctx context.Context, actingUsername string) (*teamModel.TeamsResponse, error)

	// RequestJoin records the acting student as a pending requester of every
	// target team. The batch is validated and applied in one transaction:
	// it either takes effect on all target teams or on none.
	RequestJoin(ctx context.Context, actingUsername string, req *teamModel.JoinTeamsRequest) (*teamModel.JoinTeamsResponse, error)

	// ViewRequests returns the pending requesters of a team. Liaison only.
	ViewRequests(ctx context.Context, actingUsername, teamID string) (*teamModel.RequestedMembersResponse, error)

	// AcceptMembers moves usernames onto the team roster, prunes them from
	// the pending list and recomputes the team status.
	AcceptMembers(ctx context.Context, actingUsername string, req *teamModel.AcceptMembersRequest) (*teamModel.TeamResponse, error)
}

type service struct {
	repo   repository.Repository
	params teamparamRepository.Repository
	gate   access.Gate
	db     *gorm.DB
	logger *zap.SugaredLogger
}

// New creates a new team service instance.
func New(
	repo repository.Repository,
	params teamparamRepository.Repository,
	gate access.Gate,
	db *gorm.DB,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:   repo,
		params: params,
		gate:   gate,
		db:     db,
		logger: logger,
	}
}

// CreateTeam validates and creates a team.
//
// Checks run in order and short-circuit on the first failure: acting user
// is a student, the team parameter exists, the roster size is within
// bounds, the name is free, every proposed member is a student, and no
// proposed member is already teamed under the same parameter. Nothing is
// written unless every check passes; the unique indexes on the team name
// and on (team_param_id, username) back the checks up under concurrency.
func (s *service) CreateTeam(
	ctx context.Context,
	actingUsername string,
	req *teamModel.CreateTeamRequest,
) (*teamModel.TeamResponse, error) {
	isStudent, err := s.gate.IsStudent(ctx, actingUsername)
	if err != nil {
		return nil, err
	}
	if !isStudent {
		return nil, teamModel.ErrNotStudent
	}

	param, err := s.params.GetByID(ctx, req.TeamParamID)
	if err != nil {
		return nil, err
	}

	if req.TeamName == "" {
		return nil, teamModel.ErrEmptyTeamName
	}

	// The liaison is always on the roster.
	roster := dedupe(req.TeamMembers)
	if !containsString(roster, actingUsername) {
		roster = append(roster, actingUsername)
	}

	if len(roster) > param.MaximumSize {
		return nil, &teamModel.CapacityError{Bound: "maximum", Limit: param.MaximumSize}
	}
	if len(roster) < param.MinimumSize {
		return nil, &teamModel.CapacityError{Bound: "minimum", Limit: param.MinimumSize}
	}

	nameTaken, err := s.repo.NameExists(ctx, req.TeamName)
	if err != nil {
		return nil, err
	}
	if nameTaken {
		return nil, teamModel.ErrTeamExists
	}

	for _, member := range roster {
		ok, err := s.gate.IsStudent(ctx, member)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &teamModel.UnknownMemberError{Username: member}
		}
	}

	teamed, err := s.repo.TeamedUsernames(ctx, param.ID, roster)
	if err != nil {
		return nil, err
	}
	for _, member := range roster {
		if teamed[member] {
			return nil, &teamModel.AlreadyTeamedError{Username: member}
		}
	}

	now := time.Now()
	team := &teamModel.Team{
		ID:              uuid.NewString(),
		TeamParamID:     param.ID,
		Name:            req.TeamName,
		LiaisonUsername: actingUsername,
		Status:          teamModel.StatusFor(len(roster), param.MaximumSize),
		TeamSize:        len(roster),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	members := make([]teamModel.TeamMember, 0, len(roster))
	for i, username := range roster {
		members = append(members, teamModel.TeamMember{
			TeamID:      team.ID,
			Username:    username,
			TeamParamID: param.ID,
			Position:    i,
		})
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.New(tx).Create(ctx, team, members)
	})
	if err != nil {
		return nil, err
	}

	return teamResponse(team, roster, []string{}), nil
}

// ListTeams returns every team with roster and pending requests.
func (s *service) ListTeams(ctx context.Context) (*teamModel.TeamsResponse, error) {
	teams, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, teams)
}

// ListIncompleteTeams returns the incomplete teams under a team parameter.
func (s *service) ListIncompleteTeams(
	ctx context.Context,
	actingUsername, teamParamID string,
) (*teamModel.TeamsResponse, error) {
	isStudent, err := s.gate.IsStudent(ctx, actingUsername)
	if err != nil {
		return nil, err
	}
	if !isStudent {
		return nil, teamModel.ErrNotStudent
	}

	if _, err := s.params.GetByID(ctx, teamParamID); err != nil {
		return nil, err
	}

	teams, err := s.repo.ListIncompleteByParam(ctx, teamParamID)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, teams)
}

// ListLiaisonTeams returns the teams the acting student leads.
func (s *service) ListLiaisonTeams(ctx context.Context, actingUsername string) (*teamModel.TeamsResponse, error) {
	isStudent, err := s.gate.IsStudent(ctx, actingUsername)
	if err != nil {
		return nil, err
	}
	if !isStudent {
		return nil, teamModel.ErrNotStudent
	}

	teams, err := s.repo.ListByLiaison(ctx, actingUsername)
	if err != nil {
		return nil, err
	}
	return s.hydrate(ctx, teams)
}

// RequestJoin records the acting student as a pending requester of every
// target team.
//
// The whole batch is rejected if any target id is unknown or if the acting
// user is already a member or a pending requester of any target team.
// Validation and writes share one transaction with the team rows locked,
// so a concurrent acceptance cannot slip between them and the batch never
// takes partial effect.
func (s *service) RequestJoin(
	ctx context.Context,
	actingUsername string,
	req *teamModel.JoinTeamsRequest,
) (*teamModel.JoinTeamsResponse, error) {
	if len(req.TeamIDs) == 0 {
		return nil, teamModel.ErrEmptyTeamIDs
	}

	isStudent, err := s.gate.IsStudent(ctx, actingUsername)
	if err != nil {
		return nil, err
	}
	if !isStudent {
		return nil, teamModel.ErrNotStudent
	}

	ids := dedupe(req.TeamIDs)
	// Lock in sorted order so concurrent batches cannot deadlock.
	locked := make([]string, len(ids))
	copy(locked, ids)
	sort.Strings(locked)

	now := time.Now()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		for _, id := range locked {
			team, err := txRepo.GetByIDForUpdate(ctx, id)
			if err != nil {
				return err
			}

			members, err := txRepo.GetMembers(ctx, team.ID)
			if err != nil {
				return err
			}
			for _, m := range members {
				if m.Username == actingUsername {
					return teamModel.ErrAlreadyRequested
				}
			}

			requests, err := txRepo.GetJoinRequests(ctx, team.ID)
			if err != nil {
				return err
			}
			for _, r := range requests {
				if r.Username == actingUsername {
					return teamModel.ErrAlreadyRequested
				}
			}
		}

		for _, id := range locked {
			err := txRepo.AddJoinRequest(ctx, &teamModel.TeamJoinRequest{
				TeamID:      id,
				Username:    actingUsername,
				RequestedAt: now,
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &teamModel.JoinTeamsResponse{JoinedTeamIDs: ids}, nil
}

// ViewRequests returns the pending requesters of a team.
func (s *service) ViewRequests(
	ctx context.Context,
	actingUsername, teamID string,
) (*teamModel.RequestedMembersResponse, error) {
	isStudent, err := s.gate.IsStudent(ctx, actingUsername)
	if err != nil {
		return nil, err
	}
	if !isStudent {
		return nil, teamModel.ErrNotStudent
	}

	team, err := s.repo.GetByID(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if team.LiaisonUsername != actingUsername {
		return nil, teamModel.ErrNotLiaison
	}

	requests, err := s.repo.GetJoinRequests(ctx, teamID)
	if err != nil {
		return nil, err
	}

	usernames := make([]string, 0, len(requests))
	for _, r := range requests {
		usernames = append(usernames, r.Username)
	}
	return &teamModel.RequestedMembersResponse{RequestedMembers: usernames}, nil
}

// AcceptMembers moves usernames onto the team roster.
//
// Checks run in order and short-circuit: acting user is a student, the
// team exists, the acting user is its liaison, the username list is
// non-empty, the team is not complete, every username is a student not
// already on this team (nor teamed elsewhere under the same parameter),
// and the resulting size fits the maximum. The team row stays locked for
// the whole read-validate-write sequence.
//
// Accepted usernames need not have requested to join: the liaison may add
// students directly. Any accepted or already-member username is pruned
// from the pending list.
func (s *service) AcceptMembers(
	ctx context.Context,
	actingUsername string,
	req *teamModel.AcceptMembersRequest,
) (*teamModel.TeamResponse, error) {
	isStudent, err := s.gate.IsStudent(ctx, actingUsername)
	if err != nil {
		return nil, err
	}
	if !isStudent {
		return nil, teamModel.ErrNotStudent
	}

	var resp *teamModel.TeamResponse
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := repository.New(tx)

		team, err := txRepo.GetByIDForUpdate(ctx, req.TeamID)
		if err != nil {
			return err
		}
		if team.LiaisonUsername != actingUsername {
			return teamModel.ErrNotLiaison
		}

		newcomers := dedupe(req.Usernames)
		if len(newcomers) == 0 {
			return teamModel.ErrEmptyUsernames
		}
		if team.Status == teamModel.StatusComplete {
			return teamModel.ErrTeamComplete
		}

		memberRows, err := txRepo.GetMembers(ctx, team.ID)
		if err != nil {
			return err
		}
		onTeam := make(map[string]bool, len(memberRows))
		for _, m := range memberRows {
			onTeam[m.Username] = true
		}

		for _, username := range newcomers {
			ok, err := s.gate.IsStudent(ctx, username)
			if err != nil {
				return err
			}
			if !ok {
				return &teamModel.UnknownMemberError{Username: username}
			}
			if onTeam[username] {
				return &teamModel.AlreadyMemberError{Username: username}
			}
		}

		// A student on another team under the same parameter would violate
		// the one-team-per-parameter invariant; reject by name instead of
		// letting the unique index abort the transaction.
		teamed, err := txRepo.TeamedUsernames(ctx, team.TeamParamID, newcomers)
		if err != nil {
			return err
		}
		for _, username := range newcomers {
			if teamed[username] {
				return &teamModel.AlreadyTeamedError{Username: username}
			}
		}

		param, err := s.params.GetByID(ctx, team.TeamParamID)
		if err != nil {
			return err
		}
		if len(memberRows)+len(newcomers) > param.MaximumSize {
			return &teamModel.CapacityError{Bound: "maximum", Limit: param.MaximumSize}
		}

		added := make([]teamModel.TeamMember, 0, len(newcomers))
		for i, username := range newcomers {
			added = append(added, teamModel.TeamMember{
				TeamID:      team.ID,
				Username:    username,
				TeamParamID: team.TeamParamID,
				Position:    len(memberRows) + i,
			})
		}
		if err := txRepo.AddMembers(ctx, added); err != nil {
			return err
		}

		roster := make([]string, 0, len(memberRows)+len(added))
		for _, m := range memberRows {
			roster = append(roster, m.Username)
		}
		roster = append(roster, newcomers...)

		if err := txRepo.RemoveJoinRequests(ctx, team.ID, roster); err != nil {
			return err
		}

		team.TeamSize = len(roster)
		team.Status = teamModel.StatusFor(len(roster), param.MaximumSize)
		team.UpdatedAt = time.Now()
		if err := txRepo.UpdateTeam(ctx, team); err != nil {
			return err
		}

		remaining, err := txRepo.GetJoinRequests(ctx, team.ID)
		if err != nil {
			return err
		}
		pending := make([]string, 0, len(remaining))
		for _, r := range remaining {
			pending = append(pending, r.Username)
		}

		resp = teamResponse(team, roster, pending)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// hydrate attaches rosters and pending requests to a team listing.
func (s *service) hydrate(ctx context.Context, teams []teamModel.Team) (*teamModel.TeamsResponse, error) {
	responses := make([]teamModel.TeamResponse, 0, len(teams))
	for i := range teams {
		team := &teams[i]

		members, err := s.repo.GetMembers(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		roster := make([]string, 0, len(members))
		for _, m := range members {
			roster = append(roster, m.Username)
		}

		requests, err := s.repo.GetJoinRequests(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		pending := make([]string, 0, len(requests))
		for _, r := range requests {
			pending = append(pending, r.Username)
		}

		responses = append(responses, *teamResponse(team, roster, pending))
	}
	return &teamModel.TeamsResponse{Teams: responses}, nil
}

// teamResponse assembles the API view of a team.
func teamResponse(team *teamModel.Team, members, pending []string) *teamModel.TeamResponse {
	return &teamModel.TeamResponse{
		ID:               team.ID,
		TeamParamID:      team.TeamParamID,
		Name:             team.Name,
		Liaison:          team.LiaisonUsername,
		Status:           team.Status,
		TeamSize:         team.TeamSize,
		Members:          members,
		RequestedMembers: pending,
		CreatedAt:        team.CreatedAt,
	}
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
