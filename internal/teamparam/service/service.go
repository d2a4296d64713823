// Package service provides business logic for the teamparam module.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teamforge/teamforge/internal/access"
	courseRepository "github.com/teamforge/teamforge/internal/course/repository"
	teamparamModel "github.com/teamforge/teamforge/internal/teamparam/model"
	"github.com/teamforge/teamforge/internal/teamparam/repository"
	userModel "github.com/teamforge/teamforge/internal/user/model"
	userRepository "github.com/teamforge/teamforge/internal/user/repository"
)

// Service defines teamparam business logic operations.
type Service interface {
	// CreateTeamParam defines team parameters for a course section.
	// Only instructors may call this.
	CreateTeamParam(
		ctx context.Context,
		actingUsername string,
		req *teamparamModel.CreateTeamParamRequest,
	) (*teamparamModel.TeamParameter, error)

	// ListOpenTeamParams returns every team parameter under which the
	// acting user is not already a team member, with course and
	// instructor info attached. Order is deterministic per call.
	ListOpenTeamParams(ctx context.Context, actingUsername string) (*teamparamModel.OpenTeamParamsResponse, error)
}

type service struct {
	repo    repository.Repository
	courses courseRepository.Repository
	users   userRepository.Repository
	gate    access.Gate
	logger  *zap.SugaredLogger
}

// New creates a new teamparam service instance.
func New(
	repo repository.Repository,
	courses courseRepository.Repository,
	users userRepository.Repository,
	gate access.Gate,
	logger *zap.SugaredLogger,
) Service {
	return &service{
		repo:    repo,
		courses: courses,
		users:   users,
		gate:    gate,
		logger:  logger,
	}
}

// CreateTeamParam defines team parameters for a course section.
func (s *service) CreateTeamParam(
	ctx context.Context,
	actingUsername string,
	req *teamparamModel.CreateTeamParamRequest,
) (*teamparamModel.TeamParameter, error) {
	isInstructor, err := s.gate.IsInstructor(ctx, actingUsername)
	if err != nil {
		return nil, err
	}
	if !isInstructor {
		return nil, teamparamModel.ErrNotInstructor
	}

	if req.MinimumSize < 1 || req.MinimumSize > req.MaximumSize {
		return nil, teamparamModel.ErrInvalidSizeBounds
	}

	deadline, err := time.Parse(teamparamModel.DeadlineLayout, req.Deadline)
	if err != nil {
		return nil, teamparamModel.ErrInvalidDeadline
	}

	// Course codes are stored upper-case, as entered by the registrar.
	course, err := s.courses.GetByCodeAndSection(ctx,
		strings.ToUpper(req.CourseCode), strings.ToUpper(req.CourseSection))
	if err != nil {
		return nil, err
	}

	param := &teamparamModel.TeamParameter{
		ID:                 uuid.NewString(),
		CourseID:           course.ID,
		InstructorUsername: actingUsername,
		MinimumSize:        req.MinimumSize,
		MaximumSize:        req.MaximumSize,
		Deadline:           deadline,
		CreatedAt:          time.Now(),
	}
	if err := s.repo.Create(ctx, param); err != nil {
		return nil, err
	}

	return param, nil
}

// ListOpenTeamParams returns every team parameter the acting user can still
// form or join a team under.
func (s *service) ListOpenTeamParams(
	ctx context.Context,
	actingUsername string,
) (*teamparamModel.OpenTeamParamsResponse, error) {
	params, err := s.repo.ListOpenFor(ctx, actingUsername)
	if err != nil {
		return nil, err
	}

	infos := make([]teamparamModel.TeamParamInfo, 0, len(params))
	for _, p := range params {
		info := teamparamModel.TeamParamInfo{
			ID:          p.ID,
			CourseID:    p.CourseID,
			MinimumSize: p.MinimumSize,
			MaximumSize: p.MaximumSize,
			Deadline:    p.Deadline.Format(teamparamModel.DeadlineLayout),
		}

		course, err := s.courses.GetByID(ctx, p.CourseID)
		if err != nil {
			return nil, err
		}
		info.CourseCode = course.CourseCode
		info.CourseSection = course.CourseSection

		instructor, err := s.users.GetInstructor(ctx, p.InstructorUsername)
		if err != nil {
			if errors.Is(err, userModel.ErrInstructorNotFound) {
				// Parameter outlived its instructor record; surface it anyway.
				s.logger.Warnw("team parameter has no instructor record",
					"team_param_id", p.ID, "instructor", p.InstructorUsername)
			} else {
				return nil, err
			}
		} else {
			info.InstructorName = instructor.DisplayName()
		}

		infos = append(infos, info)
	}

	return &teamparamModel.OpenTeamParamsResponse{TeamParams: infos}, nil
}
