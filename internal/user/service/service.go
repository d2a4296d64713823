// Package service provides business logic for the user module.
package service

import (
	"context"

	"go.uber.org/zap"

	userModel "github.com/teamforge/teamforge/internal/user/model"
	"github.com/teamforge/teamforge/internal/user/repository"
)

// Service defines user business logic operations.
type Service interface {
	// ListStudents returns every registered student.
	ListStudents(ctx context.Context) (*userModel.StudentsResponse, error)
}

type service struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

// New creates a new user service instance.
func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &service{repo: repo, logger: logger}
}

// ListStudents returns every registered student.
func (s *service) ListStudents(ctx context.Context) (*userModel.StudentsResponse, error) {
	students, err := s.repo.ListStudents(ctx)
	if err != nil {
		return nil, err
	}

	infos := make([]userModel.StudentInfo, 0, len(students))
	for _, st := range students {
		infos = append(infos, userModel.StudentInfo{
			Username:       st.Username,
			FirstName:      st.FirstName,
			LastName:       st.LastName,
			Email:          st.Email,
			ProgramOfStudy: st.ProgramOfStudy,
		})
	}

	return &userModel.StudentsResponse{Students: infos}, nil
}
