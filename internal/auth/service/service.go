// Package service provides registration and token issuance.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	authModel "github.com/teamforge/teamforge/internal/auth/model"
	appConfig "github.com/teamforge/teamforge/internal/config"
	userModel "github.com/teamforge/teamforge/internal/user/model"
	userRepository "github.com/teamforge/teamforge/internal/user/repository"
)

// Service defines registration and login operations.
type Service interface {
	// Register creates a student or instructor account.
	Register(ctx context.Context, req *authModel.RegisterRequest) error

	// Login verifies credentials and issues a bearer token.
	Login(ctx context.Context, req *authModel.LoginRequest) (*authModel.LoginResponse, error)
}

type service struct {
	users  userRepository.Repository
	cfg    appConfig.AuthConfig
	logger *zap.SugaredLogger
}

// New creates a new auth service instance.
func New(users userRepository.Repository, cfg appConfig.AuthConfig, logger *zap.SugaredLogger) Service {
	return &service{users: users, cfg: cfg, logger: logger}
}

// Register creates a student or instructor account.
func (s *service) Register(ctx context.Context, req *authModel.RegisterRequest) error {
	if !strings.Contains(req.Email, "@") {
		return authModel.ErrInvalidEmail
	}

	userType := strings.ToLower(strings.TrimSpace(req.UserType))
	if userType != string(authModel.RoleStudent) && userType != string(authModel.RoleInstructor) {
		return authModel.ErrInvalidUserType
	}

	taken, err := s.users.UsernameExists(ctx, req.Username)
	if err != nil {
		return err
	}
	if taken {
		return userModel.ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return err
	}

	if userType == string(authModel.RoleStudent) {
		if req.ProgramOfStudy == "" {
			return authModel.ErrMissingProgram
		}
		return s.users.CreateStudent(ctx, &userModel.Student{
			Username:       req.Username,
			FirstName:      req.FirstName,
			LastName:       req.LastName,
			Email:          req.Email,
			ProgramOfStudy: req.ProgramOfStudy,
			PasswordHash:   string(hash),
			CreatedAt:      time.Now(),
		})
	}

	return s.users.CreateInstructor(ctx, &userModel.Instructor{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	})
}

// Login verifies credentials and issues a bearer token.
// Students are checked before instructors; usernames are unique across both.
func (s *service) Login(ctx context.Context, req *authModel.LoginRequest) (*authModel.LoginResponse, error) {
	var (
		hash string
		role authModel.Role
	)

	student, err := s.users.GetStudent(ctx, req.Username)
	switch {
	case err == nil:
		hash = student.PasswordHash
		role = authModel.RoleStudent
	case errors.Is(err, userModel.ErrStudentNotFound):
		instructor, instErr := s.users.GetInstructor(ctx, req.Username)
		if instErr != nil {
			if errors.Is(instErr, userModel.ErrInstructorNotFound) {
				return nil, authModel.ErrBadCredentials
			}
			return nil, instErr
		}
		hash = instructor.PasswordHash
		role = authModel.RoleInstructor
	default:
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(req.Password)) != nil {
		return nil, authModel.ErrBadCredentials
	}

	token, err := s.issueToken(req.Username, role)
	if err != nil {
		return nil, err
	}

	return &authModel.LoginResponse{AccessToken: token, UserType: role}, nil
}

// issueToken signs an HS256 token for the identity.
func (s *service) issueToken(username string, role authModel.Role) (string, error) {
	now := time.Now()
	claims := authModel.Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.cfg.JWTSecret))
}
