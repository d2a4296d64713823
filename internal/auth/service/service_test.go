package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authModel "github.com/teamforge/teamforge/internal/auth/model"
	appConfig "github.com/teamforge/teamforge/internal/config"
	userModel "github.com/teamforge/teamforge/internal/user/model"
	userRepository "github.com/teamforge/teamforge/internal/user/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	type Student struct {
		Username       string `gorm:"primaryKey;column:username"`
		FirstName      string `gorm:"column:first_name"`
		LastName       string `gorm:"column:last_name"`
		Email          string `gorm:"column:email"`
		ProgramOfStudy string `gorm:"column:program_of_study"`
		PasswordHash   string `gorm:"column:password_hash"`
		CreatedAt      time.Time
	}
	type Instructor struct {
		Username     string `gorm:"primaryKey;column:username"`
		FirstName    string `gorm:"column:first_name"`
		LastName     string `gorm:"column:last_name"`
		Email        string `gorm:"column:email"`
		PasswordHash string `gorm:"column:password_hash"`
		CreatedAt    time.Time
	}

	require.NoError(t, db.AutoMigrate(&Student{}, &Instructor{}))
	return db
}

func testAuthConfig() appConfig.AuthConfig {
	return appConfig.AuthConfig{
		JWTSecret: "test-secret",
		TokenTTL:  time.Hour,
		// MinCost keeps the hashing fast in tests.
		BcryptCost: bcrypt.MinCost,
	}
}

func newTestService(db *gorm.DB) Service {
	return New(userRepository.New(db), testAuthConfig(), zap.NewNop().Sugar())
}

func studentRegistration(username string) *authModel.RegisterRequest {
	return &authModel.RegisterRequest{
		Username:       username,
		Password:       "hunter22",
		Email:          username + "@uni.example",
		FirstName:      "Alice",
		LastName:       "Doe",
		UserType:       "student",
		ProgramOfStudy: "Software Engineering",
	}
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a student", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		err := svc.Register(ctx, studentRegistration("alice"))

		require.NoError(t, err)
		var student userModel.Student
		require.NoError(t, db.Where("username = ?", "alice").First(&student).Error)
		assert.Equal(t, "Software Engineering", student.ProgramOfStudy)
		assert.NotEqual(t, "hunter22", student.PasswordHash)
	})

	t.Run("registers an instructor ignoring case of user type", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		err := svc.Register(ctx, &authModel.RegisterRequest{
			Username:  "prof",
			Password:  "hunter22",
			Email:     "prof@uni.example",
			FirstName: "Grace",
			LastName:  "Hopper",
			UserType:  " Instructor ",
		})

		require.NoError(t, err)
		var instructor userModel.Instructor
		require.NoError(t, db.Where("username = ?", "prof").First(&instructor).Error)
	})

	t.Run("rejects an email without an at sign", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		req := studentRegistration("alice")
		req.Email = "alice.example"
		err := svc.Register(ctx, req)

		assert.ErrorIs(t, err, authModel.ErrInvalidEmail)
	})

	t.Run("rejects an unknown user type", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		req := studentRegistration("alice")
		req.UserType = "admin"
		err := svc.Register(ctx, req)

		assert.ErrorIs(t, err, authModel.ErrInvalidUserType)
	})

	t.Run("rejects a student without a program of study", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		req := studentRegistration("alice")
		req.ProgramOfStudy = ""
		err := svc.Register(ctx, req)

		assert.ErrorIs(t, err, authModel.ErrMissingProgram)
	})

	t.Run("username is unique across students and instructors", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		require.NoError(t, svc.Register(ctx, studentRegistration("pat")))

		err := svc.Register(ctx, &authModel.RegisterRequest{
			Username:  "pat",
			Password:  "hunter22",
			Email:     "pat@uni.example",
			FirstName: "Pat",
			LastName:  "Smith",
			UserType:  "instructor",
		})

		assert.ErrorIs(t, err, userModel.ErrUsernameTaken)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a student token", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)
		require.NoError(t, svc.Register(ctx, studentRegistration("alice")))

		resp, err := svc.Login(ctx, &authModel.LoginRequest{Username: "alice", Password: "hunter22"})

		require.NoError(t, err)
		assert.Equal(t, authModel.RoleStudent, resp.UserType)

		claims := &authModel.Claims{}
		parsed, err := jwt.ParseWithClaims(resp.AccessToken, claims, func(t *jwt.Token) (interface{}, error) {
			return []byte("test-secret"), nil
		})
		require.NoError(t, err)
		assert.True(t, parsed.Valid)
		assert.Equal(t, "alice", claims.Subject)
		assert.Equal(t, authModel.RoleStudent, claims.Role)
	})

	t.Run("issues an instructor token", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)
		require.NoError(t, svc.Register(ctx, &authModel.RegisterRequest{
			Username:  "prof",
			Password:  "hunter22",
			Email:     "prof@uni.example",
			FirstName: "Grace",
			LastName:  "Hopper",
			UserType:  "instructor",
		}))

		resp, err := svc.Login(ctx, &authModel.LoginRequest{Username: "prof", Password: "hunter22"})

		require.NoError(t, err)
		assert.Equal(t, authModel.RoleInstructor, resp.UserType)
	})

	t.Run("rejects a wrong password", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)
		require.NoError(t, svc.Register(ctx, studentRegistration("alice")))

		resp, err := svc.Login(ctx, &authModel.LoginRequest{Username: "alice", Password: "wrong"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, authModel.ErrBadCredentials)
	})

	t.Run("rejects an unknown username", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newTestService(db)

		resp, err := svc.Login(ctx, &authModel.LoginRequest{Username: "ghost", Password: "hunter22"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, authModel.ErrBadCredentials)
	})
}
