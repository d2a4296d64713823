//go:build e2e
// +build e2e

// Package e2e runs the formation API against a real PostgreSQL instance.
// The database comes from a testcontainer and the schema from the real
// migration files, so row locking and the unique-index backstops are
// exercised the way production runs them.
package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	postgresDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/teamforge/teamforge/internal/auth"
	appConfig "github.com/teamforge/teamforge/internal/config"
	"github.com/teamforge/teamforge/internal/database"
	"github.com/teamforge/teamforge/internal/health"
	"github.com/teamforge/teamforge/internal/middleware"
	"github.com/teamforge/teamforge/internal/team"
	"github.com/teamforge/teamforge/internal/teamparam"
	"github.com/teamforge/teamforge/internal/user"
)

// E2ETestSuite holds the shared container and the in-process API server.
type E2ETestSuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	db          *gorm.DB
	server      *httptest.Server
	httpClient  *http.Client
}

// SetupSuite starts PostgreSQL, applies the migrations and boots the API.
func (s *E2ETestSuite) SetupSuite() {
	s.ctx = context.Background()

	pgContainer, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(s.T(), err, "failed to start PostgreSQL container")
	s.pgContainer = pgContainer

	connStr, err := pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err, "failed to get connection string")

	db, err := gorm.Open(postgresDriver.Open(connStr), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(s.T(), err, "failed to connect to database")
	s.db = db

	s.T().Setenv("MIGRATIONS_PATH", "../../migrations")
	require.NoError(s.T(), database.Migrate(db), "failed to apply migrations")

	cfg := appConfig.AuthConfig{
		JWTSecret:  "e2e-secret",
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.MinCost,
	}
	logger := zap.NewNop().Sugar()

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Recovery(logger))

	healthHandler := health.New(db, logger)
	r.GET("/health", healthHandler.Check)

	auth.RegisterRoutes(r, db, cfg, logger)

	authed := r.Group("")
	authed.Use(middleware.Auth(cfg, logger))
	user.RegisterRoutes(authed, db, logger)
	teamparam.RegisterRoutes(authed, db, logger)
	team.RegisterRoutes(authed, db, logger)

	s.server = httptest.NewServer(r)
	s.httpClient = &http.Client{Timeout: 30 * time.Second}
}

// TearDownSuite stops the API server and the container.
func (s *E2ETestSuite) TearDownSuite() {
	if s.server != nil {
		s.server.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

// SetupTest wipes all mutable state; seeded courses stay.
func (s *E2ETestSuite) SetupTest() {
	s.db.Exec("TRUNCATE TABLE team_join_requests CASCADE")
	s.db.Exec("TRUNCATE TABLE team_members CASCADE")
	s.db.Exec("TRUNCATE TABLE teams CASCADE")
	s.db.Exec("TRUNCATE TABLE team_parameters CASCADE")
	s.db.Exec("TRUNCATE TABLE students CASCADE")
	s.db.Exec("TRUNCATE TABLE instructors CASCADE")
}

// doRequest performs an HTTP request against the API server.
func (s *E2ETestSuite) doRequest(method, path, token string, body interface{}) (*http.Response, []byte) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(s.T(), json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, s.server.URL+path, &buf)
	require.NoError(s.T(), err, "failed to create request")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	require.NoError(s.T(), err, "failed to perform request")

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(s.T(), err, "failed to read response body")
	resp.Body.Close()

	return resp, respBody
}

// doRequestNoFail is doRequest without assertions, safe inside goroutines.
func (s *E2ETestSuite) doRequestNoFail(method, path, token string, body interface{}) (*http.Response, []byte, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, nil, err
		}
	}

	req, err := http.NewRequest(method, s.server.URL+path, &buf)
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, nil, err
	}

	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return resp, nil, err
	}
	return resp, respBody, nil
}

// registerStudent creates a student account via the API.
func (s *E2ETestSuite) registerStudent(username string) {
	resp, body := s.doRequest("POST", "/auth/register", "", map[string]string{
		"username":         username,
		"password":         "hunter22",
		"email":            username + "@uni.example",
		"first_name":       username,
		"last_name":        "Test",
		"user_type":        "student",
		"program_of_study": "Software Engineering",
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, string(body))
}

// registerInstructor creates an instructor account via the API.
func (s *E2ETestSuite) registerInstructor(username string) {
	resp, body := s.doRequest("POST", "/auth/register", "", map[string]string{
		"username":   username,
		"password":   "hunter22",
		"email":      username + "@uni.example",
		"first_name": "Grace",
		"last_name":  "Hopper",
		"user_type":  "instructor",
	})
	require.Equal(s.T(), http.StatusCreated, resp.StatusCode, string(body))
}

// login returns a bearer token for the username.
func (s *E2ETestSuite) login(username string) string {
	resp, body := s.doRequest("POST", "/auth/login", "", map[string]string{
		"username": username,
		"password": "hunter22",
	})
	require.Equal(s.T(), http.StatusOK, resp.StatusCode, string(body))

	var result struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(s.T(), json.Unmarshal(body, &result))
	require.NotEmpty(s.T(), result.AccessToken)
	return result.AccessToken
}

// parseErrorResponse extracts the error envelope fields.
func (s *E2ETestSuite) parseErrorResponse(respBody []byte) (string, string) {
	var errResp struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(s.T(), json.Unmarshal(respBody, &errResp), "failed to unmarshal error response")
	return errResp.Error.Code, errResp.Error.Message
}
