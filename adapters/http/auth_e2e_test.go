package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/pushpakoirala/portfolio-api/adapters/persistence"
	authUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/auth"
	"github.com/pushpakoirala/portfolio-api/internal/config"
	"github.com/pushpakoirala/portfolio-api/pkg/auth"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
)

// Runs against a real Postgres. Gated behind E2E_TESTS so the unit suite
// stays self-contained.
type AuthE2ETestSuite struct {
	suite.Suite
	Router   *gin.Engine
	jwtSvc   *auth.JWTService
	testUser string
	testPass string
}

func (s *AuthE2ETestSuite) SetupSuite() {
	if os.Getenv("E2E_TESTS") == "" {
		s.T().Skip("set E2E_TESTS=1 to run the e2e suite")
	}

	cfg, err := config.LoadConfig("../..")
	if err != nil {
		s.T().Fatalf("Failed to load config for E2E test: %v", err)
	}

	appLogger := logger.NewNop()

	dbPool, err := pgxpool.New(context.Background(), cfg.DB.DSN)
	if err != nil {
		s.T().Fatalf("E2E test failed to connect postgres: %v", err)
	}

	s.testUser = "e2e_admin_" + uuid.NewString()[:8]
	s.testPass = "e2e_test_password_123"
	hash, _ := auth.HashPassword(s.testPass)

	query := `
		INSERT INTO admins (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (username) DO UPDATE SET password_hash = $4
	`
	_, err = dbPool.Exec(context.Background(), query, uuid.New(), s.testUser, "e2e@example.com", hash)
	if err != nil {
		s.T().Fatalf("E2E test failed to seed admin: %v", err)
	}

	adminRepo := persistence.NewPostgresAdminRepo(dbPool)
	s.jwtSvc = auth.NewJWTService(cfg.Auth.JWTSecret, time.Hour)

	handlers := Handlers{
		Auth: NewAuthHandler(
			authUC.NewLoginUseCase(adminRepo, s.jwtSvc, appLogger),
			authUC.NewChangePasswordUseCase(adminRepo, appLogger),
			authUC.NewChangeUsernameUseCase(adminRepo, s.jwtSvc, appLogger),
			authUC.NewChangeEmailUseCase(adminRepo, appLogger),
		),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(appLogger))
	router.POST("/api/auth/login", handlers.Auth.Login)
	authPrivate := router.Group("/api/auth", AuthMiddleware(s.jwtSvc))
	authPrivate.POST("/change-password", handlers.Auth.ChangePassword)
	s.Router = router
}

func (s *AuthE2ETestSuite) postJSON(path, token string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func (s *AuthE2ETestSuite) TestLoginSuccessReturnsTokenAndUser() {
	w := s.postJSON("/api/auth/login", "", map[string]string{
		"username": s.testUser,
		"password": s.testPass,
	})
	assert.Equal(s.T(), http.StatusOK, w.Code)

	var body struct {
		Token string `json:"token"`
		User  struct {
			Username string `json:"username"`
		} `json:"user"`
	}
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(s.T(), body.Token)
	assert.Equal(s.T(), s.testUser, body.User.Username)

	claims, err := s.jwtSvc.ValidateToken(body.Token)
	assert.NoError(s.T(), err)
	assert.Equal(s.T(), s.testUser, claims.Username)
}

func (s *AuthE2ETestSuite) TestLoginWrongPassword() {
	w := s.postJSON("/api/auth/login", "", map[string]string{
		"username": s.testUser,
		"password": "wrong",
	})
	assert.Equal(s.T(), http.StatusUnauthorized, w.Code)

	var body map[string]string
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(s.T(), "Invalid username or password", body["message"])
}

func (s *AuthE2ETestSuite) TestChangePasswordWrongCurrent() {
	token, err := s.jwtSvc.GenerateToken(s.testUser)
	assert.NoError(s.T(), err)

	w := s.postJSON("/api/auth/change-password", token, map[string]string{
		"current_password": "definitely-wrong",
		"new_password":     "another_password_123",
	})
	assert.Equal(s.T(), http.StatusBadRequest, w.Code)

	var body map[string]string
	assert.NoError(s.T(), json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(s.T(), "Current password is incorrect", body["message"])
}

func TestAuthE2ETestSuite(t *testing.T) {
	suite.Run(t, new(AuthE2ETestSuite))
}
