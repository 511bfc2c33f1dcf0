package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
	"github.com/pushpakoirala/portfolio-api/pkg/auth"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
)

func newAuthTestRouter(jwtSvc *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(jwtSvc), func(c *gin.Context) {
		username, _ := GetAdminUsername(c)
		c.JSON(http.StatusOK, gin.H{"username": username})
	})
	return router
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	router := newAuthTestRouter(jwtSvc)

	token, err := jwtSvc.GenerateToken("admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "admin", body["username"])
}

func TestAuthMiddlewareRejects(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	router := newAuthTestRouter(jwtSvc)

	cases := map[string]string{
		"missing header": "",
		"not bearer":     "Basic abc123",
		"bad token":      "Bearer not.a.token",
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			router.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthMiddlewareRejectsTokenFromOtherSecret(t *testing.T) {
	router := newAuthTestRouter(auth.NewJWTService("secret-a", time.Hour))

	token, err := auth.NewJWTService("secret-b", time.Hour).GenerateToken("admin")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func newErrorTestRouter(fail error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorMiddleware(logger.NewNop()))
	router.GET("/boom", func(c *gin.Context) {
		c.Error(fail)
	})
	return router
}

func doBoom(t *testing.T, router *gin.Engine) (int, map[string]string) {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestErrorMiddlewareMapsAppErrors(t *testing.T) {
	code, body := doBoom(t, newErrorTestRouter(apperror.NewInvalidInput("Current password is incorrect", nil)))
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Current password is incorrect", body["message"])

	code, body = doBoom(t, newErrorTestRouter(apperror.NewUnauthorized("Invalid username or password")))
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid username or password", body["message"])

	code, _ = doBoom(t, newErrorTestRouter(apperror.NewNotFound("project", "nope")))
	assert.Equal(t, http.StatusNotFound, code)
}

func TestErrorMiddlewareMapsDomainSentinels(t *testing.T) {
	code, _ := doBoom(t, newErrorTestRouter(project.ErrProjectNotFound))
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = doBoom(t, newErrorTestRouter(project.ErrInvalidStatus))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestErrorMiddlewareDefaultsToInternal(t *testing.T) {
	code, body := doBoom(t, newErrorTestRouter(errors.New("kaboom")))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "An internal server error occurred", body["message"])
	assert.NotContains(t, body["message"], "kaboom")
}
