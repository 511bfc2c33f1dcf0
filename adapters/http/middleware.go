package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pushpakoirala/portfolio-api/internal/domain/admin"
	"github.com/pushpakoirala/portfolio-api/internal/domain/certification"
	"github.com/pushpakoirala/portfolio-api/internal/domain/education"
	"github.com/pushpakoirala/portfolio-api/internal/domain/experience"
	"github.com/pushpakoirala/portfolio-api/internal/domain/message"
	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
	"github.com/pushpakoirala/portfolio-api/internal/domain/skill"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
	"github.com/pushpakoirala/portfolio-api/pkg/auth"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
)

const GinContextKeyUsername = "adminUsername"

func AuthMiddleware(jwtSvc *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Authorization header is required"})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Invalid token format"})
			return
		}

		claims, err := jwtSvc.ValidateToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized", "message": "Invalid or expired token"})
			return
		}

		c.Set(GinContextKeyUsername, claims.Username)
		c.Next()
	}
}

func GetAdminUsername(c *gin.Context) (string, bool) {
	v, ok := c.Get(GinContextKeyUsername)
	if !ok {
		return "", false
	}
	username, ok := v.(string)
	return username, ok
}

// Domain not-found sentinels that handlers let bubble up unchanged.
var notFoundErrors = []error{
	admin.ErrAdminNotFound,
	skill.ErrSkillNotFound,
	project.ErrProjectNotFound,
	experience.ErrExperienceNotFound,
	education.ErrEducationNotFound,
	certification.ErrCertificationNotFound,
	message.ErrMessageNotFound,
}

var invalidInputErrors = []error{
	project.ErrInvalidStatus,
	message.ErrInvalidStatus,
}

// ErrorMiddleware converts errors recorded with c.Error into a JSON
// response with the right status, so handlers stay thin.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", err, zap.String("path", c.FullPath()))
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		for _, sentinel := range notFoundErrors {
			if errors.Is(err, sentinel) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found", "message": sentinel.Error()})
				return
			}
		}
		for _, sentinel := range invalidInputErrors {
			if errors.Is(err, sentinel) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "message": sentinel.Error()})
				return
			}
		}

		log.Error("unhandled request error", err, zap.String("path", c.FullPath()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "message": "An internal server error occurred"})
	}
}
