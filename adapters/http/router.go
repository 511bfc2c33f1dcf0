package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pushpakoirala/portfolio-api/pkg/auth"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
)

type Handlers struct {
	Auth          *AuthHandler
	Profile       *ProfileHandler
	Skill         *SkillHandler
	Project       *ProjectHandler
	Experience    *ExperienceHandler
	Education     *EducationHandler
	Certification *CertificationHandler
	Message       *MessageHandler
	Upload        *UploadHandler
}

// NewRouter wires the public read surface, the public contact endpoint and
// the bearer-protected admin surface.
func NewRouter(h Handlers, jwtSvc *auth.JWTService, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ErrorMiddleware(log))

	authRequired := AuthMiddleware(jwtSvc)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", h.Auth.Login)

			authPrivate := authGroup.Group("/")
			authPrivate.Use(authRequired)
			{
				authPrivate.POST("/change-password", h.Auth.ChangePassword)
				authPrivate.PUT("/username", h.Auth.ChangeUsername)
				authPrivate.PUT("/email", h.Auth.ChangeEmail)
				authPrivate.POST("/logout", h.Auth.Logout)
			}
		}

		// Public reads for the marketing page.
		api.GET("/profile", h.Profile.GetProfile)
		api.GET("/skills", h.Skill.List)
		api.GET("/projects", h.Project.List)
		api.GET("/projects/:id", h.Project.Get)
		api.GET("/experience", h.Experience.List)
		api.GET("/education", h.Education.List)
		api.GET("/certifications", h.Certification.List)

		// Public contact form.
		api.POST("/messages", h.Message.Create)

		admin := api.Group("/")
		admin.Use(authRequired)
		{
			admin.PUT("/profile", h.Profile.UpdateProfile)

			admin.POST("/skills", h.Skill.Create)
			admin.PUT("/skills/:id", h.Skill.Update)
			admin.DELETE("/skills/:id", h.Skill.Delete)

			admin.POST("/projects", h.Project.Create)
			admin.PUT("/projects/:id", h.Project.Update)
			admin.PATCH("/projects/:id/visibility", h.Project.ToggleVisibility)
			admin.DELETE("/projects/:id", h.Project.Delete)

			admin.POST("/experience", h.Experience.Create)
			admin.PUT("/experience/:id", h.Experience.Update)
			admin.DELETE("/experience/:id", h.Experience.Delete)

			admin.POST("/education", h.Education.Create)
			admin.PUT("/education/:id", h.Education.Update)
			admin.DELETE("/education/:id", h.Education.Delete)

			admin.POST("/certifications", h.Certification.Create)
			admin.PUT("/certifications/:id", h.Certification.Update)
			admin.DELETE("/certifications/:id", h.Certification.Delete)

			admin.GET("/messages", h.Message.List)
			admin.PATCH("/messages/:id/read", h.Message.MarkRead)
			admin.PATCH("/messages/:id/unread", h.Message.MarkUnread)
			admin.DELETE("/messages/:id", h.Message.Delete)

			if h.Upload != nil {
				admin.POST("/uploads", h.Upload.Upload)
			}
		}
	}

	return router
}
