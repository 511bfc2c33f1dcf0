package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/experience"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type ExperienceHandler struct {
	experienceUseCase *experienceUC.ExperienceUseCase
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase) *ExperienceHandler {
	return &ExperienceHandler{experienceUseCase: uc}
}

func (h *ExperienceHandler) List(c *gin.Context) {
	entries, err := h.experienceUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *ExperienceHandler) Create(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("title and company are required", err))
		return
	}

	e, err := h.experienceUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *ExperienceHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("title and company are required", err))
		return
	}

	e, err := h.experienceUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *ExperienceHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.experienceUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Experience deleted successfully"})
}
