package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	skillUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/skill"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
}

func NewSkillHandler(uc *skillUC.SkillUseCase) *SkillHandler {
	return &SkillHandler{skillUseCase: uc}
}

func parseIDParam(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, apperror.NewInvalidInput("id must be a valid UUID", err)
	}
	return id, nil
}

func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.skillUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *SkillHandler) Create(c *gin.Context) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name and category are required", err))
		return
	}

	s, err := h.skillUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, s)
}

func (h *SkillHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("name and category are required", err))
		return
	}

	s, err := h.skillUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SkillHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.skillUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Skill deleted successfully"})
}
