package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	educationUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/education"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type EducationHandler struct {
	educationUseCase *educationUC.EducationUseCase
}

func NewEducationHandler(uc *educationUC.EducationUseCase) *EducationHandler {
	return &EducationHandler{educationUseCase: uc}
}

func (h *EducationHandler) List(c *gin.Context) {
	entries, err := h.educationUseCase.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *EducationHandler) Create(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("degree and institution are required", err))
		return
	}

	e, err := h.educationUseCase.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *EducationHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("degree and institution are required", err))
		return
	}

	e, err := h.educationUseCase.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *EducationHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.educationUseCase.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Education deleted successfully"})
}
