package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	projectUC "github.com/pushpakoirala/portfolio-api/internal/application/usecase/project"
	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type ProjectHandler struct {
	createUseCase           *projectUC.CreateProjectUseCase
	updateUseCase           *projectUC.UpdateProjectUseCase
	listUseCase             *projectUC.ListProjectsUseCase
	getUseCase              *projectUC.GetProjectUseCase
	deleteUseCase           *projectUC.DeleteProjectUseCase
	toggleVisibilityUseCase *projectUC.ToggleVisibilityUseCase
}

func NewProjectHandler(
	createUC *projectUC.CreateProjectUseCase,
	updateUC *projectUC.UpdateProjectUseCase,
	listUC *projectUC.ListProjectsUseCase,
	getUC *projectUC.GetProjectUseCase,
	deleteUC *projectUC.DeleteProjectUseCase,
	toggleUC *projectUC.ToggleVisibilityUseCase,
) *ProjectHandler {
	return &ProjectHandler{
		createUseCase:           createUC,
		updateUseCase:           updateUC,
		listUseCase:             listUC,
		getUseCase:              getUC,
		deleteUseCase:           deleteUC,
		toggleVisibilityUseCase: toggleUC,
	}
}

// List serves both audiences: ?visible=true narrows to the public subset,
// no filter returns everything (admin view).
func (h *ProjectHandler) List(c *gin.Context) {
	var output *projectUC.ListProjectsOutput
	var err error

	if raw, exists := c.GetQuery("visible"); exists {
		visible, parseErr := strconv.ParseBool(raw)
		if parseErr != nil {
			c.Error(apperror.NewInvalidInput("visible must be a boolean", parseErr))
			return
		}
		if visible {
			output, err = h.listUseCase.ExecuteVisible(c.Request.Context())
		} else {
			output, err = h.listUseCase.Execute(c.Request.Context())
		}
	} else {
		output, err = h.listUseCase.Execute(c.Request.Context())
	}

	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Projects)
}

func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	output, err := h.getUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Project)
}

func (h *ProjectHandler) Create(c *gin.Context) {
	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("title and description are required", err))
		return
	}

	output, err := h.createUseCase.Execute(c.Request.Context(), req.ToCreateInput())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, output.Project)
}

func toUpdateInput(id uuid.UUID, r *ProjectRequest) projectUC.UpdateProjectInput {
	status := project.Status(r.Status)
	if status == "" {
		status = project.StatusCompleted
	}
	return projectUC.UpdateProjectInput{
		ProjectID:        id,
		Title:            r.Title,
		ProblemStatement: r.ProblemStatement,
		Description:      r.Description,
		Technologies:     r.Technologies,
		Role:             r.Role,
		Outcome:          r.Outcome,
		Status:           status,
		Visible:          r.visibleOrDefault(),
		Order:            r.Order,
		ImageURL:         r.ImageURL,
		ProjectURL:       r.ProjectURL,
		GitHubURL:        r.GitHubURL,
	}
}

func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("title and description are required", err))
		return
	}

	output, err := h.updateUseCase.Execute(c.Request.Context(), toUpdateInput(id, &req))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, output.Project)
}

func (h *ProjectHandler) ToggleVisibility(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req VisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("visible is required", err))
		return
	}

	err = h.toggleVisibilityUseCase.Execute(c.Request.Context(), projectUC.ToggleVisibilityInput{
		ProjectID: id,
		Visible:   *req.Visible,
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Visibility updated successfully"})
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.deleteUseCase.Execute(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
