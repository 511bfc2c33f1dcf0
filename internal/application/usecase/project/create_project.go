package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
)

type CreateProjectUseCase struct {
	projectRepo project.Repository
	cache       PublicCache
}

func NewCreateProjectUseCase(repo project.Repository, cache PublicCache) *CreateProjectUseCase {
	return &CreateProjectUseCase{projectRepo: repo, cache: cache}
}

type CreateProjectInput struct {
	Title            string
	ProblemStatement string
	Description      string
	Technologies     []string
	Role             string
	Outcome          string
	Status           project.Status
	Visible          bool
	Order            int
	ImageURL         *string
	ProjectURL       *string
	GitHubURL        *string
}

type CreateProjectOutput struct {
	Project *project.Project
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	if input.Status == "" {
		input.Status = project.StatusCompleted
	}
	if input.Technologies == nil {
		input.Technologies = []string{}
	}

	now := time.Now().UTC()
	newProject := &project.Project{
		ID:               uuid.New(),
		Title:            input.Title,
		ProblemStatement: input.ProblemStatement,
		Description:      input.Description,
		Technologies:     input.Technologies,
		Role:             input.Role,
		Outcome:          input.Outcome,
		Status:           input.Status,
		Visible:          input.Visible,
		Order:            input.Order,
		ImageURL:         input.ImageURL,
		ProjectURL:       input.ProjectURL,
		GitHubURL:        input.GitHubURL,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := newProject.Validate(); err != nil {
		return nil, err
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		return nil, fmt.Errorf("save project failed: %w", err)
	}

	uc.cache.InvalidateProjects(ctx)
	return &CreateProjectOutput{Project: newProject}, nil
}
