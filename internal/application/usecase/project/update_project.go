package project

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
)

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	cache       PublicCache
}

func NewUpdateProjectUseCase(repo project.Repository, cache PublicCache) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{projectRepo: repo, cache: cache}
}

type UpdateProjectInput struct {
	ProjectID        uuid.UUID
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

type UpdateProjectOutput struct {
	Project *project.Project
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, input.ProjectID)
	if err != nil {
		return nil, err
	}

	p.Title = input.Title
	p.ProblemStatement = input.ProblemStatement
	p.Description = input.Description
	p.Technologies = input.Technologies
	p.Role = input.Role
	p.Outcome = input.Outcome
	p.Status = input.Status
	p.Visible = input.Visible
	p.Order = input.Order
	p.ImageURL = input.ImageURL
	p.ProjectURL = input.ProjectURL
	p.GitHubURL = input.GitHubURL
	p.UpdatedAt = time.Now().UTC()

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if err := uc.projectRepo.Update(ctx, p); err != nil {
		return nil, fmt.Errorf("update project failed: %w", err)
	}

	uc.cache.InvalidateProjects(ctx)
	return &UpdateProjectOutput{Project: p}, nil
}
