package project

import (
	"context"
	"fmt"

	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
)

type ListProjectsUseCase struct {
	projectRepo project.Repository
	cache       PublicCache
}

func NewListProjectsUseCase(repo project.Repository, cache PublicCache) *ListProjectsUseCase {
	return &ListProjectsUseCase{projectRepo: repo, cache: cache}
}

type ListProjectsOutput struct {
	Projects []*project.Project
}

// Execute returns every project regardless of visibility (admin view).
func (uc *ListProjectsUseCase) Execute(ctx context.Context) (*ListProjectsOutput, error) {
	projects, err := uc.projectRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects failed: %w", err)
	}
	return &ListProjectsOutput{Projects: projects}, nil
}

// ExecuteVisible returns only public-facing projects, served from cache
// when possible.
func (uc *ListProjectsUseCase) ExecuteVisible(ctx context.Context) (*ListProjectsOutput, error) {
	if cached, ok := uc.cache.GetVisibleProjects(ctx); ok {
		return &ListProjectsOutput{Projects: cached}, nil
	}

	projects, err := uc.projectRepo.ListVisible(ctx)
	if err != nil {
		return nil, fmt.Errorf("list visible projects failed: %w", err)
	}

	uc.cache.SetVisibleProjects(ctx, projects)
	return &ListProjectsOutput{Projects: projects}, nil
}
