package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
)

type ToggleVisibilityUseCase struct {
	projectRepo project.Repository
	cache       PublicCache
}

func NewToggleVisibilityUseCase(repo project.Repository, cache PublicCache) *ToggleVisibilityUseCase {
	return &ToggleVisibilityUseCase{projectRepo: repo, cache: cache}
}

type ToggleVisibilityInput struct {
	ProjectID uuid.UUID
	Visible   bool
}

// Execute flips only the public-display gate, the rest of the record is
// untouched.
func (uc *ToggleVisibilityUseCase) Execute(ctx context.Context, input ToggleVisibilityInput) error {
	if err := uc.projectRepo.UpdateVisibility(ctx, input.ProjectID, input.Visible); err != nil {
		return err
	}
	uc.cache.InvalidateProjects(ctx)
	return nil
}
