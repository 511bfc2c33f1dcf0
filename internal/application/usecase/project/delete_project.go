package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
)

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	cache       PublicCache
}

func NewDeleteProjectUseCase(repo project.Repository, cache PublicCache) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{projectRepo: repo, cache: cache}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, id uuid.UUID) error {
	if err := uc.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	uc.cache.InvalidateProjects(ctx)
	return nil
}
