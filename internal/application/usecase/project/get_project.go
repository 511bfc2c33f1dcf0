package project

import (
	"context"

	"github.com/google/uuid"

	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
)

type GetProjectUseCase struct {
	projectRepo project.Repository
}

func NewGetProjectUseCase(repo project.Repository) *GetProjectUseCase {
	return &GetProjectUseCase{projectRepo: repo}
}

type GetProjectOutput struct {
	Project *project.Project
}

func (uc *GetProjectUseCase) Execute(ctx context.Context, id uuid.UUID) (*GetProjectOutput, error) {
	p, err := uc.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &GetProjectOutput{Project: p}, nil
}
