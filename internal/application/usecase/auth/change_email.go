package auth

import (
	"context"

	"github.com/pushpakoirala/portfolio-api/internal/domain/admin"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
)

type ChangeEmailUseCase struct {
	adminRepo admin.Repository
	logger    logger.Logger
}

func NewChangeEmailUseCase(repo admin.Repository, log logger.Logger) *ChangeEmailUseCase {
	return &ChangeEmailUseCase{adminRepo: repo, logger: log}
}

type ChangeEmailInput struct {
	Username string
	Email    string
}

func (uc *ChangeEmailUseCase) Execute(ctx context.Context, input ChangeEmailInput) error {
	a, err := uc.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		return err
	}
	return uc.adminRepo.UpdateEmail(ctx, a.ID, input.Email)
}
