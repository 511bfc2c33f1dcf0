package auth

import (
	"context"

	"go.uber.org/zap"

	"github.com/pushpakoirala/portfolio-api/internal/domain/admin"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
	"github.com/pushpakoirala/portfolio-api/pkg/auth"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
)

type ChangePasswordUseCase struct {
	adminRepo admin.Repository
	logger    logger.Logger
}

func NewChangePasswordUseCase(repo admin.Repository, log logger.Logger) *ChangePasswordUseCase {
	return &ChangePasswordUseCase{adminRepo: repo, logger: log}
}

type ChangePasswordInput struct {
	Username        string
	CurrentPassword string
	NewPassword     string
}

// Execute re-verifies the current password before writing the new hash.
// The session token stays valid, identity did not change.
func (uc *ChangePasswordUseCase) Execute(ctx context.Context, input ChangePasswordInput) error {
	ctx, span := tracer.Start(ctx, "ChangePassword")
	defer span.End()

	a, err := uc.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if !auth.CheckPasswordHash(input.CurrentPassword, a.PasswordHash) {
		return apperror.NewInvalidInput("Current password is incorrect", nil)
	}

	hash, err := auth.HashPassword(input.NewPassword)
	if err != nil {
		uc.logger.Error("Failed to hash password", err, zap.String("username", a.Username))
		return apperror.NewInternal("failed to hash password", err)
	}

	if err := uc.adminRepo.UpdatePassword(ctx, a.ID, hash); err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}
