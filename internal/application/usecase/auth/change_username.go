package auth

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/pushpakoirala/portfolio-api/internal/domain/admin"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
	"github.com/pushpakoirala/portfolio-api/pkg/auth"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
)

type ChangeUsernameUseCase struct {
	adminRepo admin.Repository
	jwtSvc    *auth.JWTService
	logger    logger.Logger
}

func NewChangeUsernameUseCase(repo admin.Repository, jwtSvc *auth.JWTService, log logger.Logger) *ChangeUsernameUseCase {
	return &ChangeUsernameUseCase{adminRepo: repo, jwtSvc: jwtSvc, logger: log}
}

type ChangeUsernameInput struct {
	Username        string
	NewUsername     string
	CurrentPassword string
}

type ChangeUsernameOutput struct {
	Token string
	Admin *admin.Admin
}

// Execute renames the admin and issues a fresh token. Tokens embed the
// username, so the old one must not be reused after this succeeds.
func (uc *ChangeUsernameUseCase) Execute(ctx context.Context, input ChangeUsernameInput) (*ChangeUsernameOutput, error) {
	ctx, span := tracer.Start(ctx, "ChangeUsername")
	defer span.End()

	if input.NewUsername == "" {
		return nil, apperror.NewInvalidInput("new username must not be empty", nil)
	}

	a, err := uc.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.CurrentPassword, a.PasswordHash) {
		return nil, apperror.NewInvalidInput("Current password is incorrect", nil)
	}

	if err := uc.adminRepo.UpdateUsername(ctx, a.ID, input.NewUsername); err != nil {
		span.RecordError(err)
		return nil, err
	}
	a.Username = input.NewUsername

	token, err := uc.jwtSvc.GenerateToken(a.Username)
	if err != nil {
		uc.logger.Error("Failed to generate token after username change", err, zap.String("username", a.Username))
		return nil, apperror.NewInternal("failed to generate token", err)
	}

	span.SetAttributes(attribute.String("username", a.Username))
	return &ChangeUsernameOutput{Token: token, Admin: a}, nil
}
