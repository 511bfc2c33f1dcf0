package auth

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/pushpakoirala/portfolio-api/internal/domain/admin"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
	"github.com/pushpakoirala/portfolio-api/pkg/auth"
	"github.com/pushpakoirala/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("auth_usecase")

type LoginUseCase struct {
	adminRepo admin.Repository
	jwtSvc    *auth.JWTService
	logger    logger.Logger
}

func NewLoginUseCase(repo admin.Repository, jwtSvc *auth.JWTService, log logger.Logger) *LoginUseCase {
	return &LoginUseCase{
		adminRepo: repo,
		jwtSvc:    jwtSvc,
		logger:    log,
	}
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token string
	Admin *admin.Admin
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	ctx, span := tracer.Start(ctx, "Login")
	defer span.End()

	a, err := uc.adminRepo.FindByUsername(ctx, input.Username)
	if err != nil {
		if errors.Is(err, admin.ErrAdminNotFound) {
			return nil, apperror.NewUnauthorized("Invalid username or password")
		}
		span.RecordError(err)
		return nil, err
	}

	if !auth.CheckPasswordHash(input.Password, a.PasswordHash) {
		err := apperror.NewUnauthorized("Invalid username or password")
		span.RecordError(err)
		return nil, err
	}

	token, err := uc.jwtSvc.GenerateToken(a.Username)
	if err != nil {
		uc.logger.Error("Failed to generate token", err, zap.String("username", a.Username))
		err = apperror.NewInternal("failed to generate token", err)
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(attribute.String("username", a.Username))
	return &LoginOutput{Token: token, Admin: a}, nil
}
