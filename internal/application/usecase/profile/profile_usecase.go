package profile

import (
	"context"
	"fmt"
	"time"

	"github.com/pushpakoirala/portfolio-api/internal/domain/profile"
)

type ProfileUseCase struct {
	profileRepo profile.Repository
}

func NewProfileUseCase(repo profile.Repository) *ProfileUseCase {
	return &ProfileUseCase{profileRepo: repo}
}

type GetProfileOutput struct {
	Profile *profile.Profile
}

func (uc *ProfileUseCase) ExecuteGetProfile(ctx context.Context) (*GetProfileOutput, error) {
	p, err := uc.profileRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get profile failed: %w", err)
	}
	return &GetProfileOutput{Profile: p}, nil
}

type UpdateProfileInput struct {
	Name         string
	Title        string
	Headline     string
	About        string
	Email        string
	Phone        string
	Location     string
	LinkedIn     string
	GitHub       string
	ProfilePhoto *string
	ResumeURL    *string
}

type UpdateProfileOutput struct {
	Profile *profile.Profile
}

// ExecuteUpdateProfile is a full replace, the singleton row is never
// created or deleted here.
func (uc *ProfileUseCase) ExecuteUpdateProfile(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	p := &profile.Profile{
		Name:         input.Name,
		Title:        input.Title,
		Headline:     input.Headline,
		About:        input.About,
		Email:        input.Email,
		Phone:        input.Phone,
		Location:     input.Location,
		LinkedIn:     input.LinkedIn,
		GitHub:       input.GitHub,
		ProfilePhoto: input.ProfilePhoto,
		ResumeURL:    input.ResumeURL,
		UpdatedAt:    time.Now().UTC(),
	}

	if err := uc.profileRepo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("update profile failed: %w", err)
	}

	return &UpdateProfileOutput{Profile: p}, nil
}
