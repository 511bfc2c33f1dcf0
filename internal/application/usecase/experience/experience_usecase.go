package experience

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pushpakoirala/portfolio-api/internal/domain/experience"
)

type ExperienceUseCase struct {
	experienceRepo experience.Repository
}

func NewExperienceUseCase(repo experience.Repository) *ExperienceUseCase {
	return &ExperienceUseCase{experienceRepo: repo}
}

func (uc *ExperienceUseCase) List(ctx context.Context) ([]*experience.Experience, error) {
	entries, err := uc.experienceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list experience failed: %w", err)
	}
	return entries, nil
}

type ExperienceInput struct {
	Title            string
	Company          string
	Location         string
	Period           string
	Responsibilities []string
	Order            int
}

func (uc *ExperienceUseCase) Create(ctx context.Context, input ExperienceInput) (*experience.Experience, error) {
	if input.Responsibilities == nil {
		input.Responsibilities = []string{}
	}

	now := time.Now().UTC()
	e := &experience.Experience{
		ID:               uuid.New(),
		Title:            input.Title,
		Company:          input.Company,
		Location:         input.Location,
		Period:           input.Period,
		Responsibilities: input.Responsibilities,
		Order:            input.Order,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.experienceRepo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("save experience failed: %w", err)
	}
	return e, nil
}

func (uc *ExperienceUseCase) Update(ctx context.Context, id uuid.UUID, input ExperienceInput) (*experience.Experience, error) {
	e, err := uc.experienceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	e.Title = input.Title
	e.Company = input.Company
	e.Location = input.Location
	e.Period = input.Period
	e.Responsibilities = input.Responsibilities
	e.Order = input.Order
	e.UpdatedAt = time.Now().UTC()

	if err := uc.experienceRepo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("update experience failed: %w", err)
	}
	return e, nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.experienceRepo.Delete(ctx, id)
}
