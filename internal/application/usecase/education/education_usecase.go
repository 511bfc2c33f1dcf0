package education

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pushpakoirala/portfolio-api/internal/domain/education"
)

type EducationUseCase struct {
	educationRepo education.Repository
}

func NewEducationUseCase(repo education.Repository) *EducationUseCase {
	return &EducationUseCase{educationRepo: repo}
}

func (uc *EducationUseCase) List(ctx context.Context) ([]*education.Education, error) {
	entries, err := uc.educationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list education failed: %w", err)
	}
	return entries, nil
}

type EducationInput struct {
	Degree       string
	Institution  string
	FieldOfStudy string
	Location     string
	Period       string
	Description  string
	Highlights   []string
	Order        int
}

func (uc *EducationUseCase) Create(ctx context.Context, input EducationInput) (*education.Education, error) {
	if input.Highlights == nil {
		input.Highlights = []string{}
	}

	now := time.Now().UTC()
	e := &education.Education{
		ID:           uuid.New(),
		Degree:       input.Degree,
		Institution:  input.Institution,
		FieldOfStudy: input.FieldOfStudy,
		Location:     input.Location,
		Period:       input.Period,
		Description:  input.Description,
		Highlights:   input.Highlights,
		Order:        input.Order,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.educationRepo.Save(ctx, e); err != nil {
		return nil, fmt.Errorf("save education failed: %w", err)
	}
	return e, nil
}

func (uc *EducationUseCase) Update(ctx context.Context, id uuid.UUID, input EducationInput) (*education.Education, error) {
	e, err := uc.educationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	e.Degree = input.Degree
	e.Institution = input.Institution
	e.FieldOfStudy = input.FieldOfStudy
	e.Location = input.Location
	e.Period = input.Period
	e.Description = input.Description
	e.Highlights = input.Highlights
	e.Order = input.Order
	e.UpdatedAt = time.Now().UTC()

	if err := uc.educationRepo.Update(ctx, e); err != nil {
		return nil, fmt.Errorf("update education failed: %w", err)
	}
	return e, nil
}

func (uc *EducationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.educationRepo.Delete(ctx, id)
}
