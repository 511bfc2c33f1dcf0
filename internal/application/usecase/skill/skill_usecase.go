package skill

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pushpakoirala/portfolio-api/internal/domain/skill"
)

type SkillUseCase struct {
	skillRepo skill.Repository
}

func NewSkillUseCase(repo skill.Repository) *SkillUseCase {
	return &SkillUseCase{skillRepo: repo}
}

func (uc *SkillUseCase) List(ctx context.Context) ([]*skill.Skill, error) {
	skills, err := uc.skillRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list skills failed: %w", err)
	}
	return skills, nil
}

type SkillInput struct {
	Name     string
	Category string
	Order    int
}

func (uc *SkillUseCase) Create(ctx context.Context, input SkillInput) (*skill.Skill, error) {
	now := time.Now().UTC()
	s := &skill.Skill{
		ID:        uuid.New(),
		Name:      input.Name,
		Category:  input.Category,
		Order:     input.Order,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.skillRepo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("save skill failed: %w", err)
	}
	return s, nil
}

func (uc *SkillUseCase) Update(ctx context.Context, id uuid.UUID, input SkillInput) (*skill.Skill, error) {
	s, err := uc.skillRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.Name = input.Name
	s.Category = input.Category
	s.Order = input.Order
	s.UpdatedAt = time.Now().UTC()

	if err := uc.skillRepo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("update skill failed: %w", err)
	}
	return s, nil
}

func (uc *SkillUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.skillRepo.Delete(ctx, id)
}
