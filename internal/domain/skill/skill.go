package skill

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Skill belongs to a free-text category used only for grouping on the
// public page.
type Skill struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

var ErrSkillNotFound = errors.New("skill not found")

type Repository interface {
	List(ctx context.Context) ([]*Skill, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Skill, error)
	Save(ctx context.Context, s *Skill) error
	Update(ctx context.Context, s *Skill) error
	Delete(ctx context.Context, id uuid.UUID) error
}
