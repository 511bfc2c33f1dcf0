package experience

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Company          string    `json:"company"`
	Location         string    `json:"location"`
	Period           string    `json:"period"`
	Responsibilities []string  `json:"responsibilities"`
	Order            int       `json:"order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

var ErrExperienceNotFound = errors.New("experience not found")

type Repository interface {
	List(ctx context.Context) ([]*Experience, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)
	Save(ctx context.Context, e *Experience) error
	Update(ctx context.Context, e *Experience) error
	Delete(ctx context.Context, id uuid.UUID) error
}
