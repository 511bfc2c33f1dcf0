package education

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Education struct {
	ID           uuid.UUID `json:"id"`
	Degree       string    `json:"degree"`
	Institution  string    `json:"institution"`
	FieldOfStudy string    `json:"field_of_study"`
	Location     string    `json:"location"`
	Period       string    `json:"period"`
	Description  string    `json:"description"`
	Highlights   []string  `json:"highlights"`
	Order        int       `json:"order"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

var ErrEducationNotFound = errors.New("education not found")

type Repository interface {
	List(ctx context.Context) ([]*Education, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Education, error)
	Save(ctx context.Context, e *Education) error
	Update(ctx context.Context, e *Education) error
	Delete(ctx context.Context, id uuid.UUID) error
}
