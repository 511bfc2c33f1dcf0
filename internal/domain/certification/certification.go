package certification

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Certification struct {
	ID                  uuid.UUID `json:"id"`
	Name                string    `json:"name"`
	IssuingOrganization string    `json:"issuing_organization"`
	Year                string    `json:"year"`
	CertificateURL      *string   `json:"certificate_url"`
	Order               int       `json:"order"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

var ErrCertificationNotFound = errors.New("certification not found")

type Repository interface {
	List(ctx context.Context) ([]*Certification, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Certification, error)
	Save(ctx context.Context, c *Certification) error
	Update(ctx context.Context, c *Certification) error
	Delete(ctx context.Context, id uuid.UUID) error
}
