package certification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pushpakoirala/portfolio-api/internal/domain/certification"
)

type CertificationUseCase struct {
	certificationRepo certification.Repository
}

func NewCertificationUseCase(repo certification.Repository) *CertificationUseCase {
	return &CertificationUseCase{certificationRepo: repo}
}

func (uc *CertificationUseCase) List(ctx context.Context) ([]*certification.Certification, error) {
	certs, err := uc.certificationRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list certifications failed: %w", err)
	}
	return certs, nil
}

type CertificationInput struct {
	Name                string
	IssuingOrganization string
	Year                string
	CertificateURL      *string
	Order               int
}

func (uc *CertificationUseCase) Create(ctx context.Context, input CertificationInput) (*certification.Certification, error) {
	now := time.Now().UTC()
	c := &certification.Certification{
		ID:                  uuid.New(),
		Name:                input.Name,
		IssuingOrganization: input.IssuingOrganization,
		Year:                input.Year,
		CertificateURL:      input.CertificateURL,
		Order:               input.Order,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.certificationRepo.Save(ctx, c); err != nil {
		return nil, fmt.Errorf("save certification failed: %w", err)
	}
	return c, nil
}

func (uc *CertificationUseCase) Update(ctx context.Context, id uuid.UUID, input CertificationInput) (*certification.Certification, error) {
	c, err := uc.certificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	c.Name = input.Name
	c.IssuingOrganization = input.IssuingOrganization
	c.Year = input.Year
	c.CertificateURL = input.CertificateURL
	c.Order = input.Order
	c.UpdatedAt = time.Now().UTC()

	if err := uc.certificationRepo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update certification failed: %w", err)
	}
	return c, nil
}

func (uc *CertificationUseCase) Delete(ctx context.Context, id uuid.UUID) error {
	return uc.certificationRepo.Delete(ctx, id)
}
