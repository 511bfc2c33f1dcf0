package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushpakoirala/portfolio-api/internal/domain/certification"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type postgresCertificationRepo struct {
	db *pgxpool.Pool
}

func NewPostgresCertificationRepo(db *pgxpool.Pool) certification.Repository {
	return &postgresCertificationRepo{db: db}
}

func scanCertification(row pgx.Row) (*certification.Certification, error) {
	c := &certification.Certification{}
	err := row.Scan(&c.ID, &c.Name, &c.IssuingOrganization, &c.Year,
		&c.CertificateURL, &c.Order, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, certification.ErrCertificationNotFound
		}
		return nil, apperror.NewInternal("failed to scan certification row", err)
	}
	return c, nil
}

func (r *postgresCertificationRepo) List(ctx context.Context) ([]*certification.Certification, error) {
	sql, args, err := psql.Select("id, name, issuing_organization, year, certificate_url, sort_order, created_at, updated_at").
		From("certifications").
		OrderBy("sort_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build certification list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query certifications", err)
	}
	defer rows.Close()

	certs := make([]*certification.Certification, 0)
	for rows.Next() {
		c, err := scanCertification(rows)
		if err != nil {
			return nil, err
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating certification rows", err)
	}
	return certs, nil
}

func (r *postgresCertificationRepo) FindByID(ctx context.Context, id uuid.UUID) (*certification.Certification, error) {
	query := `
		SELECT id, name, issuing_organization, year, certificate_url, sort_order, created_at, updated_at
		FROM certifications WHERE id = $1
	`
	return scanCertification(r.db.QueryRow(ctx, query, id))
}

func (r *postgresCertificationRepo) Save(ctx context.Context, c *certification.Certification) error {
	query := `
		INSERT INTO certifications (id, name, issuing_organization, year, certificate_url, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, c.ID, c.Name, c.IssuingOrganization, c.Year,
		c.CertificateURL, c.Order, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save certification", err)
	}
	return nil
}

func (r *postgresCertificationRepo) Update(ctx context.Context, c *certification.Certification) error {
	query := `
		UPDATE certifications SET
			name = $2, issuing_organization = $3, year = $4,
			certificate_url = $5, sort_order = $6, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, c.ID, c.Name, c.IssuingOrganization,
		c.Year, c.CertificateURL, c.Order)
	if err != nil {
		return apperror.NewInternal("failed to update certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return certification.ErrCertificationNotFound
	}
	return nil
}

func (r *postgresCertificationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM certifications WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete certification", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return certification.ErrCertificationNotFound
	}
	return nil
}
