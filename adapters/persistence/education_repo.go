package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushpakoirala/portfolio-api/internal/domain/education"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type postgresEducationRepo struct {
	db *pgxpool.Pool
}

func NewPostgresEducationRepo(db *pgxpool.Pool) education.Repository {
	return &postgresEducationRepo{db: db}
}

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	err := row.Scan(&e.ID, &e.Degree, &e.Institution, &e.FieldOfStudy, &e.Location,
		&e.Period, &e.Description, &e.Highlights, &e.Order, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, education.ErrEducationNotFound
		}
		return nil, apperror.NewInternal("failed to scan education row", err)
	}
	if e.Highlights == nil {
		e.Highlights = []string{}
	}
	return e, nil
}

func (r *postgresEducationRepo) List(ctx context.Context) ([]*education.Education, error) {
	sql, args, err := psql.Select("id, degree, institution, field_of_study, location, period, description, highlights, sort_order, created_at, updated_at").
		From("education").
		OrderBy("sort_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build education list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query education", err)
	}
	defer rows.Close()

	entries := make([]*education.Education, 0)
	for rows.Next() {
		e, err := scanEducation(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating education rows", err)
	}
	return entries, nil
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	query := `
		SELECT id, degree, institution, field_of_study, location, period, description, highlights, sort_order, created_at, updated_at
		FROM education WHERE id = $1
	`
	return scanEducation(r.db.QueryRow(ctx, query, id))
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO education (id, degree, institution, field_of_study, location, period, description, highlights, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query, e.ID, e.Degree, e.Institution, e.FieldOfStudy,
		e.Location, e.Period, e.Description, e.Highlights, e.Order, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save education", err)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE education SET
			degree = $2, institution = $3, field_of_study = $4, location = $5,
			period = $6, description = $7, highlights = $8, sort_order = $9, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, e.ID, e.Degree, e.Institution, e.FieldOfStudy,
		e.Location, e.Period, e.Description, e.Highlights, e.Order)
	if err != nil {
		return apperror.NewInternal("failed to update education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return education.ErrEducationNotFound
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM education WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete education", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return education.ErrEducationNotFound
	}
	return nil
}
