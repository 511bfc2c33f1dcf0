package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushpakoirala/portfolio-api/internal/domain/experience"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type postgresExperienceRepo struct {
	db *pgxpool.Pool
}

func NewPostgresExperienceRepo(db *pgxpool.Pool) experience.Repository {
	return &postgresExperienceRepo{db: db}
}

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}
	err := row.Scan(&e.ID, &e.Title, &e.Company, &e.Location, &e.Period,
		&e.Responsibilities, &e.Order, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, experience.ErrExperienceNotFound
		}
		return nil, apperror.NewInternal("failed to scan experience row", err)
	}
	if e.Responsibilities == nil {
		e.Responsibilities = []string{}
	}
	return e, nil
}

func (r *postgresExperienceRepo) List(ctx context.Context) ([]*experience.Experience, error) {
	sql, args, err := psql.Select("id, title, company, location, period, responsibilities, sort_order, created_at, updated_at").
		From("experience").
		OrderBy("sort_order ASC", "created_at ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build experience list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query experience", err)
	}
	defer rows.Close()

	entries := make([]*experience.Experience, 0)
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating experience rows", err)
	}
	return entries, nil
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	query := `
		SELECT id, title, company, location, period, responsibilities, sort_order, created_at, updated_at
		FROM experience WHERE id = $1
	`
	return scanExperience(r.db.QueryRow(ctx, query, id))
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	query := `
		INSERT INTO experience (id, title, company, location, period, responsibilities, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query, e.ID, e.Title, e.Company, e.Location, e.Period,
		e.Responsibilities, e.Order, e.CreatedAt, e.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save experience", err)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, e *experience.Experience) error {
	query := `
		UPDATE experience SET
			title = $2, company = $3, location = $4, period = $5,
			responsibilities = $6, sort_order = $7, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, e.ID, e.Title, e.Company, e.Location,
		e.Period, e.Responsibilities, e.Order)
	if err != nil {
		return apperror.NewInternal("failed to update experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return experience.ErrExperienceNotFound
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM experience WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete experience", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return experience.ErrExperienceNotFound
	}
	return nil
}
