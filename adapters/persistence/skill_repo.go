package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushpakoirala/portfolio-api/internal/domain/skill"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type postgresSkillRepo struct {
	db *pgxpool.Pool
}

func NewPostgresSkillRepo(db *pgxpool.Pool) skill.Repository {
	return &postgresSkillRepo{db: db}
}

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	s := &skill.Skill{}
	err := row.Scan(&s.ID, &s.Name, &s.Category, &s.Order, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, skill.ErrSkillNotFound
		}
		return nil, apperror.NewInternal("failed to scan skill row", err)
	}
	return s, nil
}

func (r *postgresSkillRepo) List(ctx context.Context) ([]*skill.Skill, error) {
	sql, args, err := psql.Select("id, name, category, sort_order, created_at, updated_at").
		From("skills").
		OrderBy("category ASC", "sort_order ASC").
		ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build skill list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query skills", err)
	}
	defer rows.Close()

	skills := make([]*skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, s)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating skill rows", err)
	}
	return skills, nil
}

func (r *postgresSkillRepo) FindByID(ctx context.Context, id uuid.UUID) (*skill.Skill, error) {
	query := `SELECT id, name, category, sort_order, created_at, updated_at FROM skills WHERE id = $1`
	return scanSkill(r.db.QueryRow(ctx, query, id))
}

func (r *postgresSkillRepo) Save(ctx context.Context, s *skill.Skill) error {
	query := `
		INSERT INTO skills (id, name, category, sort_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Category, s.Order, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return apperror.NewInternal("failed to save skill", err)
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s *skill.Skill) error {
	query := `
		UPDATE skills SET name = $2, category = $3, sort_order = $4, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, s.ID, s.Name, s.Category, s.Order)
	if err != nil {
		return apperror.NewInternal("failed to update skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return skill.ErrSkillNotFound
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete skill", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return skill.ErrSkillNotFound
	}
	return nil
}
