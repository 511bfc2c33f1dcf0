package persistence

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushpakoirala/portfolio-api/internal/domain/profile"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

// The profile table holds exactly one row, pinned to id = 1 by a check
// constraint. The seeder guarantees it exists before the server starts.
type postgresProfileRepo struct {
	db *pgxpool.Pool
}

func NewPostgresProfileRepo(db *pgxpool.Pool) profile.Repository {
	return &postgresProfileRepo{db: db}
}

func (r *postgresProfileRepo) Get(ctx context.Context) (*profile.Profile, error) {
	query := `
		SELECT name, title, headline, about, email, phone, location,
		       linkedin, github, profile_photo, resume_url, updated_at
		FROM profile
		WHERE id = 1
	`
	p := &profile.Profile{}
	err := r.db.QueryRow(ctx, query).Scan(
		&p.Name,
		&p.Title,
		&p.Headline,
		&p.About,
		&p.Email,
		&p.Phone,
		&p.Location,
		&p.LinkedIn,
		&p.GitHub,
		&p.ProfilePhoto,
		&p.ResumeURL,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFound("profile", "singleton")
		}
		return nil, apperror.NewInternal("failed to query profile", err)
	}

	return p, nil
}

func (r *postgresProfileRepo) Upsert(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profile (id, name, title, headline, about, email, phone, location,
		                     linkedin, github, profile_photo, resume_url, updated_at)
		VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (id) DO UPDATE SET
			name = $1, title = $2, headline = $3, about = $4, email = $5,
			phone = $6, location = $7, linkedin = $8, github = $9,
			profile_photo = $10, resume_url = $11, updated_at = $12
	`
	_, err := r.db.Exec(ctx, query,
		p.Name, p.Title, p.Headline, p.About, p.Email, p.Phone, p.Location,
		p.LinkedIn, p.GitHub, p.ProfilePhoto, p.ResumeURL, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to upsert profile", err)
	}
	return nil
}
