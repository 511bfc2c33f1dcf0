package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushpakoirala/portfolio-api/internal/domain/admin"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type postgresAdminRepo struct {
	db *pgxpool.Pool
}

func NewPostgresAdminRepo(db *pgxpool.Pool) admin.Repository {
	return &postgresAdminRepo{db: db}
}

func (r *postgresAdminRepo) FindByUsername(ctx context.Context, username string) (*admin.Admin, error) {
	query := `
		SELECT id, username, email, password_hash, created_at, updated_at
		FROM admins
		WHERE username = $1
	`
	a := &admin.Admin{}
	err := r.db.QueryRow(ctx, query, username).Scan(
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, admin.ErrAdminNotFound
		}
		return nil, apperror.NewInternal("failed to query admin", err)
	}

	return a, nil
}

func (r *postgresAdminRepo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	query := `UPDATE admins SET password_hash = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return apperror.NewInternal("failed to update admin password", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return admin.ErrAdminNotFound
	}
	return nil
}

func (r *postgresAdminRepo) UpdateUsername(ctx context.Context, id uuid.UUID, username string) error {
	query := `UPDATE admins SET username = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, username)
	if err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok && pgErr.Code == "23505" {
			return apperror.NewConflict("admin", "username", username)
		}
		return apperror.NewInternal("failed to update admin username", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return admin.ErrAdminNotFound
	}
	return nil
}

func (r *postgresAdminRepo) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	query := `UPDATE admins SET email = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, email)
	if err != nil {
		return apperror.NewInternal("failed to update admin email", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return admin.ErrAdminNotFound
	}
	return nil
}
