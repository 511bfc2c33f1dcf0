package persistence

import (
	"context"
	"errors"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushpakoirala/portfolio-api/internal/domain/message"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

type postgresMessageRepo struct {
	db *pgxpool.Pool
}

func NewPostgresMessageRepo(db *pgxpool.Pool) message.Repository {
	return &postgresMessageRepo{db: db}
}

func scanMessage(row pgx.Row) (*message.Message, error) {
	m := &message.Message{}
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Body, &m.Status, &m.CreatedAt, &m.ReadAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, message.ErrMessageNotFound
		}
		return nil, apperror.NewInternal("failed to scan message row", err)
	}
	return m, nil
}

func (r *postgresMessageRepo) List(ctx context.Context, status message.Status) ([]*message.Message, error) {
	builder := psql.Select("id, name, email, body, status, created_at, read_at").
		From("messages").
		OrderBy("created_at DESC")
	if status != "" {
		builder = builder.Where(sq.Eq{"status": status})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build message list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query messages", err)
	}
	defer rows.Close()

	messages := make([]*message.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating message rows", err)
	}
	return messages, nil
}

func (r *postgresMessageRepo) FindByID(ctx context.Context, id uuid.UUID) (*message.Message, error) {
	query := `SELECT id, name, email, body, status, created_at, read_at FROM messages WHERE id = $1`
	return scanMessage(r.db.QueryRow(ctx, query, id))
}

func (r *postgresMessageRepo) Save(ctx context.Context, m *message.Message) error {
	query := `
		INSERT INTO messages (id, name, email, body, status, created_at, read_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.db.Exec(ctx, query, m.ID, m.Name, m.Email, m.Body, m.Status, m.CreatedAt, m.ReadAt)
	if err != nil {
		return apperror.NewInternal("failed to save message", err)
	}
	return nil
}

func (r *postgresMessageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status message.Status, readAt *time.Time) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE messages SET status = $2, read_at = $3 WHERE id = $1`, id, status, readAt)
	if err != nil {
		return apperror.NewInternal("failed to update message status", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return message.ErrMessageNotFound
	}
	return nil
}

func (r *postgresMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return apperror.NewInternal("failed to delete message", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return message.ErrMessageNotFound
	}
	return nil
}
