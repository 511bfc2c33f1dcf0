package persistence

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
	"github.com/pushpakoirala/portfolio-api/pkg/apperror"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const projectColumns = "id, title, problem_statement, description, technologies, role, outcome, status, visible, sort_order, image_url, project_url, github_url, created_at, updated_at"

type postgresProjectRepo struct {
	db *pgxpool.Pool
}

func NewPostgresProjectRepo(db *pgxpool.Pool) project.Repository {
	return &postgresProjectRepo{db: db}
}

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.ProblemStatement,
		&p.Description,
		&p.Technologies,
		&p.Role,
		&p.Outcome,
		&p.Status,
		&p.Visible,
		&p.Order,
		&p.ImageURL,
		&p.ProjectURL,
		&p.GitHubURL,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		return nil, apperror.NewInternal("failed to scan project row", err)
	}
	if p.Technologies == nil {
		p.Technologies = []string{}
	}
	return p, nil
}

func scanProjects(rows pgx.Rows) ([]*project.Project, error) {
	defer rows.Close()
	projects := make([]*project.Project, 0)

	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.NewInternal("error iterating project rows", err)
	}
	return projects, nil
}

func (r *postgresProjectRepo) list(ctx context.Context, onlyVisible bool) ([]*project.Project, error) {
	builder := psql.Select(projectColumns).
		From("projects").
		OrderBy("sort_order ASC", "created_at ASC")
	if onlyVisible {
		builder = builder.Where(sq.Eq{"visible": true})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, apperror.NewInternal("failed to build project list query", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperror.NewInternal("failed to query projects", err)
	}

	return scanProjects(rows)
}

func (r *postgresProjectRepo) List(ctx context.Context) ([]*project.Project, error) {
	return r.list(ctx, false)
}

func (r *postgresProjectRepo) ListVisible(ctx context.Context) ([]*project.Project, error) {
	return r.list(ctx, true)
}

func (r *postgresProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`
	row := r.db.QueryRow(ctx, query, id)
	return scanProject(row)
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, title, problem_statement, description, technologies, role,
		                      outcome, status, visible, sort_order, image_url, project_url,
		                      github_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	_, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.ProblemStatement, p.Description, p.Technologies, p.Role,
		p.Outcome, p.Status, p.Visible, p.Order, p.ImageURL, p.ProjectURL,
		p.GitHubURL, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return apperror.NewInternal("failed to save project", err)
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			title = $2, problem_statement = $3, description = $4, technologies = $5,
			role = $6, outcome = $7, status = $8, visible = $9, sort_order = $10,
			image_url = $11, project_url = $12, github_url = $13, updated_at = NOW()
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		p.ID, p.Title, p.ProblemStatement, p.Description, p.Technologies,
		p.Role, p.Outcome, p.Status, p.Visible, p.Order,
		p.ImageURL, p.ProjectURL, p.GitHubURL,
	)
	if err != nil {
		return apperror.NewInternal("failed to update project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

func (r *postgresProjectRepo) UpdateVisibility(ctx context.Context, id uuid.UUID, visible bool) error {
	query := `UPDATE projects SET visible = $2, updated_at = NOW() WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id, visible)
	if err != nil {
		return apperror.NewInternal("failed to update project visibility", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM projects WHERE id = $1`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return apperror.NewInternal("failed to delete project", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}
	return nil
}
