package project

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusCompleted  Status = "Completed"
	StatusInProgress Status = "In Progress"
	StatusPlanned    Status = "Planned"
)

type Project struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	ProblemStatement string    `json:"problem_statement"`
	Description      string    `json:"description"`
	Technologies     []string  `json:"technologies"`
	Role             string    `json:"role"`
	Outcome          string    `json:"outcome"`
	Status           Status    `json:"status"`
	Visible          bool      `json:"visible"`
	Order            int       `json:"order"`
	ImageURL         *string   `json:"image_url"`
	ProjectURL       *string   `json:"project_url"`
	GitHubURL        *string   `json:"github_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidStatus   = errors.New("status must be one of Completed, In Progress, Planned")
)

func (p *Project) Validate() error {
	switch p.Status {
	case StatusCompleted, StatusInProgress, StatusPlanned:
		return nil
	}
	return ErrInvalidStatus
}

type Repository interface {
	// List returns every project; ListVisible only those gated for the
	// public page. Both preserve the (order, created_at) sort.
	List(ctx context.Context) ([]*Project, error)
	ListVisible(ctx context.Context) ([]*Project, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	UpdateVisibility(ctx context.Context, id uuid.UUID, visible bool) error
	Delete(ctx context.Context, id uuid.UUID) error
}
