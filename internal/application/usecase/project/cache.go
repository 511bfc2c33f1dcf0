package project

import (
	"context"

	"github.com/pushpakoirala/portfolio-api/internal/domain/project"
)

// PublicCache fronts the public visible-projects listing. The persistence
// layer provides a Redis-backed implementation.
type PublicCache interface {
	GetVisibleProjects(ctx context.Context) ([]*project.Project, bool)
	SetVisibleProjects(ctx context.Context, projects []*project.Project)
	InvalidateProjects(ctx context.Context)
}
