package repository

import (
	"context"
	"fmt"

	"github.com/pjmaster/project-api/internal/projects/domain"
	"github.com/pjmaster/project-api/internal/storage/postgres"
)

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	db postgres.Querier
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db postgres.Querier) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// List returns every project with its lookup names and details.
func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.Query(ctx, projectQuery(""))
	if err != nil {
		return nil, err
	}

	out := make([]domain.Project, 0, len(rows))
	for _, row := range rows {
		p, err := MapRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// Get returns one project or domain.ErrNotFound.
func (r *ProjectRepository) Get(ctx context.Context, pjCd string) (*domain.Project, error) {
	rows, err := r.db.Query(ctx, projectQuery("p.pjCd = $1"), pjCd)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNotFound
	}

	p, err := MapRow(rows[0])
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts the projects row only; detail tables are written elsewhere.
// Omitted fields go to the database as NULL.
func (r *ProjectRepository) Create(ctx context.Context, in domain.CreateInput) error {
	_, err := r.db.Exec(ctx, insertProject,
		nullable(in.PjCd), nullable(in.PjName), nullable(in.BuCd), nullable(in.Year),
		nullable(in.PlanSecCd), nullable(in.ConstTypeCd), nullable(in.RegionCd),
		nullable(in.CustomerCd), nullable(in.StartDate), nullable(in.TotalMM),
		nullable(in.TotalConst),
	)
	if err != nil {
		return fmt.Errorf("create project %q: %w", deref(in.PjCd), err)
	}
	return nil
}

// Update rewrites pjName, buCd and year. An unknown pjCd is
// domain.ErrNotFound.
func (r *ProjectRepository) Update(ctx context.Context, pjCd string, in domain.UpdateInput) error {
	n, err := r.db.Exec(ctx, updateProject, in.PjName, in.BuCd, in.Year, pjCd)
	if err != nil {
		return fmt.Errorf("update project %s: %w", pjCd, err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// nullable turns a nil pointer into an untyped nil argument. Strings stay
// plain strings so pgx sends them in text format whatever the column type.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
