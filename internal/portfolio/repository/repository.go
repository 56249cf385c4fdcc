package repository

import (
	"context"
	"database/sql"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
)

// ProjectStore persists projects. List returns newest first.
type ProjectStore interface {
	List(ctx context.Context) ([]domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error
}

// ExperienceStore persists experience entries. List returns the latest start date first.
type ExperienceStore interface {
	List(ctx context.Context) ([]domain.Experience, error)
	Get(ctx context.Context, id int64) (*domain.Experience, error)
	Create(ctx context.Context, e *domain.Experience) error
	Update(ctx context.Context, e *domain.Experience) error
	Delete(ctx context.Context, id int64) error
}

// Stores groups the per-record stores of one backend.
type Stores struct {
	Projects    ProjectStore
	Experiences ExperienceStore
}

// NewPostgresStores wires both record stores onto one connection pool.
func NewPostgresStores(db *sql.DB) Stores {
	return Stores{
		Projects:    NewProjectRepository(db),
		Experiences: NewExperienceRepository(db),
	}
}
