package service

import (
	"context"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/repository"
)

// ProjectService handles project-related business logic
type ProjectService struct {
	store repository.ProjectStore
}

// NewProjectService creates a new project service
func NewProjectService(store repository.ProjectStore) *ProjectService {
	return &ProjectService{store: store}
}

// List returns all projects, newest first
func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.List(ctx)
}

// Get returns one project or domain.ErrNotFound
func (s *ProjectService) Get(ctx context.Context, id int64) (*domain.Project, error) {
	return s.store.Get(ctx, id)
}

// Create builds a project through apply and persists it. apply fills and validates
// the fields; its error is returned unchanged and nothing is stored.
func (s *ProjectService) Create(ctx context.Context, apply func(*domain.Project) error) (*domain.Project, error) {
	p := &domain.Project{}
	if err := apply(p); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Update loads project id, lets apply modify it and writes it back.
// The id and created_at of the stored record are preserved.
func (s *ProjectService) Update(ctx context.Context, id int64, apply func(*domain.Project) error) (*domain.Project, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	createdAt := p.CreatedAt
	if err := apply(p); err != nil {
		return nil, err
	}
	p.ID, p.CreatedAt = id, createdAt
	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete removes a project. A second delete of the same id reports domain.ErrNotFound.
func (s *ProjectService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
