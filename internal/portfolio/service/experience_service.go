package service

import (
	"context"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/repository"
)

// ExperienceService handles experience-related business logic
type ExperienceService struct {
	store repository.ExperienceStore
}

func NewExperienceService(store repository.ExperienceStore) *ExperienceService {
	return &ExperienceService{store: store}
}

// List returns all entries, latest start date first
func (s *ExperienceService) List(ctx context.Context) ([]domain.Experience, error) {
	return s.store.List(ctx)
}

func (s *ExperienceService) Get(ctx context.Context, id int64) (*domain.Experience, error) {
	return s.store.Get(ctx, id)
}

func (s *ExperienceService) Create(ctx context.Context, apply func(*domain.Experience) error) (*domain.Experience, error) {
	e := &domain.Experience{}
	if err := apply(e); err != nil {
		return nil, err
	}
	if err := s.store.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExperienceService) Update(ctx context.Context, id int64, apply func(*domain.Experience) error) (*domain.Experience, error) {
	e, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(e); err != nil {
		return nil, err
	}
	e.ID = id
	if err := s.store.Update(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *ExperienceService) Delete(ctx context.Context, id int64) error {
	return s.store.Delete(ctx, id)
}
