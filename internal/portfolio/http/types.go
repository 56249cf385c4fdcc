package http

import (
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/service"
)

// Handler bundles the dependencies for the project and experience endpoints.
type Handler struct {
	projects    *service.ProjectService
	experiences *service.ExperienceService
}

func New(projects *service.ProjectService, experiences *service.ExperienceService) *Handler {
	return &Handler{projects: projects, experiences: experiences}
}

// validationResponse is the 400 body for rejected writes.
type validationResponse struct {
	Error  string              `json:"error"`
	Fields map[string][]string `json:"fields"`
}
