package summary

import (
	"bytes"
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-backend/portfolio-api/internal/api/http/middleware"
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
)

type ProjectLister interface {
	List(ctx context.Context) ([]domain.Project, error)
}

type ExperienceLister interface {
	List(ctx context.Context) ([]domain.Experience, error)
}

// Handler serves the HTML summary page.
type Handler struct {
	projects    ProjectLister
	experiences ExperienceLister
}

func NewHandler(projects ProjectLister, experiences ExperienceLister) *Handler {
	return &Handler{projects: projects, experiences: experiences}
}

// Build loads every record and renders the page into buf.
func (h *Handler) Build(ctx context.Context, buf *bytes.Buffer) error {
	projects, err := h.projects.List(ctx)
	if err != nil {
		return err
	}
	experiences, err := h.experiences.List(ctx)
	if err != nil {
		return err
	}
	return Render(buf, projects, experiences)
}

func (h *Handler) Home(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.Build(c.Request.Context(), &buf); err != nil {
		log.Printf("[summary] id=%s err=%v", middleware.GetRequestID(c.Request.Context()), err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Home)
}
