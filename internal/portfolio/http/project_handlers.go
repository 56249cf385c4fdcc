package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/serializers"
)

const projectNotFound = "project not found"

func (h *Handler) listProjects(c *gin.Context) {
	items, err := h.projects.List(c.Request.Context())
	if err != nil {
		fail(c, err, projectNotFound)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) createProject(c *gin.Context) {
	req, err := decodeProject(c)
	if err != nil {
		fail(c, err, projectNotFound)
		return
	}

	p, err := h.projects.Create(c.Request.Context(), func(p *domain.Project) error {
		return req.Apply(p, false)
	})
	if err != nil {
		fail(c, err, projectNotFound)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) getProject(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err, projectNotFound)
		return
	}
	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, projectNotFound)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) replaceProject(c *gin.Context) { h.updateProject(c, false) }
func (h *Handler) patchProject(c *gin.Context)   { h.updateProject(c, true) }

func (h *Handler) updateProject(c *gin.Context, partial bool) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err, projectNotFound)
		return
	}
	req, err := decodeProject(c)
	if err != nil {
		fail(c, err, projectNotFound)
		return
	}

	p, err := h.projects.Update(c.Request.Context(), id, func(p *domain.Project) error {
		return req.Apply(p, partial)
	})
	if err != nil {
		fail(c, err, projectNotFound)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err, projectNotFound)
		return
	}
	if err := h.projects.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, projectNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func decodeProject(c *gin.Context) (*serializers.ProjectRequest, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, serializers.ErrMalformedBody
	}
	return serializers.DecodeProject(body)
}
