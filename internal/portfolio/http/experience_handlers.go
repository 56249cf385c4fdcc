package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/serializers"
)

const experienceNotFound = "experience not found"

func (h *Handler) listExperience(c *gin.Context) {
	items, err := h.experiences.List(c.Request.Context())
	if err != nil {
		fail(c, err, experienceNotFound)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *Handler) createExperience(c *gin.Context) {
	req, err := decodeExperience(c)
	if err != nil {
		fail(c, err, experienceNotFound)
		return
	}

	e, err := h.experiences.Create(c.Request.Context(), func(e *domain.Experience) error {
		return req.Apply(e, false)
	})
	if err != nil {
		fail(c, err, experienceNotFound)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) getExperience(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err, experienceNotFound)
		return
	}
	e, err := h.experiences.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err, experienceNotFound)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) replaceExperience(c *gin.Context) { h.updateExperience(c, false) }
func (h *Handler) patchExperience(c *gin.Context)   { h.updateExperience(c, true) }

func (h *Handler) updateExperience(c *gin.Context, partial bool) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err, experienceNotFound)
		return
	}
	req, err := decodeExperience(c)
	if err != nil {
		fail(c, err, experienceNotFound)
		return
	}

	e, err := h.experiences.Update(c.Request.Context(), id, func(e *domain.Experience) error {
		return req.Apply(e, partial)
	})
	if err != nil {
		fail(c, err, experienceNotFound)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) deleteExperience(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		fail(c, err, experienceNotFound)
		return
	}
	if err := h.experiences.Delete(c.Request.Context(), id); err != nil {
		fail(c, err, experienceNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func decodeExperience(c *gin.Context) (*serializers.ExperienceRequest, error) {
	body, err := c.GetRawData()
	if err != nil {
		return nil, serializers.ErrMalformedBody
	}
	return serializers.DecodeExperience(body)
}
