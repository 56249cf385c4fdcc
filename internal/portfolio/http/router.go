package http

import "github.com/gin-gonic/gin"

// Register attaches the record routes to rg. Collection and item paths end in a
// slash; gin redirects the unslashed forms.
func (h *Handler) Register(rg gin.IRouter) {
	projects := rg.Group("/projects")
	projects.GET("/", h.listProjects)
	projects.POST("/", h.createProject)
	projects.GET("/:id/", h.getProject)
	projects.PUT("/:id/", h.replaceProject)
	projects.PATCH("/:id/", h.patchProject)
	projects.DELETE("/:id/", h.deleteProject)

	experience := rg.Group("/experience")
	experience.GET("/", h.listExperience)
	experience.POST("/", h.createExperience)
	experience.GET("/:id/", h.getExperience)
	experience.PUT("/:id/", h.replaceExperience)
	experience.PATCH("/:id/", h.patchExperience)
	experience.DELETE("/:id/", h.deleteExperience)
}
