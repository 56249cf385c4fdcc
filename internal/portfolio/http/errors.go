package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/portfolio-backend/portfolio-api/internal/api/http/middleware"
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
	"github.com/portfolio-backend/portfolio-api/internal/portfolio/serializers"
)

// fail maps service errors onto the HTTP error taxonomy.
func fail(c *gin.Context, err error, notFound string) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, serializers.ErrMalformedBody):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, validationResponse{Error: "validation failed", Fields: verr.Fields})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": notFound})
	default:
		log.Printf("[http] id=%s method=%s path=%s err=%v",
			middleware.GetRequestID(c.Request.Context()), c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// pathID parses the :id segment. Anything that is not a positive integer cannot
// name a record, so it is reported as not found.
func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}
