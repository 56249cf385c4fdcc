package summary

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portfolio-backend/portfolio-api/internal/portfolio/domain"
)

type fakeProjects struct {
	items []domain.Project
	err   error
}

func (f fakeProjects) List(context.Context) ([]domain.Project, error) { return f.items, f.err }

type fakeExperiences struct {
	items []domain.Experience
	err   error
}

func (f fakeExperiences) List(context.Context) ([]domain.Experience, error) { return f.items, f.err }

func serve(h *Handler) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	return rr
}

func TestHome(t *testing.T) {
	h := NewHandler(
		fakeProjects{items: []domain.Project{{ID: 1, Title: "Demo", Description: "A sample project"}}},
		fakeExperiences{items: []domain.Experience{{ID: 1, Position: "Dev", Company: "Acme", StartDate: domain.MustDate("2020-01-01")}}},
	)

	rr := serve(h)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.HasPrefix(rr.Header().Get("Content-Type"), "text/html"))
	assert.Equal(t, 1, strings.Count(rr.Body.String(), "<tr class='project'>"))
	assert.Equal(t, 1, strings.Count(rr.Body.String(), "<tr class='experience'>"))
	assert.Contains(t, rr.Body.String(), "Actualidad")
}

func TestHome_StoreFailure(t *testing.T) {
	h := NewHandler(fakeProjects{}, fakeExperiences{err: errors.New("down")})

	rr := serve(h)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
