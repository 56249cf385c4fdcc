package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func healthRequest(t *testing.T, ping Pinger, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	NewHealthHandler("test-service", "1.0.0", ping).RegisterRoutes(router)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func TestHealthCheck(t *testing.T) {
	cases := []struct {
		name  string
		ping  Pinger
		store string
	}{
		{"no store", nil, "disabled"},
		{"store up", func(context.Context) error { return nil }, "up"},
		{"store down", func(context.Context) error { return errors.New("refused") }, "down"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, path := range []string{"/health", "/healthz"} {
				rr := healthRequest(t, tc.ping, http.MethodGet, path)
				require.Equal(t, http.StatusOK, rr.Code)

				var response HealthResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &response))
				assert.Equal(t, "healthy", response.Status)
				assert.Equal(t, "test-service", response.Service)
				assert.Equal(t, "1.0.0", response.Version)
				assert.Equal(t, tc.store, response.Store)
			}
		})
	}
}

func TestHealthCheckMethodNotAllowed(t *testing.T) {
	rr := healthRequest(t, nil, http.MethodPost, "/health")
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}

func TestAPIRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	trusted, err := ParseProxies([]string{"10.0.0.0/8"})
	require.NoError(t, err)
	router := gin.New()
	router.GET("/api/", NewAPIRoot(trusted))

	get := func(remote, proto string) string {
		req := httptest.NewRequest(http.MethodGet, "/api/", nil)
		req.Host = "portfolio.test"
		req.RemoteAddr = remote
		if proto != "" {
			req.Header.Set("X-Forwarded-Proto", proto)
		}
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)
		return rr.Body.String()
	}

	t.Run("direct request", func(t *testing.T) {
		assert.JSONEq(t, `{"projects":"http://portfolio.test/api/projects/","experience":"http://portfolio.test/api/experience/"}`,
			get("203.0.113.5:5000", ""))
	})

	t.Run("forwarded proto from untrusted peer is ignored", func(t *testing.T) {
		assert.JSONEq(t, `{"projects":"http://portfolio.test/api/projects/","experience":"http://portfolio.test/api/experience/"}`,
			get("203.0.113.5:5000", "https"))
	})

	t.Run("forwarded proto from trusted proxy", func(t *testing.T) {
		assert.JSONEq(t, `{"projects":"https://portfolio.test/api/projects/","experience":"https://portfolio.test/api/experience/"}`,
			get("10.1.2.3:5000", "https"))
	})

	t.Run("unknown forwarded scheme is ignored", func(t *testing.T) {
		assert.JSONEq(t, `{"projects":"http://portfolio.test/api/projects/","experience":"http://portfolio.test/api/experience/"}`,
			get("10.1.2.3:5000", "javascript"))
	})
}

func TestParseProxies(t *testing.T) {
	prefixes, err := ParseProxies([]string{"10.0.0.0/8", " 192.0.2.7 ", "", "2001:db8::/32"})
	require.NoError(t, err)
	require.Len(t, prefixes, 3)
	assert.Equal(t, "10.0.0.0/8", prefixes[0].String())
	assert.Equal(t, "192.0.2.7/32", prefixes[1].String())
	assert.Equal(t, "2001:db8::/32", prefixes[2].String())

	_, err = ParseProxies([]string{"not-an-ip"})
	assert.Error(t, err)

	none, err := ParseProxies(nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}
