package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	ok := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"request_id": GetRequestID(c.Request.Context())})
	}
	r.GET("/x", ok)
	r.POST("/x", ok)
	r.PATCH("/x", ok)
	r.DELETE("/x", ok)
	return r
}

func TestRequestIDMiddleware(t *testing.T) {
	r := newEngine(RequestIDMiddleware())

	t.Run("generates an id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))

		rid := rr.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(rid)
		require.NoError(t, err)
		assert.JSONEq(t, `{"request_id":"`+rid+`"}`, rr.Body.String())
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)

		assert.Equal(t, "abc-123", rr.Header().Get(RequestIDHeader))
	})
}

func TestRequireJSON(t *testing.T) {
	r := newEngine(RequireJSON())

	cases := []struct {
		method      string
		contentType string
		want        int
	}{
		{http.MethodGet, "", http.StatusOK},
		{http.MethodDelete, "", http.StatusOK},
		{http.MethodPost, "application/json", http.StatusOK},
		{http.MethodPost, "application/json; charset=utf-8", http.StatusOK},
		{http.MethodPost, "application/x-www-form-urlencoded", http.StatusUnsupportedMediaType},
		{http.MethodPost, "text/plain", http.StatusUnsupportedMediaType},
		{http.MethodPatch, "", http.StatusUnsupportedMediaType},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(tc.method, "/x", strings.NewReader(`{}`))
		if tc.contentType != "" {
			req.Header.Set("Content-Type", tc.contentType)
		}
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, tc.want, rr.Code, "%s %q", tc.method, tc.contentType)
	}
}

func TestRateLimiter(t *testing.T) {
	t.Run("disabled when rps is zero", func(t *testing.T) {
		assert.Nil(t, NewRateLimiter(0, 5))

		var l *RateLimiter
		r := newEngine(l.Middleware())
		for i := 0; i < 20; i++ {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/x", nil))
			require.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("limits writes per client", func(t *testing.T) {
		r := newEngine(NewRateLimiter(0.001, 2).Middleware())

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/x", nil))
			codes = append(codes, rr.Code)
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

		other := httptest.NewRequest(http.MethodPost, "/x", nil)
		other.RemoteAddr = "203.0.113.9:4000"
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, other)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("reads are never limited", func(t *testing.T) {
		r := newEngine(NewRateLimiter(0.001, 1).Middleware())
		for i := 0; i < 5; i++ {
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/x", nil))
			require.Equal(t, http.StatusOK, rr.Code)
		}
	})

	t.Run("idle clients are evicted", func(t *testing.T) {
		l := NewRateLimiter(0.001, 1)
		now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
		l.now = func() time.Time { return now }

		first := l.limiter("198.51.100.1")
		require.True(t, first.Allow())
		l.limiter("198.51.100.2")
		require.Len(t, l.clients, 2)

		now = now.Add(l.idleTTL / 2)
		assert.Same(t, first, l.limiter("198.51.100.1"))

		now = now.Add(l.idleTTL)
		fresh := l.limiter("198.51.100.1")
		assert.Len(t, l.clients, 1)
		assert.NotSame(t, first, fresh)
		assert.True(t, fresh.Allow())
	})
}
