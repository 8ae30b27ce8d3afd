package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"skillconnect/config"
	"skillconnect/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimit_RejectsBeyondCeiling(t *testing.T) {
	e := echo.New()
	limiter := ratelimit.New(ratelimit.DefaultWindow, 3)
	rl := NewRateLimitMiddleware(limiter, newDiscardLogger())
	e.Use(rl.Handle)
	e.POST("/applications", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/applications", nil)
		req.Header.Set("X-Real-Ip", "203.0.113.7")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code, "request %d should pass", i+1)
	}

	req := httptest.NewRequest(http.MethodPost, "/applications", nil)
	req.Header.Set("X-Real-Ip", "203.0.113.7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error": "Too many requests. Please try again later."}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
}

func TestRateLimit_SeparateClientsUnaffected(t *testing.T) {
	e := echo.New()
	limiter := ratelimit.New(ratelimit.DefaultWindow, 1)
	rl := NewRateLimitMiddleware(limiter, newDiscardLogger())
	e.Use(rl.Handle)
	e.GET("/jobs", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	first := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	first.Header.Set("X-Real-Ip", "203.0.113.7")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, first)
	require.Equal(t, http.StatusOK, rec.Code)

	blocked := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	blocked.Header.Set("X-Real-Ip", "203.0.113.7")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, blocked)
	require.Equal(t, http.StatusTooManyRequests, rec.Code)

	other := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	other.Header.Set("X-Real-Ip", "198.51.100.4")
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, other)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// Rate limiting runs outside CSRF validation, so rejected CSRF attempts still
// consume budget and the limiter answers once the ceiling is hit.
func TestAdmission_RateLimitOutsideCSRF(t *testing.T) {
	e := echo.New()
	limiter := ratelimit.New(ratelimit.DefaultWindow, 5)
	rl := NewRateLimitMiddleware(limiter, newDiscardLogger())
	csrf := NewCSRFMiddleware(newDiscardLogger(), &config.Config{Auth: &config.AuthConfig{SecureCookies: true}})
	e.Use(rl.Handle, csrf.Handle)

	handlerRuns := 0
	e.POST("/jobs", func(c echo.Context) error {
		handlerRuns++

		return c.NoContent(http.StatusCreated)
	})

	// Five CSRF-less posts: all rejected by CSRF, all metered.
	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
		req.Header.Set("X-Real-Ip", "203.0.113.7")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)
	}

	// Budget exhausted: the next attempt is throttled before CSRF runs,
	// even though it carries a valid token pair.
	token, err := GenerateCSRFToken()
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	req.Header.Set("X-Real-Ip", "203.0.113.7")
	req.Header.Set(CSRFHeaderName, token)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Zero(t, handlerRuns, "handler must never run on rejected requests")
}
