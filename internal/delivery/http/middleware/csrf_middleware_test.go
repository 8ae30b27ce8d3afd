package middleware

import (
	"encoding/hex"
	"net/http"
	"net/http/httptest"
	"testing"

	"skillconnect/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCSRFEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	csrf := NewCSRFMiddleware(newDiscardLogger(), &config.Config{Auth: &config.AuthConfig{SecureCookies: true}})
	e.Use(csrf.Handle)
	e.GET("/jobs", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	e.POST("/jobs", func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	return e
}

func findCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	res := http.Response{Header: rec.Header()}
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestCSRF_SafeRequestIssuesToken(t *testing.T) {
	e := newCSRFEcho(t)

	req := httptest.NewRequest(http.MethodGet, "/jobs", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	headerToken := rec.Header().Get(CSRFHeaderName)
	require.NotEmpty(t, headerToken)

	// 256 bits, hex-encoded
	raw, err := hex.DecodeString(headerToken)
	require.NoError(t, err)
	assert.Len(t, raw, 32)

	cookie := findCookie(rec, CSRFCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, headerToken, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
}

func TestCSRF_EachSafeRequestGetsFreshToken(t *testing.T) {
	e := newCSRFEcho(t)

	tokens := make(map[string]struct{})
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))
		tokens[rec.Header().Get(CSRFHeaderName)] = struct{}{}
	}

	assert.Len(t, tokens, 3)
}

func TestCSRF_UnsafeRequestWithMatchingTokenPasses(t *testing.T) {
	e := newCSRFEcho(t)

	token, err := GenerateCSRFToken()
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
	req.Header.Set(CSRFHeaderName, token)
	req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: token})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestCSRF_UnsafeRequestRejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		cookie string
	}{
		{"missing both", "", ""},
		{"missing header", "", "sometoken"},
		{"missing cookie", "sometoken", ""},
		{"mismatched tokens", "tokenA", "tokenB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newCSRFEcho(t)

			req := httptest.NewRequest(http.MethodPost, "/jobs", nil)
			if tt.header != "" {
				req.Header.Set(CSRFHeaderName, tt.header)
			}
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: CSRFCookieName, Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.JSONEq(t, `{"error": "CSRF token validation failed"}`, rec.Body.String())
		})
	}
}
