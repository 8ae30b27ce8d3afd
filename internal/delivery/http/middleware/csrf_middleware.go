package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"log/slog"
	"net/http"

	"skillconnect/config"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// CSRFCookieName is the cookie half of the double-submit pair.
	CSRFCookieName = "csrf-token"
	// CSRFHeaderName carries the token in both directions: issued on safe
	// responses, required back on unsafe requests.
	CSRFHeaderName = "X-CSRF-Token"

	csrfTokenBytes = 32
)

// csrfRejectionBody is the fixed response for failed validation.
var csrfRejectionBody = map[string]string{"error": "CSRF token validation failed"}

// CSRFMiddleware implements the double-submit-cookie pattern. Safe requests
// receive a fresh random token in both a header and a cookie; unsafe requests
// must echo the cookie value back in the request header. No token state is
// kept server side.
type CSRFMiddleware struct {
	logger *slog.Logger
	secure bool
}

// NewCSRFMiddleware creates a new CSRF middleware
func NewCSRFMiddleware(logger *slog.Logger, cfg *config.Config) *CSRFMiddleware {
	secure := true
	if cfg != nil && cfg.Auth != nil {
		secure = cfg.Auth.SecureCookies
	}

	return &CSRFMiddleware{
		logger: logger,
		secure: secure,
	}
}

// Handle processes CSRF token issuance and validation
func (m *CSRFMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		switch c.Request().Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			if err := m.issueToken(c); err != nil {
				return err
			}

			return next(c)
		default:
			if !m.validToken(c) {
				m.logger.Warn("CSRF token validation failed",
					slog.String("method", c.Request().Method),
					slog.String("path", c.Request().URL.Path),
				)

				return c.JSON(http.StatusForbidden, csrfRejectionBody)
			}

			return next(c)
		}
	}
}

// issueToken attaches a fresh 256-bit token to the response as both a header
// and a cookie.
func (m *CSRFMiddleware) issueToken(c echo.Context) error {
	token, err := GenerateCSRFToken()
	if err != nil {
		return errors.Wrap(err, "failed to generate CSRF token")
	}

	c.Response().Header().Set(CSRFHeaderName, token)
	c.SetCookie(&http.Cookie{
		Name:     CSRFCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	})

	return nil
}

// validToken reports whether the request header token matches the cookie
// token. Both must be present and equal.
func (m *CSRFMiddleware) validToken(c echo.Context) bool {
	headerToken := c.Request().Header.Get(CSRFHeaderName)
	if headerToken == "" {
		return false
	}

	cookie, err := c.Cookie(CSRFCookieName)
	if err != nil || cookie.Value == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(headerToken), []byte(cookie.Value)) == 1
}

// GenerateCSRFToken returns a hex-encoded 256-bit random token.
func GenerateCSRFToken() (string, error) {
	buf := make([]byte, csrfTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
