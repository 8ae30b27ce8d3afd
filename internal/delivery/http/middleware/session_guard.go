package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"skillconnect/internal/delivery/http/session"
	"skillconnect/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Context keys set by the guard for downstream handlers.
const (
	// ContextKeySessionUserID holds the uuid.UUID of the signed-in user.
	ContextKeySessionUserID = "sessionUserID"
	// ContextKeySessionRole holds the entity.Role of the signed-in user.
	ContextKeySessionRole = "sessionRole"
)

// unauthenticatedBody prompts the visitor to sign in.
var unauthenticatedBody = map[string]any{
	"error": "Please sign in to continue",
	"links": map[string]string{
		"login":  "/login",
		"signup": "/signup",
	},
}

// SessionGuard admits requests carrying a valid session/profile record pair.
// Expired or unreadable records are purged before rejecting, so a bad record
// never survives to be re-evaluated. A signed-in user visiting a route for a
// different role is redirected to their own dashboard rather than rejected.
type SessionGuard struct {
	store  session.Store
	logger *slog.Logger

	now func() time.Time
}

// NewSessionGuard creates a new session guard middleware
func NewSessionGuard(store session.Store, logger *slog.Logger) *SessionGuard {
	return &SessionGuard{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Require admits only signed-in users holding one of the given roles. With no
// roles it admits any signed-in user. Unauthenticated requests get the default
// 401 sign-in prompt.
func (g *SessionGuard) Require(roles ...entity.Role) echo.MiddlewareFunc {
	return g.RequireOr(nil, roles...)
}

// RequireOr behaves like Require but runs fallback instead of the default
// 401 response when the visitor is not signed in.
func (g *SessionGuard) RequireOr(fallback echo.HandlerFunc, roles ...entity.Role) echo.MiddlewareFunc {
	required := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userSession, profile, ok := g.currentRecords(c)
			if !ok {
				if fallback != nil {
					return fallback(c)
				}

				return c.JSON(http.StatusUnauthorized, unauthenticatedBody)
			}

			// Wrong role: send the user to their own dashboard, never run
			// the guarded handler.
			if len(required) > 0 && !required.Contains(profile.Role) {
				g.logger.Debug("session role mismatch, redirecting",
					slog.String("role", profile.Role.String()),
					slog.String("path", c.Request().URL.Path),
				)

				return c.Redirect(http.StatusFound, profile.Role.DashboardPath())
			}

			c.Set(ContextKeySessionUserID, userSession.UserID)
			c.Set(ContextKeySessionRole, profile.Role)

			return next(c)
		}
	}
}

// currentRecords loads and validates the session/profile pair. Any failure
// purges both records and reports "not signed in"; parse errors are logged
// but never allowed to admit the request.
func (g *SessionGuard) currentRecords(c echo.Context) (*entity.UserSession, *entity.ProfileRecord, bool) {
	userSession, err := g.store.GetSession(c)
	if err != nil {
		g.rejectRecords(c, "session record unavailable", err)

		return nil, nil, false
	}

	profile, err := g.store.GetProfile(c)
	if err != nil {
		g.rejectRecords(c, "profile record unavailable", err)

		return nil, nil, false
	}

	if userSession.Expired(g.now()) {
		g.rejectRecords(c, "session expired", nil)

		return nil, nil, false
	}

	if !profile.Role.IsValid() {
		g.rejectRecords(c, "profile role invalid", nil)

		return nil, nil, false
	}

	return userSession, profile, true
}

func (g *SessionGuard) rejectRecords(c echo.Context, reason string, err error) {
	attrs := []any{
		slog.String("reason", reason),
		slog.String("path", c.Request().URL.Path),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	g.logger.Debug("session guard rejected request", attrs...)

	g.store.Clear(c)
}
