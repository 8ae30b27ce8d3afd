package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillconnect/config"
	"skillconnect/internal/delivery/http/session"
	"skillconnect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type guardFixture struct {
	echo    *echo.Echo
	guard   *SessionGuard
	now     time.Time
	handled *int
}

func newGuardFixture(t *testing.T, roles ...entity.Role) *guardFixture {
	t.Helper()

	store := session.NewCookieStore(&config.Config{Auth: &config.AuthConfig{SecureCookies: true}})
	guard := NewSessionGuard(store, newDiscardLogger())

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	guard.now = func() time.Time { return now }

	handled := 0
	e := echo.New()
	e.GET("/seeker/dashboard", func(c echo.Context) error {
		handled++

		return c.NoContent(http.StatusOK)
	}, guard.Require(roles...))

	return &guardFixture{echo: e, guard: guard, now: now, handled: &handled}
}

func encodeGuardRecord(t *testing.T, record any) string {
	t.Helper()

	raw, err := json.Marshal(record)
	require.NoError(t, err)

	return base64.RawURLEncoding.EncodeToString(raw)
}

func guardRequest(t *testing.T, f *guardFixture, userSession *entity.UserSession, profile *entity.ProfileRecord) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/seeker/dashboard", nil)
	if userSession != nil {
		req.AddCookie(&http.Cookie{Name: session.SessionCookieName, Value: encodeGuardRecord(t, userSession)})
	}
	if profile != nil {
		req.AddCookie(&http.Cookie{Name: session.ProfileCookieName, Value: encodeGuardRecord(t, profile)})
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func validRecords(now time.Time, role entity.Role) (*entity.UserSession, *entity.ProfileRecord) {
	userID := uuid.New()
	userSession := &entity.UserSession{
		UserID:    userID,
		Email:     "user@example.com",
		Role:      role,
		LoginTime: now.Add(-1 * time.Hour),
	}
	profile := &entity.ProfileRecord{
		ID:    userID,
		Email: "user@example.com",
		Role:  role,
	}

	return userSession, profile
}

func TestSessionGuard_AdmitsMatchingRole(t *testing.T) {
	f := newGuardFixture(t, entity.RoleSeeker)

	userSession, profile := validRecords(f.now, entity.RoleSeeker)
	rec := guardRequest(t, f, userSession, profile)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, *f.handled)
}

func TestSessionGuard_AdmitsAnySignedInWithoutRoles(t *testing.T) {
	f := newGuardFixture(t)

	userSession, profile := validRecords(f.now, entity.RoleEmployer)
	rec := guardRequest(t, f, userSession, profile)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionGuard_MissingRecordsRejected(t *testing.T) {
	tests := []struct {
		name        string
		withSession bool
		withProfile bool
	}{
		{"no records", false, false},
		{"session only", true, false},
		{"profile only", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGuardFixture(t, entity.RoleSeeker)

			userSession, profile := validRecords(f.now, entity.RoleSeeker)
			if !tt.withSession {
				userSession = nil
			}
			if !tt.withProfile {
				profile = nil
			}
			rec := guardRequest(t, f, userSession, profile)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Please sign in to continue")
			assert.Contains(t, rec.Body.String(), "/login")
			assert.Contains(t, rec.Body.String(), "/signup")
			assert.Zero(t, *f.handled)
		})
	}
}

func TestSessionGuard_ExpiredSessionPurged(t *testing.T) {
	f := newGuardFixture(t, entity.RoleSeeker)

	userSession, profile := validRecords(f.now, entity.RoleSeeker)
	userSession.LoginTime = f.now.Add(-25 * time.Hour)
	rec := guardRequest(t, f, userSession, profile)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, *f.handled)

	// Both records are cleared so the stale pair cannot be replayed.
	res := http.Response{Header: rec.Header()}
	cleared := 0
	for _, cookie := range res.Cookies() {
		if cookie.Name == session.SessionCookieName || cookie.Name == session.ProfileCookieName {
			assert.Equal(t, -1, cookie.MaxAge)
			cleared++
		}
	}
	assert.Equal(t, 2, cleared)
}

func TestSessionGuard_ExactlyAtMaxAgeIsExpired(t *testing.T) {
	f := newGuardFixture(t, entity.RoleSeeker)

	userSession, profile := validRecords(f.now, entity.RoleSeeker)
	userSession.LoginTime = f.now.Add(-entity.MaxSessionAge)
	rec := guardRequest(t, f, userSession, profile)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionGuard_RoleMismatchRedirectsToOwnDashboard(t *testing.T) {
	tests := []struct {
		name         string
		role         entity.Role
		wantLocation string
	}{
		{"employer visiting seeker route", entity.RoleEmployer, entity.EmployerDashboardPath},
		{"admin visiting seeker route", entity.RoleAdmin, entity.AdminDashboardPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGuardFixture(t, entity.RoleSeeker)

			userSession, profile := validRecords(f.now, tt.role)
			rec := guardRequest(t, f, userSession, profile)

			assert.Equal(t, http.StatusFound, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			assert.Zero(t, *f.handled, "guarded handler must not run on role mismatch")
		})
	}
}

func TestSessionGuard_MalformedRecordFailsClosed(t *testing.T) {
	f := newGuardFixture(t, entity.RoleSeeker)

	req := httptest.NewRequest(http.MethodGet, "/seeker/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: session.SessionCookieName, Value: "not-a-record"})
	_, profile := validRecords(f.now, entity.RoleSeeker)
	req.AddCookie(&http.Cookie{Name: session.ProfileCookieName, Value: encodeGuardRecord(t, profile)})
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Zero(t, *f.handled)
}

func TestSessionGuard_InvalidRoleRejected(t *testing.T) {
	f := newGuardFixture(t, entity.RoleSeeker)

	userSession, profile := validRecords(f.now, entity.RoleSeeker)
	profile.Role = entity.Role("superuser")
	rec := guardRequest(t, f, userSession, profile)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionGuard_FallbackHandler(t *testing.T) {
	store := session.NewCookieStore(&config.Config{Auth: &config.AuthConfig{SecureCookies: true}})
	guard := NewSessionGuard(store, newDiscardLogger())

	e := echo.New()
	e.GET("/jobs", func(c echo.Context) error {
		return c.String(http.StatusOK, "signed in")
	}, guard.RequireOr(func(c echo.Context) error {
		return c.String(http.StatusOK, "anonymous view")
	}))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/jobs", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "anonymous view", rec.Body.String())
}
