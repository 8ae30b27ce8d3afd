package session

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skillconnect/config"
	"skillconnect/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() Store {
	return NewCookieStore(&config.Config{Auth: &config.AuthConfig{SecureCookies: true}})
}

func newTestContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func responseCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	res := http.Response{Header: rec.Header()}
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}

	return nil
}

func TestCookieStore_SetAndGet(t *testing.T) {
	store := newTestStore()
	c, rec := newTestContext(t)

	userID := uuid.New()
	session := &entity.UserSession{
		UserID:    userID,
		Email:     "wanjiku@example.com",
		Role:      entity.RoleSeeker,
		LoginTime: time.Now().UTC().Truncate(time.Second),
	}
	profile := &entity.ProfileRecord{
		ID:        userID,
		FirstName: "Wanjiku",
		LastName:  "Kamau",
		Email:     "wanjiku@example.com",
		Role:      entity.RoleSeeker,
		Skills:    []string{"plumbing"},
	}

	require.NoError(t, store.SetSession(c, session, profile))

	sessionCookie := responseCookie(t, rec, SessionCookieName)
	require.NotNil(t, sessionCookie)
	assert.True(t, sessionCookie.HttpOnly)
	assert.True(t, sessionCookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, sessionCookie.SameSite)
	assert.Equal(t, "/", sessionCookie.Path)

	profileCookie := responseCookie(t, rec, ProfileCookieName)
	require.NotNil(t, profileCookie)

	// Read the records back through a fresh request carrying the cookies.
	readCtx, _ := newTestContext(t)
	readCtx.Request().AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionCookie.Value})
	readCtx.Request().AddCookie(&http.Cookie{Name: ProfileCookieName, Value: profileCookie.Value})

	gotSession, err := store.GetSession(readCtx)
	require.NoError(t, err)
	assert.Equal(t, session.UserID, gotSession.UserID)
	assert.Equal(t, session.Role, gotSession.Role)
	assert.True(t, session.LoginTime.Equal(gotSession.LoginTime))

	gotProfile, err := store.GetProfile(readCtx)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, gotProfile.ID)
	assert.Equal(t, profile.Role, gotProfile.Role)
	assert.Equal(t, profile.Skills, gotProfile.Skills)
}

func TestCookieStore_GetSession_Missing(t *testing.T) {
	store := newTestStore()
	c, _ := newTestContext(t)

	_, err := store.GetSession(c)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.GetProfile(c)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestCookieStore_GetSession_Malformed(t *testing.T) {
	store := newTestStore()

	tests := []struct {
		name  string
		value string
	}{
		{"not base64", "%%%not-base64%%%"},
		{"not json", base64.RawURLEncoding.EncodeToString([]byte("not json"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestContext(t)
			c.Request().AddCookie(&http.Cookie{Name: SessionCookieName, Value: tt.value})

			_, err := store.GetSession(c)
			assert.ErrorIs(t, err, ErrRecordMalformed)
		})
	}
}

func TestCookieStore_Clear(t *testing.T) {
	store := newTestStore()
	c, rec := newTestContext(t)

	store.Clear(c)

	sessionCookie := responseCookie(t, rec, SessionCookieName)
	require.NotNil(t, sessionCookie)
	assert.Equal(t, -1, sessionCookie.MaxAge)
	assert.Empty(t, sessionCookie.Value)

	profileCookie := responseCookie(t, rec, ProfileCookieName)
	require.NotNil(t, profileCookie)
	assert.Equal(t, -1, profileCookie.MaxAge)
}
