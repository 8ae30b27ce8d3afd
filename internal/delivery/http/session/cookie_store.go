package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"skillconnect/config"
	"skillconnect/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// Cookie names for the paired records.
const (
	SessionCookieName = "skillconnect-session"
	ProfileCookieName = "skillconnect-profile"
)

// cookieStore implements Store using two HttpOnly cookies. Record values are
// JSON, base64url-encoded to stay cookie-safe.
type cookieStore struct {
	secure bool
}

// NewCookieStore creates a cookie-backed session store. The Secure flag on
// issued cookies follows config so local development over plain HTTP works.
func NewCookieStore(cfg *config.Config) Store {
	secure := true
	if cfg != nil && cfg.Auth != nil {
		secure = cfg.Auth.SecureCookies
	}

	return &cookieStore{secure: secure}
}

// GetSession returns the current session record.
func (s *cookieStore) GetSession(c echo.Context) (*entity.UserSession, error) {
	var session entity.UserSession
	if err := s.readRecord(c, SessionCookieName, &session, ErrSessionNotFound); err != nil {
		return nil, err
	}

	return &session, nil
}

// GetProfile returns the current profile record.
func (s *cookieStore) GetProfile(c echo.Context) (*entity.ProfileRecord, error) {
	var profile entity.ProfileRecord
	if err := s.readRecord(c, ProfileCookieName, &profile, ErrProfileNotFound); err != nil {
		return nil, err
	}

	return &profile, nil
}

// SetSession persists both records, replacing any previous pair.
func (s *cookieStore) SetSession(c echo.Context, session *entity.UserSession, profile *entity.ProfileRecord) error {
	sessionValue, err := encodeRecord(session)
	if err != nil {
		return err
	}
	profileValue, err := encodeRecord(profile)
	if err != nil {
		return err
	}

	maxAge := int(entity.MaxSessionAge / time.Second)
	c.SetCookie(s.newCookie(SessionCookieName, sessionValue, maxAge))
	c.SetCookie(s.newCookie(ProfileCookieName, profileValue, maxAge))

	return nil
}

// Clear removes both records. Safe to call when none exist.
func (s *cookieStore) Clear(c echo.Context) {
	c.SetCookie(s.newCookie(SessionCookieName, "", -1))
	c.SetCookie(s.newCookie(ProfileCookieName, "", -1))
}

func (s *cookieStore) readRecord(c echo.Context, name string, out any, notFound error) error {
	cookie, err := c.Cookie(name)
	if err != nil || cookie.Value == "" {
		return notFound
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return ErrRecordMalformed
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return ErrRecordMalformed
	}

	return nil
}

func (s *cookieStore) newCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	}
}

func encodeRecord(record any) (string, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(raw), nil
}
