// Package session persists the login session and profile records on the
// client and reads them back for guard checks. Every access to the records
// goes through the Store interface so the storage mechanism stays a single
// seam.
package session

import (
	"skillconnect/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Record lookup errors. Guard middleware treats all of them as "not signed in".
var (
	// ErrSessionNotFound is returned when no session record is present.
	ErrSessionNotFound = errors.New("session record not found")
	// ErrProfileNotFound is returned when no profile record is present.
	ErrProfileNotFound = errors.New("profile record not found")
	// ErrRecordMalformed is returned when a stored record cannot be decoded.
	ErrRecordMalformed = errors.New("stored record is malformed")
)

// Store reads and writes the paired session and profile records.
type Store interface {
	// GetSession returns the current session record.
	GetSession(c echo.Context) (*entity.UserSession, error)

	// GetProfile returns the current profile record.
	GetProfile(c echo.Context) (*entity.ProfileRecord, error)

	// SetSession persists both records, replacing any previous pair.
	SetSession(c echo.Context, session *entity.UserSession, profile *entity.ProfileRecord) error

	// Clear removes both records. Safe to call when none exist.
	Clear(c echo.Context)
}
