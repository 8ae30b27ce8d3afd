package entity

import (
	"time"

	"github.com/google/uuid"
)

// MaxSessionAge is how long a browser session stays valid after login.
// Once exceeded, the session and its paired profile record are purged and the
// user must sign in again.
const MaxSessionAge = 24 * time.Hour

// UserSession is the ephemeral proof of a current login, persisted on the
// client and read back by the session guard on every protected request.
// The paired ProfileRecord is the durable identity; this record only proves
// that a login happened recently enough.
type UserSession struct {
	UserID    uuid.UUID `json:"userId"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	LoginTime time.Time `json:"loginTime"`
}

// Age returns how long ago the session was established.
func (s *UserSession) Age(now time.Time) time.Duration {
	return now.Sub(s.LoginTime)
}

// Expired reports whether the session has outlived MaxSessionAge.
func (s *UserSession) Expired(now time.Time) bool {
	return s.Age(now) >= MaxSessionAge
}

// ProfileRecord mirrors the stored profile row for guard checks and dashboard
// rendering without a database round trip. One ProfileRecord pairs with one
// UserSession, matched by UserID.
type ProfileRecord struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`

	// Seeker-specific fields. Empty for other roles.
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears int      `json:"experienceYears,omitempty"`

	// Employer-specific fields. Empty for other roles.
	CompanyName string `json:"companyName,omitempty"`
	CompanySize string `json:"companySize,omitempty"`
	Industry    string `json:"industry,omitempty"`
}

// NewProfileRecord builds the client-persisted profile record from a user entity.
func NewProfileRecord(user *User, role Role) *ProfileRecord {
	record := &ProfileRecord{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Role:      role,
	}

	if user.SeekerProfile != nil {
		record.Skills = user.SeekerProfile.Skills
		record.ExperienceYears = user.SeekerProfile.ExperienceYears
	}
	if user.EmployerProfile != nil {
		record.CompanyName = user.EmployerProfile.CompanyName
		record.CompanySize = user.EmployerProfile.CompanySize
		record.Industry = user.EmployerProfile.Industry
	}

	return record
}
