// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID              uuid.UUID        // The unique identifier for the user.
	Email           string           // The user's primary contact email, used as a login identifier.
	FirstName       string           // The user's first name.
	LastName        string           // The user's last name.
	Suspended       bool             // Set by an administrator to lock the account out of the platform.
	SeekerProfile   *SeekerProfile   // Pointer to the seeker-specific profile. Nil if this person does not have a 'seeker' role.
	EmployerProfile *EmployerProfile // Pointer to the employer-specific profile. Nil if this person does not have an 'employer' role.
	CreatedAt       time.Time        // Timestamp of when this user account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this user's data.
}

// Role derives the user's primary role from the attached profiles.
// Admins carry neither profile; their role lives on the session record.
func (u *User) Role() Role {
	switch {
	case u.SeekerProfile != nil:
		return RoleSeeker
	case u.EmployerProfile != nil:
		return RoleEmployer
	default:
		return RoleAdmin
	}
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// SeekerProfile holds data specific to the "job seeker" role.
type SeekerProfile struct {
	UserID          uuid.UUID // Foreign key that links this profile to a core User entity.
	Skills          []string  // Free-form skill tags the seeker advertises, e.g. "plumbing", "welding".
	ExperienceYears int       // Total years of work experience.
	Location        string    // The seeker's home county or town, used for job matching.
	Bio             string    // Short self-description shown to employers.
	UpdatedAt       time.Time // Timestamp of the last modification to this profile.
}

// EmployerProfile holds data specific to the "employer" role.
type EmployerProfile struct {
	UserID      uuid.UUID // Foreign key that links this profile to a core User entity.
	CompanyName string    // The employer's registered company or business name.
	CompanySize string    // Bracketed head count, e.g. "1-10", "11-50".
	Industry    string    // The sector the employer operates in.
	Location    string    // The company's primary location.
	UpdatedAt   time.Time // Timestamp of the last modification to this profile.
}
