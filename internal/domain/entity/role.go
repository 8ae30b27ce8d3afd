// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleSeeker indicates a job seeker role.
	RoleSeeker Role = "seeker"
	// RoleEmployer indicates an employer role.
	RoleEmployer Role = "employer"
	// RoleAdmin indicates a platform administrator role.
	RoleAdmin Role = "admin"
)

// Dashboard roots for each role. Redirect targets must stay aligned with the
// routes guarded for the matching role, otherwise redirects can loop.
const (
	SeekerDashboardPath   = "/seeker/dashboard"
	EmployerDashboardPath = "/employer/dashboard"
	AdminDashboardPath    = "/admin/dashboard"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleSeeker, RoleEmployer, RoleAdmin:
		return true
	default:
		return false
	}
}

// DashboardPath returns the dashboard route for the role. The mapping is
// exhaustive over valid roles; adding a role without a dashboard here is a
// single-point change.
func (r Role) DashboardPath() string {
	switch r {
	case RoleSeeker:
		return SeekerDashboardPath
	case RoleEmployer:
		return EmployerDashboardPath
	case RoleAdmin:
		return AdminDashboardPath
	default:
		return "/"
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings converts []string to Roles, filtering out invalid role strings.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
