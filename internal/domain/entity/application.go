package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus represents the review state of a job application.
type ApplicationStatus string

const (
	// ApplicationStatusPending indicates the application awaits employer review.
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusReviewed indicates the employer has seen the application.
	ApplicationStatusReviewed ApplicationStatus = "reviewed"
	// ApplicationStatusAccepted indicates the employer accepted the applicant.
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	// ApplicationStatusRejected indicates the employer declined the applicant.
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// IsValid checks if the ApplicationStatus is a valid value.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewed,
		ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	default:
		return false
	}
}

// Application represents a seeker's application to a single job posting.
// A seeker may hold at most one application per posting.
type Application struct {
	ID          uuid.UUID         // The unique identifier for the application.
	JobID       uuid.UUID         // The posting this application targets.
	SeekerID    uuid.UUID         // The seeker User who applied.
	CoverLetter string            // Free-form pitch accompanying the application.
	Status      ApplicationStatus // pending, reviewed, accepted or rejected.
	CreatedAt   time.Time         // Timestamp of when the application was submitted.
	UpdatedAt   time.Time         // Timestamp of the last status change.
}
