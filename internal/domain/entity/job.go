package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobStatus represents the lifecycle state of a job posting.
type JobStatus string

const (
	// JobStatusOpen indicates the posting accepts new applications.
	JobStatusOpen JobStatus = "open"
	// JobStatusClosed indicates the posting no longer accepts applications.
	JobStatusClosed JobStatus = "closed"
)

// IsValid checks if the JobStatus is a valid value.
func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusOpen, JobStatusClosed:
		return true
	default:
		return false
	}
}

// Job represents a single job posting owned by an employer.
type Job struct {
	ID          uuid.UUID // The unique identifier for the posting.
	EmployerID  uuid.UUID // Links the posting to the employer User who owns it.
	Title       string    // Short headline, e.g. "Electrician — Nairobi West".
	Description string    // Full description of the role and requirements.
	Location    string    // County or town where the work is based.
	SalaryMin   int       // Lower bound of the advertised salary range, in KES. Zero if undisclosed.
	SalaryMax   int       // Upper bound of the advertised salary range, in KES. Zero if undisclosed.
	Status      JobStatus // open or closed.
	CreatedAt   time.Time // Timestamp of when the posting was created.
	UpdatedAt   time.Time // Timestamp of the last modification to the posting.
}

// AcceptsApplications reports whether new applications may be submitted.
func (j *Job) AcceptsApplications() bool {
	return j.Status == JobStatusOpen
}
