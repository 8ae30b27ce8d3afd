// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"skillconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateJobInput defines the data required to create a job posting.
type CreateJobInput struct {
	EmployerID  uuid.UUID
	Title       string
	Description string
	Location    string
	SalaryMin   int
	SalaryMax   int
}

// UpdateJobInput defines the editable fields of a job posting.
// Only the owning employer may update a posting.
type UpdateJobInput struct {
	JobID       uuid.UUID
	EmployerID  uuid.UUID
	Title       string
	Description string
	Location    string
	SalaryMin   int
	SalaryMax   int
	Status      entity.JobStatus
}

// ListJobsInput narrows the public job listing.
type ListJobsInput struct {
	Location string
	Status   entity.JobStatus
	Search   string
	Offset   int
	Limit    int
}

// JobUsecase defines the interface for job posting operations.
type JobUsecase interface {
	CreateJob(ctx context.Context, input *CreateJobInput) (*entity.Job, error)
	UpdateJob(ctx context.Context, input *UpdateJobInput) (*entity.Job, error)
	DeleteJob(ctx context.Context, jobID, employerID uuid.UUID) error
	GetJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error)
	ListJobs(ctx context.Context, input *ListJobsInput) ([]*entity.Job, error)
	ListEmployerJobs(ctx context.Context, employerID uuid.UUID) ([]*entity.Job, error)

	// GenerateShareQR renders a PNG QR code linking to the posting.
	GenerateShareQR(ctx context.Context, jobID uuid.UUID) ([]byte, error)
}
