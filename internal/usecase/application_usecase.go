// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"skillconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ApplyInput defines the data required to submit a job application.
type ApplyInput struct {
	JobID       uuid.UUID
	SeekerID    uuid.UUID
	CoverLetter string
}

// UpdateApplicationStatusInput defines a status transition requested by the
// employer owning the posting.
type UpdateApplicationStatusInput struct {
	ApplicationID uuid.UUID
	EmployerID    uuid.UUID
	Status        entity.ApplicationStatus
}

// ApplicationUsecase defines the interface for job application operations.
type ApplicationUsecase interface {
	Apply(ctx context.Context, input *ApplyInput) (*entity.Application, error)
	ListForJob(ctx context.Context, jobID, employerID uuid.UUID) ([]*entity.Application, error)
	ListForSeeker(ctx context.Context, seekerID uuid.UUID) ([]*entity.Application, error)
	UpdateStatus(ctx context.Context, input *UpdateApplicationStatusInput) (*entity.Application, error)
}
