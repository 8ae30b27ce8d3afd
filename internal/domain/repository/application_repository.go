// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"skillconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for application persistence.
var (
	// ErrApplicationNotFound is returned when an application is not found.
	ErrApplicationNotFound = errors.New("application not found")
	// ErrDuplicateApplication is returned when a seeker has already applied to the job.
	ErrDuplicateApplication = errors.New("application already exists for this job and seeker")
)

// ApplicationRepository defines the standard operations for application persistence.
type ApplicationRepository interface {
	// FindByID retrieves a single application by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Application, error)

	// FindByJobID retrieves all applications submitted against a posting, newest first.
	FindByJobID(ctx context.Context, jobID uuid.UUID) ([]*entity.Application, error)

	// FindBySeekerID retrieves all applications a seeker has submitted, newest first.
	FindBySeekerID(ctx context.Context, seekerID uuid.UUID) ([]*entity.Application, error)

	// FindByJobAndSeeker retrieves the application a seeker holds against a posting, if any.
	FindByJobAndSeeker(ctx context.Context, jobID, seekerID uuid.UUID) (*entity.Application, error)

	// Create persists a new application. Returns ErrDuplicateApplication when the
	// (job, seeker) pair already holds one.
	Create(ctx context.Context, application *entity.Application) error

	// UpdateStatus transitions an application to a new review state.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ApplicationStatus) error
}
