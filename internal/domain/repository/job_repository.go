// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"skillconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrJobNotFound is returned when a job posting is not found.
var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows job listing queries. Zero values mean "no constraint".
type JobFilter struct {
	Location string           // match postings in this county/town
	Status   entity.JobStatus // match postings in this state
	Search   string           // case-insensitive substring match against the title
	Offset   int
	Limit    int
}

// JobRepository defines the standard operations for job posting persistence.
type JobRepository interface {
	// FindByID retrieves a single posting by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Job, error)

	// FindByEmployerID retrieves all postings owned by an employer, newest first.
	FindByEmployerID(ctx context.Context, employerID uuid.UUID) ([]*entity.Job, error)

	// List retrieves postings matching the filter, newest first.
	List(ctx context.Context, filter JobFilter) ([]*entity.Job, error)

	// Create persists a new posting.
	Create(ctx context.Context, job *entity.Job) error

	// Update modifies an existing posting.
	Update(ctx context.Context, job *entity.Job) error

	// Delete removes a posting.
	Delete(ctx context.Context, id uuid.UUID) error
}
