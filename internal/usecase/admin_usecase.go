// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"skillconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ListUsersInput pages through registered users for moderation.
type ListUsersInput struct {
	Offset int
	Limit  int
}

// AdminUsecase defines the interface for platform moderation operations.
type AdminUsecase interface {
	ListUsers(ctx context.Context, input *ListUsersInput) ([]*entity.User, error)
	SuspendUser(ctx context.Context, userID uuid.UUID) error
	CloseJob(ctx context.Context, jobID uuid.UUID) (*entity.Job, error)
}
