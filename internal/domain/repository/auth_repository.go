// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"skillconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAuthNotFound is returned when no authentication record matches the lookup.
var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository defines the operations for credential persistence.
// One user may hold several records, one per provider.
type AuthRepository interface {
	// FindAuthentication retrieves the credential for a provider and provider-side user ID.
	// For the "email" provider the provider-side ID is the email address itself.
	FindAuthentication(ctx context.Context, provider, providerUserID string) (*entity.Authentication, error)

	// FindAuthenticationsByUserID retrieves all credentials linked to a user.
	FindAuthenticationsByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Authentication, error)

	// CreateAuthentication persists a new credential for a user.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// DeleteAuthenticationsByUserID removes all credentials for a user.
	DeleteAuthenticationsByUserID(ctx context.Context, userID uuid.UUID) error
}
