// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"skillconnect/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterSeekerInput defines the data required to register a job seeker.
type RegisterSeekerInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	Skills          []string
	ExperienceYears int
	Location        string
	Bio             string
}

// RegisterEmployerInput defines the data required to register an employer.
type RegisterEmployerInput struct {
	FirstName   string
	LastName    string
	Email       string
	Password    string
	CompanyName string
	CompanySize string
	Industry    string
	Location    string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// GoogleLoginInput carries the Google-signed ID token from the client.
// Role is only consulted on first sign-in, when the account is created.
type GoogleLoginInput struct {
	IDToken string
	Role    entity.Role
}

// UpdateSeekerProfileInput defines the editable seeker profile fields.
type UpdateSeekerProfileInput struct {
	UserID          uuid.UUID
	Skills          []string
	ExperienceYears int
	Location        string
	Bio             string
}

// UpdateEmployerProfileInput defines the editable employer profile fields.
type UpdateEmployerProfileInput struct {
	UserID      uuid.UUID
	CompanyName string
	CompanySize string
	Industry    string
	Location    string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user's basic information.
type RegisterOutput struct {
	User *entity.User
}

// AuthOutput returns everything the delivery layer needs after a successful
// login: the token pair plus the session and profile records it persists on
// the client.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
	Session      *entity.UserSession
	Profile      *entity.ProfileRecord
}

// RefreshOutput returns the rotated token pair.
type RefreshOutput struct {
	AccessToken  string
	RefreshToken string
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterSeeker(ctx context.Context, input *RegisterSeekerInput) (*RegisterOutput, error)
	RegisterEmployer(ctx context.Context, input *RegisterEmployerInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	LoginWithGoogle(ctx context.Context, input *GoogleLoginInput) (*AuthOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)
	Logout(ctx context.Context, refreshToken string) error
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateSeekerProfile(ctx context.Context, input *UpdateSeekerProfileInput) (*entity.User, error)
	UpdateEmployerProfile(ctx context.Context, input *UpdateEmployerProfileInput) (*entity.User, error)
}
