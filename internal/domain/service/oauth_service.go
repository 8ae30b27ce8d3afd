package service

import "context"

// OAuthUser carries the verified identity claims from an external sign-in provider.
type OAuthUser struct {
	ProviderUserID string // The provider's stable subject identifier.
	Email          string
	EmailVerified  bool
	FirstName      string
	LastName       string
}

// OAuthVerifier defines the interface for verifying external identity tokens.
// The current implementation verifies Google ID tokens.
type OAuthVerifier interface {
	// VerifyIDToken validates the signed ID token and returns the identity it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
}
