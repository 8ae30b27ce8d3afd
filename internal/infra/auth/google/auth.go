// Package google verifies Google ID tokens for the OAuth sign-in flow.
package google

import (
	"context"
	"log/slog"

	"skillconnect/config"
	"skillconnect/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

// validateFunc matches idtoken.Validate; swapped in tests.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// Verifier implements service.OAuthVerifier by validating Google-signed ID tokens
// against this application's OAuth client ID.
type Verifier struct {
	clientID string
	logger   *slog.Logger
	validate validateFunc
}

// NewVerifier creates a new Google ID token verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.OAuthVerifier, error) {
	if cfg.GoogleOAuth == nil || cfg.GoogleOAuth.ClientID == "" {
		return nil, errors.New("google oauth client id must be provided")
	}

	return &Verifier{
		clientID: cfg.GoogleOAuth.ClientID,
		logger:   logger,
		validate: idtoken.Validate,
	}, nil
}

// VerifyIDToken validates the signed ID token and returns the identity it asserts.
// Signature, expiry and audience checks are delegated to the idtoken library;
// this method only maps the verified claims onto the domain type.
func (v *Verifier) VerifyIDToken(ctx context.Context, rawToken string) (*service.OAuthUser, error) {
	payload, err := v.validate(ctx, rawToken, v.clientID)
	if err != nil {
		v.logger.Warn("Google ID token validation failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	user := &service.OAuthUser{
		ProviderUserID: payload.Subject,
		Email:          claimString(payload.Claims, "email"),
		FirstName:      claimString(payload.Claims, "given_name"),
		LastName:       claimString(payload.Claims, "family_name"),
	}
	if verified, ok := payload.Claims["email_verified"].(bool); ok {
		user.EmailVerified = verified
	}

	if user.Email == "" {
		return nil, errors.New("ID token is missing the email claim")
	}

	return user, nil
}

func claimString(claims map[string]any, key string) string {
	if value, ok := claims[key].(string); ok {
		return value
	}

	return ""
}
