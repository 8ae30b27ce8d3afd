// Package handler contains the Pub/Sub push handlers for the notifier worker.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"skillconnect/config"
	deliverycontext "skillconnect/internal/delivery/context"
	"skillconnect/internal/domain/service"
	"skillconnect/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// EmailHandler turns application events pushed by Pub/Sub into
// transactional emails.
type EmailHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	mailer         service.Mailer
}

// EmailHandlerParams holds dependencies for the EmailHandler
type EmailHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Mailer service.Mailer
}

// NewEmailHandler creates a new Pub/Sub push handler for email notifications
func NewEmailHandler(params EmailHandlerParams) *EmailHandler {
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.PubSub.VerifyPushAuth

	return &EmailHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		mailer:         params.Mailer,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *EmailHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token when required by configuration
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg pubsub.PubSubPushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse application event
	var event service.ApplicationEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse application event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing application event",
		slog.String("event_type", event.Type),
		slog.String("application_id", event.ApplicationID),
		slog.String("job_id", event.JobID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process application event",
			slog.String("application_id", event.ApplicationID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Application event processed successfully",
		slog.String("application_id", event.ApplicationID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *EmailHandler) extractRequestID(ctx context.Context, pushMsg *pubsub.PubSubPushMessage, event *service.ApplicationEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent dispatches the event to the matching email template. A send
// failure is retryable; an unknown event type is not.
func (h *EmailHandler) processEvent(ctx context.Context, event *service.ApplicationEvent) error {
	switch event.Type {
	case service.EventApplicationCreated:
		if event.EmployerEmail == "" {
			return errors.New("application created event is missing employer email")
		}
		if err := h.mailer.SendApplicationReceived(ctx, event.EmployerEmail, event.SeekerName, event.JobTitle); err != nil {
			return newRetryableError(err)
		}

		return nil

	case service.EventApplicationStatusChanged:
		if event.SeekerEmail == "" {
			return errors.New("status changed event is missing seeker email")
		}
		if err := h.mailer.SendApplicationStatusChanged(ctx, event.SeekerEmail, event.JobTitle, event.Status); err != nil {
			return newRetryableError(err)
		}

		return nil

	default:
		return errors.Errorf("unknown event type: %s", event.Type)
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience must match the URL of this push endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer must be accounts.google.com for Pub/Sub push tokens
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
