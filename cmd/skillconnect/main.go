package main

import (
	"context"
	"log/slog"
	"os"

	"skillconnect/config"
	"skillconnect/internal/delivery"
	"skillconnect/internal/delivery/http"
	httpmiddleware "skillconnect/internal/delivery/http/middleware"
	"skillconnect/internal/delivery/http/router/handler"
	"skillconnect/internal/delivery/http/session"
	deliverymiddleware "skillconnect/internal/delivery/middleware"
	"skillconnect/internal/domain/service"
	"skillconnect/internal/infra/auth"
	"skillconnect/internal/infra/auth/google"
	logs "skillconnect/internal/infra/log"
	"skillconnect/internal/infra/persistence/postgres"
	"skillconnect/internal/infra/pubsub"
	"skillconnect/internal/infra/qrcode"
	"skillconnect/internal/infra/ratelimit"
	"skillconnect/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewJobRepository,
			postgres.NewApplicationRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			google.NewVerifier,
			pubsub.NewEventPublisher,
			newQRCodeService,
			newRateLimiter,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// newRateLimiter builds the shared fixed-window request limiter
func newRateLimiter() *ratelimit.Limiter {
	return ratelimit.New(ratelimit.DefaultWindow, ratelimit.DefaultCeiling)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewJobService,
			impl.NewApplicationService,
			impl.NewAdminService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			session.NewCookieStore,
			deliverymiddleware.NewRequestIDMiddleware,
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			httpmiddleware.NewCSRFMiddleware,
			httpmiddleware.NewRateLimitMiddleware,
			httpmiddleware.NewSessionGuard,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewJobHandler,
			handler.NewApplicationHandler,
			handler.NewAdminHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
