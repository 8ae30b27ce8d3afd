// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"skillconnect/config"
	deliverycontext "skillconnect/internal/delivery/context"
	"skillconnect/internal/domain/entity"
	domainerrors "skillconnect/internal/domain/errors"
	"skillconnect/internal/domain/repository"
	"skillconnect/internal/domain/service"
	"skillconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const minPasswordLength = 8

// userService implements the UserUsecase interface.
type userService struct {
	txManager         repository.TransactionManager
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	oauthVerifier     service.OAuthVerifier
	maxActiveSessions int
	logger            *slog.Logger
}

// registrationConfig drives the shared registration flow for both roles.
type registrationConfig struct {
	FirstName          string
	LastName           string
	Email              string
	Password           string
	Role               entity.Role
	BuildNewUser       func() *entity.User
	AttachProfile      func(*entity.User)
	HasProfile         func(*entity.User) bool
	ProfileExistsError func() error
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	OAuthVerifier service.OAuthVerifier
	Config        *config.Config
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &userService{
		txManager:         params.TxManager,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		oauthVerifier:     params.OAuthVerifier,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// hashRefreshToken converts the raw refresh token to the SHA-256 hex digest
// stored in the database.
func hashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))

	return hex.EncodeToString(sum[:])
}

// RegisterSeeker orchestrates the registration of a job seeker account.
func (srv *userService) RegisterSeeker(ctx context.Context, input *usecase.RegisterSeekerInput) (*usecase.RegisterOutput, error) {
	cfg := &registrationConfig{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      entity.RoleSeeker,
		BuildNewUser: func() *entity.User {
			return &entity.User{
				FirstName: input.FirstName,
				LastName:  input.LastName,
				Email:     input.Email,
				SeekerProfile: &entity.SeekerProfile{
					Skills:          input.Skills,
					ExperienceYears: input.ExperienceYears,
					Location:        input.Location,
					Bio:             input.Bio,
				},
			}
		},
		AttachProfile: func(user *entity.User) {
			user.SeekerProfile = &entity.SeekerProfile{
				UserID:          user.ID,
				Skills:          input.Skills,
				ExperienceYears: input.ExperienceYears,
				Location:        input.Location,
				Bio:             input.Bio,
			}
		},
		HasProfile: func(user *entity.User) bool { return user.SeekerProfile != nil },
		ProfileExistsError: func() error {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("seeker profile already registered for this account")
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

// RegisterEmployer orchestrates the registration of an employer account.
func (srv *userService) RegisterEmployer(ctx context.Context, input *usecase.RegisterEmployerInput) (*usecase.RegisterOutput, error) {
	cfg := &registrationConfig{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  input.Password,
		Role:      entity.RoleEmployer,
		BuildNewUser: func() *entity.User {
			return &entity.User{
				FirstName: input.FirstName,
				LastName:  input.LastName,
				Email:     input.Email,
				EmployerProfile: &entity.EmployerProfile{
					CompanyName: input.CompanyName,
					CompanySize: input.CompanySize,
					Industry:    input.Industry,
					Location:    input.Location,
				},
			}
		},
		AttachProfile: func(user *entity.User) {
			user.EmployerProfile = &entity.EmployerProfile{
				UserID:      user.ID,
				CompanyName: input.CompanyName,
				CompanySize: input.CompanySize,
				Industry:    input.Industry,
				Location:    input.Location,
			}
		},
		HasProfile: func(user *entity.User) bool { return user.EmployerProfile != nil },
		ProfileExistsError: func() error {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("employer profile already registered for this account")
		},
	}

	return srv.executeRegistration(ctx, cfg)
}

func (srv *userService) executeRegistration(ctx context.Context, cfg *registrationConfig) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

	var registeredUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderEmail, cfg.Email)
		if errors.Is(err, repository.ErrAuthNotFound) {
			return srv.handleNewRegistration(ctx, cfg, userRepo, authRepo, &registeredUser)
		}
		if err != nil {
			return errors.Wrap(err, "failed to find authentication")
		}

		return srv.handleExistingAccountRegistration(ctx, cfg, userRepo, authRecord, &registeredUser)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.Any("role", cfg.Role), slog.String("email", cfg.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("role", cfg.Role), slog.Any("userID", registeredUser.ID))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

func (srv *userService) handleNewRegistration(
	ctx context.Context,
	cfg *registrationConfig,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	registeredUser **entity.User,
) error {
	if len(cfg.Password) < minPasswordLength {
		srv.log(ctx).Warn("Password validation failed during registration", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

		return domainerrors.ErrValidationFailed.WrapMessage("password must be at least 8 characters")
	}

	hashedPassword, err := srv.hasher.Hash(cfg.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("role", cfg.Role), slog.Any("error", err))

		return errors.Wrap(err, "failed to hash password during registration")
	}

	newUser := cfg.BuildNewUser()

	if err := userRepo.Create(ctx, newUser); err != nil {
		return errors.Wrap(err, "failed to create user during registration")
	}

	newAuth := &entity.Authentication{
		UserID:         newUser.ID,
		Provider:       entity.ProviderEmail,
		ProviderUserID: cfg.Email,
		PasswordHash:   hashedPassword,
	}

	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return errors.Wrap(err, "failed to create authentication during registration")
	}

	*registeredUser = newUser

	return nil
}

func (srv *userService) handleExistingAccountRegistration(
	ctx context.Context,
	cfg *registrationConfig,
	userRepo repository.UserRepository,
	authRecord *entity.Authentication,
	registeredUser **entity.User,
) error {
	if !srv.hasher.Check(cfg.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch when attaching profile", slog.Any("role", cfg.Role), slog.String("email", cfg.Email))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch during registration")
	}

	existingUser, err := userRepo.FindByID(ctx, authRecord.UserID)
	if err != nil {
		return errors.Wrap(err, "failed to load existing user for registration")
	}

	if cfg.HasProfile(existingUser) {
		srv.log(ctx).Warn("Profile already exists for account", slog.Any("role", cfg.Role), slog.Any("userID", existingUser.ID))

		return cfg.ProfileExistsError()
	}

	cfg.AttachProfile(existingUser)

	if err := userRepo.Update(ctx, existingUser); err != nil {
		return errors.Wrap(err, "failed to update user profile during registration")
	}

	srv.log(ctx).Debug("Attached profile to existing account", slog.Any("role", cfg.Role), slog.Any("userID", existingUser.ID))
	*registeredUser = existingUser

	return nil
}

// Login verifies email/password credentials and establishes a new session.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	srv.log(ctx).Info("Starting login", slog.String("email", input.Email))

	var output *usecase.AuthOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderEmail, input.Email)
		if err != nil {
			if errors.Is(err, repository.ErrAuthNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
			}

			return errors.Wrap(err, "failed to find authentication")
		}

		if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
		}

		output, err = srv.establishSession(ctx, repoFactory, authRecord.UserID)

		return err
	})

	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Login completed", slog.Any("userID", output.User.ID))

	return output, nil
}

// LoginWithGoogle verifies the Google ID token and signs the user in, creating
// the account on first sign-in.
func (srv *userService) LoginWithGoogle(ctx context.Context, input *usecase.GoogleLoginInput) (*usecase.AuthOutput, error) {
	oauthUser, err := srv.oauthVerifier.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}
	if !oauthUser.EmailVerified {
		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage("email address is not verified with Google")
	}

	var output *usecase.AuthOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderGoogle, oauthUser.ProviderUserID)
		if err == nil {
			output, err = srv.establishSession(ctx, repoFactory, authRecord.UserID)

			return err
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find google authentication")
		}

		userID, err := srv.linkOrCreateGoogleAccount(ctx, userRepo, authRepo, oauthUser, input.Role)
		if err != nil {
			return err
		}

		output, err = srv.establishSession(ctx, repoFactory, userID)

		return err
	})

	if err != nil {
		srv.log(ctx).Warn("Google login failed", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// linkOrCreateGoogleAccount links the Google credential to an existing account
// with the same email, or creates a fresh account with the requested role.
func (srv *userService) linkOrCreateGoogleAccount(
	ctx context.Context,
	userRepo repository.UserRepository,
	authRepo repository.AuthRepository,
	oauthUser *service.OAuthUser,
	role entity.Role,
) (uuid.UUID, error) {
	existing, err := userRepo.FindByEmail(ctx, oauthUser.Email)
	if err == nil {
		if err := srv.createGoogleAuth(ctx, authRepo, existing.ID, oauthUser); err != nil {
			return uuid.Nil, err
		}

		return existing.ID, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return uuid.Nil, errors.Wrap(err, "failed to find user by email")
	}

	newUser := &entity.User{
		FirstName: oauthUser.FirstName,
		LastName:  oauthUser.LastName,
		Email:     oauthUser.Email,
	}
	switch role {
	case entity.RoleEmployer:
		newUser.EmployerProfile = &entity.EmployerProfile{}
	default:
		// First sign-in without an explicit role lands as a seeker.
		newUser.SeekerProfile = &entity.SeekerProfile{}
	}

	if err := userRepo.Create(ctx, newUser); err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to create user from google sign-in")
	}
	if err := srv.createGoogleAuth(ctx, authRepo, newUser.ID, oauthUser); err != nil {
		return uuid.Nil, err
	}

	return newUser.ID, nil
}

func (srv *userService) createGoogleAuth(ctx context.Context, authRepo repository.AuthRepository, userID uuid.UUID, oauthUser *service.OAuthUser) error {
	newAuth := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderGoogle,
		ProviderUserID: oauthUser.ProviderUserID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return errors.Wrap(err, "failed to link google authentication")
	}

	return nil
}

// establishSession loads the user, enforces suspension and session-count
// rules, persists a refresh token and builds the client records.
func (srv *userService) establishSession(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (*usecase.AuthOutput, error) {
	userRepo := repoFactory.UserRepo()
	refreshRepo := repoFactory.RefreshTokenRepo()

	user, err := userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load user for session")
	}

	if user.Suspended {
		return nil, errors.Wrap(domainerrors.ErrUserSuspended, "account is suspended")
	}

	if srv.maxActiveSessions > 0 {
		count, err := refreshRepo.CountActiveSessionsByUserID(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to count active sessions")
		}
		if count >= srv.maxActiveSessions {
			return nil, domainerrors.ErrForbidden.WrapMessage("maximum number of active sessions reached")
		}
	}

	role := user.Role()
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	record := &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: hashRefreshToken(refreshToken),
		ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to persist refresh token")
	}

	now := time.Now().UTC()

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
		Session: &entity.UserSession{
			UserID:    user.ID,
			Email:     user.Email,
			Role:      role,
			LoginTime: now,
		},
		Profile: entity.NewProfileRecord(user, role),
	}, nil
}

// Refresh rotates the refresh token and issues a fresh token pair.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	var output *usecase.RefreshOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		refreshRepo := repoFactory.RefreshTokenRepo()

		tokenHash := hashRefreshToken(refreshToken)
		record, err := refreshRepo.FindRefreshTokenByHash(ctx, tokenHash)
		if err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		user, err := userRepo.FindByID(ctx, record.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load user for token refresh")
		}
		if user.Suspended {
			return errors.Wrap(domainerrors.ErrUserSuspended, "account is suspended")
		}

		// Rotate: the presented token is single use.
		if err := refreshRepo.DeleteRefreshToken(ctx, record.ID); err != nil {
			return errors.Wrap(err, "failed to rotate refresh token")
		}

		role := user.Role()
		accessToken, newRefreshToken, err := srv.tokenService.GenerateTokens(user.ID, []string{role.String()})
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		newRecord := &entity.RefreshToken{
			UserID:    user.ID,
			TokenHash: hashRefreshToken(newRefreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.GetRefreshTokenDuration()),
		}
		if err := refreshRepo.CreateRefreshToken(ctx, newRecord); err != nil {
			return errors.Wrap(err, "failed to persist rotated refresh token")
		}

		output = &usecase.RefreshOutput{
			AccessToken:  accessToken,
			RefreshToken: newRefreshToken,
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Token refresh failed", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// Logout ends the session identified by the refresh token. Unknown tokens are
// treated as already logged out.
func (srv *userService) Logout(ctx context.Context, refreshToken string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		err := repoFactory.RefreshTokenRepo().DeleteRefreshTokenByHash(ctx, hashRefreshToken(refreshToken))
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil
		}

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to log out")
	}

	return nil
}

// GetProfile loads the full user record, including role profiles.
func (srv *userService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}
		user = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// UpdateSeekerProfile updates the seeker-specific profile fields.
func (srv *userService) UpdateSeekerProfile(ctx context.Context, input *usecase.UpdateSeekerProfileInput) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if found.SeekerProfile == nil {
			return domainerrors.ErrNotFound.WrapMessage("seeker profile not found")
		}

		found.SeekerProfile.Skills = input.Skills
		found.SeekerProfile.ExperienceYears = input.ExperienceYears
		found.SeekerProfile.Location = input.Location
		found.SeekerProfile.Bio = input.Bio

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update seeker profile")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update seeker profile", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}

// UpdateEmployerProfile updates the employer-specific profile fields.
func (srv *userService) UpdateEmployerProfile(ctx context.Context, input *usecase.UpdateEmployerProfileInput) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		found, err := userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}
		if found.EmployerProfile == nil {
			return domainerrors.ErrNotFound.WrapMessage("employer profile not found")
		}

		found.EmployerProfile.CompanyName = input.CompanyName
		found.EmployerProfile.CompanySize = input.CompanySize
		found.EmployerProfile.Industry = input.Industry
		found.EmployerProfile.Location = input.Location

		if err := userRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update employer profile")
		}
		user = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update employer profile", slog.Any("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	return user, nil
}
