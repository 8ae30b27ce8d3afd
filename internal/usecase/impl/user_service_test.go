package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"skillconnect/config"
	"skillconnect/internal/domain/entity"
	domainerrors "skillconnect/internal/domain/errors"
	"skillconnect/internal/domain/repository"
	"skillconnect/internal/domain/service"
	mockRepo "skillconnect/internal/mocks/repository"
	mockSvc "skillconnect/internal/mocks/service"
	"skillconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service       usecase.UserUsecase
	txManager     *mockRepo.MockTransactionManager
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	oauthVerifier *mockSvc.MockOAuthVerifier
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	oauthVerifier := mockSvc.NewMockOAuthVerifier(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc := NewUserService(UserServiceParams{
		TxManager:     txManager,
		Hasher:        hasher,
		TokenService:  tokenService,
		OAuthVerifier: oauthVerifier,
		Config:        &config.Config{Auth: &config.AuthConfig{MaxActiveSessions: 5}},
		Logger:        logger,
	})

	return userServiceFixtures{
		service:       svc,
		txManager:     txManager,
		hasher:        hasher,
		tokenService:  tokenService,
		oauthVerifier: oauthVerifier,
	}
}

// onExecute wires the transaction manager mock to invoke the callback with a
// factory configured by setup, returning the callback's error.
func (fx userServiceFixtures) onExecute(t *testing.T, ctx context.Context, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)

			return fn(mockFactory)
		})
}

func TestUserService_RegisterSeeker_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterSeekerInput{
		FirstName: "Wanjiru",
		LastName:  "Kamau",
		Email:     "wanjiru@example.com",
		Password:  "Password123!",
		Skills:    []string{"plumbing", "welding"},
		Location:  "Nakuru",
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderEmail, input.Email).
			Return(nil, repository.ErrAuthNotFound)

		fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = uuid.New()
			}).
			Return(nil)

		mockAuthRepo.EXPECT().
			CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
			Run(func(ctx context.Context, auth *entity.Authentication) {
				assert.Equal(t, entity.ProviderEmail, auth.Provider)
				assert.Equal(t, input.Email, auth.ProviderUserID)
				assert.Equal(t, "hashed_password", auth.PasswordHash)
			}).
			Return(nil)
	})

	output, err := fx.service.RegisterSeeker(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, input.Email, output.User.Email)
	require.NotNil(t, output.User.SeekerProfile)
	assert.Equal(t, input.Skills, output.User.SeekerProfile.Skills)
}

func TestUserService_RegisterSeeker_WeakPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterSeekerInput{
		FirstName: "Wanjiru",
		LastName:  "Kamau",
		Email:     "wanjiru@example.com",
		Password:  "short",
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderEmail, input.Email).
			Return(nil, repository.ErrAuthNotFound)
	})

	output, err := fx.service.RegisterSeeker(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestUserService_RegisterEmployer_AttachesProfileToExistingAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterEmployerInput{
		FirstName:   "James",
		LastName:    "Otieno",
		Email:       "james@example.com",
		Password:    "Password123!",
		CompanyName: "Otieno Builders",
		Location:    "Kisumu",
	}

	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderEmail,
		ProviderUserID: input.Email,
		PasswordHash:   "stored_hash",
	}
	existingUser := &entity.User{
		ID:            userID,
		Email:         input.Email,
		SeekerProfile: &entity.SeekerProfile{UserID: userID},
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderEmail, input.Email).
			Return(authRecord, nil)

		fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(true)

		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				require.NotNil(t, user.EmployerProfile)
				assert.Equal(t, input.CompanyName, user.EmployerProfile.CompanyName)
			}).
			Return(nil)
	})

	output, err := fx.service.RegisterEmployer(ctx, input)

	require.NoError(t, err)
	require.NotNil(t, output.User.EmployerProfile)
	assert.NotNil(t, output.User.SeekerProfile)
}

func TestUserService_RegisterEmployer_ProfileAlreadyExists(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.RegisterEmployerInput{
		Email:       "james@example.com",
		Password:    "Password123!",
		CompanyName: "Otieno Builders",
	}

	authRecord := &entity.Authentication{
		UserID:       userID,
		PasswordHash: "stored_hash",
	}
	existingUser := &entity.User{
		ID:              userID,
		Email:           input.Email,
		EmployerProfile: &entity.EmployerProfile{UserID: userID},
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderEmail, input.Email).
			Return(authRecord, nil)

		fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(true)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(existingUser, nil)
	})

	output, err := fx.service.RegisterEmployer(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "wanjiru@example.com", Password: "Password123!"}

	authRecord := &entity.Authentication{
		UserID:         userID,
		Provider:       entity.ProviderEmail,
		ProviderUserID: input.Email,
		PasswordHash:   "stored_hash",
	}
	user := &entity.User{
		ID:            userID,
		Email:         input.Email,
		FirstName:     "Wanjiru",
		SeekerProfile: &entity.SeekerProfile{UserID: userID},
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderEmail, input.Email).
			Return(authRecord, nil)
		fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(true)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(0, nil)

		fx.tokenService.EXPECT().
			GenerateTokens(userID, []string{"seeker"}).
			Return("access_token", "refresh_token", nil)
		fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

		mockRefreshRepo.EXPECT().
			CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
			Run(func(ctx context.Context, token *entity.RefreshToken) {
				assert.Equal(t, userID, token.UserID)
				assert.NotEqual(t, "refresh_token", token.TokenHash)
				assert.Len(t, token.TokenHash, 64)
			}).
			Return(nil)
	})

	output, err := fx.service.Login(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	require.NotNil(t, output.Session)
	assert.Equal(t, entity.RoleSeeker, output.Session.Role)
	require.NotNil(t, output.Profile)
	assert.Equal(t, entity.RoleSeeker, output.Profile.Role)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.LoginInput{Email: "wanjiru@example.com", Password: "wrong"}

	authRecord := &entity.Authentication{
		UserID:       uuid.New(),
		PasswordHash: "stored_hash",
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderEmail, input.Email).
			Return(authRecord, nil)
		fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(false)
	})

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_SuspendedAccount(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "wanjiru@example.com", Password: "Password123!"}

	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "stored_hash"}
	user := &entity.User{ID: userID, Email: input.Email, Suspended: true}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderEmail, input.Email).
			Return(authRecord, nil)
		fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(true)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
	})

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserSuspended))
}

func TestUserService_Login_SessionLimitReached(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.LoginInput{Email: "wanjiru@example.com", Password: "Password123!"}

	authRecord := &entity.Authentication{UserID: userID, PasswordHash: "stored_hash"}
	user := &entity.User{ID: userID, Email: input.Email, SeekerProfile: &entity.SeekerProfile{UserID: userID}}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderEmail, input.Email).
			Return(authRecord, nil)
		fx.hasher.EXPECT().Check(input.Password, "stored_hash").Return(true)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockRefreshRepo.EXPECT().CountActiveSessionsByUserID(ctx, userID).Return(5, nil)
	})

	output, err := fx.service.Login(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestUserService_LoginWithGoogle_CreatesAccountOnFirstSignIn(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.GoogleLoginInput{IDToken: "google-id-token", Role: entity.RoleSeeker}

	oauthUser := &service.OAuthUser{
		ProviderUserID: "google-sub-123",
		Email:          "wanjiru@example.com",
		EmailVerified:  true,
		FirstName:      "Wanjiru",
		LastName:       "Kamau",
	}

	fx.oauthVerifier.EXPECT().VerifyIDToken(ctx, input.IDToken).Return(oauthUser, nil)

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockAuthRepo := mockRepo.NewMockAuthRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().AuthRepo().Return(mockAuthRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockAuthRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderGoogle, oauthUser.ProviderUserID).
			Return(nil, repository.ErrAuthNotFound)
		mockUserRepo.EXPECT().
			FindByEmail(ctx, oauthUser.Email).
			Return(nil, repository.ErrUserNotFound)

		var createdID uuid.UUID
		mockUserRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(ctx context.Context, user *entity.User) {
				user.ID = uuid.New()
				createdID = user.ID
				assert.NotNil(t, user.SeekerProfile)
			}).
			Return(nil)
		mockAuthRepo.EXPECT().
			CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
			Run(func(ctx context.Context, auth *entity.Authentication) {
				assert.Equal(t, entity.ProviderGoogle, auth.Provider)
				assert.Equal(t, oauthUser.ProviderUserID, auth.ProviderUserID)
			}).
			Return(nil)

		mockUserRepo.EXPECT().
			FindByID(ctx, mock.AnythingOfType("uuid.UUID")).
			RunAndReturn(func(ctx context.Context, id uuid.UUID) (*entity.User, error) {
				return &entity.User{
					ID:            createdID,
					Email:         oauthUser.Email,
					FirstName:     oauthUser.FirstName,
					SeekerProfile: &entity.SeekerProfile{UserID: createdID},
				}, nil
			})
		mockRefreshRepo.EXPECT().
			CountActiveSessionsByUserID(ctx, mock.AnythingOfType("uuid.UUID")).
			Return(0, nil)

		fx.tokenService.EXPECT().
			GenerateTokens(mock.AnythingOfType("uuid.UUID"), []string{"seeker"}).
			Return("access_token", "refresh_token", nil)
		fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

		mockRefreshRepo.EXPECT().
			CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
			Return(nil)
	})

	output, err := fx.service.LoginWithGoogle(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, oauthUser.Email, output.User.Email)
}

func TestUserService_LoginWithGoogle_UnverifiedEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.GoogleLoginInput{IDToken: "google-id-token"}

	fx.oauthVerifier.EXPECT().
		VerifyIDToken(ctx, input.IDToken).
		Return(&service.OAuthUser{Email: "wanjiru@example.com", EmailVerified: false}, nil)

	output, err := fx.service.LoginWithGoogle(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrOAuthTokenInvalid))
}

func TestUserService_Refresh_RotatesToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	recordID := uuid.New()
	user := &entity.User{ID: userID, SeekerProfile: &entity.SeekerProfile{UserID: userID}}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().
			FindRefreshTokenByHash(ctx, hashRefreshToken("old_refresh")).
			Return(&entity.RefreshToken{ID: recordID, UserID: userID}, nil)
		mockUserRepo.EXPECT().FindByID(ctx, userID).Return(user, nil)
		mockRefreshRepo.EXPECT().DeleteRefreshToken(ctx, recordID).Return(nil)

		fx.tokenService.EXPECT().
			GenerateTokens(userID, []string{"seeker"}).
			Return("new_access", "new_refresh", nil)
		fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(7 * 24 * time.Hour)

		mockRefreshRepo.EXPECT().
			CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
			Run(func(ctx context.Context, token *entity.RefreshToken) {
				assert.Equal(t, hashRefreshToken("new_refresh"), token.TokenHash)
			}).
			Return(nil)
	})

	output, err := fx.service.Refresh(ctx, "old_refresh")

	require.NoError(t, err)
	assert.Equal(t, "new_access", output.AccessToken)
	assert.Equal(t, "new_refresh", output.RefreshToken)
}

func TestUserService_Refresh_UnknownToken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

		factory.EXPECT().UserRepo().Return(mockUserRepo)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().
			FindRefreshTokenByHash(ctx, mock.AnythingOfType("string")).
			Return(nil, repository.ErrRefreshTokenNotFound)
	})

	output, err := fx.service.Refresh(ctx, "bogus")

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
}

func TestUserService_Logout_UnknownTokenIsIdempotent(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(mockRefreshRepo)

		mockRefreshRepo.EXPECT().
			DeleteRefreshTokenByHash(ctx, hashRefreshToken("gone")).
			Return(repository.ErrRefreshTokenNotFound)
	})

	err := fx.service.Logout(ctx, "gone")

	require.NoError(t, err)
}

func TestUserService_UpdateSeekerProfile_MissingProfile(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateSeekerProfileInput{UserID: userID, Location: "Mombasa"}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().
			FindByID(ctx, userID).
			Return(&entity.User{ID: userID, EmployerProfile: &entity.EmployerProfile{UserID: userID}}, nil)
	})

	user, err := fx.service.UpdateSeekerProfile(ctx, input)

	assert.Error(t, err)
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestUserService_UpdateEmployerProfile_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	userID := uuid.New()
	input := &usecase.UpdateEmployerProfileInput{
		UserID:      userID,
		CompanyName: "New Name Ltd",
		Industry:    "Construction",
	}

	fx.onExecute(t, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockUserRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(mockUserRepo)

		mockUserRepo.EXPECT().
			FindByID(ctx, userID).
			Return(&entity.User{ID: userID, EmployerProfile: &entity.EmployerProfile{UserID: userID}}, nil)
		mockUserRepo.EXPECT().
			Update(ctx, mock.AnythingOfType("*entity.User")).
			Return(nil)
	})

	user, err := fx.service.UpdateEmployerProfile(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "New Name Ltd", user.EmployerProfile.CompanyName)
	assert.Equal(t, "Construction", user.EmployerProfile.Industry)
}
