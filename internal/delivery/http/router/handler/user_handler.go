// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"skillconnect/internal/delivery/http/response"
	"skillconnect/internal/delivery/http/session"
	"skillconnect/internal/domain/entity"
	"skillconnect/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account and authentication handlers.
type UserHandler struct {
	uc           usecase.UserUsecase
	sessionStore session.Store
	logger       *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, sessionStore session.Store, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:           uc,
		sessionStore: sessionStore,
		logger:       logger,
	}
}

type registerSeekerRequest struct {
	FirstName       string   `json:"firstName" validate:"required"`
	LastName        string   `json:"lastName" validate:"required"`
	Email           string   `json:"email" validate:"required,email"`
	Password        string   `json:"password" validate:"required,min=8"`
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears" validate:"gte=0"`
	Location        string   `json:"location"`
	Bio             string   `json:"bio"`
}

type registerEmployerRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=8"`
	CompanyName string `json:"companyName" validate:"required"`
	CompanySize string `json:"companySize"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type googleLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
	Role    string `json:"role" validate:"omitempty,oneof=seeker employer"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

type updateSeekerProfileRequest struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experienceYears" validate:"gte=0"`
	Location        string   `json:"location"`
	Bio             string   `json:"bio"`
}

type updateEmployerProfileRequest struct {
	CompanyName string `json:"companyName" validate:"required"`
	CompanySize string `json:"companySize"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
}

// RegisterSeeker handles the seeker registration request.
func (h *UserHandler) RegisterSeeker(c echo.Context) error {
	var req registerSeekerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterSeeker(c.Request().Context(), &usecase.RegisterSeekerInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Password:        req.Password,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		Bio:             req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Seeker registered successfully")
}

// RegisterEmployer handles the employer registration request.
func (h *UserHandler) RegisterEmployer(c echo.Context) error {
	var req registerEmployerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.RegisterEmployer(c.Request().Context(), &usecase.RegisterEmployerInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		Password:    req.Password,
		CompanyName: req.CompanyName,
		CompanySize: req.CompanySize,
		Industry:    req.Industry,
		Location:    req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User, "Employer registered successfully")
}

// Login handles the email/password login request. On success it persists the
// session and profile records on the client and returns the token pair.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondAuthenticated(c, output, "Login successful")
}

// GoogleLogin handles sign-in with a Google ID token.
func (h *UserHandler) GoogleLogin(c echo.Context) error {
	var req googleLoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.LoginWithGoogle(c.Request().Context(), &usecase.GoogleLoginInput{
		IDToken: req.IDToken,
		Role:    entity.Role(req.Role),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return h.respondAuthenticated(c, output, "Login successful")
}

// Refresh handles the token refresh request.
func (h *UserHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh token input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Token refreshed successfully")
}

// Logout ends the session and clears the client-side records.
func (h *UserHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid logout input")
	}

	if req.RefreshToken != "" {
		if err := h.uc.Logout(c.Request().Context(), req.RefreshToken); err != nil {
			return errors.WithStack(err)
		}
	}

	h.sessionStore.Clear(c)

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// GetProfile returns the authenticated user's full profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	user, err := h.uc.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateSeekerProfile updates the authenticated seeker's profile.
func (h *UserHandler) UpdateSeekerProfile(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req updateSeekerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateSeekerProfile(c.Request().Context(), &usecase.UpdateSeekerProfileInput{
		UserID:          userID,
		Skills:          req.Skills,
		ExperienceYears: req.ExperienceYears,
		Location:        req.Location,
		Bio:             req.Bio,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// UpdateEmployerProfile updates the authenticated employer's profile.
func (h *UserHandler) UpdateEmployerProfile(c echo.Context) error {
	userID, err := authenticatedUserID(c)
	if err != nil {
		return err
	}

	var req updateEmployerProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.uc.UpdateEmployerProfile(c.Request().Context(), &usecase.UpdateEmployerProfileInput{
		UserID:      userID,
		CompanyName: req.CompanyName,
		CompanySize: req.CompanySize,
		Industry:    req.Industry,
		Location:    req.Location,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// respondAuthenticated writes the session cookies and returns the token pair.
func (h *UserHandler) respondAuthenticated(c echo.Context, output *usecase.AuthOutput, message string) error {
	if err := h.sessionStore.SetSession(c, output.Session, output.Profile); err != nil {
		return errors.Wrap(err, "failed to persist session records")
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"accessToken":  output.AccessToken,
		"refreshToken": output.RefreshToken,
		"user":         output.User,
	}, message)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

// authenticatedUserID reads the user ID placed in context by the auth middleware.
func authenticatedUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("userID").(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	return userID, nil
}
