package handler

import (
	"log/slog"
	"net/http"
	"time"

	"inventory/config"
	"inventory/internal/delivery/api/middleware"
	"inventory/internal/delivery/api/response"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC         usecase.AuthUsecase
	AuthMiddleware *middleware.AuthMiddleware
	Config         *config.Config
	Logger         *slog.Logger
}

// AuthHandler serves account and session endpoints.
type AuthHandler struct {
	authUC       usecase.AuthUsecase
	cookieName   string
	cookieSecure bool
	tokenInBody  bool
	logger       *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	h := &AuthHandler{
		authUC:     params.AuthUC,
		cookieName: params.AuthMiddleware.CookieName(),
		logger:     params.Logger,
	}
	if auth := params.Config.Auth; auth != nil {
		h.cookieSecure = auth.CookieSecure
		h.tokenInBody = auth.TokenInBody
	}

	return h
}

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	Firstname string `json:"firstname" validate:"required"`
	Lastname  string `json:"lastname" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ForgotPasswordRequest represents the request body for requesting a reset link
type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required"`
}

// ResetPasswordRequest represents the request body for setting a new password
type ResetPasswordRequest struct {
	Password string `json:"password" validate:"required"`
}

// Signup handles account registration
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	_, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		return err
	}

	return response.Message(c, http.StatusCreated, "User registered successfully")
}

// Login checks the credentials and hands out the session token as an HTTP-only cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    output.Token,
		Path:     "/",
		Expires:  output.ExpiresAt,
		MaxAge:   int(time.Until(output.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	body := response.Envelope{Message: "Login successful", User: output.User}
	if h.tokenInBody {
		body.Token = output.Token
	}

	return response.JSON(c, http.StatusOK, body)
}

// Verify returns the user the session token belongs to.
func (h *AuthHandler) Verify(c echo.Context) error {
	user, ok := middleware.GetUser(c)
	if !ok {
		return domainerrors.ErrTokenMissing
	}

	return response.JSON(c, http.StatusOK, response.Envelope{User: user})
}

// CurrentUser returns the public profile of the authenticated user.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	return h.Verify(c)
}

// Logout clears the session cookie. Tokens are stateless, so a copy held elsewhere stays valid until it expires.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	return response.Message(c, http.StatusOK, "Logged out")
}

// ForgotPassword emails a reset link to the account owner
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.authUC.ForgotPassword(c.Request().Context(), req.Email); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Email sent")
}

// ResetPassword sets a new password using the token from the emailed link
func (h *AuthHandler) ResetPassword(c echo.Context) error {
	var req ResetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	err := h.authUC.ResetPassword(c.Request().Context(), &usecase.ResetPasswordInput{
		Token:    c.Param("token"),
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "Password updated successfully")
}

// ListUsers returns every account without password hashes
func (h *AuthHandler) ListUsers(c echo.Context) error {
	users, err := h.authUC.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, users)
}
