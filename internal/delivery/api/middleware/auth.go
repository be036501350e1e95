package middleware

import (
	"slices"
	"strings"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	keyUser = "user"

	defaultCookieName = "token"
	bearerPrefix      = "Bearer "
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
}

// AuthMiddleware authenticates requests with the session token and checks roles.
type AuthMiddleware struct {
	authUC           usecase.AuthUsecase
	cookieName       string
	protectResources bool
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	m := &AuthMiddleware{
		authUC:     params.AuthUC,
		cookieName: defaultCookieName,
	}
	if auth := params.Config.Auth; auth != nil {
		if auth.CookieName != "" {
			m.cookieName = auth.CookieName
		}
		m.protectResources = auth.ProtectResources
	}

	return m
}

// CookieName is the cookie that carries the session token.
func (m *AuthMiddleware) CookieName() string {
	return m.cookieName
}

// Tokens returns the candidate session tokens of the request in the order they are tried:
// the cookie first, then the Authorization bearer header. Empty and repeated values are skipped.
func (m *AuthMiddleware) Tokens(c echo.Context) []string {
	var tokens []string
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		tokens = append(tokens, cookie.Value)
	}

	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if token, ok := strings.CutPrefix(header, bearerPrefix); ok {
		if token = strings.TrimSpace(token); token != "" && !slices.Contains(tokens, token) {
			tokens = append(tokens, token)
		}
	}

	return tokens
}

// Authenticate verifies the session token and stores the resolved user on the context.
// A stale cookie does not hide a valid bearer token; when every candidate fails, the
// error of the first one is returned.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokens := m.Tokens(c)
		if len(tokens) == 0 {
			return domainerrors.ErrTokenMissing
		}

		var firstErr error
		for _, token := range tokens {
			user, err := m.authUC.Verify(c.Request().Context(), token)
			if err != nil {
				if firstErr == nil {
					firstErr = err
				}

				continue
			}

			c.Set(keyUser, user)
			deliverycontext.SetActor(c, user.Email)

			return next(c)
		}

		return firstErr
	}
}

// ProtectResources authenticates resource routes only when auth.protectResources is set.
func (m *AuthMiddleware) ProtectResources(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.protectResources {
		return next
	}

	return m.Authenticate(next)
}

// RequireRole rejects callers whose role is not one of roles. It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.String())
	}
	details := "require role " + strings.Join(names, " or ")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := GetUser(c)
			if !ok {
				return domainerrors.ErrTokenMissing
			}

			if !user.HasAnyRole(roles...) {
				return domainerrors.ErrForbidden.WithDetails(details)
			}

			return next(c)
		}
	}
}

// GetUser returns the user stored by Authenticate.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(keyUser).(*entity.User)

	return user, ok && user != nil
}
