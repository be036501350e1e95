// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"inventory/config"
	"inventory/internal/domain/constants"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   []byte
	tokenTTL time.Duration // Lifetime of session tokens.
	resetTTL time.Duration // Lifetime of password reset tokens.
	now      func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	if cfg.Auth == nil || cfg.Auth.TokenTTL <= 0 || cfg.Auth.ResetTokenTTL <= 0 {
		return nil, errors.New("jwt token lifetimes must be configured")
	}

	return &jwtService{
		secret:   []byte(cfg.SecretKey.Access),
		tokenTTL: cfg.Auth.TokenTTL,
		resetTTL: cfg.Auth.ResetTokenTTL,
		now:      time.Now,
	}, nil
}

// GenerateAccessToken creates a session token bound to email.
func (s *jwtService) GenerateAccessToken(email string) (string, error) {
	return s.sign(&service.Claims{
		Email:            email,
		Type:             constants.TokenTypeAccess,
		RegisteredClaims: s.registered(email, s.tokenTTL),
	})
}

// GenerateResetToken creates a password reset token bound to the user ID.
func (s *jwtService) GenerateResetToken(userID uuid.UUID) (string, error) {
	return s.sign(&service.Claims{
		UserID:           userID.String(),
		Type:             constants.TokenTypeReset,
		RegisteredClaims: s.registered(userID.String(), s.resetTTL),
	})
}

// ValidateToken parses tokenString and checks that it is an unexpired token of expectedType.
func (s *jwtService) ValidateToken(tokenString, expectedType string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WrapMessage("token expired")
		}

		return nil, domainerrors.ErrTokenInvalid.WrapMessage("failed to parse token structure")
	}

	if claims.Type != expectedType {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("unexpected token type " + claims.Type)
	}

	return claims, nil
}

// AccessTokenTTL returns the configured session token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.tokenTTL
}

func (s *jwtService) registered(subject string, ttl time.Duration) jwt.RegisteredClaims {
	now := s.now()

	return jwt.RegisteredClaims{
		ID:        uuid.NewString(),
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
}

func (s *jwtService) sign(claims *service.Claims) (string, error) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}
