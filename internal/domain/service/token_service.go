package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the JWT tokens.
// Session tokens carry the email, reset tokens carry the user ID.
type Claims struct {
	Email  string `json:"email,omitempty"`
	UserID string `json:"id,omitempty"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateAccessToken issues a session token bound to the user's email.
	GenerateAccessToken(email string) (string, error)

	// GenerateResetToken issues a short-lived token that only authorizes a password reset.
	GenerateResetToken(userID uuid.UUID) (string, error)

	// ValidateToken checks signature, expiry and that the token is of expectedType.
	// Failures are returned as ErrTokenExpired or ErrTokenInvalid app errors.
	ValidateToken(tokenString, expectedType string) (*Claims, error)

	// AccessTokenTTL returns the configured session token lifetime.
	AccessTokenTTL() time.Duration
}
