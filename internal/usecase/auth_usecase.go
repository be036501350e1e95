// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"inventory/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an operator account.
type RegisterInput struct {
	Firstname string
	Lastname  string
	Email     string
	Password  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// ResetPasswordInput carries the reset token from the emailed link and the new password.
type ResetPasswordInput struct {
	Token    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the session token issued at login.
type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUsecase defines account and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// Verify resolves a session token to the user it was issued for.
	Verify(ctx context.Context, token string) (*entity.User, error)

	// ForgotPassword emails a short-lived reset link to the account owner.
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error

	ListUsers(ctx context.Context) ([]*entity.User, error)
}
