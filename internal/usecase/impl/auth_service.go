// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/constants"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	"inventory/internal/domain/repository"
	"inventory/internal/domain/service"
	"inventory/internal/usecase"
	"inventory/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const resetMailSubject = "Reset your password"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo        repository.UserRepository
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	mailer          service.Mailer
	frontendBaseURL string
	resetTokenTTL   time.Duration
	now             func() time.Time
	logger          *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		now:          time.Now,
		logger:       params.Logger,
	}
	if params.Config != nil {
		if params.Config.Mail != nil {
			srv.frontendBaseURL = strings.TrimRight(params.Config.Mail.FrontendBaseURL, "/")
		}
		if params.Config.Auth != nil {
			srv.resetTokenTTL = params.Config.Auth.ResetTokenTTL
		}
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an Admin account. Only the bcrypt hash of the password is stored.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Firstname:    input.Firstname,
		Lastname:     input.Lastname,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}
	if err := srv.userRepo.Create(ctx, user); err != nil {
		// Lost the race against a concurrent signup with the same email.
		if errors.Is(err, repository.ErrUserEmailTaken) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	return user, nil
}

// Login checks the credentials and issues a session token bound to the email.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Password mismatch on login", slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	token, err := srv.tokenService.GenerateAccessToken(user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	return &usecase.LoginOutput{
		Token:     token,
		ExpiresAt: srv.now().Add(srv.tokenService.AccessTokenTTL()),
		User:      user,
	}, nil
}

// Verify validates a session token and loads the user it names.
func (srv *authService) Verify(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, domainerrors.ErrTokenMissing
	}

	claims, err := srv.tokenService.ValidateToken(token, constants.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("token owner no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load token owner")
	}

	return user, nil
}

// ForgotPassword mails a reset link carrying a reset token bound to the user ID.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("no account for email")
		}

		return errors.Wrap(err, "failed to find user by email")
	}

	token, err := srv.tokenService.GenerateResetToken(user.ID)
	if err != nil {
		return errors.Wrap(err, "failed to generate reset token")
	}

	mail := &service.Mail{
		To:      user.Email,
		Subject: resetMailSubject,
		Body:    srv.resetMailBody(user, token),
	}
	if err := srv.mailer.Send(ctx, mail); err != nil {
		srv.log(ctx).Error("Failed to send reset mail", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return domainerrors.ErrMailDeliveryFailed.WrapMessage(err.Error())
	}

	srv.log(ctx).Info("Password reset mail sent", slog.String("userID", user.ID.String()))

	return nil
}

func (srv *authService) resetMailBody(user *entity.User, token string) string {
	link := srv.frontendBaseURL + "/reset-password/" + token

	return fmt.Sprintf(
		"Hello %s,\n\nUse the link below to reset your password. It expires in %s.\n\n%s\n",
		user.FullName(), util.FormatDuration(srv.resetTokenTTL), link,
	)
}

// ResetPassword accepts only reset tokens. The token stays valid until it expires.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	claims, err := srv.tokenService.ValidateToken(input.Token, constants.TokenTypeReset)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return domainerrors.ErrTokenInvalid.WrapMessage("reset token carries no user id")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	if err := srv.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("reset token owner no longer exists")
		}

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password reset", slog.String("userID", userID.String()))

	return nil
}

func (srv *authService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}
