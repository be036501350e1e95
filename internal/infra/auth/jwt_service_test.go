package auth

import (
	"testing"
	"time"

	"inventory/config"
	"inventory/internal/domain/constants"
	domainerrors "inventory/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJWTTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			TokenTTL:      time.Hour,
			ResetTokenTTL: 5 * time.Minute,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func newTestJWTService(t *testing.T, now *time.Time) *jwtService {
	t.Helper()

	svc, err := NewJWTService(newJWTTestConfig())
	require.NoError(t, err)

	jwtSvc := svc.(*jwtService)
	if now != nil {
		jwtSvc.now = func() time.Time { return *now }
	}

	return jwtSvc
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := newTestJWTService(t, nil)

	token, err := svc.GenerateAccessToken("jane@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token, constants.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", claims.Email)
	assert.Equal(t, constants.TokenTypeAccess, claims.Type)
	assert.Empty(t, claims.UserID)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, &now)

	token, err := svc.GenerateAccessToken("jane@example.com")
	require.NoError(t, err)

	// Still valid just before expiry.
	now = now.Add(59 * time.Minute)
	_, err = svc.ValidateToken(token, constants.TokenTypeAccess)
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)
	claims, err := svc.ValidateToken(token, constants.TokenTypeAccess)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_ResetTokenScope(t *testing.T) {
	now := time.Now()
	svc := newTestJWTService(t, &now)
	userID := uuid.New()

	resetToken, err := svc.GenerateResetToken(userID)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resetToken, constants.TokenTypeReset)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)

	// A reset token must not pass as a session token, and vice versa.
	_, err = svc.ValidateToken(resetToken, constants.TokenTypeAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	accessToken, err := svc.GenerateAccessToken("jane@example.com")
	require.NoError(t, err)
	_, err = svc.ValidateToken(accessToken, constants.TokenTypeReset)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))

	// Reset tokens live for five minutes only.
	now = now.Add(6 * time.Minute)
	_, err = svc.ValidateToken(resetToken, constants.TokenTypeReset)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenExpired))
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc := newTestJWTService(t, nil)

	claims, err := svc.ValidateToken("clearly-not-a-jwt-token-format", constants.TokenTypeAccess)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestJWTService(t, nil)
	token, err := svc.GenerateAccessToken("jane@example.com")
	require.NoError(t, err)

	other := newJWTTestConfig()
	other.SecretKey.Access = "another_secret_entirely_different"
	otherSvc, err := NewJWTService(other)
	require.NoError(t, err)

	_, err = otherSvc.ValidateToken(token, constants.TokenTypeAccess)
	assert.True(t, errors.Is(err, domainerrors.ErrTokenInvalid))
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := newJWTTestConfig()
	cfg.SecretKey.Access = ""

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_AccessTokenTTL(t *testing.T) {
	cfg := newJWTTestConfig()
	cfg.Auth.TokenTTL = 48 * time.Hour

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, svc.AccessTokenTTL())
}
