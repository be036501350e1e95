package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory/config"
	deliverycontext "inventory/internal/delivery/context"
	"inventory/internal/domain/entity"
	domainerrors "inventory/internal/domain/errors"
	mockUsecase "inventory/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthMiddleware(t *testing.T, authCfg *config.AuthConfig) (*AuthMiddleware, *mockUsecase.MockAuthUsecase) {
	t.Helper()

	authUC := mockUsecase.NewMockAuthUsecase(t)

	return NewAuthMiddleware(AuthMiddlewareParams{
		AuthUC: authUC,
		Config: &config.Config{Auth: authCfg},
	}), authUC
}

func serve(m echo.MiddlewareFunc, req *http.Request) (echo.Context, error) {
	c := echo.New().NewContext(req, httptest.NewRecorder())
	err := m(func(echo.Context) error { return nil })(c)

	return c, err
}

func TestAuthMiddleware_Tokens(t *testing.T) {
	m, _ := newAuthMiddleware(t, &config.AuthConfig{CookieName: "session"})
	assert.Equal(t, "session", m.CookieName())

	tests := []struct {
		name   string
		header func(r *http.Request)
		want   []string
	}{
		{name: "none", header: func(*http.Request) {}},
		{name: "cookie", header: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "session", Value: "from-cookie"})
		}, want: []string{"from-cookie"}},
		{name: "bearer", header: func(r *http.Request) {
			r.Header.Set(echo.HeaderAuthorization, "Bearer from-header")
		}, want: []string{"from-header"}},
		{name: "cookie tried before bearer", header: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "session", Value: "from-cookie"})
			r.Header.Set(echo.HeaderAuthorization, "Bearer from-header")
		}, want: []string{"from-cookie", "from-header"}},
		{name: "same token twice", header: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "session", Value: "same"})
			r.Header.Set(echo.HeaderAuthorization, "Bearer same")
		}, want: []string{"same"}},
		{name: "other cookie name ignored", header: func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: "token", Value: "stale"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.header(req)
			c := echo.New().NewContext(req, httptest.NewRecorder())

			assert.Equal(t, tt.want, m.Tokens(c))
		})
	}
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		m, _ := newAuthMiddleware(t, nil)

		_, err := serve(m.Authenticate, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
	})

	t.Run("verify failure is returned", func(t *testing.T) {
		m, authUC := newAuthMiddleware(t, nil)
		authUC.EXPECT().Verify(mock.Anything, "bad").Return(nil, domainerrors.ErrTokenInvalid)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer bad")

		_, err := serve(m.Authenticate, req)
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	})

	t.Run("user stored on context", func(t *testing.T) {
		m, authUC := newAuthMiddleware(t, nil)
		user := &entity.User{Email: "ada@example.com", Role: entity.RoleAdmin}
		authUC.EXPECT().Verify(mock.Anything, "good").Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: defaultCookieName, Value: "good"})

		c, err := serve(m.Authenticate, req)
		require.NoError(t, err)

		got, ok := GetUser(c)
		require.True(t, ok)
		assert.Equal(t, user, got)
		assert.Equal(t, "ada@example.com", deliverycontext.GetActor(c.Request().Context()))
	})
}

func TestAuthMiddleware_Authenticate_StaleCookie(t *testing.T) {
	t.Run("valid bearer behind an expired cookie", func(t *testing.T) {
		m, authUC := newAuthMiddleware(t, nil)
		user := &entity.User{Email: "ada@example.com", Role: entity.RoleAdmin}
		authUC.EXPECT().Verify(mock.Anything, "expired").Return(nil, domainerrors.ErrTokenExpired)
		authUC.EXPECT().Verify(mock.Anything, "fresh").Return(user, nil)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: defaultCookieName, Value: "expired"})
		req.Header.Set(echo.HeaderAuthorization, "Bearer fresh")

		c, err := serve(m.Authenticate, req)
		require.NoError(t, err)

		got, ok := GetUser(c)
		require.True(t, ok)
		assert.Equal(t, user, got)
	})

	t.Run("both invalid reports the cookie failure", func(t *testing.T) {
		m, authUC := newAuthMiddleware(t, nil)
		authUC.EXPECT().Verify(mock.Anything, "expired").Return(nil, domainerrors.ErrTokenExpired)
		authUC.EXPECT().Verify(mock.Anything, "garbage").Return(nil, domainerrors.ErrTokenInvalid)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: defaultCookieName, Value: "expired"})
		req.Header.Set(echo.HeaderAuthorization, "Bearer garbage")

		_, err := serve(m.Authenticate, req)
		assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
	})
}

func TestAuthMiddleware_ProtectResources(t *testing.T) {
	t.Run("open by default", func(t *testing.T) {
		m, _ := newAuthMiddleware(t, &config.AuthConfig{})

		_, err := serve(m.ProtectResources, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NoError(t, err)
	})

	t.Run("enabled requires a token", func(t *testing.T) {
		m, _ := newAuthMiddleware(t, &config.AuthConfig{ProtectResources: true})

		_, err := serve(m.ProtectResources, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.ErrorIs(t, err, domainerrors.ErrTokenMissing)
	})
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, _ := newAuthMiddleware(t, nil)
	requireAdmin := m.RequireRole(entity.RoleAdmin)

	run := func(user *entity.User) error {
		c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		if user != nil {
			c.Set(keyUser, user)
		}

		return requireAdmin(func(echo.Context) error { return nil })(c)
	}

	assert.NoError(t, run(&entity.User{Role: entity.RoleAdmin}))
	assert.ErrorIs(t, run(&entity.User{Role: entity.RoleStaff}), domainerrors.ErrForbidden)
	assert.ErrorIs(t, run(nil), domainerrors.ErrTokenMissing)
}
