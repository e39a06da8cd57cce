package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "villasol/internal/errors"
	"villasol/internal/model"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, username, password string) (*model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (string, string, *model.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(2) == nil {
		return args.String(0), args.String(1), nil, args.Error(3)
	}
	return args.String(0), args.String(1), args.Get(2).(*model.User), args.Error(3)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) Logout(ctx context.Context, refreshToken string) error {
	args := m.Called(ctx, refreshToken)
	return args.Error(0)
}

type testValidator struct {
	validator *validator.Validate
}

func (v *testValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

func newAuthTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = &testValidator{validator: validator.New()}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func findCookie(res *http.Response, name string) *http.Cookie {
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	return nil
}

func TestAuthHandler_Login_SetsRefreshCookie(t *testing.T) {
	svc := new(MockAuthService)
	svc.On("Login", mock.Anything, "admin", "secret123").
		Return("access-token", "refresh-token", &model.User{ID: 1, Username: "admin"}, nil)
	h := NewAuthHandler(svc, "villasol.example")

	c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"secret123"}`)
	require.NoError(t, h.Login(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "access-token")
	assert.NotContains(t, rec.Body.String(), "refresh-token", "refresh token travels only in the cookie")

	cookie := findCookie(rec.Result(), "refreshToken")
	require.NotNil(t, cookie)
	assert.Equal(t, "refresh-token", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteNoneMode, cookie.SameSite)
	assert.Equal(t, "villasol.example", cookie.Domain)
	assert.Equal(t, 24*60*60, cookie.MaxAge)
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("missing cookie is unauthorized", func(t *testing.T) {
		svc := new(MockAuthService)
		h := NewAuthHandler(svc, "")

		c, _ := newAuthTestContext(t, http.MethodPost, "/api/auth/refresh", "")
		err := h.Refresh(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		svc.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything)
	})

	t.Run("revoked session is forbidden", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Refresh", mock.Anything, "stale").Return("", apperrors.ErrSessionNotFound)
		h := NewAuthHandler(svc, "")

		c, _ := newAuthTestContext(t, http.MethodPost, "/api/auth/refresh", "")
		c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "stale"})
		err := h.Refresh(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusForbidden, httpErr.Code)
	})

	t.Run("valid cookie yields a fresh access token", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Refresh", mock.Anything, "good").Return("new-access", nil)
		h := NewAuthHandler(svc, "")

		c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/refresh", "")
		c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "good"})
		require.NoError(t, h.Refresh(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "new-access")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	t.Run("clears session and expires the cookie", func(t *testing.T) {
		svc := new(MockAuthService)
		svc.On("Logout", mock.Anything, "current").Return(nil)
		h := NewAuthHandler(svc, "")

		c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/logout", "")
		c.Request().AddCookie(&http.Cookie{Name: "refreshToken", Value: "current"})
		require.NoError(t, h.Logout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		cookie := findCookie(rec.Result(), "refreshToken")
		require.NotNil(t, cookie)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
	})

	t.Run("succeeds without a cookie", func(t *testing.T) {
		svc := new(MockAuthService)
		h := NewAuthHandler(svc, "")

		c, rec := newAuthTestContext(t, http.MethodPost, "/api/auth/logout", "")
		require.NoError(t, h.Logout(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		svc.AssertNotCalled(t, "Logout", mock.Anything, mock.Anything)
	})
}
