package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"villasol/internal/auth"
	apperrors "villasol/internal/errors"
	"villasol/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByRefreshToken(ctx context.Context, token string) (*model.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID uint, token *string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func newTestJWTService() *auth.JWTService {
	return auth.NewJWTService("access-secret", "refresh-secret")
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name      string
		username  string
		setupMock func(repo *MockUserRepository)
		wantErr   error
	}{
		{
			name:     "new username registers successfully",
			username: "concierge",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByUsername", mock.Anything, "concierge").Return(nil, gorm.ErrRecordNotFound)
				repo.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
		},
		{
			name:     "taken username is rejected",
			username: "admin",
			setupMock: func(repo *MockUserRepository) {
				repo.On("FindByUsername", mock.Anything, "admin").Return(&model.User{ID: 1, Username: "admin"}, nil)
			},
			wantErr: apperrors.ErrUsernameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockUserRepository)
			tt.setupMock(repo)
			svc := NewAuthService(repo, newTestJWTService())

			user, err := svc.Register(context.Background(), tt.username, "secret123")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, user)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				assert.NotEqual(t, "secret123", user.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")))
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	jwtService := newTestJWTService()
	storedUser := &model.User{ID: 7, Username: "admin", PasswordHash: hashPassword(t, "secret123")}

	t.Run("register then login issues a verifiable access token", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", mock.Anything, "admin").Return(storedUser, nil)
		repo.On("UpdateRefreshToken", mock.Anything, uint(7), mock.AnythingOfType("*string")).Return(nil)
		svc := NewAuthService(repo, jwtService)

		accessToken, refreshToken, user, err := svc.Login(context.Background(), "admin", "secret123")

		require.NoError(t, err)
		assert.Equal(t, "admin", user.Username)
		assert.NotEmpty(t, refreshToken)

		claims, err := jwtService.ValidateAccessToken(accessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
		assert.Equal(t, "admin", claims.Username)

		// The refresh token is persisted server-side, not just signed.
		repo.AssertCalled(t, "UpdateRefreshToken", mock.Anything, uint(7), mock.MatchedBy(func(token *string) bool {
			return token != nil && *token == refreshToken
		}))
	})

	t.Run("wrong password never issues tokens", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", mock.Anything, "admin").Return(storedUser, nil)
		svc := NewAuthService(repo, jwtService)

		accessToken, refreshToken, _, err := svc.Login(context.Background(), "admin", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Empty(t, accessToken)
		assert.Empty(t, refreshToken)
		repo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown username reports not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
		svc := NewAuthService(repo, jwtService)

		_, _, _, err := svc.Login(context.Background(), "ghost", "secret123")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	jwtService := newTestJWTService()
	refreshToken, err := jwtService.GenerateRefreshToken(7, "admin")
	require.NoError(t, err)
	storedUser := &model.User{ID: 7, Username: "admin", RefreshToken: &refreshToken}

	t.Run("valid stored token mints a new access token", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByRefreshToken", mock.Anything, refreshToken).Return(storedUser, nil)
		svc := NewAuthService(repo, jwtService)

		accessToken, err := svc.Refresh(context.Background(), refreshToken)

		require.NoError(t, err)
		claims, err := jwtService.ValidateAccessToken(accessToken)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
	})

	t.Run("token unknown to the store is forbidden even if it verifies", func(t *testing.T) {
		// Simulates refresh after logout: the token is still
		// cryptographically valid but no row matches it anymore.
		repo := new(MockUserRepository)
		repo.On("FindByRefreshToken", mock.Anything, refreshToken).Return(nil, gorm.ErrRecordNotFound)
		svc := NewAuthService(repo, jwtService)

		_, err := svc.Refresh(context.Background(), refreshToken)

		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})

	t.Run("stored token signed with the wrong secret is forbidden", func(t *testing.T) {
		otherService := auth.NewJWTService("access-secret", "other-refresh-secret")
		foreignToken, err := otherService.GenerateRefreshToken(7, "admin")
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("FindByRefreshToken", mock.Anything, foreignToken).
			Return(&model.User{ID: 7, Username: "admin", RefreshToken: &foreignToken}, nil)
		svc := NewAuthService(repo, jwtService)

		_, err = svc.Refresh(context.Background(), foreignToken)

		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})
}

func TestAuthService_Logout(t *testing.T) {
	jwtService := newTestJWTService()
	refreshToken, err := jwtService.GenerateRefreshToken(7, "admin")
	require.NoError(t, err)

	t.Run("known session is cleared", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByRefreshToken", mock.Anything, refreshToken).
			Return(&model.User{ID: 7, Username: "admin", RefreshToken: &refreshToken}, nil)
		repo.On("UpdateRefreshToken", mock.Anything, uint(7), (*string)(nil)).Return(nil)
		svc := NewAuthService(repo, jwtService)

		require.NoError(t, svc.Logout(context.Background(), refreshToken))
		repo.AssertExpectations(t)
	})

	t.Run("unknown token is a successful no-op", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByRefreshToken", mock.Anything, "gone").Return(nil, gorm.ErrRecordNotFound)
		svc := NewAuthService(repo, jwtService)

		assert.NoError(t, svc.Logout(context.Background(), "gone"))
		repo.AssertNotCalled(t, "UpdateRefreshToken", mock.Anything, mock.Anything, mock.Anything)
	})
}
