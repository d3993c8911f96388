package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	autherror "github.com/andersevenrud/userbase/internal/errors"
	"github.com/andersevenrud/userbase/internal/mocks"
	"github.com/andersevenrud/userbase/internal/user/domain"
	"github.com/andersevenrud/userbase/internal/user/dto"
	"github.com/andersevenrud/userbase/internal/user/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestUser(t *testing.T, password string) *domain.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:       1,
		GUID:     "guid-123",
		Email:    "user@example.com",
		Name:     "test user",
		Password: string(hash),
	}
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockRefreshTokenRepository(ctrl)
	tokenService := service.NewTokenService("test-secret", 30)
	authService := service.NewAuthService(mockUsers, mockTokens, tokenService)

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		user := newTestUser(t, "string")
		input := dto.LoginInput{Email: user.Email, Password: "string", GUID: "device-abc"}
		refreshToken := &domain.RefreshToken{ID: 10, UserID: user.ID, DeviceID: input.GUID, Token: "opaque-token"}

		mockUsers.EXPECT().GetActiveByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockTokens.EXPECT().FetchOrCreate(gomock.Any(), user, input.GUID).Return(refreshToken, nil)
		mockUsers.EXPECT().UpdateLastLogin(gomock.Any(), user.ID).Return(nil)

		response, err := authService.Login(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, "opaque-token", response.RefreshToken)
		assert.Equal(t, user.GUID, response.User.GUID)
		assert.Equal(t, user.Email, response.User.Email)

		claims, err := tokenService.Verify(response.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.GUID, claims.GUID)
		assert.Equal(t, user.Email, claims.Email)
		assert.Equal(t, user.Name, claims.Name)
	})

	t.Run("unknown email and wrong password are indistinguishable", func(t *testing.T) {
		user := newTestUser(t, "string")

		mockUsers.EXPECT().GetActiveByEmail(gomock.Any(), "nobody@example.com").Return(nil, nil)
		_, unknownErr := authService.Login(ctx, dto.LoginInput{Email: "nobody@example.com", Password: "string"})

		mockUsers.EXPECT().GetActiveByEmail(gomock.Any(), user.Email).Return(user, nil)
		_, wrongErr := authService.Login(ctx, dto.LoginInput{Email: user.Email, Password: "wrong"})

		assert.ErrorIs(t, unknownErr, autherror.ErrAuthenticationFailed)
		assert.ErrorIs(t, wrongErr, autherror.ErrAuthenticationFailed)
		assert.Equal(t, unknownErr, wrongErr)
	})

	t.Run("last login failure does not fail the login", func(t *testing.T) {
		user := newTestUser(t, "string")
		input := dto.LoginInput{Email: user.Email, Password: "string"}
		refreshToken := &domain.RefreshToken{Token: "opaque-token"}

		mockUsers.EXPECT().GetActiveByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockTokens.EXPECT().FetchOrCreate(gomock.Any(), user, "").Return(refreshToken, nil)
		mockUsers.EXPECT().UpdateLastLogin(gomock.Any(), user.ID).Return(errors.New("db error"))

		response, err := authService.Login(ctx, input)
		require.NoError(t, err)
		assert.NotEmpty(t, response.AccessToken)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		user := newTestUser(t, "string")
		dbErr := errors.New("db error")

		mockUsers.EXPECT().GetActiveByEmail(gomock.Any(), user.Email).Return(user, nil)
		mockTokens.EXPECT().FetchOrCreate(gomock.Any(), user, "").Return(nil, dbErr)

		_, err := authService.Login(ctx, dto.LoginInput{Email: user.Email, Password: "string"})
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, autherror.ErrAuthenticationFailed)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockRefreshTokenRepository(ctrl)
	tokenService := service.NewTokenService("test-secret", 30)
	authService := service.NewAuthService(mockUsers, mockTokens, tokenService)

	ctx := context.Background()

	t.Run("issues a new access token without rotating the refresh token", func(t *testing.T) {
		user := newTestUser(t, "string")
		refreshToken := &domain.RefreshToken{ID: 10, UserID: user.ID, Token: "opaque-token"}

		mockTokens.EXPECT().Fetch(gomock.Any(), "opaque-token").Return(refreshToken, user, nil)

		before := time.Now()
		response, err := authService.Refresh(ctx, "opaque-token")
		require.NoError(t, err)

		claims, err := tokenService.Verify(response.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, user.GUID, claims.GUID)
		assert.True(t, claims.ExpiresAt.Time.After(before))
	})

	t.Run("unknown token", func(t *testing.T) {
		mockTokens.EXPECT().Fetch(gomock.Any(), "missing").Return(nil, nil, nil)

		_, err := authService.Refresh(ctx, "missing")
		assert.ErrorIs(t, err, autherror.ErrTokenNotFound)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		dbErr := errors.New("db error")
		mockTokens.EXPECT().Fetch(gomock.Any(), "opaque-token").Return(nil, nil, dbErr)

		_, err := authService.Refresh(ctx, "opaque-token")
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestAuthService_Reject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUsers := mocks.NewMockUserRepository(ctrl)
	mockTokens := mocks.NewMockRefreshTokenRepository(ctrl)
	authService := service.NewAuthService(mockUsers, mockTokens, service.NewTokenService("test-secret", 30))

	ctx := context.Background()

	t.Run("success then not found", func(t *testing.T) {
		gomock.InOrder(
			mockTokens.EXPECT().Delete(gomock.Any(), "opaque-token").Return(int64(1), nil),
			mockTokens.EXPECT().Delete(gomock.Any(), "opaque-token").Return(int64(0), nil),
		)

		require.NoError(t, authService.Reject(ctx, "opaque-token"))
		assert.ErrorIs(t, authService.Reject(ctx, "opaque-token"), autherror.ErrTokenNotFound)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		dbErr := errors.New("db error")
		mockTokens.EXPECT().Delete(gomock.Any(), "opaque-token").Return(int64(0), dbErr)

		assert.ErrorIs(t, authService.Reject(ctx, "opaque-token"), dbErr)
	})
}
