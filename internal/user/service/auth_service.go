package service

import (
	"context"
	"log"

	autherror "github.com/andersevenrud/userbase/internal/errors"
	"github.com/andersevenrud/userbase/internal/user/domain"
	"github.com/andersevenrud/userbase/internal/user/dto"
	"golang.org/x/crypto/bcrypt"
)

// AuthService coordinates the login, refresh and reject flows.
type AuthService struct {
	users        domain.UserRepository
	tokens       domain.RefreshTokenRepository
	tokenService TokenGenerator
}

func NewAuthService(users domain.UserRepository, tokens domain.RefreshTokenRepository, tokenService TokenGenerator) *AuthService {
	return &AuthService{
		users:        users,
		tokens:       tokens,
		tokenService: tokenService,
	}
}

// Login verifies credentials, binds a refresh token to the client device and
// issues an access token. The last-login write is best-effort and never
// fails the response.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	user, err := s.verifyCredentials(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrAuthenticationFailed
	}

	refreshToken, err := s.tokens.FetchOrCreate(ctx, user, input.GUID)
	if err != nil {
		return nil, err
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID); err != nil {
		log.Printf("warn: failed to update last login for user %s: %v", user.GUID, err)
	}

	accessToken, err := s.tokenService.Generate(user)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         dto.NewUserPayload(user),
	}, nil
}

// Refresh exchanges a refresh token for a new access token. The refresh
// token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, token string) (*dto.RefreshResponse, error) {
	refreshToken, user, err := s.tokens.Fetch(ctx, token)
	if err != nil {
		return nil, err
	}
	if refreshToken == nil {
		return nil, autherror.ErrTokenNotFound
	}

	accessToken, err := s.tokenService.Generate(user)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{AccessToken: accessToken}, nil
}

// Reject deletes a refresh token. A token that was already rejected reports
// not-found, so repeating the call is not idempotent-success.
func (s *AuthService) Reject(ctx context.Context, token string) error {
	count, err := s.tokens.Delete(ctx, token)
	if err != nil {
		return err
	}
	if count == 0 {
		return autherror.ErrTokenNotFound
	}

	return nil
}

// verifyCredentials returns the matching non-deleted user, or nil for both
// unknown email and wrong password so callers cannot tell the cases apart.
func (s *AuthService) verifyCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetActiveByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, nil
	}

	return user, nil
}
