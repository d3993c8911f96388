package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/andersevenrud/userbase/internal/user/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/andersevenrud/userbase/internal/user/domain"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGenerator interface {
	Generate(user *domain.User) (string, error)
	Verify(tokenString string) (*JWTCustomClaims, error)
}

// TokenService mints and verifies the short-lived access tokens. It keeps no
// state beyond the process-wide signing secret and expiry.
type TokenService struct {
	Secret string
	Expiry time.Duration
}

type JWTCustomClaims struct {
	jwt.RegisteredClaims
	GUID  string `json:"guid"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

// Generate signs an access token carrying the user's public identity. The
// internal id is never embedded.
func (ts *TokenService) Generate(user *domain.User) (string, error) {
	now := time.Now()

	claims := JWTCustomClaims{
		GUID:  user.GUID,
		Email: user.Email,
		Name:  user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.Expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify parses and validates the given access token string. Expiry is
// checked explicitly against the exp claim in addition to the library's own
// validation.
func (ts *TokenService) Verify(tokenString string) (*JWTCustomClaims, error) {
	claims := &JWTCustomClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.Secret), nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	if claims.ExpiresAt == nil || !time.Now().Before(claims.ExpiresAt.Time) {
		return nil, fmt.Errorf("token expired")
	}

	return claims, nil
}
