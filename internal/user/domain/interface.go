package domain

import "context"

//go:generate mockgen -destination=../../mocks/mock_repository.go -package=mocks github.com/andersevenrud/userbase/internal/user/domain UserRepository,RefreshTokenRepository,MetadataRepository

type UserRepository interface {
	// GetActiveByEmail returns the non-deleted user with the given email,
	// or nil when no such user exists.
	GetActiveByEmail(ctx context.Context, email string) (*User, error)
	GetByGUID(ctx context.Context, guid string) (*User, error)
	UpdateLastLogin(ctx context.Context, userID int64) error
	UpdateName(ctx context.Context, userID int64, name string) error
	UpdateAvatar(ctx context.Context, userID int64, filename string) error
}

type RefreshTokenRepository interface {
	// FetchOrCreate returns the refresh token for (user, deviceID), inserting
	// a new one when absent. The token string is never regenerated for an
	// existing row.
	FetchOrCreate(ctx context.Context, user *User, deviceID string) (*RefreshToken, error)
	// Fetch resolves a token string to the row and its owning user.
	Fetch(ctx context.Context, token string) (*RefreshToken, *User, error)
	// Delete removes the row with the given token string and reports how many
	// rows were removed (0 or 1).
	Delete(ctx context.Context, token string) (int64, error)
}

type MetadataRepository interface {
	List(ctx context.Context, userID int64) ([]Metadata, error)
	Fetch(ctx context.Context, userID int64, key string) (*Metadata, error)
	Insert(ctx context.Context, userID int64, key, value string) error
	Update(ctx context.Context, userID int64, key, value string) (int64, error)
	Delete(ctx context.Context, userID int64, key string) (int64, error)
}
