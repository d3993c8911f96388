package postgres

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/andersevenrud/userbase/internal/user/domain"
	"github.com/jackc/pgx/v5"
)

const refreshTokenColumns = `id, user_id, device_id, token, created_at, updated_at`

type RefreshTokenRepository struct {
	db DBTX
}

func NewRefreshTokenRepository(db DBTX) *RefreshTokenRepository {
	return &RefreshTokenRepository{db: db}
}

// FetchOrCreate returns the refresh token row for (user, deviceID). A new row
// with a fresh random token is inserted only when none exists; repeat logins
// from the same device keep their token. The unique constraint on
// (user_id, device_id) makes concurrent first logins converge on one row.
func (r *RefreshTokenRepository) FetchOrCreate(ctx context.Context, user *domain.User, deviceID string) (*domain.RefreshToken, error) {
	rt, err := r.fetchByDevice(ctx, user.ID, deviceID)
	if err != nil {
		return nil, err
	}
	if rt != nil {
		return rt, nil
	}

	secret, err := generateTokenString()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		INSERT INTO user_refresh_tokens (user_id, device_id, token, created_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (user_id, device_id) DO NOTHING
		RETURNING %s;
	`, refreshTokenColumns)

	rt, err = r.scanToken(r.db.QueryRow(ctx, query, user.ID, deviceID, secret))
	if err != nil {
		return nil, fmt.Errorf("failed to insert refresh token: %w", err)
	}
	if rt != nil {
		return rt, nil
	}

	// A concurrent login inserted first; return the winner.
	rt, err = r.fetchByDevice(ctx, user.ID, deviceID)
	if err != nil {
		return nil, err
	}
	if rt == nil {
		return nil, fmt.Errorf("refresh token for user %d vanished during insert", user.ID)
	}

	return rt, nil
}

// Fetch resolves a token string to its row and owning user in one query.
func (r *RefreshTokenRepository) Fetch(ctx context.Context, token string) (*domain.RefreshToken, *domain.User, error) {
	query := `
		SELECT rt.id, rt.user_id, rt.device_id, rt.token, rt.created_at, rt.updated_at,
		       u.id, u.guid, u.email, u.name, u.password, COALESCE(u.avatar, ''),
		       u.last_login_at, u.created_at, u.updated_at, u.deleted_at
		FROM user_refresh_tokens rt
		JOIN users u ON u.id = rt.user_id
		WHERE rt.token = $1
		LIMIT 1;
	`
	row := r.db.QueryRow(ctx, query, token)

	var rt domain.RefreshToken
	var user domain.User
	err := row.Scan(&rt.ID, &rt.UserID, &rt.DeviceID, &rt.Token, &rt.CreatedAt, &rt.UpdatedAt,
		&user.ID, &user.GUID, &user.Email, &user.Name, &user.Password, &user.Avatar,
		&user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt, &user.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, nil
		}

		return nil, nil, err
	}

	return &rt, &user, nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, token string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM user_refresh_tokens WHERE token = $1
	`, token)
	if err != nil {
		return 0, fmt.Errorf("failed to delete refresh token: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *RefreshTokenRepository) fetchByDevice(ctx context.Context, userID int64, deviceID string) (*domain.RefreshToken, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM user_refresh_tokens
		WHERE user_id = $1 AND device_id = $2
		LIMIT 1;
	`, refreshTokenColumns)

	rt, err := r.scanToken(r.db.QueryRow(ctx, query, userID, deviceID))
	if err != nil {
		return nil, fmt.Errorf("failed to get refresh token by device: %w", err)
	}

	return rt, nil
}

func (r *RefreshTokenRepository) scanToken(row pgx.Row) (*domain.RefreshToken, error) {
	var rt domain.RefreshToken
	err := row.Scan(&rt.ID, &rt.UserID, &rt.DeviceID, &rt.Token, &rt.CreatedAt, &rt.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &rt, nil
}

// generateTokenString returns an opaque bearer secret with 256 bits of
// entropy, base64url encoded.
func generateTokenString() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
