package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/andersevenrud/userbase/internal/user/domain"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, guid, email, name, password, COALESCE(avatar, ''), last_login_at, created_at, updated_at, deleted_at`

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetActiveByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE email = $1 AND deleted_at IS NULL
		LIMIT 1;
	`, userColumns)

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByGUID(ctx context.Context, guid string) (*domain.User, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM users
		WHERE guid = $1 AND deleted_at IS NULL
		LIMIT 1;
	`, userColumns)

	return r.scanUser(r.db.QueryRow(ctx, query, guid))
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET last_login_at = now() WHERE id = $1
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}

	return nil
}

func (r *UserRepository) UpdateName(ctx context.Context, userID int64, name string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET name = $2, updated_at = now() WHERE id = $1
	`, userID, name)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}

	return nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, userID int64, filename string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET avatar = $2, updated_at = now() WHERE id = $1
	`, userID, filename)
	if err != nil {
		return fmt.Errorf("failed to update avatar: %w", err)
	}

	return nil
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.GUID, &user.Email, &user.Name, &user.Password,
		&user.Avatar, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt, &user.DeletedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &user, nil
}
