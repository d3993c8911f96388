package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/andersevenrud/userbase/internal/user/domain"
	"github.com/jackc/pgx/v5"
)

type MetadataRepository struct {
	db DBTX
}

func NewMetadataRepository(db DBTX) *MetadataRepository {
	return &MetadataRepository{db: db}
}

func (r *MetadataRepository) List(ctx context.Context, userID int64) ([]domain.Metadata, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, key, value, created_at, updated_at
		FROM user_metadata
		WHERE user_id = $1
		ORDER BY key;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list metadata: %w", err)
	}
	defer rows.Close()

	var entries []domain.Metadata
	for rows.Next() {
		var m domain.Metadata
		if err := rows.Scan(&m.ID, &m.UserID, &m.Key, &m.Value, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan metadata row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}

func (r *MetadataRepository) Fetch(ctx context.Context, userID int64, key string) (*domain.Metadata, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, user_id, key, value, created_at, updated_at
		FROM user_metadata
		WHERE user_id = $1 AND key = $2
		LIMIT 1;
	`, userID, key)

	var m domain.Metadata
	err := row.Scan(&m.ID, &m.UserID, &m.Key, &m.Value, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return &m, nil
}

func (r *MetadataRepository) Insert(ctx context.Context, userID int64, key, value string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_metadata (user_id, key, value, created_at)
		VALUES ($1, $2, $3, now())
	`, userID, key, value)
	if err != nil {
		return fmt.Errorf("failed to insert metadata: %w", err)
	}

	return nil
}

func (r *MetadataRepository) Update(ctx context.Context, userID int64, key, value string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE user_metadata SET value = $3, updated_at = now()
		WHERE user_id = $1 AND key = $2
	`, userID, key, value)
	if err != nil {
		return 0, fmt.Errorf("failed to update metadata: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (r *MetadataRepository) Delete(ctx context.Context, userID int64, key string) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM user_metadata WHERE user_id = $1 AND key = $2
	`, userID, key)
	if err != nil {
		return 0, fmt.Errorf("failed to delete metadata: %w", err)
	}

	return tag.RowsAffected(), nil
}
