package service

import (
	"context"

	autherror "github.com/andersevenrud/userbase/internal/errors"
	"github.com/andersevenrud/userbase/internal/user/domain"
	"github.com/andersevenrud/userbase/internal/user/dto"
)

// MetadataService is the per-user key/value store.
type MetadataService struct {
	metadata domain.MetadataRepository
}

func NewMetadataService(metadata domain.MetadataRepository) *MetadataService {
	return &MetadataService{metadata: metadata}
}

func (s *MetadataService) List(ctx context.Context, user *domain.User) ([]dto.MetadataOutput, error) {
	entries, err := s.metadata.List(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.MetadataOutput, 0, len(entries))
	for _, m := range entries {
		out = append(out, dto.MetadataOutput{Key: m.Key, Value: m.Value})
	}

	return out, nil
}

func (s *MetadataService) Get(ctx context.Context, user *domain.User, key string) (string, error) {
	m, err := s.metadata.Fetch(ctx, user.ID, key)
	if err != nil {
		return "", err
	}
	if m == nil {
		return "", autherror.ErrNotFound
	}

	return m.Value, nil
}

func (s *MetadataService) Create(ctx context.Context, user *domain.User, key, value string) error {
	found, err := s.metadata.Fetch(ctx, user.ID, key)
	if err != nil {
		return err
	}
	if found != nil {
		return autherror.ErrConflict
	}

	return s.metadata.Insert(ctx, user.ID, key, value)
}

func (s *MetadataService) Update(ctx context.Context, user *domain.User, key, value string) error {
	count, err := s.metadata.Update(ctx, user.ID, key, value)
	if err != nil {
		return err
	}
	if count == 0 {
		return autherror.ErrNotFound
	}

	return nil
}

func (s *MetadataService) Delete(ctx context.Context, user *domain.User, key string) error {
	count, err := s.metadata.Delete(ctx, user.ID, key)
	if err != nil {
		return err
	}
	if count == 0 {
		return autherror.ErrNotFound
	}

	return nil
}
