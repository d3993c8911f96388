package service

import (
	"context"
	"os"

	autherror "github.com/andersevenrud/userbase/internal/errors"
	"github.com/andersevenrud/userbase/internal/storage"
	"github.com/andersevenrud/userbase/internal/user/domain"
	"github.com/andersevenrud/userbase/internal/user/dto"
	"github.com/google/uuid"
)

// UserService covers the profile and avatar operations on an already
// authenticated user.
type UserService struct {
	users domain.UserRepository
	files *storage.Storage
}

func NewUserService(users domain.UserRepository, files *storage.Storage) *UserService {
	return &UserService{users: users, files: files}
}

func (s *UserService) Profile(user *domain.User) dto.ProfileOutput {
	return dto.NewProfileOutput(user)
}

// UpdateProfile patches the mutable profile fields. Only the name can be
// changed; everything else in the body is ignored.
func (s *UserService) UpdateProfile(ctx context.Context, user *domain.User, input dto.UpdateProfileInput) error {
	return s.users.UpdateName(ctx, user.ID, input.Name)
}

// SaveAvatar thumbnails the uploaded file into storage under a fresh name
// and points the user's avatar at it. The temp upload is removed afterwards.
func (s *UserService) SaveAvatar(ctx context.Context, user *domain.User, uploadPath string) (string, error) {
	defer os.Remove(uploadPath)

	name := uuid.NewString() + ".png"
	if err := s.files.Thumbnail(uploadPath, s.files.Resolve(name)); err != nil {
		return "", err
	}

	if err := s.users.UpdateAvatar(ctx, user.ID, name); err != nil {
		return "", err
	}

	return name, nil
}

// AvatarPath resolves the user's stored avatar to a file path, or not-found
// when unset or missing on disk.
func (s *UserService) AvatarPath(user *domain.User) (string, error) {
	if !s.files.Exists(user.Avatar) {
		return "", autherror.ErrNotFound
	}

	return s.files.Resolve(user.Avatar), nil
}
