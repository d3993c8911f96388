package service_test

import (
	"context"
	"testing"

	autherror "github.com/andersevenrud/userbase/internal/errors"
	"github.com/andersevenrud/userbase/internal/mocks"
	"github.com/andersevenrud/userbase/internal/user/domain"
	"github.com/andersevenrud/userbase/internal/user/service"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetadataService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetadata := mocks.NewMockMetadataRepository(ctrl)
	metadataService := service.NewMetadataService(mockMetadata)

	ctx := context.Background()
	user := &domain.User{ID: 1, GUID: "guid-123"}

	t.Run("list maps entries to key value pairs", func(t *testing.T) {
		entries := []domain.Metadata{
			{UserID: user.ID, Key: "preferences", Value: "{}"},
			{UserID: user.ID, Key: "theme", Value: "dark"},
		}
		mockMetadata.EXPECT().List(gomock.Any(), user.ID).Return(entries, nil)

		out, err := metadataService.List(ctx, user)
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "preferences", out[0].Key)
		assert.Equal(t, "dark", out[1].Value)
	})

	t.Run("get returns raw value", func(t *testing.T) {
		mockMetadata.EXPECT().Fetch(gomock.Any(), user.ID, "theme").
			Return(&domain.Metadata{Key: "theme", Value: "dark"}, nil)

		value, err := metadataService.Get(ctx, user, "theme")
		require.NoError(t, err)
		assert.Equal(t, "dark", value)
	})

	t.Run("get unknown key", func(t *testing.T) {
		mockMetadata.EXPECT().Fetch(gomock.Any(), user.ID, "missing").Return(nil, nil)

		_, err := metadataService.Get(ctx, user, "missing")
		assert.ErrorIs(t, err, autherror.ErrNotFound)
	})

	t.Run("create conflicts on existing key", func(t *testing.T) {
		mockMetadata.EXPECT().Fetch(gomock.Any(), user.ID, "theme").
			Return(&domain.Metadata{Key: "theme"}, nil)

		err := metadataService.Create(ctx, user, "theme", "dark")
		assert.ErrorIs(t, err, autherror.ErrConflict)
	})

	t.Run("create inserts new key", func(t *testing.T) {
		mockMetadata.EXPECT().Fetch(gomock.Any(), user.ID, "theme").Return(nil, nil)
		mockMetadata.EXPECT().Insert(gomock.Any(), user.ID, "theme", "dark").Return(nil)

		assert.NoError(t, metadataService.Create(ctx, user, "theme", "dark"))
	})

	t.Run("update unknown key", func(t *testing.T) {
		mockMetadata.EXPECT().Update(gomock.Any(), user.ID, "missing", "x").Return(int64(0), nil)

		err := metadataService.Update(ctx, user, "missing", "x")
		assert.ErrorIs(t, err, autherror.ErrNotFound)
	})

	t.Run("delete unknown key", func(t *testing.T) {
		mockMetadata.EXPECT().Delete(gomock.Any(), user.ID, "missing").Return(int64(0), nil)

		err := metadataService.Delete(ctx, user, "missing")
		assert.ErrorIs(t, err, autherror.ErrNotFound)
	})

	t.Run("delete existing key", func(t *testing.T) {
		mockMetadata.EXPECT().Delete(gomock.Any(), user.ID, "theme").Return(int64(1), nil)

		assert.NoError(t, metadataService.Delete(ctx, user, "theme"))
	})
}
