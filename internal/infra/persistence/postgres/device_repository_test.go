package postgres

import (
	"context"
	"testing"

	"crimson/internal/domain/entity"
	"crimson/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_UpsertKeepsOneRowPerDevice(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	owner := seedProfile(t, db, "owner@uni.edu", nil)

	first := &entity.UserDevice{UserID: owner.ID, DeviceID: "phone", Platform: entity.PlatformAndroid, FCMToken: "tok-1"}
	require.NoError(t, repo.Upsert(ctx, first))
	require.NotEqual(t, uuid.Nil, first.ID)
	assert.True(t, first.IsActive)

	require.NoError(t, repo.Deactivate(ctx, first.ID))

	again := &entity.UserDevice{UserID: owner.ID, DeviceID: "phone", Platform: entity.PlatformIOS, FCMToken: "tok-2"}
	require.NoError(t, repo.Upsert(ctx, again))
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, "tok-2", again.FCMToken)
	assert.Equal(t, entity.PlatformIOS, again.Platform)
	assert.True(t, again.IsActive)

	active, err := repo.ListActiveByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, first.ID, active[0].ID)
}

func TestDeviceRepository_TokenLifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewDeviceRepository(db)
	ctx := context.Background()
	owner := seedProfile(t, db, "owner@uni.edu", nil)
	other := seedProfile(t, db, "other@uni.edu", nil)

	phone := &entity.UserDevice{UserID: owner.ID, DeviceID: "phone", Platform: entity.PlatformAndroid, FCMToken: "shared"}
	laptop := &entity.UserDevice{UserID: owner.ID, DeviceID: "laptop", Platform: entity.PlatformWeb, FCMToken: "tok-laptop"}
	borrowed := &entity.UserDevice{UserID: other.ID, DeviceID: "phone", Platform: entity.PlatformAndroid, FCMToken: "shared"}
	for _, d := range []*entity.UserDevice{phone, laptop, borrowed} {
		require.NoError(t, repo.Upsert(ctx, d))
	}

	n, err := repo.DeactivateByToken(ctx, "shared")
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	n, err = repo.DeactivateByToken(ctx, "shared")
	require.NoError(t, err)
	assert.Zero(t, n)

	active, err := repo.ListActiveByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "laptop", active[0].DeviceID)

	require.NoError(t, repo.UpdateToken(ctx, phone.ID, "fresh"))
	got, err := repo.FindByID(ctx, phone.ID)
	require.NoError(t, err)
	assert.True(t, got.IsActive)
	assert.Equal(t, "fresh", got.FCMToken)

	assert.ErrorIs(t, repo.UpdateToken(ctx, uuid.New(), "x"), repository.ErrDeviceNotFound)
	assert.ErrorIs(t, repo.Deactivate(ctx, uuid.New()), repository.ErrDeviceNotFound)
	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}
