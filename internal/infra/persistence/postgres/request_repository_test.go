package postgres

import (
	"context"
	"testing"
	"time"

	"crimson/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestRepository_CreateListAndDeleteOwned(t *testing.T) {
	db := newTestDB(t)
	repo := NewRequestRepository(db)
	ctx := context.Background()

	owner := seedProfile(t, db, "owner@uni.edu", nil)
	other := seedProfile(t, db, "other@uni.edu", nil)

	first := &entity.Request{UserID: owner.ID, Title: "Need a calculator"}
	require.NoError(t, repo.Create(ctx, first))
	assert.Equal(t, entity.RequestStatusOpen, first.Status)
	time.Sleep(2 * time.Millisecond)

	second := &entity.Request{UserID: other.ID, Title: "Looking for a tutor", Category: strPtr("looking-for-services")}
	require.NoError(t, repo.Create(ctx, second))

	all, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, second.ID, all[0].ID)
	assert.Equal(t, "looking-for-services", *all[0].Category)

	mine, err := repo.ListByUser(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, first.ID, mine[0].ID)

	deleted, err := repo.DeleteOwned(ctx, first.ID, other.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	stillThere, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Need a calculator", stillThere.Title)

	deleted, err = repo.DeleteOwned(ctx, first.ID, owner.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
}
