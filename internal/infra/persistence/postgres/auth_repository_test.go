package postgres

import (
	"context"
	"testing"
	"time"

	"crimson/internal/domain/entity"
	"crimson/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewAuthRepository(db)
	ctx := context.Background()
	profile := seedProfile(t, db, "ana@uni.edu", nil)

	auth := &entity.Authentication{
		UserID:         profile.ID,
		Provider:       entity.ProviderTypeEmail,
		ProviderUserID: "ana@uni.edu",
		PasswordHash:   "hash",
	}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))

	found, err := repo.FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@uni.edu")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, found.UserID)
	assert.Equal(t, "hash", found.PasswordHash)

	_, err = repo.FindAuthentication(ctx, entity.ProviderTypeGoogle, "ana@uni.edu")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)

	dup := &entity.Authentication{UserID: profile.ID, Provider: entity.ProviderTypeEmail, ProviderUserID: "ana@uni.edu"}
	assert.ErrorIs(t, repo.CreateAuthentication(ctx, dup), repository.ErrDuplicateAuth)
}

func TestRefreshTokenRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()
	profile := seedProfile(t, db, "ana@uni.edu", nil)
	now := time.Now()

	live := &entity.RefreshToken{UserID: profile.ID, TokenHash: "live", ExpiresAt: now.Add(time.Hour)}
	expired := &entity.RefreshToken{UserID: profile.ID, TokenHash: "expired", ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, repo.CreateRefreshToken(ctx, live))
	require.NoError(t, repo.CreateRefreshToken(ctx, expired))

	found, err := repo.FindRefreshTokenByHash(ctx, "live")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, found.UserID)

	_, err = repo.FindRefreshTokenByHash(ctx, "expired")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	removed, err := repo.DeleteExpiredRefreshTokens(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, repo.DeleteRefreshTokenByHash(ctx, "live"))
	assert.ErrorIs(t, repo.DeleteRefreshTokenByHash(ctx, "live"), repository.ErrRefreshTokenNotFound)
}

func TestRefreshTokenRepository_DeleteByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewRefreshTokenRepository(db)
	ctx := context.Background()
	profile := seedProfile(t, db, "ana@uni.edu", nil)

	for _, hash := range []string{"a", "b"} {
		require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{
			UserID: profile.ID, TokenHash: hash, ExpiresAt: time.Now().Add(time.Hour),
		}))
	}

	require.NoError(t, repo.DeleteRefreshTokensByUserID(ctx, profile.ID))

	_, err := repo.FindRefreshTokenByHash(ctx, "a")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)
}
