package repository

import (
	"context"

	"crimson/internal/domain/entity"
	"crimson/internal/errors"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when no live session matches a token hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository manages stored sessions.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash returns the non-expired session with the given hash.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteRefreshTokensByUserID ends every session of a user.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// DeleteExpiredRefreshTokens removes expired sessions and reports how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}
