package service

import (
	"time"

	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the validated content of a token.
type Claims struct {
	UserID    uuid.UUID
	Roles     []string
	Type      string
	ExpiresAt time.Time
}

// TokenService issues and validates JWTs.
type TokenService interface {
	// GenerateTokens creates an access token carrying roles and a refresh token without.
	GenerateTokens(userID uuid.UUID, roles []string) (accessToken string, refreshToken string, err error)

	// ValidateToken verifies a token of the given type and returns its claims.
	ValidateToken(tokenString, tokenType string) (*Claims, error)

	// HashToken returns the hex SHA-256 of a raw token for storage.
	HashToken(token string) string

	GetRefreshTokenDuration() time.Duration
}
