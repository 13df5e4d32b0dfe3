package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names the way a profile signs in.
type ProviderType string

const (
	ProviderTypeEmail  ProviderType = "email"
	ProviderTypeGoogle ProviderType = "google"
)

// Authentication is one credential attached to a profile, e.g. email/password
// or a linked Google account.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // email for ProviderTypeEmail, the "sub" claim for Google
	PasswordHash   string // only set for ProviderTypeEmail
	CreatedAt      time.Time
}

// RefreshToken is a stored session. Only a SHA-256 hash of the raw token is kept.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the session has expired at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
