package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the marketplace identity of a signed-in person. Its ID is shared
// with the authentication records that log into it.
type Profile struct {
	ID        uuid.UUID
	Email     string
	Username  *string // nil until chosen; displayed with a fallback
	AvatarURL *string
	IsAdmin   bool // sole gate for the moderation workflow
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DisplayName returns the username, or fallback when none is set.
func (p *Profile) DisplayName(fallback string) string {
	if p == nil || p.Username == nil || strings.TrimSpace(*p.Username) == "" {
		return fallback
	}

	return *p.Username
}

// EmailLocalPart returns the part of an email address before '@'.
func EmailLocalPart(email string) string {
	local, _, _ := strings.Cut(email, "@")

	return local
}
