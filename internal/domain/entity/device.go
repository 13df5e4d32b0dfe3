package entity

import (
	"time"

	"github.com/google/uuid"
)

// Platform is the client platform an FCM token was issued for.
type Platform string

const (
	PlatformIOS     Platform = "ios"
	PlatformAndroid Platform = "android"
	PlatformWeb     Platform = "web"
)

func (p Platform) IsValid() bool {
	switch p {
	case PlatformIOS, PlatformAndroid, PlatformWeb:
		return true
	default:
		return false
	}
}

// UserDevice receives moderation notifications for its owner's listings.
// DeviceID is chosen by the client and unique per owner, so reinstalling the
// app re-registers the same row with a fresh token.
type UserDevice struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	DeviceID  string
	Platform  Platform
	FCMToken  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

const tokenHintLength = 6

// TokenHint is the tail of the FCM token, enough to tell registrations apart
// without handing the full push credential back to clients.
func (d *UserDevice) TokenHint() string {
	if len(d.FCMToken) <= tokenHintLength {
		return d.FCMToken
	}

	return d.FCMToken[len(d.FCMToken)-tokenHintLength:]
}
