package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlatform_IsValid(t *testing.T) {
	for _, p := range []Platform{PlatformIOS, PlatformAndroid, PlatformWeb} {
		assert.True(t, p.IsValid(), p)
	}
	assert.False(t, Platform("").IsValid())
	assert.False(t, Platform("IOS").IsValid())
}

func TestUserDevice_TokenHint(t *testing.T) {
	assert.Equal(t, "xyz789", (&UserDevice{FCMToken: "fcm-token-abcxyz789"}).TokenHint())
	assert.Equal(t, "short", (&UserDevice{FCMToken: "short"}).TokenHint())
	assert.Empty(t, (&UserDevice{}).TokenHint())
}
