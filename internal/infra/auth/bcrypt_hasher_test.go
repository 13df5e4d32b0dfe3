package auth

import (
	"strings"
	"testing"

	"crimson/config"
	domainerrors "crimson/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}})

	hash, err := hasher.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, hasher.Check("secret1", hash))
	assert.False(t, hasher.Check("secret2", hash))
	assert.False(t, hasher.Check("secret1", "not-a-hash"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_ValidatePasswordStrength(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "six characters", password: "abcdef"},
		{name: "five characters", password: "abcde", wantErr: true},
		{name: "multibyte counts runes", password: "ññññññ"},
		{name: "over 72 bytes", password: strings.Repeat("a", 73), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := hasher.ValidatePasswordStrength(tt.password)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)

				return
			}
			assert.NoError(t, err)
		})
	}
}
