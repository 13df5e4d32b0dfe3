package auth

import (
	"unicode/utf8"

	"crimson/config"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/service"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultPasswordMinLength = 6
	// bcrypt ignores everything past 72 bytes.
	maxPasswordBytes = 72
)

// bcryptHasher is a concrete implementation of the PasswordHasher interface using bcrypt.
type bcryptHasher struct {
	cost      int
	minLength int
}

// NewBcryptHasher is the constructor for bcryptHasher.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	h := &bcryptHasher{cost: bcrypt.DefaultCost, minLength: defaultPasswordMinLength}
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.BcryptCost >= bcrypt.MinCost && cfg.Auth.BcryptCost <= bcrypt.MaxCost {
			h.cost = cfg.Auth.BcryptCost
		}
		if cfg.Auth.PasswordMinLength > 0 {
			h.minLength = cfg.Auth.PasswordMinLength
		}
	}

	return h
}

// Hash generates a salted hash from a plaintext password using bcrypt.
func (h *bcryptHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)

	return string(bytes), err
}

// Check compares a plaintext password with a bcrypt hash.
func (h *bcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < h.minLength {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too short")
	}
	if len(password) > maxPasswordBytes {
		return domainerrors.ErrPasswordStrength.WithDetails("password is too long")
	}

	return nil
}
