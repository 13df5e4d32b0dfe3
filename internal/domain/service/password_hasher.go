// Package service defines interfaces for domain capabilities implemented in infra.
package service

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check compares a plaintext password with a hash.
	Check(password, hash string) bool

	// ValidatePasswordStrength rejects passwords that are too weak to store.
	ValidatePasswordStrength(password string) error
}
