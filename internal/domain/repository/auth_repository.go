// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"crimson/internal/domain/entity"
	"crimson/internal/errors"
)

var (
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
	// ErrDuplicateAuth is returned when the provider identity is already linked.
	ErrDuplicateAuth = errors.New("authentication method already exists")
)

// AuthRepository persists login credentials.
type AuthRepository interface {
	// CreateAuthentication links a credential to a profile.
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication looks a credential up by provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)
}
