package repository

import (
	"context"

	"crimson/internal/domain/entity"
	"crimson/internal/errors"

	"github.com/google/uuid"
)

var (
	// ErrProfileNotFound is returned when a profile is not found.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrDuplicateEmail is returned when the email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")
)

// ProfileRepository persists marketplace profiles.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.Profile) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)
	FindByEmail(ctx context.Context, email string) (*entity.Profile, error)

	// Update saves username and avatar. The admin flag is never written here.
	Update(ctx context.Context, profile *entity.Profile) error
}
