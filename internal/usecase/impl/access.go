// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// requireAdmin reloads the caller's profile so that a revoked admin flag takes
// effect before the caller's access token expires.
func requireAdmin(ctx context.Context, profileRepo repository.ProfileRepository, callerID uuid.UUID) error {
	profile, err := profileRepo.FindByID(ctx, callerID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return errors.Wrap(domainerrors.ErrAdminRequired, "caller has no profile")
	}
	if err != nil {
		return errors.Wrap(err, "failed to load caller profile")
	}

	if !profile.IsAdmin {
		return errors.Wrap(domainerrors.ErrAdminRequired, "caller is not an admin")
	}

	return nil
}
