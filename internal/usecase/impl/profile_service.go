package impl

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(profileRepo repository.ProfileRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the profile of a signed-in user.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := srv.profileRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "get profile")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile changes username and avatar. The admin flag cannot be changed here.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	profile, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if input.Username != nil {
		username := strings.TrimSpace(*input.Username)
		if err := validateUsername(username); err != nil {
			return nil, err
		}
		profile.Username = &username
	}

	if input.AvatarURL != nil {
		avatar := strings.TrimSpace(*input.AvatarURL)
		switch {
		case avatar == "":
			profile.AvatarURL = nil
		case !isHTTPURL(avatar):
			return nil, domainerrors.ErrValidationFailed.WithDetails("avatar_url must be an http(s) URL")
		default:
			profile.AvatarURL = &avatar
		}
	}

	if err := srv.profileRepo.Update(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)

	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
