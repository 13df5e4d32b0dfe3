package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	deliverycontext "crimson/internal/delivery/context"
	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/domain/service"
	"crimson/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	usernameMinLength = 3
	usernameMaxLength = 19
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	refreshTokenRepo  repository.RefreshTokenRepository
	hasher            service.PasswordHasher
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	cartSessions      service.CartSessionStore
	now               func() time.Time
	logger            *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	RefreshTokenRepo  repository.RefreshTokenRepository
	Hasher            service.PasswordHasher
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	CartSessions      service.CartSessionStore
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:         params.TxManager,
		refreshTokenRepo:  params.RefreshTokenRepo,
		hasher:            params.Hasher,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		cartSessions:      params.CartSessions,
		now:               time.Now,
		logger:            params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a profile with an email credential and signs it in.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	username := strings.TrimSpace(input.Username)

	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := validateUsername(username); err != nil {
		return nil, err
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, errors.Wrap(err, "password does not meet requirements")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()
		profileRepo := repoFactory.ProfileRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		profile := &entity.Profile{Email: email, Username: &username}
		if err := profileRepo.Create(ctx, profile); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
			}

			return errors.Wrap(err, "failed to create profile during registration")
		}

		newAuth := &entity.Authentication{
			UserID:         profile.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		}
		if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
			return errors.Wrap(err, "failed to create authentication during registration")
		}

		output, err = srv.issueSession(ctx, repoFactory.RefreshTokenRepo(), profile)

		return err
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", output.Profile.ID))

	return output, nil
}

// Login orchestrates the email sign-in process.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	var authRecord *entity.Authentication
	var profile *entity.Profile

	// Load from primary in a short transaction to avoid stale reads on replicas.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		authRecord, err = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find authentication")
		}

		profile, err = repoFactory.ProfileRepo().FindByID(ctx, authRecord.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load login credentials")
	}

	// bcrypt is CPU-bound, so the check runs outside the transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	output, err := srv.issueSession(ctx, srv.refreshTokenRepo, profile)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", profile.ID))

	return output, nil
}

// RefreshToken issues a new access token. The refresh token remains unchanged.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		return nil, domainerrors.ErrRefreshTokenInvalid.WrapMessage(err.Error())
	}

	var accessToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)

		_, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("refresh token not found or expired")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find refresh token")
		}

		// Roles are re-derived so that admin changes apply on the next refresh.
		profile, err := repoFactory.ProfileRepo().FindByID(ctx, claims.UserID)
		if errors.Is(err, repository.ErrProfileNotFound) {
			return domainerrors.ErrRefreshTokenInvalid.WrapMessage("profile no longer exists")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find profile")
		}

		accessToken, _, err = srv.tokenService.GenerateTokens(profile.ID, entity.RolesFor(profile).ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout deletes the refresh token and tears down the owner's cart session.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	claims, err := srv.tokenService.ValidateToken(input.RefreshToken, service.TokenTypeRefresh)
	if err != nil {
		// An invalid token may still be stored; delete it anyway.
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	if input.All && claims != nil {
		if err := srv.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, claims.UserID); err != nil {
			return errors.Wrap(err, "failed to delete refresh tokens")
		}
	} else {
		tokenHash := srv.tokenService.HashToken(input.RefreshToken)
		if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, tokenHash); err != nil {
			return errors.Wrap(err, "failed to delete refresh token")
		}
	}

	if claims != nil {
		srv.cartSessions.Drop(ctx, claims.UserID.String())
	}

	srv.log(ctx).Info("Successfully logged out", slog.Bool("all", input.All))

	return nil
}

// GoogleCallback signs in with a Google ID token, creating or linking the profile.
func (srv *authService) GoogleCallback(ctx context.Context, input *usecase.GoogleCallbackInput) (*usecase.LoginOutput, error) {
	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrOAuthTokenInvalid.WrapMessage(err.Error())
	}

	var output *usecase.LoginOutput
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := srv.findOrCreateGoogleProfile(ctx, repoFactory, oauthUser)
		if err != nil {
			return err
		}

		output, err = srv.issueSession(ctx, repoFactory.RefreshTokenRepo(), profile)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute Google sign-in transaction")
	}

	return output, nil
}

func (srv *authService) findOrCreateGoogleProfile(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.Profile, error) {
	authRepo := repoFactory.AuthRepo()
	profileRepo := repoFactory.ProfileRepo()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err == nil {
		profile, err := profileRepo.FindByID(ctx, authRecord.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find profile for google auth")
		}

		return profile, nil
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(oauthUser.Email)

	// A verified Google email links to an existing email account.
	profile, err := profileRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, repository.ErrProfileNotFound):
		srv.log(ctx).Info("Google user not found, creating profile", slog.String("email", email))

		profile = &entity.Profile{Email: email}
		if oauthUser.AvatarURL != "" {
			profile.AvatarURL = &oauthUser.AvatarURL
		}
		if err := profileRepo.Create(ctx, profile); err != nil {
			return nil, errors.Wrap(err, "failed to create profile for google auth")
		}
	case err != nil:
		return nil, errors.Wrap(err, "failed to find profile by email")
	default:
		srv.log(ctx).Info("Linking Google account to existing profile", slog.Any("userID", profile.ID))
	}

	newAuth := &entity.Authentication{
		UserID:         profile.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create google authentication")
	}

	return profile, nil
}

// CleanupExpiredSessions deletes expired refresh tokens.
func (srv *authService) CleanupExpiredSessions(ctx context.Context) (int64, error) {
	removed, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired sessions")
	}

	if removed > 0 {
		srv.log(ctx).Info("Expired sessions removed", slog.Int64("removed", removed))
	}

	return removed, nil
}

// issueSession generates a token pair and stores the refresh token hash.
func (srv *authService) issueSession(ctx context.Context, refreshRepo repository.RefreshTokenRepository, profile *entity.Profile) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(profile.ID, entity.RolesFor(profile).ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	stored := &entity.RefreshToken{
		UserID:    profile.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, stored); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Profile:      profile,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateUsername(username string) error {
	n := utf8.RuneCountInString(username)
	if n < usernameMinLength || n > usernameMaxLength {
		return domainerrors.ErrValidationFailed.WithDetails("username must be 3 to 19 characters")
	}

	return nil
}
