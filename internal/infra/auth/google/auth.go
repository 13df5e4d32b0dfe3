// Package google verifies Google Sign-In ID tokens.
package google

import (
	"context"
	"log/slog"

	"crimson/config"
	"crimson/internal/domain/entity"
	"crimson/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

var validIssuers = map[string]bool{
	"https://accounts.google.com": true,
	"accounts.google.com":         true,
}

type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl implements service.OAuthAuthService for Google.
type AuthServiceImpl struct {
	clientID string
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	var clientID string
	if cfg.GoogleOAuth != nil {
		clientID = cfg.GoogleOAuth.ClientID
	}

	return &AuthServiceImpl{
		clientID: clientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks signature, audience and expiry through Google's public
// keys, then requires a known issuer and a verified email.
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google sign-in is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.WarnContext(ctx, "Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if !validIssuers[payload.Issuer] {
		return nil, errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
		Provider:      entity.ProviderTypeGoogle,
	}
	if user.Email == "" || !user.EmailVerified {
		return nil, errors.New("email not verified")
	}

	s.logger.InfoContext(ctx, "Google ID token verified", slog.String("subject", user.ID))

	return user, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

// claimBool accepts both JSON booleans and the "true" string some tokens carry.
func claimBool(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
