package service

import (
	"context"

	"crimson/internal/domain/entity"
)

// OAuthUser is the identity asserted by an external provider.
type OAuthUser struct {
	ID            string // provider subject
	Email         string
	Name          string
	AvatarURL     string
	EmailVerified bool
	Provider      entity.ProviderType
}

// OAuthAuthService verifies ID tokens issued by an external identity provider.
type OAuthAuthService interface {
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)
	GetProvider() entity.ProviderType
}
