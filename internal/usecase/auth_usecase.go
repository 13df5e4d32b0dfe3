// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"crimson/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to create an email account.
type RegisterInput struct {
	Email    string
	Password string
	Username string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// RefreshTokenInput carries the refresh token issued at login.
type RefreshTokenInput struct {
	RefreshToken string
}

// LogoutInput ends the session of RefreshToken, or every session of its
// owner when All is set.
type LogoutInput struct {
	RefreshToken string
	All          bool
}

// GoogleCallbackInput carries the ID token obtained by the client from Google.
type GoogleCallbackInput struct {
	IDToken string
}

// --- Output DTOs ---

// LoginOutput returns the generated tokens after a successful sign-in.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Profile      *entity.Profile
}

// RefreshTokenOutput carries a new access token. The refresh token is not rotated.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase defines sign-up, sign-in and session operations.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*LoginOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
	GoogleCallback(ctx context.Context, input *GoogleCallbackInput) (*LoginOutput, error)

	// CleanupExpiredSessions deletes expired refresh tokens.
	CleanupExpiredSessions(ctx context.Context) (int64, error)
}
