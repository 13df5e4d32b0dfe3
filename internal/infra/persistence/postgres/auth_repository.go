// Package postgres implements the domain repositories with GORM. The same code
// runs against PostgreSQL in production and SQLite in tests.
package postgres

import (
	"context"

	"crimson/internal/domain/entity"
	domainerrors "crimson/internal/domain/errors"
	"crimson/internal/domain/repository"
	"crimson/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type authRepository struct {
	db *gorm.DB
}

// NewAuthRepository is the constructor for authRepository.
func NewAuthRepository(db *gorm.DB) repository.AuthRepository {
	return &authRepository{db: db}
}

// CreateAuthentication inserts the credential. (provider, provider_user_id)
// is unique, so linking the same identity twice fails with ErrDuplicateAuth.
func (repo *authRepository) CreateAuthentication(ctx context.Context, auth *entity.Authentication) error {
	row := &model.AuthenticationModel{
		ID:             auth.ID,
		UserID:         auth.UserID,
		Provider:       string(auth.Provider),
		ProviderUserID: auth.ProviderUserID,
		PasswordHash:   auth.PasswordHash,
	}

	err := repo.db.WithContext(ctx).Create(row).Error
	switch {
	case err == nil:
	case isUniqueConstraintViolation(err):
		return repository.ErrDuplicateAuth
	case isForeignKeyConstraintViolation(err), isNotNullConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WrapMessage("invalid authentication record")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to create authentication")
	}

	auth.ID, auth.CreatedAt = row.ID, row.CreatedAt

	return nil
}

func (repo *authRepository) FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error) {
	var row model.AuthenticationModel

	err := repo.db.WithContext(ctx).
		Where(map[string]any{"provider": string(provider), "provider_user_id": providerUserID}).
		Take(&row).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, repository.ErrAuthNotFound
	case err != nil:
		return nil, errors.Wrapf(err, "failed to find %s authentication", provider)
	}

	return &entity.Authentication{
		ID:             row.ID,
		UserID:         row.UserID,
		Provider:       entity.ProviderType(row.Provider),
		ProviderUserID: row.ProviderUserID,
		PasswordHash:   row.PasswordHash,
		CreatedAt:      row.CreatedAt,
	}, nil
}
