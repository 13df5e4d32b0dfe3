package postgres

import (
	"context"

	"crimson/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager is the constructor for transactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn inside gorm's Transaction helper, which rolls back when fn
// returns an error or panics and commits otherwise. fn's error is returned
// unwrapped so callers can match domain errors.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "transaction failed")
}

// txRepositories builds repositories that share one *gorm.DB transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (r txRepositories) ProfileRepo() repository.ProfileRepository {
	return NewProfileRepository(r.tx)
}

func (r txRepositories) AuthRepo() repository.AuthRepository {
	return NewAuthRepository(r.tx)
}

func (r txRepositories) RefreshTokenRepo() repository.RefreshTokenRepository {
	return NewRefreshTokenRepository(r.tx)
}

func (r txRepositories) ListingRepo() repository.ListingRepository {
	return NewListingRepository(r.tx)
}
