package repository

import "context"

// TransactionManager runs a unit of work in a database transaction.
// If fn returns an error the transaction is rolled back, otherwise committed.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	ProfileRepo() ProfileRepository
	AuthRepo() AuthRepository
	RefreshTokenRepo() RefreshTokenRepository
	ListingRepo() ListingRepository
}
