package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"crimson/config"
	"crimson/internal/domain/entity"
	"crimson/internal/domain/repository"
	mockRepo "crimson/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Checkout.MessagingHost = "wa.me"
	cfg.Checkout.OperatorPhone = "+94 77 123 4567"
	cfg.Checkout.Currency = "Rs"

	return cfg
}

// txRepos are the repositories handed out by a mocked transaction.
type txRepos struct {
	profileRepo      *mockRepo.MockProfileRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	listingRepo      *mockRepo.MockListingRepository
}

// expectTx makes txManager run its callback against a factory of fresh mocks.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager) txRepos {
	t.Helper()

	repos := txRepos{
		profileRepo:      mockRepo.NewMockProfileRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		listingRepo:      mockRepo.NewMockListingRepository(t),
	}

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().ProfileRepo().Return(repos.profileRepo).Maybe()
	factory.EXPECT().AuthRepo().Return(repos.authRepo).Maybe()
	factory.EXPECT().RefreshTokenRepo().Return(repos.refreshTokenRepo).Maybe()
	factory.EXPECT().ListingRepo().Return(repos.listingRepo).Maybe()

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	return repos
}

func adminProfile() *entity.Profile {
	return &entity.Profile{ID: uuid.New(), Email: "admin@crimson.test", IsAdmin: true}
}

func memberProfile() *entity.Profile {
	return &entity.Profile{ID: uuid.New(), Email: "member@crimson.test"}
}

func strPtr(s string) *string {
	return &s
}
