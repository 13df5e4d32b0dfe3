package postgres

import (
	"context"
	"testing"

	"crimson/internal/domain/entity"
	"crimson/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitAndRollback(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.ProfileRepo().Create(ctx, &entity.Profile{Email: "kept@uni.edu"})
	})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := f.ProfileRepo().Create(ctx, &entity.Profile{Email: "dropped@uni.edu"}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	profiles := NewProfileRepository(db)
	_, err = profiles.FindByEmail(ctx, "kept@uni.edu")
	require.NoError(t, err)
	_, err = profiles.FindByEmail(ctx, "dropped@uni.edu")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}

func TestTransactionManager_PanicRollsBack(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			if err := f.ProfileRepo().Create(ctx, &entity.Profile{Email: "ghost@uni.edu"}); err != nil {
				return err
			}
			panic("handler bug")
		})
	})

	_, err := NewProfileRepository(db).FindByEmail(ctx, "ghost@uni.edu")
	assert.ErrorIs(t, err, repository.ErrProfileNotFound)
}
