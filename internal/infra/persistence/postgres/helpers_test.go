package postgres

import (
	"context"
	"fmt"
	"testing"

	"crimson/internal/domain/entity"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedProfile(t *testing.T, db *gorm.DB, email string, username *string) *entity.Profile {
	t.Helper()

	profile := &entity.Profile{Email: email, Username: username}
	require.NoError(t, NewProfileRepository(db).Create(context.Background(), profile))

	return profile
}

func strPtr(s string) *string {
	return &s
}
