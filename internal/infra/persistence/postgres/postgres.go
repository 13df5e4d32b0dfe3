package postgres

import (
	"context"
	"log/slog"

	"crimson/config"
	"crimson/internal/domain/lifecycle"
	"crimson/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary (and any replicas) through go-lib, installs the slog
// query logger and ties connection checks, migrations and the pool monitor to
// the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	base, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Driver errors surface as gorm.ErrDuplicatedKey and friends.
	base.Config.TranslateError = true

	// Multi-step writes go through the TransactionManager instead.
	db := base.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := newPoolMonitor(sqlDB.Stats, params.Logger)
	stopMonitor := func() {}

	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Env.AutoMigrate {
				if err := Migrate(ctx, db); err != nil {
					return err
				}
				params.Logger.Info("Database schema migrated")
			}

			monitorCtx, stop := context.WithCancel(context.Background())
			stopMonitor = stop
			go monitor.run(monitorCtx, poolMonitorInterval)

			return nil
		},
		OnStop: func(context.Context) error {
			stopMonitor()

			return errors.Wrap(sqlDB.Close(), "failed to close PostgreSQL")
		},
	})

	return db, nil
}
