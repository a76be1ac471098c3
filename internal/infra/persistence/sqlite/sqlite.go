// Package sqlite contains the concrete implementation of the persistence
// layer using GORM over a single local SQLite file.
package sqlite

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlog "gorm.io/gorm/logger"

	"fittrack/config"
	"fittrack/internal/errors"
	"fittrack/internal/infra/persistence/model"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the SQLite-backed gorm handle for the fx application and ties
// its lifetime to the fx lifecycle.
func New(params Params) (*gorm.DB, error) {
	db, err := Open(params.Config.Database.Path, newGormSlogLogger(params.Logger, params.Config))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open opens (creating if needed) the database at path and migrates the six
// tables. Writes are serialized through a single connection: SQLite has one
// writer anyway, and capping the pool at one connection makes every
// transaction an exclusive section, so concurrent upserts of the same
// (activity, date) key cannot race.
func Open(path string, gormLogger gormlog.Interface) (*gorm.DB, error) {
	dsn := path + "?_foreign_keys=on&_busy_timeout=5000"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		TranslateError:         true,
		Logger:                 gormLogger,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get sqlite sql.DB")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.UserProfileModel{},
		&model.ActivityModel{},
		&model.ActivityLogModel{},
		&model.WorkoutSessionModel{},
		&model.BodyMeasurementModel{},
	); err != nil {
		return nil, errors.Wrap(err, "failed to migrate schema")
	}

	return db, nil
}
