package impl

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"fittrack/config"
	"fittrack/internal/domain/service"
	"fittrack/internal/infra/auth"
	"fittrack/internal/infra/persistence/sqlite"
	"fittrack/internal/infra/session"
	"fittrack/internal/usecase"

	"github.com/stretchr/testify/require"
	gormlog "gorm.io/gorm/logger"
)

// testEnv wires the three services against a real sqlite file and a real
// session file, both under a per-test temp directory.
type testEnv struct {
	accounts   usecase.AccountUsecase
	activities usecase.ActivityUsecase
	wellness   usecase.WellnessUsecase
	sessions   service.SessionStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	return buildTestEnv(t, nil)
}

// buildTestEnv wires the services; a non-nil sessions replaces the default
// file-backed store.
func buildTestEnv(t *testing.T, sessions service.SessionStore) *testEnv {
	t.Helper()

	dir := t.TempDir()

	cfg := &config.Config{
		Auth: &config.AuthConfig{HashIterations: 10_000},
	}
	cfg.Database.Path = filepath.Join(dir, "fittrack.db")
	cfg.Session.Path = filepath.Join(dir, "session.json")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	db, err := sqlite.Open(cfg.Database.Path, gormlog.Discard)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
	})

	hasher := auth.NewPBKDF2Hasher(cfg)
	if sessions == nil {
		sessions = session.NewFileStore(cfg, logger)
	}
	txManager := sqlite.NewTransactionManager(db)

	accounts := NewAccountService(AccountServiceParams{
		TxManager: txManager,
		UserRepo:  sqlite.NewUserRepository(db),
		Hasher:    hasher,
		Sessions:  sessions,
		Logger:    logger,
	})
	activities := NewActivityService(ActivityServiceParams{
		TxManager:    txManager,
		ActivityRepo: sqlite.NewActivityRepository(db),
		Logger:       logger,
	})
	wellness := NewWellnessService(WellnessServiceParams{
		WellnessRepo: sqlite.NewWellnessRepository(db),
		Logger:       logger,
	})

	return &testEnv{
		accounts:   accounts,
		activities: activities,
		wellness:   wellness,
		sessions:   sessions,
	}
}

const testPassword = "Sup3rSecret"

// registerTestUser registers a user with a known-good password and returns
// the user id.
func registerTestUser(t *testing.T, env *testEnv, email string) uint {
	t.Helper()

	user, err := env.accounts.Register(context.Background(), &usecase.RegisterInput{
		FullName: "Test User",
		Email:    email,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotZero(t, user.ID)

	return user.ID
}
