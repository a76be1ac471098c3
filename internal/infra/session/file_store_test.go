package session

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fittrack/config"
	"fittrack/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*fileStore, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "session.json")
	cfg := &config.Config{}
	cfg.Session.Path = path
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewFileStore(cfg, logger).(*fileStore), path
}

func testUser() *entity.User {
	return &entity.User{
		ID:           1,
		Email:        "alice@test.com",
		PasswordHash: "salt:digest",
		FullName:     "Alice A",
		CreatedAt:    time.Now(),
	}
}

func TestFileStore_CreateAndCurrent(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Create(testUser()))

	current := store.Current()
	require.NotNil(t, current)
	assert.Equal(t, uint(1), current.ID)
	assert.Equal(t, "alice@test.com", current.Email)
}

func TestFileStore_NeverPersistsPasswordHash(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, store.Create(testUser()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "salt:digest")

	current := store.Current()
	require.NotNil(t, current)
	assert.Empty(t, current.PasswordHash)
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Create(testUser()))

	// A fresh store over the same path sees the same session.
	cfg := &config.Config{}
	cfg.Session.Path = path
	reopened := NewFileStore(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	current := reopened.Current()
	require.NotNil(t, current)
	assert.Equal(t, "alice@test.com", current.Email)
}

func TestFileStore_CurrentWithoutSession(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Nil(t, store.Current())
}

func TestFileStore_CurrentWithCorruptFile(t *testing.T) {
	store, path := newTestStore(t)

	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	assert.Nil(t, store.Current())
}

func TestFileStore_Clear(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Create(testUser()))
	require.NoError(t, store.Clear())
	assert.Nil(t, store.Current())

	// Clearing an absent session is not an error.
	assert.NoError(t, store.Clear())
}
