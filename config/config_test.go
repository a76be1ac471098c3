package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithEnv_OverlaysEnvironment(t *testing.T) {
	dir := t.TempDir()
	contents := `env:
  env: local
  log:
    level: debug
database:
  path: from-file.db
session:
  path: session.json
auth:
  hashIterations: 120000
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o600))
	t.Chdir(dir)
	t.Setenv("FITTRACK_DATABASE_PATH", "from-env.db")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", cfg.Database.Path, "environment overrides the file")
	assert.Equal(t, "session.json", cfg.Session.Path)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 120000, cfg.Auth.HashIterations)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
}
