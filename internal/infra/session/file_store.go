// Package session persists the current authentication state to a local file,
// keeping it independent of the relational store.
package session

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"fittrack/config"
	"fittrack/internal/domain/entity"
	"fittrack/internal/domain/service"
	"fittrack/internal/errors"
)

// record is the on-disk session shape. It carries the public user record
// only; the account service strips credential material before Create.
type record struct {
	SessionID string       `json:"sessionId"`
	User      *entity.User `json:"user"`
	CreatedAt time.Time    `json:"createdAt"`
}

// fileStore implements the SessionStore interface with a JSON file.
type fileStore struct {
	path   string
	logger *slog.Logger
}

// NewFileStore is the constructor for fileStore.
func NewFileStore(cfg *config.Config, logger *slog.Logger) service.SessionStore {
	return &fileStore{
		path:   cfg.Session.Path,
		logger: logger,
	}
}

// Create replaces the persisted session with one for the given user.
func (s *fileStore) Create(user *entity.User) error {
	rec := record{
		SessionID: uuid.NewString(),
		User:      user.Public(),
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, "failed to encode session")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return errors.Wrap(err, "failed to create session directory")
		}
	}

	// Write-then-rename so a crash mid-write cannot leave a torn session file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return errors.Wrap(err, "failed to write session file")
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrap(err, "failed to replace session file")
	}

	return nil
}

// Current returns the persisted user. Absent, unreadable, or corrupt session
// files all read as "no session"; this path is best-effort and never errors.
func (s *fileStore) Current() *entity.User {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("Failed to read session file, treating as anonymous", slog.Any("error", err))
		}

		return nil
	}

	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		s.logger.Warn("Corrupt session file, treating as anonymous", slog.Any("error", err))

		return nil
	}

	return rec.User
}

// Clear removes the persisted session. Clearing an absent session is a no-op.
func (s *fileStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to remove session file")
	}

	return nil
}
