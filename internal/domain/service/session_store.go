package service

import (
	"fittrack/internal/domain/entity"
)

// SessionStore persists "who is currently authenticated" across process
// restarts, independently of the relational store. Implementations must never
// receive credential material; the account service strips it first.
type SessionStore interface {
	// Create replaces the persisted session with one for the given user.
	Create(user *entity.User) error

	// Current returns the persisted user, or nil when no session exists.
	// An absent or unreadable session is not an error.
	Current() *entity.User

	// Clear removes the persisted session. Clearing an absent session is a no-op.
	Clear() error
}
