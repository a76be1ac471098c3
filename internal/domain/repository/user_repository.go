// Package repository defines the persistence contracts the use case layer
// depends on. Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"fittrack/internal/domain/entity"
	"fittrack/internal/errors"
)

// Sentinel errors returned by repository implementations. The use case layer
// translates them into domain errors before they reach a caller.
var (
	// ErrUserNotFound is returned when a user cannot be found.
	ErrUserNotFound = errors.New("user not found")

	// ErrDuplicateEmail is returned when creating a user whose normalized
	// email already exists.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines persistence operations for users and their profiles.
type UserRepository interface {
	// Create persists a new user together with its (possibly empty) profile.
	// The generated ID and timestamps are written back into the entity.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user and its profile by surrogate key.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a user by its normalized (lower-cased) email.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// UpdatePasswordHash replaces the stored credential string for one user.
	UpdatePasswordHash(ctx context.Context, userID uint, passwordHash string) error

	// UpsertProfile inserts or replaces the 1:1 profile row for a user.
	UpsertProfile(ctx context.Context, profile *entity.UserProfile) error

	// PurgeUserData deletes every row owned by the user across all five
	// child tables, leaving the user row itself in place.
	PurgeUserData(ctx context.Context, userID uint) error

	// Delete removes the user row; child rows go with it via cascade.
	Delete(ctx context.Context, userID uint) error
}
