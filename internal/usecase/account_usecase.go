// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"fittrack/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	FullName string `validate:"required,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// ChangePasswordInput defines the data required to change a password.
// CurrentPassword is re-verified before NewPassword is accepted.
type ChangePasswordInput struct {
	CurrentPassword string `validate:"required"`
	NewPassword     string `validate:"required"`
}

// UpdateProfileInput carries the profile fields to change. Nil fields keep
// their current value.
type UpdateProfileInput struct {
	Age         *int     `validate:"omitempty,min=0,max=150"`
	WeightKg    *float64 `validate:"omitempty,min=0"`
	HeightCm    *float64 `validate:"omitempty,min=0"`
	Gender      *string  `validate:"omitempty,max=50"`
	FitnessGoal *string  `validate:"omitempty,max=100"`
}

// AccountUsecase is the single entry point external collaborators use for
// account and credential operations. It never exposes the hasher or the
// relational store directly.
type AccountUsecase interface {
	// Register creates the account, its empty profile, the default activity
	// catalog and a session, then returns the public user record.
	Register(ctx context.Context, input *RegisterInput) (*entity.User, error)

	// Login verifies credentials and creates a session. Unknown email and
	// wrong password return the same error.
	Login(ctx context.Context, input *LoginInput) (*entity.User, error)

	// Logout clears the session. It is idempotent.
	Logout(ctx context.Context) error

	// CurrentUser returns the persisted session's user, or nil when anonymous.
	CurrentUser(ctx context.Context) *entity.User

	// ChangePassword re-verifies the current password, validates the new
	// one's strength, and stores the new credential.
	ChangePassword(ctx context.Context, userID uint, input *ChangePasswordInput) error

	// UpdateProfile upserts the user's 1:1 profile.
	UpdateProfile(ctx context.Context, userID uint, input *UpdateProfileInput) error

	// DeleteAccount removes the user and every row it owns, clearing the
	// session if it belongs to the deleted user.
	DeleteAccount(ctx context.Context, userID uint) error
}
