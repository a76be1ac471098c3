// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a single local account.
// PasswordHash holds the salt:digest credential string and must never leave
// the service layer; callers receive the Public view instead.
type User struct {
	ID           uint         // Surrogate key, assigned by the store.
	Email        string       // Login identifier, stored lower-cased and unique.
	PasswordHash string       // salt:digest credential string. Never exposed outside the account service.
	FullName     string       // The user's display name.
	Profile      *UserProfile // The 1:1 profile, created empty at registration.
	CreatedAt    time.Time    // Timestamp of when this account was created.
	UpdatedAt    time.Time    // Timestamp of the last modification to this account.
}

// Public returns a copy of the user with the credential material stripped.
// This is the only shape handed to session storage or callers.
func (u *User) Public() *User {
	if u == nil {
		return nil
	}
	pub := *u
	pub.PasswordHash = ""

	return &pub
}

// UserProfile holds the fitness attributes of one account. Exactly one
// profile exists per user; updates use upsert semantics.
type UserProfile struct {
	UserID      uint      // Foreign key that links this profile to its User.
	Age         int       // Age in years, 0 when unset.
	WeightKg    float64   // Body weight in kilograms, 0 when unset.
	HeightCm    float64   // Height in centimeters, 0 when unset.
	Gender      string    // Free-form gender label, empty when unset.
	FitnessGoal string    // The user's stated goal, e.g. "lose weight".
	UpdatedAt   time.Time // Timestamp of the last modification to this profile.
}
