// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for password hashing and verification.
// This abstracts the underlying key derivation function, keeping the domain pure.
type PasswordHasher interface {
	// Hash derives a stored credential string from a plaintext password.
	// The salt is generated internally; the result is self-contained.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored credential string.
	// It returns false, never an error, on malformed stored strings.
	Check(password, stored string) bool

	// ValidatePasswordStrength reports whether the password meets the
	// configured strength policy.
	ValidatePasswordStrength(password string) error
}
