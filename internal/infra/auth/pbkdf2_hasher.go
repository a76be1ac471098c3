// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/crypto/pbkdf2"

	"fittrack/config"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/service"
	"fittrack/internal/errors"
)

const (
	saltLength = 16 // bytes of random salt per credential
	keyLength  = 32 // bytes of derived key

	// minIterations is the floor for the configurable work factor. Stored
	// credentials embed no iteration count, so changing the configured value
	// only affects newly hashed passwords.
	minIterations = 10_000

	storedFieldCount = 2
	storedDelimiter  = ":"
)

// pbkdf2Hasher implements the PasswordHasher interface with PBKDF2-SHA256.
// Credentials are stored as "hex(salt):hex(digest)".
type pbkdf2Hasher struct {
	iterations int
	policy     config.PasswordStrengthConfig
}

// NewPBKDF2Hasher is the constructor for pbkdf2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewPBKDF2Hasher(cfg *config.Config) service.PasswordHasher {
	iterations := 0
	if cfg != nil && cfg.Auth != nil {
		iterations = cfg.Auth.HashIterations
	}
	if iterations < minIterations {
		iterations = minIterations
	}

	policy := config.PasswordStrengthConfig{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumbers:   true,
	}
	if cfg != nil && cfg.PasswordStrength != nil {
		policy = *cfg.PasswordStrength
	}

	return &pbkdf2Hasher{
		iterations: iterations,
		policy:     policy,
	}
}

// Hash derives a salted credential string from a plaintext password.
func (h *pbkdf2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	digest := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha256.New)

	return hex.EncodeToString(salt) + storedDelimiter + hex.EncodeToString(digest), nil
}

// Check compares a plaintext password with a stored credential string.
// A malformed stored string verifies as false, never as an error.
func (h *pbkdf2Hasher) Check(password, stored string) bool {
	parts := strings.Split(stored, storedDelimiter)
	if len(parts) != storedFieldCount {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}
	digest, err := hex.DecodeString(parts[1])
	if err != nil {
		return false
	}

	computed := pbkdf2.Key([]byte(password), salt, h.iterations, keyLength, sha256.New)

	return subtle.ConstantTimeCompare(computed, digest) == 1
}

// ValidatePasswordStrength enforces the configured password policy.
func (h *pbkdf2Hasher) ValidatePasswordStrength(password string) error {
	if len(password) < h.policy.MinLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password is too short")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if h.policy.RequireUppercase && !hasUpper {
		return domainerrors.ErrPasswordStrength.WrapMessage("password needs an uppercase letter")
	}
	if h.policy.RequireLowercase && !hasLower {
		return domainerrors.ErrPasswordStrength.WrapMessage("password needs a lowercase letter")
	}
	if h.policy.RequireNumbers && !hasDigit {
		return domainerrors.ErrPasswordStrength.WrapMessage("password needs a digit")
	}

	return nil
}
