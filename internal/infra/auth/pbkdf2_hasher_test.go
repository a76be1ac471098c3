package auth

import (
	"strings"
	"testing"

	"fittrack/config"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher() *pbkdf2Hasher {
	return NewPBKDF2Hasher(&config.Config{
		Auth: &config.AuthConfig{HashIterations: 10_000},
	}).(*pbkdf2Hasher)
}

func TestPBKDF2Hasher_Hash(t *testing.T) {
	hasher := newTestHasher()

	password := "StrongPass123"
	stored, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, stored)
	assert.NotContains(t, stored, password)

	// Stored format is hex(salt):hex(digest) with a 16-byte salt.
	parts := strings.Split(stored, ":")
	require.Len(t, parts, 2)
	assert.Len(t, parts[0], 32)
	assert.Len(t, parts[1], 64)

	// Verify the stored string can be checked.
	assert.True(t, hasher.Check(password, stored))
}

func TestPBKDF2Hasher_HashUsesFreshSalt(t *testing.T) {
	hasher := newTestHasher()

	first, err := hasher.Hash("StrongPass123")
	require.NoError(t, err)
	second, err := hasher.Hash("StrongPass123")
	require.NoError(t, err)

	// Same password, different salt, different credential string.
	assert.NotEqual(t, first, second)
}

func TestPBKDF2Hasher_Check(t *testing.T) {
	hasher := newTestHasher()
	password := "StrongPass123"

	stored, err := hasher.Hash(password)
	require.NoError(t, err)

	// Test correct password
	assert.True(t, hasher.Check(password, stored))

	// Test incorrect password
	assert.False(t, hasher.Check("WrongPassword123", stored))

	// Test empty password
	assert.False(t, hasher.Check("", stored))
}

func TestPBKDF2Hasher_CheckMalformedStored(t *testing.T) {
	hasher := newTestHasher()

	// Malformed stored strings verify as false, never panic or error.
	malformed := []string{
		"",
		"nodelimiter",
		"too:many:fields",
		"zz:not-hex",
		"abcd:zz",
	}

	for _, stored := range malformed {
		assert.False(t, hasher.Check("StrongPass123", stored), "stored=%q", stored)
	}
}

func TestPBKDF2Hasher_ValidatePasswordStrength(t *testing.T) {
	hasher := newTestHasher()

	validPasswords := []string{
		"StrongPass123",
		"Passw0rd!",
		"Valid2024Phrase",
	}

	for _, password := range validPasswords {
		err := hasher.ValidatePasswordStrength(password)
		assert.NoError(t, err, "Expected no error for valid password: %s", password)
	}

	weakPasswords := []string{
		"Sh0rt",       // Too short
		"PASSWORD123", // No lowercase
		"password123", // No uppercase
		"PasswordABC", // No digits
	}

	for _, password := range weakPasswords {
		err := hasher.ValidatePasswordStrength(password)
		require.Error(t, err, "Expected error for weak password: %s", password)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	}
}
