package impl

import (
	"context"
	"testing"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService_RegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.accounts.Register(ctx, &usecase.RegisterInput{
		FullName: "Alex Doe",
		Email:    "alex@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.NotZero(t, registered.ID)
	assert.Equal(t, "alex@example.com", registered.Email)
	assert.Empty(t, registered.PasswordHash, "returned user must not carry the stored credential")

	// Registration opens a session.
	current := env.accounts.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, registered.ID, current.ID)
	assert.Empty(t, current.PasswordHash)

	loggedIn, err := env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
	assert.Empty(t, loggedIn.PasswordHash)
}

func TestAccountService_RegisterNormalizesEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registered, err := env.accounts.Register(ctx, &usecase.RegisterInput{
		FullName: "Alex Doe",
		Email:    "  Alex@Example.COM ",
		Password: testPassword,
	})
	require.NoError(t, err)
	assert.Equal(t, "alex@example.com", registered.Email)

	// The lower-cased form logs in.
	_, err = env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	// So does a padded, mixed-case form.
	_, err = env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    " ALEX@example.com ",
		Password: testPassword,
	})
	require.NoError(t, err)

	// Re-registering a case variant of the same address is a duplicate.
	_, err = env.accounts.Register(ctx, &usecase.RegisterInput{
		FullName: "Imposter",
		Email:    "ALEX@example.com",
		Password: testPassword,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrEmailAlreadyRegistered))
}

func TestAccountService_RegisterRejectsWeakPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for _, password := range []string{"short1A", "nouppercase1", "NOLOWERCASE1", "NoDigitsHere"} {
		_, err := env.accounts.Register(ctx, &usecase.RegisterInput{
			FullName: "Alex Doe",
			Email:    "alex@example.com",
			Password: password,
		})
		require.Error(t, err, "password %q should be rejected", password)
		assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
	}

	// Nothing was persisted, so the address is still free.
	_, err := env.accounts.Register(ctx, &usecase.RegisterInput{
		FullName: "Alex Doe",
		Email:    "alex@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
}

func TestAccountService_RegisterSeedsDefaultActivities(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerTestUser(t, env, "alex@example.com")

	activities, err := env.activities.ListActivities(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, activities, 7)

	names := make([]string, 0, len(activities))
	for _, activity := range activities {
		assert.Equal(t, userID, activity.UserID)
		assert.True(t, activity.Active)
		names = append(names, activity.Name)
	}
	assert.Contains(t, names, "Drink Water")
	assert.Contains(t, names, "Exercise")
	assert.Contains(t, names, "Sleep")
}

func TestAccountService_LoginFailuresAreIndistinguishable(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerTestUser(t, env, "alex@example.com")

	_, wrongPassword := env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: "Wr0ngPassword",
	})
	_, unknownEmail := env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: testPassword,
	})

	require.Error(t, wrongPassword)
	require.Error(t, unknownEmail)
	assert.True(t, errors.Is(wrongPassword, domainerrors.ErrInvalidCredentials))
	assert.True(t, errors.Is(unknownEmail, domainerrors.ErrInvalidCredentials))
}

// recordingSessionStore captures exactly what the account service hands it.
type recordingSessionStore struct {
	created []*entity.User
	current *entity.User
}

func (s *recordingSessionStore) Create(user *entity.User) error {
	s.created = append(s.created, user)
	s.current = user

	return nil
}

func (s *recordingSessionStore) Current() *entity.User { return s.current }

func (s *recordingSessionStore) Clear() error {
	s.current = nil

	return nil
}

func TestAccountService_SessionNeverSeesCredential(t *testing.T) {
	store := &recordingSessionStore{}
	env := buildTestEnv(t, store)
	ctx := context.Background()

	registerTestUser(t, env, "alex@example.com")

	_, err := env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	// The hash is stripped before the session store is involved, not by it.
	require.Len(t, store.created, 2)
	for _, user := range store.created {
		assert.Empty(t, user.PasswordHash)
		assert.NotZero(t, user.ID)
	}
}

func TestAccountService_LogoutIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	registerTestUser(t, env, "alex@example.com")
	require.NotNil(t, env.accounts.CurrentUser(ctx))

	require.NoError(t, env.accounts.Logout(ctx))
	assert.Nil(t, env.accounts.CurrentUser(ctx))

	// No active session is not an error.
	require.NoError(t, env.accounts.Logout(ctx))
}

func TestAccountService_ChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerTestUser(t, env, "alex@example.com")

	err := env.accounts.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "Wr0ngPassword",
		NewPassword:     "N3wPassword",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	err = env.accounts.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: testPassword,
		NewPassword:     "weak",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))

	err = env.accounts.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: testPassword,
		NewPassword:     "N3wPassword",
	})
	require.NoError(t, err)

	_, err = env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: testPassword,
	})
	require.Error(t, err, "old password must stop working")

	_, err = env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: "N3wPassword",
	})
	require.NoError(t, err)
}

func TestAccountService_UpdateProfileMergesFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerTestUser(t, env, "alex@example.com")

	age := 31
	weight := 72.5
	require.NoError(t, env.accounts.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		Age:      &age,
		WeightKg: &weight,
	}))

	// A second partial update keeps the untouched fields.
	goal := "run a marathon"
	require.NoError(t, env.accounts.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		FitnessGoal: &goal,
	}))

	_, err := env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
}

func TestAccountService_UpdateProfileUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	age := 31
	err := env.accounts.UpdateProfile(context.Background(), 42, &usecase.UpdateProfileInput{Age: &age})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestAccountService_DeleteAccountRemovesOnlyThatUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alexID := registerTestUser(t, env, "alex@example.com")
	samID := registerTestUser(t, env, "sam@example.com")

	// The session belongs to sam, the most recent registration.
	require.NoError(t, env.accounts.DeleteAccount(ctx, alexID))

	_, err := env.accounts.Login(ctx, &usecase.LoginInput{
		Email:    "alex@example.com",
		Password: testPassword,
	})
	require.Error(t, err, "a deleted account must not log in")

	// Sam's data is untouched.
	activities, err := env.activities.ListActivities(ctx, samID)
	require.NoError(t, err)
	assert.Len(t, activities, 7)

	current := env.accounts.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, samID, current.ID)

	// Deleting the session's own account also clears the session.
	require.NoError(t, env.accounts.DeleteAccount(ctx, samID))
	assert.Nil(t, env.accounts.CurrentUser(ctx))

	// The address is free for registration again.
	_, err = env.accounts.Register(ctx, &usecase.RegisterInput{
		FullName: "Alex Again",
		Email:    "alex@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)
}

func TestAccountService_DeleteAccountUnknownUser(t *testing.T) {
	env := newTestEnv(t)

	err := env.accounts.DeleteAccount(context.Background(), 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
