// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/domain/service"
	"fittrack/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// dummyPassword feeds the hasher when login hits an unknown email, so the
// not-found path costs one KDF run just like the wrong-password path.
const dummyPassword = "equalize-login-latency"

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	hasher      service.PasswordHasher
	sessions    service.SessionStore
	validate    *validator.Validate
	logger      *slog.Logger
	dummyStored string
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Sessions  service.SessionStore
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		sessions:  params.Sessions,
		validate:  validator.New(),
		logger:    params.Logger,
	}

	// Precompute the credential used for timing equalization. An error here
	// only disables the dummy check; Check tolerates an empty stored string.
	if stored, err := params.Hasher.Hash(dummyPassword); err == nil {
		srv.dummyStored = stored
	}

	return srv
}

// Register orchestrates the complete account registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.logger.Info("Starting registration", slog.String("email", input.Email))

	// The email rule is anchored, so validate the normalized form.
	input.Email = normalizeEmail(input.Email)

	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.logger.Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	email := input.Email

	// Hash outside the transaction (the KDF is CPU-bound).
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.logger.Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	newUser := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
		FullName:     strings.TrimSpace(input.FullName),
		Profile:      &entity.UserProfile{},
	}

	// User, empty profile and default catalog land in one transaction;
	// the unique email index arbitrates duplicate registration.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		activityRepo := repoFactory.ActivityRepo()

		if err := userRepo.Create(ctx, newUser); err != nil {
			if errors.Is(err, repository.ErrDuplicateEmail) {
				return errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "registration failed")
			}

			return errors.Wrap(err, "failed to create user during registration")
		}

		for _, activity := range defaultActivities(newUser.ID) {
			if err := activityRepo.Create(ctx, activity); err != nil {
				return errors.Wrap(err, "failed to create default activity")
			}
		}

		return nil
	})
	if err != nil {
		srv.logger.Warn("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	if err := srv.sessions.Create(newUser.Public()); err != nil {
		srv.logger.Warn("Failed to persist session after registration", slog.Any("error", err))
	}

	srv.logger.Debug("Registration completed", slog.Any("userID", newUser.ID))

	return newUser.Public(), nil
}

// Login verifies credentials and creates a session. Unknown email and wrong
// password are deliberately indistinguishable, in both error and latency.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*entity.User, error) {
	srv.logger.Debug("Starting login", slog.String("email", input.Email))

	input.Email = normalizeEmail(input.Email)

	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	email := input.Email

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Burn one KDF run so an unknown email takes as long as a
			// wrong password. Prevents user enumeration via latency.
			srv.hasher.Check(input.Password, srv.dummyStored)
			srv.logger.Warn("Login failed", slog.String("email", email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.logger.Warn("Login failed", slog.String("email", email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if err := srv.sessions.Create(user.Public()); err != nil {
		srv.logger.Warn("Failed to persist session after login", slog.Any("error", err))
	}

	srv.logger.Debug("User logged in successfully", slog.Any("userID", user.ID))

	return user.Public(), nil
}

// Logout clears the session. Calling it with no active session is not an error.
func (srv *accountService) Logout(_ context.Context) error {
	if err := srv.sessions.Clear(); err != nil {
		srv.logger.Error("Failed to clear session", slog.Any("error", err))

		return errors.Wrap(err, "failed to clear session")
	}

	return nil
}

// CurrentUser returns the persisted session's user, or nil when anonymous.
func (srv *accountService) CurrentUser(_ context.Context) *entity.User {
	return srv.sessions.Current()
}

// ChangePassword re-verifies the current password before storing a new one.
func (srv *accountService) ChangePassword(ctx context.Context, userID uint, input *usecase.ChangePasswordInput) error {
	srv.logger.Info("Changing password", slog.Any("userID", userID))

	if err := srv.validate.Struct(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "user not found")
		}

		return errors.Wrap(err, "failed to load user for password change")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		srv.logger.Warn("Password change rejected", slog.Any("userID", userID))

		return errors.Wrap(domainerrors.ErrInvalidCredentials, "current password mismatch")
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.userRepo.UpdatePasswordHash(ctx, userID, hashedPassword); err != nil {
		return errors.Wrap(err, "failed to store new password hash")
	}

	return nil
}

// UpdateProfile applies the given fields over the stored profile and upserts it.
func (srv *accountService) UpdateProfile(ctx context.Context, userID uint, input *usecase.UpdateProfileInput) error {
	srv.logger.Info("Updating profile", slog.Any("userID", userID))

	if err := srv.validate.Struct(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		user, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to find user")
		}

		profile := user.Profile
		if profile == nil {
			profile = &entity.UserProfile{}
		}
		profile.UserID = userID

		if input.Age != nil {
			profile.Age = *input.Age
		}
		if input.WeightKg != nil {
			profile.WeightKg = *input.WeightKg
		}
		if input.HeightCm != nil {
			profile.HeightCm = *input.HeightCm
		}
		if input.Gender != nil {
			profile.Gender = *input.Gender
		}
		if input.FitnessGoal != nil {
			profile.FitnessGoal = *input.FitnessGoal
		}

		return userRepo.UpsertProfile(ctx, profile)
	})
	if err != nil {
		return errors.Wrap(err, "failed to update profile")
	}

	return nil
}

// DeleteAccount removes the user and, via the cascading foreign keys, every
// row it owns across the five child tables, as one transaction.
func (srv *accountService) DeleteAccount(ctx context.Context, userID uint) error {
	srv.logger.Info("Deleting account", slog.Any("userID", userID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		if err := userRepo.PurgeUserData(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to purge user data")
		}

		if err := userRepo.Delete(ctx, userID); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "user not found")
			}

			return errors.Wrap(err, "failed to delete user")
		}

		return nil
	})
	if err != nil {
		return err
	}

	if current := srv.sessions.Current(); current != nil && current.ID == userID {
		if err := srv.sessions.Clear(); err != nil {
			srv.logger.Warn("Failed to clear session after account deletion", slog.Any("error", err))
		}
	}

	return nil
}

// normalizeEmail lower-cases and trims the login identifier; uniqueness and
// lookups both operate on this form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
