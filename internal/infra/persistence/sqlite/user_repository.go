package sqlite

import (
	"context"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// Create persists a new user entity together with its profile. The generated
// ID and timestamps are written back into the entity.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil && userM.Profile != nil {
		user.Profile.UserID = userM.Profile.UserID
		user.Profile.UpdatedAt = userM.Profile.UpdatedAt
	}

	return nil
}

// FindByID retrieves a single user by surrogate key, preloading its profile.
func (repo *userRepository) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Profile").
		First(&userM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by its normalized email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	err := repo.db.WithContext(ctx).
		Preload("Profile").
		First(&userM, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// UpdatePasswordHash replaces the stored credential string for one user.
func (repo *userRepository) UpdatePasswordHash(ctx context.Context, userID uint, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password hash")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpsertProfile inserts or replaces the 1:1 profile row for a user.
func (repo *userRepository) UpsertProfile(ctx context.Context, profile *entity.UserProfile) error {
	profileM := fromProfileDomain(profile)

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"age", "weight_kg", "height_cm", "gender", "fitness_goal", "updated_at",
			}),
		}).
		Create(profileM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert profile")
	}

	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// PurgeUserData deletes every row owned by the user across the five child
// tables. Each delete binds the user id as a parameter; callers run this
// inside a transaction so an interruption leaves no partial state.
func (repo *userRepository) PurgeUserData(ctx context.Context, userID uint) error {
	db := repo.db.WithContext(ctx)

	for _, m := range []any{
		&model.ActivityLogModel{},
		&model.ActivityModel{},
		&model.WorkoutSessionModel{},
		&model.BodyMeasurementModel{},
		&model.UserProfileModel{},
	} {
		if err := db.Where("user_id = ?", userID).Delete(m).Error; err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "failed to purge user data")
		}
	}

	return nil
}

// Delete removes the user row. Child rows across all five tables go with it
// via the ON DELETE CASCADE foreign keys.
func (repo *userRepository) Delete(ctx context.Context, userID uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.UserModel{}, "id = ?", userID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- mapping between persistence models and domain entities ---

func toUserDomain(m *model.UserModel) *entity.User {
	user := &entity.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FullName:     m.FullName,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
	if m.Profile != nil {
		user.Profile = &entity.UserProfile{
			UserID:      m.Profile.UserID,
			Age:         m.Profile.Age,
			WeightKg:    m.Profile.WeightKg,
			HeightCm:    m.Profile.HeightCm,
			Gender:      m.Profile.Gender,
			FitnessGoal: m.Profile.FitnessGoal,
			UpdatedAt:   m.Profile.UpdatedAt,
		}
	}

	return user
}

func fromUserDomain(user *entity.User) *model.UserModel {
	userM := &model.UserModel{
		ID:           user.ID,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		FullName:     user.FullName,
	}
	if user.Profile != nil {
		userM.Profile = fromProfileDomain(user.Profile)
	}

	return userM
}

func fromProfileDomain(profile *entity.UserProfile) *model.UserProfileModel {
	return &model.UserProfileModel{
		UserID:      profile.UserID,
		Age:         profile.Age,
		WeightKg:    profile.WeightKg,
		HeightCm:    profile.HeightCm,
		Gender:      profile.Gender,
		FitnessGoal: profile.FitnessGoal,
	}
}
