package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"fittrack/internal/domain/entity"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlog "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"), gormlog.Discard)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *entity.User {
	t.Helper()

	user := &entity.User{
		Email:        email,
		PasswordHash: "73616c74:646967657374",
		FullName:     "Test User",
		Profile:      &entity.UserProfile{},
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)

	boom := errors.New("boom")
	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user := &entity.User{Email: "alex@example.com", PasswordHash: "x", FullName: "Alex"}
		if createErr := repoFactory.UserRepo().Create(ctx, user); createErr != nil {
			return createErr
		}

		return boom
	})
	require.ErrorIs(t, err, boom)

	_, err = NewUserRepository(db).FindByEmail(ctx, "alex@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound, "the insert must be rolled back")
}

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	txManager := NewTransactionManager(db)

	err := txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user := &entity.User{Email: "alex@example.com", PasswordHash: "x", FullName: "Alex"}
		if createErr := repoFactory.UserRepo().Create(ctx, user); createErr != nil {
			return createErr
		}

		return repoFactory.ActivityRepo().Create(ctx, &entity.Activity{
			UserID: user.ID, Name: "Stretch", Active: true,
		})
	})
	require.NoError(t, err)

	user, err := NewUserRepository(db).FindByEmail(ctx, "alex@example.com")
	require.NoError(t, err)

	activities, err := NewActivityRepository(db).ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, activities, 1)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	createTestUser(t, db, "alex@example.com")

	err := NewUserRepository(db).Create(ctx, &entity.User{
		Email: "alex@example.com", PasswordHash: "x", FullName: "Other",
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_DeleteCascades(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	victim := createTestUser(t, db, "alex@example.com")
	keeper := createTestUser(t, db, "sam@example.com")

	activityRepo := NewActivityRepository(db)
	wellnessRepo := NewWellnessRepository(db)
	for _, user := range []*entity.User{victim, keeper} {
		activity := &entity.Activity{UserID: user.ID, Name: "Stretch", Active: true}
		require.NoError(t, activityRepo.Create(ctx, activity))
		require.NoError(t, activityRepo.UpsertLog(ctx, &entity.ActivityLog{
			ActivityID: activity.ID, UserID: user.ID, LogDate: "2026-08-20", Completed: true,
		}))
		require.NoError(t, wellnessRepo.CreateWorkout(ctx, &entity.WorkoutSession{
			UserID: user.ID, WorkoutType: "running", DurationMinutes: 30, SessionDate: "2026-08-20",
		}))
		require.NoError(t, wellnessRepo.CreateMeasurement(ctx, &entity.BodyMeasurement{
			UserID: user.ID, WeightKg: 72, MeasurementDate: "2026-08-20",
		}))
	}

	require.NoError(t, NewUserRepository(db).Delete(ctx, victim.ID))

	// Every table keeps exactly the surviving user's rows.
	for _, m := range []any{
		&model.UserProfileModel{},
		&model.ActivityModel{},
		&model.ActivityLogModel{},
		&model.WorkoutSessionModel{},
		&model.BodyMeasurementModel{},
	} {
		var count int64
		require.NoError(t, db.Model(m).Where("user_id = ?", victim.ID).Count(&count).Error)
		assert.Zero(t, count, "%T rows of the deleted user must be gone", m)

		require.NoError(t, db.Model(m).Where("user_id = ?", keeper.ID).Count(&count).Error)
		assert.EqualValues(t, 1, count, "%T rows of the other user must remain", m)
	}
}

func TestActivityRepository_UpsertLogKeyedOnDay(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "alex@example.com")
	activityRepo := NewActivityRepository(db)
	activity := &entity.Activity{UserID: user.ID, Name: "Stretch", Active: true}
	require.NoError(t, activityRepo.Create(ctx, activity))

	log := func(date string, completed bool) error {
		return activityRepo.UpsertLog(ctx, &entity.ActivityLog{
			ActivityID: activity.ID, UserID: user.ID, LogDate: date, Completed: completed,
		})
	}
	require.NoError(t, log("2026-08-20", true))
	require.NoError(t, log("2026-08-20", false))
	require.NoError(t, log("2026-08-21", true))

	var count int64
	require.NoError(t, db.Model(&model.ActivityLogModel{}).
		Where("activity_id = ?", activity.ID).Count(&count).Error)
	assert.EqualValues(t, 2, count, "one row per calendar day")

	logged, err := activityRepo.LogsForDate(ctx, user.ID, "2026-08-20")
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.False(t, logged[0].Log.Completed, "the second upsert wins")
	assert.Equal(t, "Stretch", logged[0].Activity.Name)
	assert.Equal(t, "2026-08-20", logged[0].Log.LogDate, "the calendar day must read back verbatim")
}

func TestWellnessRepository_DatesRoundTrip(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	user := createTestUser(t, db, "alex@example.com")
	wellnessRepo := NewWellnessRepository(db)

	require.NoError(t, wellnessRepo.CreateWorkout(ctx, &entity.WorkoutSession{
		UserID: user.ID, WorkoutType: "running", DurationMinutes: 30, SessionDate: "2026-08-20",
	}))
	require.NoError(t, wellnessRepo.CreateMeasurement(ctx, &entity.BodyMeasurement{
		UserID: user.ID, WeightKg: 72, MeasurementDate: "2026-08-20",
	}))

	sessions, err := wellnessRepo.ListWorkouts(ctx, user.ID, "2026-08-20", "2026-08-20")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "2026-08-20", sessions[0].SessionDate)

	measurements, err := wellnessRepo.ListMeasurements(ctx, user.ID, "2026-08-20", "2026-08-20")
	require.NoError(t, err)
	require.Len(t, measurements, 1)
	assert.Equal(t, "2026-08-20", measurements[0].MeasurementDate)
}
