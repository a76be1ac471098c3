package sqlite

import (
	"context"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// wellnessRepository implements the domain.WellnessRepository interface using GORM.
type wellnessRepository struct {
	db *gorm.DB
}

// NewWellnessRepository is the constructor for wellnessRepository.
func NewWellnessRepository(db *gorm.DB) repository.WellnessRepository {
	return &wellnessRepository{db: db}
}

// CreateWorkout persists a new workout session.
func (repo *wellnessRepository) CreateWorkout(ctx context.Context, session *entity.WorkoutSession) error {
	sessionM := &model.WorkoutSessionModel{
		UserID:          session.UserID,
		WorkoutType:     session.WorkoutType,
		DurationMinutes: session.DurationMinutes,
		CaloriesBurned:  session.CaloriesBurned,
		Intensity:       session.Intensity,
		Notes:           session.Notes,
		SessionDate:     session.SessionDate,
	}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create workout session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// ListWorkouts returns the user's sessions within [startDate, endDate], newest first.
func (repo *wellnessRepository) ListWorkouts(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.WorkoutSession, error) {
	var sessionMs []model.WorkoutSessionModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND session_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("session_date DESC, id DESC").
		Find(&sessionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workout sessions")
	}

	sessions := make([]*entity.WorkoutSession, 0, len(sessionMs))
	for i := range sessionMs {
		m := &sessionMs[i]
		sessions = append(sessions, &entity.WorkoutSession{
			ID:              m.ID,
			UserID:          m.UserID,
			WorkoutType:     m.WorkoutType,
			DurationMinutes: m.DurationMinutes,
			CaloriesBurned:  m.CaloriesBurned,
			Intensity:       m.Intensity,
			Notes:           m.Notes,
			SessionDate:     m.SessionDate,
			CreatedAt:       m.CreatedAt,
		})
	}

	return sessions, nil
}

// CreateMeasurement persists a new body measurement.
func (repo *wellnessRepository) CreateMeasurement(ctx context.Context, measurement *entity.BodyMeasurement) error {
	measurementM := &model.BodyMeasurementModel{
		UserID:             measurement.UserID,
		WeightKg:           measurement.WeightKg,
		BodyFatPercentage:  measurement.BodyFatPercentage,
		MuscleMassKg:       measurement.MuscleMassKg,
		WaistCircumference: measurement.WaistCircumference,
		MeasurementDate:    measurement.MeasurementDate,
	}

	if err := repo.db.WithContext(ctx).Create(measurementM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create body measurement")
	}

	measurement.ID = measurementM.ID
	measurement.CreatedAt = measurementM.CreatedAt

	return nil
}

// ListMeasurements returns the user's measurements within [startDate, endDate], newest first.
func (repo *wellnessRepository) ListMeasurements(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.BodyMeasurement, error) {
	var measurementMs []model.BodyMeasurementModel

	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND measurement_date BETWEEN ? AND ?", userID, startDate, endDate).
		Order("measurement_date DESC, id DESC").
		Find(&measurementMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list body measurements")
	}

	measurements := make([]*entity.BodyMeasurement, 0, len(measurementMs))
	for i := range measurementMs {
		m := &measurementMs[i]
		measurements = append(measurements, &entity.BodyMeasurement{
			ID:                 m.ID,
			UserID:             m.UserID,
			WeightKg:           m.WeightKg,
			BodyFatPercentage:  m.BodyFatPercentage,
			MuscleMassKg:       m.MuscleMassKg,
			WaistCircumference: m.WaistCircumference,
			MeasurementDate:    m.MeasurementDate,
			CreatedAt:          m.CreatedAt,
		})
	}

	return measurements, nil
}
