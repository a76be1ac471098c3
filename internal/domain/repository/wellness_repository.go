package repository

import (
	"context"

	"fittrack/internal/domain/entity"
)

// WellnessRepository defines persistence operations for workout sessions and
// body measurements. Neither carries a uniqueness constraint; multiple rows
// per day are allowed.
type WellnessRepository interface {
	// CreateWorkout persists a new workout session.
	CreateWorkout(ctx context.Context, session *entity.WorkoutSession) error

	// ListWorkouts returns the user's sessions within [startDate, endDate],
	// newest first.
	ListWorkouts(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.WorkoutSession, error)

	// CreateMeasurement persists a new body measurement.
	CreateMeasurement(ctx context.Context, measurement *entity.BodyMeasurement) error

	// ListMeasurements returns the user's measurements within
	// [startDate, endDate], newest first.
	ListMeasurements(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.BodyMeasurement, error)
}
