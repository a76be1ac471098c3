package usecase

import (
	"context"

	"fittrack/internal/domain/entity"
)

// LogWorkoutInput defines one explicitly logged workout session.
type LogWorkoutInput struct {
	WorkoutType     string  `validate:"required,max=50"`
	DurationMinutes int     `validate:"required,min=1"`
	CaloriesBurned  float64 `validate:"min=0"`
	Intensity       string  `validate:"omitempty,oneof=low moderate high"`
	Notes           string  `validate:"max=500"`
	Date            string  `validate:"required"` // ISO-8601 calendar day.
}

// LogMeasurementInput defines one explicitly logged set of body metrics.
type LogMeasurementInput struct {
	WeightKg           float64 `validate:"min=0"`
	BodyFatPercentage  float64 `validate:"min=0,max=100"`
	MuscleMassKg       float64 `validate:"min=0"`
	WaistCircumference float64 `validate:"min=0"`
	Date               string  `validate:"required"` // ISO-8601 calendar day.
}

// WellnessUsecase defines workout and body measurement logging. Multiple
// entries per day are allowed; there is no per-day uniqueness here.
type WellnessUsecase interface {
	// LogWorkout records one workout session.
	LogWorkout(ctx context.Context, userID uint, input *LogWorkoutInput) (*entity.WorkoutSession, error)

	// ListWorkouts returns the user's sessions within a date range, newest first.
	ListWorkouts(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.WorkoutSession, error)

	// LogMeasurement records one set of body metrics.
	LogMeasurement(ctx context.Context, userID uint, input *LogMeasurementInput) (*entity.BodyMeasurement, error)

	// ListMeasurements returns the user's measurements within a date range, newest first.
	ListMeasurements(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.BodyMeasurement, error)
}
