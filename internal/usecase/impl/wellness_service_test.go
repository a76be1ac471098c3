package impl

import (
	"context"
	"testing"

	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWellnessService_LogWorkoutAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerTestUser(t, env, "alex@example.com")

	for _, session := range []usecase.LogWorkoutInput{
		{WorkoutType: "running", DurationMinutes: 30, CaloriesBurned: 300, Intensity: "moderate", Date: "2026-08-18"},
		{WorkoutType: "strength", DurationMinutes: 45, Intensity: "high", Date: "2026-08-20"},
		{WorkoutType: "yoga", DurationMinutes: 60, Intensity: "low", Date: "2026-08-25"},
	} {
		logged, err := env.wellness.LogWorkout(ctx, userID, &session)
		require.NoError(t, err)
		assert.NotZero(t, logged.ID)
	}

	// Two sessions on the same day are both kept.
	_, err := env.wellness.LogWorkout(ctx, userID, &usecase.LogWorkoutInput{
		WorkoutType: "cycling", DurationMinutes: 20, Date: "2026-08-20",
	})
	require.NoError(t, err)

	sessions, err := env.wellness.ListWorkouts(ctx, userID, "2026-08-18", "2026-08-21")
	require.NoError(t, err)
	require.Len(t, sessions, 3, "the session outside the range is excluded")

	for i := 1; i < len(sessions); i++ {
		assert.GreaterOrEqual(t, sessions[i-1].SessionDate, sessions[i].SessionDate, "newest first")
	}
}

func TestWellnessService_LogWorkoutValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerTestUser(t, env, "alex@example.com")

	cases := []usecase.LogWorkoutInput{
		{WorkoutType: "", DurationMinutes: 30, Date: "2026-08-20"},
		{WorkoutType: "running", DurationMinutes: 0, Date: "2026-08-20"},
		{WorkoutType: "running", DurationMinutes: 30, Intensity: "extreme", Date: "2026-08-20"},
		{WorkoutType: "running", DurationMinutes: 30, Date: "not-a-date"},
	}
	for _, input := range cases {
		_, err := env.wellness.LogWorkout(ctx, userID, &input)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	}
}

func TestWellnessService_LogMeasurementAndList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerTestUser(t, env, "alex@example.com")

	first, err := env.wellness.LogMeasurement(ctx, userID, &usecase.LogMeasurementInput{
		WeightKg: 72.5, BodyFatPercentage: 18.2, Date: "2026-08-18",
	})
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	_, err = env.wellness.LogMeasurement(ctx, userID, &usecase.LogMeasurementInput{
		WeightKg: 72.1, Date: "2026-08-25",
	})
	require.NoError(t, err)

	measurements, err := env.wellness.ListMeasurements(ctx, userID, "2026-08-01", "2026-08-20")
	require.NoError(t, err)
	require.Len(t, measurements, 1)
	assert.Equal(t, 72.5, measurements[0].WeightKg)
	assert.Equal(t, "2026-08-18", measurements[0].MeasurementDate)
}

func TestWellnessService_ListRejectsReversedRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	userID := registerTestUser(t, env, "alex@example.com")

	_, err := env.wellness.ListWorkouts(ctx, userID, "2026-08-21", "2026-08-18")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = env.wellness.ListMeasurements(ctx, userID, "2026-08-21", "2026-08-18")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestWellnessService_ScopedToUser(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	alexID := registerTestUser(t, env, "alex@example.com")
	samID := registerTestUser(t, env, "sam@example.com")

	_, err := env.wellness.LogWorkout(ctx, alexID, &usecase.LogWorkoutInput{
		WorkoutType: "running", DurationMinutes: 30, Date: "2026-08-20",
	})
	require.NoError(t, err)

	sessions, err := env.wellness.ListWorkouts(ctx, samID, "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Empty(t, sessions)
}
