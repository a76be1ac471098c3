package impl

import (
	"context"
	"log/slog"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// wellnessService implements the WellnessUsecase interface.
type wellnessService struct {
	wellnessRepo repository.WellnessRepository
	validate     *validator.Validate
	logger       *slog.Logger
}

// WellnessServiceParams holds dependencies for wellnessService, injected by Fx.
type WellnessServiceParams struct {
	fx.In

	WellnessRepo repository.WellnessRepository
	Logger       *slog.Logger
}

// NewWellnessService is the constructor for wellnessService.
func NewWellnessService(params WellnessServiceParams) usecase.WellnessUsecase {
	return &wellnessService{
		wellnessRepo: params.WellnessRepo,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// LogWorkout records one workout session.
func (srv *wellnessService) LogWorkout(ctx context.Context, userID uint, input *usecase.LogWorkoutInput) (*entity.WorkoutSession, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	session := &entity.WorkoutSession{
		UserID:          userID,
		WorkoutType:     input.WorkoutType,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
		Intensity:       input.Intensity,
		Notes:           input.Notes,
		SessionDate:     date,
	}

	if err := srv.wellnessRepo.CreateWorkout(ctx, session); err != nil {
		srv.logger.Error("Failed to log workout", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to log workout")
	}

	return session, nil
}

// ListWorkouts returns the user's sessions within a date range, newest first.
func (srv *wellnessService) ListWorkouts(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.WorkoutSession, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	sessions, err := srv.wellnessRepo.ListWorkouts(ctx, userID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list workouts")
	}

	return sessions, nil
}

// LogMeasurement records one set of body metrics.
func (srv *wellnessService) LogMeasurement(ctx context.Context, userID uint, input *usecase.LogMeasurementInput) (*entity.BodyMeasurement, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return nil, err
	}

	measurement := &entity.BodyMeasurement{
		UserID:             userID,
		WeightKg:           input.WeightKg,
		BodyFatPercentage:  input.BodyFatPercentage,
		MuscleMassKg:       input.MuscleMassKg,
		WaistCircumference: input.WaistCircumference,
		MeasurementDate:    date,
	}

	if err := srv.wellnessRepo.CreateMeasurement(ctx, measurement); err != nil {
		srv.logger.Error("Failed to log measurement", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to log measurement")
	}

	return measurement, nil
}

// ListMeasurements returns the user's measurements within a date range,
// newest first.
func (srv *wellnessService) ListMeasurements(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.BodyMeasurement, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	measurements, err := srv.wellnessRepo.ListMeasurements(ctx, userID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list measurements")
	}

	return measurements, nil
}

// parseDateRange validates both bounds of an inclusive date range.
func parseDateRange(startDate, endDate string) (string, string, error) {
	start, err := parseDate(startDate)
	if err != nil {
		return "", "", err
	}
	end, err := parseDate(endDate)
	if err != nil {
		return "", "", err
	}
	if start > end {
		return "", "", errors.Wrap(domainerrors.ErrValidationFailed, "start date is after end date")
	}

	return start, end, nil
}
