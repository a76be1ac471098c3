package impl

import (
	"context"
	"log/slog"
	"time"

	"fittrack/internal/domain/entity"
	domainerrors "fittrack/internal/domain/errors"
	"fittrack/internal/domain/repository"
	"fittrack/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// activityService implements the ActivityUsecase interface.
type activityService struct {
	txManager    repository.TransactionManager
	activityRepo repository.ActivityRepository
	validate     *validator.Validate
	logger       *slog.Logger
}

// ActivityServiceParams holds dependencies for activityService, injected by Fx.
type ActivityServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	ActivityRepo repository.ActivityRepository
	Logger       *slog.Logger
}

// NewActivityService is the constructor for activityService.
func NewActivityService(params ActivityServiceParams) usecase.ActivityUsecase {
	return &activityService{
		txManager:    params.TxManager,
		activityRepo: params.ActivityRepo,
		validate:     validator.New(),
		logger:       params.Logger,
	}
}

// CreateActivity adds a new trackable activity for the user.
func (srv *activityService) CreateActivity(ctx context.Context, userID uint, input *usecase.CreateActivityInput) (*entity.Activity, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	activity := &entity.Activity{
		UserID:      userID,
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		TargetValue: input.TargetValue,
		TargetUnit:  input.TargetUnit,
		Category:    input.Category,
		Active:      true,
	}

	if err := srv.activityRepo.Create(ctx, activity); err != nil {
		srv.logger.Error("Failed to create activity", slog.Any("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create activity")
	}

	srv.logger.Debug("Activity created", slog.Any("userID", userID), slog.Any("activityID", activity.ID))

	return activity, nil
}

// UpdateActivity edits an activity the user owns. Nil input fields keep
// their current value.
func (srv *activityService) UpdateActivity(ctx context.Context, userID, activityID uint, input *usecase.UpdateActivityInput) (*entity.Activity, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	var updated *entity.Activity

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.ActivityRepo()

		activity, err := srv.ownedActivity(ctx, activityRepo, userID, activityID)
		if err != nil {
			return err
		}

		if input.Name != nil {
			activity.Name = *input.Name
		}
		if input.Description != nil {
			activity.Description = *input.Description
		}
		if input.Icon != nil {
			activity.Icon = *input.Icon
		}
		if input.TargetValue != nil {
			activity.TargetValue = *input.TargetValue
		}
		if input.TargetUnit != nil {
			activity.TargetUnit = *input.TargetUnit
		}
		if input.Category != nil {
			activity.Category = *input.Category
		}

		if err := activityRepo.Update(ctx, activity); err != nil {
			return errors.Wrap(err, "failed to update activity")
		}
		updated = activity

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteActivity soft-deletes an activity the user owns. Only that activity
// is affected; its logs remain for history.
func (srv *activityService) DeleteActivity(ctx context.Context, userID, activityID uint) error {
	srv.logger.Info("Deleting activity", slog.Any("userID", userID), slog.Any("activityID", activityID))

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.ActivityRepo()

		if _, err := srv.ownedActivity(ctx, activityRepo, userID, activityID); err != nil {
			return err
		}

		if err := activityRepo.SoftDelete(ctx, activityID); err != nil {
			return errors.Wrap(err, "failed to delete activity")
		}

		return nil
	})
}

// ListActivities returns the user's active activities.
func (srv *activityService) ListActivities(ctx context.Context, userID uint) ([]*entity.Activity, error) {
	activities, err := srv.activityRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list activities")
	}

	return activities, nil
}

// LogActivity records or overwrites one day's completion entry. The ownership
// check and the upsert share a transaction so concurrent toggles of the same
// (activity, date) serialize into a single consistent row.
func (srv *activityService) LogActivity(ctx context.Context, userID uint, input *usecase.LogActivityInput) error {
	if err := srv.validate.Struct(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}
	date, err := parseDate(input.Date)
	if err != nil {
		return err
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		activityRepo := repoFactory.ActivityRepo()

		if _, err := srv.ownedActivity(ctx, activityRepo, userID, input.ActivityID); err != nil {
			return err
		}

		log := &entity.ActivityLog{
			ActivityID:  input.ActivityID,
			UserID:      userID,
			LogDate:     date,
			Completed:   input.Completed,
			ActualValue: input.ActualValue,
			Notes:       input.Notes,
		}

		if err := activityRepo.UpsertLog(ctx, log); err != nil {
			return errors.Wrap(err, "failed to log activity")
		}

		return nil
	})
}

// LogsForDate returns the user's log entries for one calendar day, keyed by
// activity id.
func (srv *activityService) LogsForDate(ctx context.Context, userID uint, date string) (map[uint]*entity.ActivityLog, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	logged, err := srv.activityRepo.LogsForDate(ctx, userID, day)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load logs for date")
	}

	logs := make(map[uint]*entity.ActivityLog, len(logged))
	for _, item := range logged {
		log := item.Log
		logs[log.ActivityID] = &log
	}

	return logs, nil
}

// Stats aggregates completion per active activity over [startDate, endDate].
func (srv *activityService) Stats(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.ActivityStat, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	stats, err := srv.activityRepo.Stats(ctx, userID, start, end)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate stats")
	}

	return stats, nil
}

// ownedActivity loads an activity and verifies it is owned by the user and
// still active. Someone else's activity reports not-found rather than
// forbidden, so ids cannot be probed across users.
func (srv *activityService) ownedActivity(ctx context.Context, activityRepo repository.ActivityRepository, userID, activityID uint) (*entity.Activity, error) {
	activity, err := activityRepo.FindByID(ctx, activityID)
	if err != nil {
		if errors.Is(err, repository.ErrActivityNotFound) {
			return nil, errors.Wrap(domainerrors.ErrActivityNotFound, "activity not found")
		}

		return nil, errors.Wrap(err, "failed to find activity")
	}
	if activity.UserID != userID || !activity.Active {
		return nil, errors.Wrap(domainerrors.ErrActivityNotFound, "activity not found")
	}

	return activity, nil
}

// parseDate validates an ISO-8601 calendar day and returns its canonical form.
func parseDate(value string) (string, error) {
	parsed, err := time.Parse(entity.DateLayout, value)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrValidationFailed, "invalid date, expected YYYY-MM-DD")
	}

	return parsed.Format(entity.DateLayout), nil
}
