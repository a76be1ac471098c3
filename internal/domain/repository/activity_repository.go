package repository

import (
	"context"

	"fittrack/internal/domain/entity"
	"fittrack/internal/errors"
)

// ErrActivityNotFound is returned when an activity cannot be found or does
// not belong to the requesting user.
var ErrActivityNotFound = errors.New("activity not found")

// ActivityRepository defines persistence operations for activities and their
// daily logs.
type ActivityRepository interface {
	// Create persists a new activity. The generated ID and timestamps are
	// written back into the entity.
	Create(ctx context.Context, activity *entity.Activity) error

	// FindByID retrieves one activity by surrogate key, active or not.
	FindByID(ctx context.Context, id uint) (*entity.Activity, error)

	// ListByUser returns the user's active activities ordered by creation.
	ListByUser(ctx context.Context, userID uint) ([]*entity.Activity, error)

	// Update persists edits to an existing activity.
	Update(ctx context.Context, activity *entity.Activity) error

	// SoftDelete flips the activity's active flag to false. The row and its
	// logs remain. Only the given id is affected.
	SoftDelete(ctx context.Context, id uint) error

	// UpsertLog inserts or replaces the log row keyed on
	// (ActivityID, LogDate). Re-invoking with the same key overwrites the
	// prior record; it never errors or duplicates.
	UpsertLog(ctx context.Context, log *entity.ActivityLog) error

	// LogsForDate returns the user's logs for exactly one calendar day,
	// joined with their parent activity.
	LogsForDate(ctx context.Context, userID uint, date string) ([]*entity.LoggedActivity, error)

	// Stats aggregates completion over [startDate, endDate] per active
	// activity. Activities with zero logs in range appear with TotalCount 0
	// and CompletionRate 0.
	Stats(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.ActivityStat, error)
}
