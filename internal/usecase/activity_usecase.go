package usecase

import (
	"context"

	"fittrack/internal/domain/entity"
)

// CreateActivityInput defines the data required to create an activity.
type CreateActivityInput struct {
	Name        string  `validate:"required,max=100"`
	Description string  `validate:"max=500"`
	Icon        string  `validate:"max=50"`
	TargetValue float64 `validate:"min=0"`
	TargetUnit  string  `validate:"max=50"`
	Category    string  `validate:"max=50"`
}

// UpdateActivityInput carries the activity fields to change. Nil fields keep
// their current value.
type UpdateActivityInput struct {
	Name        *string  `validate:"omitempty,min=1,max=100"`
	Description *string  `validate:"omitempty,max=500"`
	Icon        *string  `validate:"omitempty,max=50"`
	TargetValue *float64 `validate:"omitempty,min=0"`
	TargetUnit  *string  `validate:"omitempty,max=50"`
	Category    *string  `validate:"omitempty,max=50"`
}

// LogActivityInput defines one day's completion record for an activity.
// Logging the same (ActivityID, Date) again overwrites the previous entry.
type LogActivityInput struct {
	ActivityID  uint   `validate:"required"`
	Date        string `validate:"required"` // ISO-8601 calendar day, e.g. "2024-01-01".
	Completed   bool
	ActualValue float64 `validate:"min=0"`
	Notes       string  `validate:"max=500"`
}

// ActivityUsecase defines the activity tracking operations available to the
// presentation layer. Every operation is scoped to the calling user.
type ActivityUsecase interface {
	// CreateActivity adds a new trackable activity for the user.
	CreateActivity(ctx context.Context, userID uint, input *CreateActivityInput) (*entity.Activity, error)

	// UpdateActivity edits an activity the user owns.
	UpdateActivity(ctx context.Context, userID, activityID uint, input *UpdateActivityInput) (*entity.Activity, error)

	// DeleteActivity soft-deletes an activity the user owns. Its logs remain.
	DeleteActivity(ctx context.Context, userID, activityID uint) error

	// ListActivities returns the user's active activities.
	ListActivities(ctx context.Context, userID uint) ([]*entity.Activity, error)

	// LogActivity records or overwrites one day's completion entry.
	LogActivity(ctx context.Context, userID uint, input *LogActivityInput) error

	// LogsForDate returns the user's log entries for one calendar day,
	// keyed by activity id.
	LogsForDate(ctx context.Context, userID uint, date string) (map[uint]*entity.ActivityLog, error)

	// Stats aggregates completion per active activity over a date range.
	Stats(ctx context.Context, userID uint, startDate, endDate string) ([]*entity.ActivityStat, error)
}
