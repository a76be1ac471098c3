package entity

import (
	"time"
)

// DateLayout is the canonical calendar-day format used for log and
// measurement dates throughout the domain.
const DateLayout = "2006-01-02"

// Activity is a user-defined trackable habit. Activities are soft-deleted:
// Active flips to false and the row stays so historical logs keep their parent.
type Activity struct {
	ID          uint      // Surrogate key, assigned by the store.
	UserID      uint      // Owning user.
	Name        string    // Display name, e.g. "Drink Water".
	Description string    // Optional longer description.
	Icon        string    // Icon identifier used by the presentation layer.
	TargetValue float64   // Daily target, e.g. 8.
	TargetUnit  string    // Unit of the target, e.g. "glasses".
	Category    string    // Grouping label, e.g. "health".
	Active      bool      // False once the user deletes the activity.
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ActivityLog records the completion state of one activity on one calendar
// day. At most one log exists per (ActivityID, LogDate); re-logging a day
// overwrites the prior entry.
type ActivityLog struct {
	ID          uint
	ActivityID  uint
	UserID      uint
	LogDate     string // Calendar day in DateLayout form.
	Completed   bool
	ActualValue float64 // Achieved value, 0 when not reported.
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LoggedActivity is the read-side join of a day's log with its activity,
// as returned by the per-date log query.
type LoggedActivity struct {
	Log      ActivityLog
	Activity Activity
}

// ActivityStat is one row of the date-range completion aggregation.
// An activity with no logs in range has TotalCount 0 and CompletionRate 0.
type ActivityStat struct {
	ActivityID     uint
	Name           string
	Category       string
	CompletedCount int
	TotalCount     int
	CompletionRate float64 // CompletedCount / TotalCount, 0 when TotalCount is 0.
}
