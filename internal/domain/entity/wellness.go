package entity

import (
	"time"
)

// WorkoutSession is one explicitly logged workout. Unlike activity logs there
// is no per-day uniqueness; a user may record any number of sessions per day.
type WorkoutSession struct {
	ID              uint
	UserID          uint
	WorkoutType     string  // e.g. "running", "strength".
	DurationMinutes int
	CaloriesBurned  float64
	Intensity       string // e.g. "low", "moderate", "high".
	Notes           string
	SessionDate     string // Calendar day in DateLayout form.
	CreatedAt       time.Time
}

// BodyMeasurement is one explicitly logged set of body metrics.
type BodyMeasurement struct {
	ID                 uint
	UserID             uint
	WeightKg           float64
	BodyFatPercentage  float64
	MuscleMassKg       float64
	WaistCircumference float64 // In centimeters.
	MeasurementDate    string  // Calendar day in DateLayout form.
	CreatedAt          time.Time
}
