package model

import (
	"time"
)

// WorkoutSessionModel mirrors the 'workout_sessions' table. No uniqueness
// constraint; a user may log any number of sessions per day.
type WorkoutSessionModel struct {
	ID              uint   `gorm:"primaryKey"`
	UserID          uint   `gorm:"index;not null"`
	WorkoutType     string `gorm:"type:varchar(50);not null"`
	DurationMinutes int
	CaloriesBurned  float64
	Intensity       string `gorm:"type:varchar(20)"`
	Notes           string `gorm:"type:text"`
	SessionDate     string `gorm:"type:varchar(10);index;not null"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkoutSessionModel) TableName() string {
	return "workout_sessions"
}

// BodyMeasurementModel mirrors the 'body_measurements' table.
type BodyMeasurementModel struct {
	ID                 uint `gorm:"primaryKey"`
	UserID             uint `gorm:"index;not null"`
	WeightKg           float64
	BodyFatPercentage  float64
	MuscleMassKg       float64
	WaistCircumference float64
	MeasurementDate    string `gorm:"type:varchar(10);index;not null"`
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (BodyMeasurementModel) TableName() string {
	return "body_measurements"
}
