package model

import (
	"time"
)

// ActivityModel mirrors the 'activities' table. Deletion is soft: IsActive
// flips to false and the row stays so logs keep their parent.
type ActivityModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index;not null"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	Icon        string `gorm:"type:varchar(50)"`
	TargetValue float64
	TargetUnit  string `gorm:"type:varchar(50)"`
	Category    string `gorm:"type:varchar(50)"`
	IsActive    bool   `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Logs []ActivityLogModel `gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ActivityModel) TableName() string {
	return "activities"
}

// ActivityLogModel mirrors the 'activity_logs' table. The composite unique
// index on (activity_id, log_date) makes daily logging idempotent: the store
// upserts on it, so at most one row exists per activity per calendar day.
type ActivityLogModel struct {
	ID          uint   `gorm:"primaryKey"`
	ActivityID  uint   `gorm:"not null;index:idx_activity_log_day,unique"`
	UserID      uint   `gorm:"index;not null"`
	// varchar keeps the YYYY-MM-DD string intact; a `date` column would be
	// read back as time.Time by the sqlite driver.
	LogDate     string `gorm:"type:varchar(10);not null;index:idx_activity_log_day,unique"`
	Completed   bool   `gorm:"default:false"`
	ActualValue float64
	Notes       string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
