// Package model contains the GORM persistence models mirroring the six
// tables of the local store. Every child table carries an ON DELETE CASCADE
// foreign key to users, so deleting a user transactionally removes its rows.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table. IDs are auto-increment surrogates.
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	FullName     string `gorm:"type:varchar(100)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Profile      *UserProfileModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Activities   []ActivityModel        `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ActivityLogs []ActivityLogModel     `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Workouts     []WorkoutSessionModel  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Measurements []BodyMeasurementModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserProfileModel mirrors the 'user_profiles' table. UserID doubles as the
// primary key, enforcing the 1:1 relationship with users.
type UserProfileModel struct {
	UserID      uint    `gorm:"primaryKey"`
	Age         int     `gorm:"default:0"`
	WeightKg    float64 `gorm:"default:0"`
	HeightCm    float64 `gorm:"default:0"`
	Gender      string  `gorm:"type:varchar(50)"`
	FitnessGoal string  `gorm:"type:varchar(100)"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserProfileModel) TableName() string {
	return "user_profiles"
}
