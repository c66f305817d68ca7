package model

import (
	"time"
)

// MigrationVersion records one applied schema step
type MigrationVersion struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Version     string    `gorm:"size:20;not null;uniqueIndex"`
	Description string    `gorm:"size:255;not null"`
	AppliedAt   time.Time `gorm:"not null"`
	DurationMs  int64     `gorm:"not null;default:0"`
}

// TableName specifies the table name for the migration version model
func (MigrationVersion) TableName() string {
	return "schema_migrations"
}
