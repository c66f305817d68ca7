package model

import (
	"time"
)

// VerificationCode is a pending registration or password reset
type VerificationCode struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	Email        string    `gorm:"not null;size:255;uniqueIndex:idx_verification_email_purpose"`
	Purpose      string    `gorm:"not null;size:20;uniqueIndex:idx_verification_email_purpose"`
	Name         string    `gorm:"size:255"`
	PasswordHash string    `gorm:"size:255"`
	CodeHash     string    `gorm:"not null;size:255"`
	Attempts     int       `gorm:"not null;default:0"`
	ExpiresAt    time.Time `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for VerificationCode
func (VerificationCode) TableName() string {
	return "verification_codes"
}
