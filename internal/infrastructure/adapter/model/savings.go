package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavingsGoal is the savings target of one month
type SavingsGoal struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	UserID      uint64          `gorm:"not null;uniqueIndex:idx_goal_user_month"`
	Month       time.Time       `gorm:"type:date;not null;uniqueIndex:idx_goal_user_month"`
	InitialGoal decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CurrentGoal decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for SavingsGoal
func (SavingsGoal) TableName() string {
	return "savings_goals"
}

// MonthlySavings is the recorded savings result of a month
type MonthlySavings struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	UserID      uint64          `gorm:"not null;uniqueIndex:idx_monthly_savings_user_month"`
	Month       time.Time       `gorm:"type:date;not null;uniqueIndex:idx_monthly_savings_user_month"`
	SavedAmount decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	SavingGoal  decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Status      string          `gorm:"not null;size:20"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for MonthlySavings
func (MonthlySavings) TableName() string {
	return "monthly_savings"
}
