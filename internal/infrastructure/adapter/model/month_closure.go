package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthClosure marks a rolled over month
type MonthClosure struct {
	ID            uint64          `gorm:"primaryKey;autoIncrement"`
	UserID        uint64          `gorm:"not null;uniqueIndex:idx_closure_user_month"`
	Month         time.Time       `gorm:"type:date;not null;uniqueIndex:idx_closure_user_month"`
	BudgetsClosed int             `gorm:"not null"`
	BudgetTotal   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	SavedAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	ClosedAt      time.Time       `gorm:"not null"`
}

// TableName specifies the table name for MonthClosure
func (MonthClosure) TableName() string {
	return "month_closures"
}

// All lists every model for AutoMigrate, parents first
func All() []any {
	return []any{
		&User{},
		&VerificationCode{},
		&Category{},
		&Transaction{},
		&Budget{},
		&BudgetHistory{},
		&SavingsGoal{},
		&MonthlySavings{},
		&MonthClosure{},
		&MigrationVersion{},
	}
}
