package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Budget is the live monthly budget of one category
type Budget struct {
	ID         uint64          `gorm:"primaryKey;autoIncrement"`
	UserID     uint64          `gorm:"not null;uniqueIndex:idx_budget_user_category"`
	CategoryID uint64          `gorm:"not null;uniqueIndex:idx_budget_user_category"`
	Amount     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`

	Category Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Budget
func (Budget) TableName() string {
	return "budgets"
}

// BudgetHistory is a budget frozen at month end
type BudgetHistory struct {
	ID        uint64          `gorm:"primaryKey;autoIncrement"`
	UserID    uint64          `gorm:"not null;uniqueIndex:idx_history_user_month_category"`
	Month     time.Time       `gorm:"type:date;not null;uniqueIndex:idx_history_user_month_category"`
	Category  string          `gorm:"not null;size:100;uniqueIndex:idx_history_user_month_category"`
	Budget    decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Spent     decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Remaining decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName specifies the table name for BudgetHistory
func (BudgetHistory) TableName() string {
	return "monthly_budget_history"
}
