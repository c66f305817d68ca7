package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for transactions
type Transaction struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	UserID      uint64          `gorm:"not null;index"`
	Date        time.Time       `gorm:"type:date;not null"`
	Description string          `gorm:"not null;size:255"`
	Amount      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	Type        string          `gorm:"not null;size:10"`
	Category    string          `gorm:"not null;size:100"`
	Account     string          `gorm:"not null;size:100"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
