package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	tport "github.com/fintrack/fintrack-api/internal/domain/port/core"
)

// TransactionType is the direction of money for a ledger entry
type TransactionType string

// Transaction types
const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// ParseTransactionType validates a wire value
func ParseTransactionType(s string) (TransactionType, error) {
	switch TransactionType(strings.ToLower(strings.TrimSpace(s))) {
	case TypeIncome:
		return TypeIncome, nil
	case TypeExpense:
		return TypeExpense, nil
	}
	return "", errs.NewValidationError("type", "must be income or expense", errs.ErrInvalidTransactionType)
}

// Transaction is a single income or expense entry of a user
type Transaction struct {
	ID          uint64
	UserID      uint64
	Date        time.Time // calendar day, midnight UTC
	Description string
	Amount      decimal.Decimal
	Type        TransactionType
	Category    string
	Account     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TransactionInput carries the mutable fields of a transaction
type TransactionInput struct {
	Date        string
	Description string
	Amount      decimal.Decimal
	Type        string
	Category    string
	Account     string
}

// NewTransaction creates a transaction with validation and defaults applied
func NewTransaction(userID uint64, in TransactionInput, timeProvider tport.TimeProvider) (*Transaction, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}

	tx := &Transaction{UserID: userID}
	if err := tx.Apply(in); err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now
	return tx, nil
}

// Apply validates in and overwrites the mutable fields
func (t *Transaction) Apply(in TransactionInput) error {
	date, err := ParseDate(in.Date)
	if err != nil {
		return err
	}
	txType, err := ParseTransactionType(in.Type)
	if err != nil {
		return err
	}
	if err := ValidatePositiveAmount(in.Amount); err != nil {
		return err
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = NoCategory
	}
	account := strings.TrimSpace(in.Account)
	if account == "" {
		account = DefaultAccount
	}

	t.Date = date
	t.Description = strings.TrimSpace(in.Description)
	t.Amount = in.Amount
	t.Type = txType
	t.Category = category
	t.Account = account
	return nil
}

// IsExpense reports whether the transaction is an expense
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// TypeTotals holds the income and expense sums of a window
type TypeTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Balance returns income minus expenses
func (t TypeTotals) Balance() decimal.Decimal {
	return t.Income.Sub(t.Expense)
}

// CanAfford reports whether an expense of amount keeps the balance non-negative
func (t TypeTotals) CanAfford(amount decimal.Decimal) bool {
	return !amount.GreaterThan(t.Balance())
}

// CategoryTotal is an aggregated amount for one category
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// DailyTotal is the sum of one type of transactions on one day
type DailyTotal struct {
	Date  time.Time
	Type  TransactionType
	Total decimal.Decimal
}

// TransactionFilter narrows a transaction listing. Empty fields do not filter.
type TransactionFilter struct {
	UserID   uint64
	Type     TransactionType
	Category string
	Account  string
	From     *time.Time // inclusive
	To       *time.Time // exclusive
	Limit    int
}
