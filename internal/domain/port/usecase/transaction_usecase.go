package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// SummaryInterval selects the bucketing of an income/expense summary
type SummaryInterval string

// Summary intervals
const (
	IntervalDaily   SummaryInterval = "daily"
	IntervalWeekly  SummaryInterval = "weekly"
	IntervalMonthly SummaryInterval = "monthly"
	IntervalYearly  SummaryInterval = "yearly"
	IntervalAll     SummaryInterval = "all"
)

// SummaryRow is one bucket of a summary
type SummaryRow struct {
	Label   string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// MonthlySummaryRow is one calendar month of the current year
type MonthlySummaryRow struct {
	Month   int
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// FilterRequest represents a transaction search. "all" or empty means no filter.
type FilterRequest struct {
	Type      string
	Category  string
	Account   string
	StartDate string
	EndDate   string
}

// TransactionUseCase defines methods for ledger operations
type TransactionUseCase interface {
	// Create records a transaction. Expenses larger than the current month's
	// balance are rejected with ErrInsufficientBalance.
	Create(ctx context.Context, userID uint64, in entity.TransactionInput) (*entity.Transaction, error)

	// Update replaces the fields of one of the user's transactions
	Update(ctx context.Context, userID, id uint64, in entity.TransactionInput) (*entity.Transaction, error)

	// Delete removes one of the user's transactions
	Delete(ctx context.Context, userID, id uint64) error

	// Recent returns the latest transactions of the current month
	Recent(ctx context.Context, userID uint64) ([]*entity.Transaction, error)

	// Filter searches the user's transactions
	Filter(ctx context.Context, userID uint64, req FilterRequest) ([]*entity.Transaction, error)

	// ExpensesByCategory returns the current month's expenses per category
	ExpensesByCategory(ctx context.Context, userID uint64) ([]entity.CategoryTotal, error)

	// Summary returns income and expense per bucket of interval
	Summary(ctx context.Context, userID uint64, interval string) ([]SummaryRow, error)

	// MonthlySummary returns income and expense for the 12 months of the current year
	MonthlySummary(ctx context.Context, userID uint64) ([]MonthlySummaryRow, error)
}
