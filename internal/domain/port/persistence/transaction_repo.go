package persistence

import (
	"context"
	"time"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// TransactionRepository defines methods for ledger entries and their aggregates.
// Every method is scoped to a user; rows of other users are never visible.
type TransactionRepository interface {
	// Create stores a new transaction and sets its ID
	Create(ctx context.Context, tx *entity.Transaction) error

	// Update saves the mutable fields of an existing transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction is not the user's
	Update(ctx context.Context, tx *entity.Transaction) error

	// Delete removes a transaction
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction is not the user's
	Delete(ctx context.Context, userID, id uint64) error

	// GetByID retrieves one transaction of the user
	//
	// Possible errors:
	// - ErrTransactionNotFound: If the transaction is not the user's
	GetByID(ctx context.Context, userID, id uint64) (*entity.Transaction, error)

	// List returns transactions matching filter ordered by date then ID, newest first
	List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error)

	// SumByType returns income and expense totals inside window
	SumByType(ctx context.Context, userID uint64, window entity.DateRange) (entity.TypeTotals, error)

	// SumByCategory returns per-category totals of one type, largest first
	SumByCategory(ctx context.Context, userID uint64, txType entity.TransactionType, window entity.DateRange) ([]entity.CategoryTotal, error)

	// AverageByCategory returns per-category average amounts of one type
	AverageByCategory(ctx context.Context, userID uint64, txType entity.TransactionType, window entity.DateRange) ([]entity.CategoryTotal, error)

	// DailyTotals returns per-day, per-type totals inside window
	DailyTotals(ctx context.Context, userID uint64, window entity.DateRange) ([]entity.DailyTotal, error)

	// EarliestDate returns the date of the user's first transaction, or nil if there is none
	EarliestDate(ctx context.Context, userID uint64) (*time.Time, error)

	// ReassignCategory moves transactions from one category to another.
	// An empty account matches every account. Returns the number of rows moved.
	ReassignCategory(ctx context.Context, userID uint64, from, account, to string) (int64, error)
}
