package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// SavingsRepository defines methods for savings goals and monthly savings records
type SavingsRepository interface {
	// GetGoal returns the goal of a month
	//
	// Possible errors:
	// - ErrSavingsGoalNotFound: If no goal is set
	GetGoal(ctx context.Context, userID uint64, month entity.Month) (*entity.SavingsGoal, error)

	// UpsertGoal creates or replaces the goal of (user, month) and sets its ID
	UpsertGoal(ctx context.Context, goal *entity.SavingsGoal) error

	// DecrementCurrentGoal lowers the remaining goal by amount in a single
	// statement, floored at zero, so concurrent expenses never lose a decrement
	DecrementCurrentGoal(ctx context.Context, id uint64, amount decimal.Decimal) error

	// UpsertMonthly creates or replaces the record of (user, month) and sets its ID
	UpsertMonthly(ctx context.Context, savings *entity.MonthlySavings) error

	// ListMonthly returns records with from <= month <= to, oldest first
	ListMonthly(ctx context.Context, userID uint64, from, to entity.Month) ([]*entity.MonthlySavings, error)
}

// MonthClosureRepository records which months have been rolled over
type MonthClosureRepository interface {
	// Get returns the closure of (user, month)
	//
	// Possible errors:
	// - ErrNotFound: If the month is still open
	Get(ctx context.Context, userID uint64, month entity.Month) (*entity.MonthClosure, error)

	// Latest returns the user's most recent closure
	//
	// Possible errors:
	// - ErrNotFound: If no month was ever closed
	Latest(ctx context.Context, userID uint64) (*entity.MonthClosure, error)

	// Create inserts a closure and sets its ID
	//
	// Possible errors:
	// - ErrDuplicate: If the month was closed concurrently
	Create(ctx context.Context, closure *entity.MonthClosure) error
}
