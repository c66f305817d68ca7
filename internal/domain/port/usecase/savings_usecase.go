package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// GoalStatus is the live progress of the current month's savings goal
type GoalStatus struct {
	HasGoal        bool
	InitialGoal    decimal.Decimal
	CurrentGoal    decimal.Decimal
	CurrentSavings decimal.Decimal
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	Progress       int64
	Status         entity.SavingsStatus
}

// StoreMonthlyRequest records an externally computed month result
type StoreMonthlyRequest struct {
	Month       string
	SavedAmount decimal.Decimal
	SavingGoal  decimal.Decimal
}

// SavingsUseCase defines savings goal operations
type SavingsUseCase interface {
	// SetGoal sets the current month's goal and resets its remaining amount
	SetGoal(ctx context.Context, userID uint64, initialGoal decimal.Decimal) (*entity.SavingsGoal, error)

	// GoalStatus compares the current month's balance with its goal
	GoalStatus(ctx context.Context, userID uint64) (*GoalStatus, error)

	// ApplyExpense lowers the current month's remaining goal. No goal is not an error.
	ApplyExpense(ctx context.Context, userID uint64, amount decimal.Decimal) error

	// StoreMonthly upserts a month record with a derived status
	StoreMonthly(ctx context.Context, userID uint64, req StoreMonthlyRequest) (*entity.MonthlySavings, error)

	// ListMonthly returns the records of a year; zero means the current year
	ListMonthly(ctx context.Context, userID uint64, year int) ([]*entity.MonthlySavings, error)

	// StoreCurrentMonth computes and upserts the current month's record
	StoreCurrentMonth(ctx context.Context, userID uint64) (*entity.MonthlySavings, error)
}
