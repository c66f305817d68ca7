package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// BudgetUseCase defines operations on category budgets
type BudgetUseCase interface {
	// List returns every budget with its spend in month ("YYYY-MM", empty for current)
	List(ctx context.Context, userID uint64, month string) ([]entity.BudgetUsage, error)

	// Set creates or replaces the budget of a category, creating the category when missing
	Set(ctx context.Context, userID uint64, categoryName string, amount decimal.Decimal) (*entity.Budget, error)

	// UpdateAmount changes one budget
	UpdateAmount(ctx context.Context, userID, id uint64, amount decimal.Decimal) (*entity.Budget, error)

	// Delete removes one budget
	Delete(ctx context.Context, userID, id uint64) error

	// Suggest proposes budgets from the last three months of expenses
	Suggest(ctx context.Context, userID uint64) ([]entity.BudgetSuggestion, error)

	// Forecast projects the current month's spend of each budget
	Forecast(ctx context.Context, userID uint64) ([]entity.BudgetForecast, error)

	// History returns the frozen budgets of a closed month
	History(ctx context.Context, userID uint64, month string) ([]*entity.MonthlyBudgetHistory, error)
}

// RolloverUseCase closes months: snapshot budgets and savings, then reset budgets
type RolloverUseCase interface {
	// CloseMonth rolls one user's month over atomically. Closing a closed month
	// returns the earlier result with AlreadyClosed set.
	CloseMonth(ctx context.Context, userID uint64, month entity.Month) (*entity.RolloverResult, error)

	// RunForAll closes month for every user
	RunForAll(ctx context.Context, month entity.Month) (*entity.RolloverSummary, error)
}
