package persistence

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// BudgetRepository defines methods for current budgets and their frozen history
type BudgetRepository interface {
	// List returns the user's budgets with their category names
	List(ctx context.Context, userID uint64) ([]*entity.Budget, error)

	// Upsert creates or replaces the budget of (user, category) and sets its ID
	Upsert(ctx context.Context, budget *entity.Budget) error

	// UpdateAmount changes one budget and returns it
	//
	// Possible errors:
	// - ErrBudgetNotFound: If the budget is not the user's
	UpdateAmount(ctx context.Context, userID, id uint64, amount decimal.Decimal) (*entity.Budget, error)

	// Delete removes one budget
	//
	// Possible errors:
	// - ErrBudgetNotFound: If the budget is not the user's
	Delete(ctx context.Context, userID, id uint64) error

	// DeleteByCategories removes the budgets of the given categories
	DeleteByCategories(ctx context.Context, userID uint64, categoryIDs []uint64) error

	// ResetAll sets every budget of the user to zero and returns the rows touched
	ResetAll(ctx context.Context, userID uint64) (int64, error)

	// UpsertHistory writes snapshot rows keyed by (user, month, category)
	UpsertHistory(ctx context.Context, rows []*entity.MonthlyBudgetHistory) error

	// ListHistory returns snapshot rows with from <= month <= to, oldest first
	ListHistory(ctx context.Context, userID uint64, from, to entity.Month) ([]*entity.MonthlyBudgetHistory, error)
}
