package usecase

import (
	"context"
)

// CategoryUseCase defines operations on user categories
type CategoryUseCase interface {
	// ListNames returns category names of one account, or of all accounts when account is empty
	ListNames(ctx context.Context, userID uint64, account string) ([]string, error)

	// Create adds a category; an existing one is left untouched
	Create(ctx context.Context, userID uint64, name, account string) error

	// Delete removes a category, drops its budgets and moves its transactions
	// to the sentinel category. Returns the number of transactions moved.
	Delete(ctx context.Context, userID uint64, name, account string) (int64, error)
}
