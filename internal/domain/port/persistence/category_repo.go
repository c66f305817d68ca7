package persistence

import (
	"context"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// CategoryRepository defines methods for user categories
type CategoryRepository interface {
	// Create inserts a category, ignoring an existing (user, name, account).
	// Reports whether a row was inserted.
	Create(ctx context.Context, category *entity.Category) (bool, error)

	// FindOrCreate returns the category, inserting it when missing
	FindOrCreate(ctx context.Context, userID uint64, name, account string) (*entity.Category, error)

	// ListNames returns the category names of an account, or the distinct names
	// of all accounts when account is empty, sorted alphabetically
	ListNames(ctx context.Context, userID uint64, account string) ([]string, error)

	// Delete removes matching categories and returns their IDs, which may be none.
	// An empty account matches every account.
	Delete(ctx context.Context, userID uint64, name, account string) ([]uint64, error)
}
