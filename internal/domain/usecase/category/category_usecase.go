package category

import (
	"context"
	"strings"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// CategoryUseCase manages user categories
type CategoryUseCase struct {
	uow    persistence.UnitOfWork
	cache  cacheport.Cache
	logger coreport.Logger
}

var _ usecase.CategoryUseCase = (*CategoryUseCase)(nil)

// NewCategoryUseCase creates a new CategoryUseCase
func NewCategoryUseCase(uow persistence.UnitOfWork, cache cacheport.Cache, logger coreport.Logger) *CategoryUseCase {
	return &CategoryUseCase{uow: uow, cache: cache, logger: logger}
}

// ListNames returns sorted category names of an account, or of all accounts
func (c *CategoryUseCase) ListNames(ctx context.Context, userID uint64, account string) ([]string, error) {
	names, err := c.uow.GetCategoryRepository(ctx).ListNames(ctx, userID, strings.TrimSpace(account))
	if err != nil {
		return nil, err
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Create adds a category; an existing one is left untouched
func (c *CategoryUseCase) Create(ctx context.Context, userID uint64, name, account string) error {
	category, err := entity.NewCategory(userID, name, account)
	if err != nil {
		return err
	}

	inserted, err := c.uow.GetCategoryRepository(ctx).Create(ctx, category)
	if err != nil {
		return err
	}
	if inserted {
		c.logger.Debug("Category created", map[string]any{
			"user_id":  userID,
			"category": category.Name,
			"account":  category.Account,
		})
	}
	return nil
}

// Delete removes the category, its budgets and moves its transactions to the
// sentinel category, all in one unit of work
func (c *CategoryUseCase) Delete(ctx context.Context, userID uint64, name, account string) (int64, error) {
	name = strings.TrimSpace(name)
	account = strings.TrimSpace(account)
	if name == "" {
		return 0, errs.NewValidationError("name", "is required", nil)
	}
	if name == entity.NoCategory {
		return 0, errs.ErrProtectedCategory
	}

	var reassigned int64
	err := persistence.WithinTransaction(ctx, c.uow, func(txCtx context.Context) error {
		ids, err := c.uow.GetCategoryRepository(txCtx).Delete(txCtx, userID, name, account)
		if err != nil {
			return err
		}
		if err := c.uow.GetBudgetRepository(txCtx).DeleteByCategories(txCtx, userID, ids); err != nil {
			return err
		}
		reassigned, err = c.uow.GetTransactionRepository(txCtx).ReassignCategory(txCtx, userID, name, account, entity.NoCategory)
		if err != nil || reassigned == 0 {
			return err
		}
		// the sentinel row only exists once something has been moved into it
		sentinelAccount := account
		if sentinelAccount == "" {
			sentinelAccount = entity.DefaultAccount
		}
		_, err = c.uow.GetCategoryRepository(txCtx).FindOrCreate(txCtx, userID, entity.NoCategory, sentinelAccount)
		return err
	})
	if err != nil {
		return 0, err
	}

	if err := c.cache.DeleteByPrefix(ctx, cacheport.UserPrefix(userID)); err != nil {
		c.logger.Warn("Failed to invalidate cached reports", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	c.logger.Info("Category deleted", map[string]any{
		"user_id":    userID,
		"category":   name,
		"account":    account,
		"reassigned": reassigned,
	})
	return reassigned, nil
}
