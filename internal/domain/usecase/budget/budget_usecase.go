package budget

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// suggestionLookback is how far back Suggest averages expenses
const suggestionLookback = 3

// BudgetUseCase manages category budgets and their reports
type BudgetUseCase struct {
	uow          persistence.UnitOfWork
	cache        cacheport.Cache
	cacheTTL     time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.BudgetUseCase = (*BudgetUseCase)(nil)

// NewBudgetUseCase creates a new BudgetUseCase
func NewBudgetUseCase(
	uow persistence.UnitOfWork,
	cache cacheport.Cache,
	cacheTTL time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *BudgetUseCase {
	return &BudgetUseCase{
		uow:          uow,
		cache:        cache,
		cacheTTL:     cacheTTL,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// resolveMonth parses "YYYY-MM", defaulting to the current month
func (b *BudgetUseCase) resolveMonth(month string) (entity.Month, error) {
	if strings.TrimSpace(month) == "" {
		return entity.MonthOf(b.timeProvider.Now()), nil
	}
	return entity.ParseMonth(month)
}

// spentByCategory returns the month's expenses keyed by category name
func (b *BudgetUseCase) spentByCategory(ctx context.Context, userID uint64, window entity.DateRange) (map[string]decimal.Decimal, error) {
	totals, err := b.uow.GetTransactionRepository(ctx).SumByCategory(ctx, userID, entity.TypeExpense, window)
	if err != nil {
		return nil, err
	}
	spent := make(map[string]decimal.Decimal, len(totals))
	for _, t := range totals {
		spent[t.Category] = t.Total
	}
	return spent, nil
}

// List returns every budget with its spend in month. It has no side effects.
func (b *BudgetUseCase) List(ctx context.Context, userID uint64, month string) ([]entity.BudgetUsage, error) {
	m, err := b.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	budgets, err := b.uow.GetBudgetRepository(ctx).List(ctx, userID)
	if err != nil {
		return nil, err
	}
	spent, err := b.spentByCategory(ctx, userID, m.Window())
	if err != nil {
		return nil, err
	}

	usage := make([]entity.BudgetUsage, 0, len(budgets))
	for _, budget := range budgets {
		usage = append(usage, entity.NewBudgetUsage(*budget, spent[budget.CategoryName]))
	}
	return usage, nil
}

// Set creates or replaces the budget of a category, creating the category when missing
func (b *BudgetUseCase) Set(ctx context.Context, userID uint64, categoryName string, amount decimal.Decimal) (*entity.Budget, error) {
	categoryName = strings.TrimSpace(categoryName)
	if categoryName == "" {
		return nil, errs.NewValidationError("categoryName", "is required", nil)
	}
	if err := entity.ValidateAmount(amount); err != nil {
		return nil, err
	}

	category, err := b.uow.GetCategoryRepository(ctx).FindOrCreate(ctx, userID, categoryName, entity.DefaultAccount)
	if err != nil {
		return nil, err
	}

	budget, err := entity.NewBudget(userID, category.ID, category.Name, amount)
	if err != nil {
		return nil, err
	}
	if err := b.uow.GetBudgetRepository(ctx).Upsert(ctx, budget); err != nil {
		return nil, err
	}

	b.invalidate(ctx, userID)
	b.logger.Info("Budget set", map[string]any{
		"user_id":  userID,
		"category": category.Name,
		"amount":   entity.FormatAmount(amount),
	})
	return budget, nil
}

// UpdateAmount changes one budget
func (b *BudgetUseCase) UpdateAmount(ctx context.Context, userID, id uint64, amount decimal.Decimal) (*entity.Budget, error) {
	if err := entity.ValidateAmount(amount); err != nil {
		return nil, err
	}
	budget, err := b.uow.GetBudgetRepository(ctx).UpdateAmount(ctx, userID, id, amount)
	if err != nil {
		return nil, err
	}
	b.invalidate(ctx, userID)
	return budget, nil
}

// Delete removes one budget
func (b *BudgetUseCase) Delete(ctx context.Context, userID, id uint64) error {
	if err := b.uow.GetBudgetRepository(ctx).Delete(ctx, userID, id); err != nil {
		return err
	}
	b.invalidate(ctx, userID)
	return nil
}

// Suggest proposes round(avg*1.1) per category from the last three months of expenses
func (b *BudgetUseCase) Suggest(ctx context.Context, userID uint64) ([]entity.BudgetSuggestion, error) {
	key := cacheport.UserKey(userID, "budget-suggest")
	var cached []entity.BudgetSuggestion
	if hit, err := b.cache.Get(ctx, key, &cached); err == nil && hit {
		return cached, nil
	}

	today := entity.DateOnly(b.timeProvider.Now())
	window := entity.DateRange{From: today.AddDate(0, -suggestionLookback, 0), To: today.AddDate(0, 0, 1)}

	averages, err := b.uow.GetTransactionRepository(ctx).AverageByCategory(ctx, userID, entity.TypeExpense, window)
	if err != nil {
		return nil, err
	}

	suggestions := make([]entity.BudgetSuggestion, 0, len(averages))
	for _, avg := range averages {
		suggestions = append(suggestions, entity.SuggestBudget(avg.Category, avg.Total))
	}

	if err := b.cache.Set(ctx, key, suggestions, b.cacheTTL); err != nil {
		b.logger.Warn("Failed to cache budget suggestions", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
	return suggestions, nil
}

// Forecast projects the current month's spend of each budget linearly
func (b *BudgetUseCase) Forecast(ctx context.Context, userID uint64) ([]entity.BudgetForecast, error) {
	now := b.timeProvider.Now()
	month := entity.MonthOf(now)

	budgets, err := b.uow.GetBudgetRepository(ctx).List(ctx, userID)
	if err != nil {
		return nil, err
	}
	spent, err := b.spentByCategory(ctx, userID, month.Window())
	if err != nil {
		return nil, err
	}

	forecasts := make([]entity.BudgetForecast, 0, len(budgets))
	for _, budget := range budgets {
		forecasts = append(forecasts, entity.Forecast(*budget, spent[budget.CategoryName], now.Day(), month.Days()))
	}
	return forecasts, nil
}

// History returns the frozen budgets of a closed month
func (b *BudgetUseCase) History(ctx context.Context, userID uint64, month string) ([]*entity.MonthlyBudgetHistory, error) {
	m, err := b.resolveMonth(month)
	if err != nil {
		return nil, err
	}
	return b.uow.GetBudgetRepository(ctx).ListHistory(ctx, userID, m, m)
}

// invalidate drops the user's cached reports; failures are logged
func (b *BudgetUseCase) invalidate(ctx context.Context, userID uint64) {
	if err := b.cache.DeleteByPrefix(ctx, cacheport.UserPrefix(userID)); err != nil {
		b.logger.Warn("Failed to invalidate cached reports", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}
}
