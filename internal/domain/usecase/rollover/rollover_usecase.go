package rollover

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// errClosedConcurrently signals that another close of the same month won the insert
var errClosedConcurrently = errors.New("month closed concurrently")

// RolloverUseCase closes months for users
type RolloverUseCase struct {
	uow          persistence.UnitOfWork
	cache        cacheport.Cache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.RolloverUseCase = (*RolloverUseCase)(nil)

// NewRolloverUseCase creates a new RolloverUseCase
func NewRolloverUseCase(
	uow persistence.UnitOfWork,
	cache cacheport.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *RolloverUseCase {
	return &RolloverUseCase{
		uow:          uow,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CloseMonth snapshots the month's budgets and savings in one transaction.
// A month that is already closed is left untouched. Only the latest ended
// month can be closed, and the live budgets are zeroed only when that month
// is still the current one.
func (r *RolloverUseCase) CloseMonth(ctx context.Context, userID uint64, month entity.Month) (*entity.RolloverResult, error) {
	now := r.timeProvider.Now()
	if err := entity.CanClose(month, now); err != nil {
		return nil, err
	}

	var result *entity.RolloverResult
	err := persistence.WithinTransaction(ctx, r.uow, func(txCtx context.Context) error {
		res, err := r.closeInTx(txCtx, userID, month, now)
		if err != nil {
			return err
		}
		result = res
		return nil
	})

	if errors.Is(err, errClosedConcurrently) {
		closure, getErr := r.uow.GetMonthClosureRepository(ctx).Get(ctx, userID, month)
		if getErr != nil {
			return nil, errs.NewRolloverError(userID, month.String(), "reload closure", getErr)
		}
		return entity.ResultFromClosure(closure), nil
	}
	if err != nil {
		return nil, err
	}

	if !result.AlreadyClosed {
		if err := r.cache.DeleteByPrefix(ctx, cacheport.UserPrefix(userID)); err != nil {
			r.logger.Warn("Failed to invalidate cache after rollover", map[string]any{
				"user_id": userID,
				"error":   err.Error(),
			})
		}
		r.logger.Info("Month closed", map[string]any{
			"user_id":        userID,
			"month":          month.String(),
			"budgets_closed": result.BudgetsClosed,
			"budgets_reset":  result.BudgetsReset,
			"budget_total":   entity.FormatAmount(result.BudgetTotal),
			"saved_amount":   entity.FormatAmount(result.SavedAmount),
		})
	}
	return result, nil
}

func (r *RolloverUseCase) closeInTx(ctx context.Context, userID uint64, month entity.Month, now time.Time) (*entity.RolloverResult, error) {
	fail := func(step string, err error) error {
		return errs.NewRolloverError(userID, month.String(), step, err)
	}

	closures := r.uow.GetMonthClosureRepository(ctx)
	closure, err := closures.Get(ctx, userID, month)
	switch {
	case err == nil:
		return entity.ResultFromClosure(closure), nil
	case !errors.Is(err, errs.ErrNotFound):
		return nil, fail("load closure", err)
	}

	if err := entity.CheckLatestEnded(month, now); err != nil {
		return nil, err
	}
	latest, err := closures.Latest(ctx, userID)
	switch {
	case err == nil:
		if month.Before(latest.Month) {
			return nil, errs.ErrLaterMonthClosed
		}
	case !errors.Is(err, errs.ErrNotFound):
		return nil, fail("load latest closure", err)
	}

	txRepo := r.uow.GetTransactionRepository(ctx)
	window := month.Window()
	byCategory, err := txRepo.SumByCategory(ctx, userID, entity.TypeExpense, window)
	if err != nil {
		return nil, fail("sum expenses", err)
	}
	totals, err := txRepo.SumByType(ctx, userID, window)
	if err != nil {
		return nil, fail("sum totals", err)
	}
	spent := make(map[string]decimal.Decimal, len(byCategory))
	for _, c := range byCategory {
		spent[c.Category] = c.Total
	}

	budgetRepo := r.uow.GetBudgetRepository(ctx)
	budgets, err := budgetRepo.List(ctx, userID)
	if err != nil {
		return nil, fail("list budgets", err)
	}

	result := &entity.RolloverResult{
		UserID:      userID,
		Month:       month,
		BudgetTotal: decimal.Zero,
		SavedAmount: totals.Balance(),
		ClosedAt:    now,
	}

	history := make([]*entity.MonthlyBudgetHistory, 0, len(budgets))
	for _, b := range budgets {
		if !b.Amount.IsPositive() {
			continue
		}
		s, ok := spent[b.CategoryName]
		if !ok {
			s = decimal.Zero
		}
		history = append(history, entity.NewBudgetHistory(userID, month, b.CategoryName, b.Amount, s))
		result.BudgetTotal = result.BudgetTotal.Add(b.Amount)
	}
	if len(history) > 0 {
		if err := budgetRepo.UpsertHistory(ctx, history); err != nil {
			return nil, fail("write history", err)
		}
	}
	result.BudgetsClosed = len(history)

	savingsRepo := r.uow.GetSavingsRepository(ctx)
	goal, err := savingsRepo.GetGoal(ctx, userID, month)
	switch {
	case err == nil:
		record := entity.NewMonthlySavings(userID, month, result.SavedAmount, goal.InitialGoal, now)
		record.CreatedAt = now
		record.UpdatedAt = now
		if err := savingsRepo.UpsertMonthly(ctx, record); err != nil {
			return nil, fail("write savings", err)
		}
		result.SavingsStatus = record.Status
	case errors.Is(err, errs.ErrSavingsGoalNotFound):
		result.SavingsStatus = entity.SavingsNoGoal
	default:
		return nil, fail("load savings goal", err)
	}

	if entity.ResetsBudgets(month, now) {
		if _, err := budgetRepo.ResetAll(ctx, userID); err != nil {
			return nil, fail("reset budgets", err)
		}
		result.BudgetsReset = true
	}

	err = closures.Create(ctx, &entity.MonthClosure{
		UserID:        userID,
		Month:         month,
		BudgetsClosed: result.BudgetsClosed,
		BudgetTotal:   result.BudgetTotal,
		SavedAmount:   result.SavedAmount,
		ClosedAt:      now,
	})
	if errors.Is(err, errs.ErrDuplicate) {
		return nil, errClosedConcurrently
	}
	if err != nil {
		return nil, fail("record closure", err)
	}
	return result, nil
}

// RunForAll closes month for every user. Failures are counted and logged, not returned.
func (r *RolloverUseCase) RunForAll(ctx context.Context, month entity.Month) (*entity.RolloverSummary, error) {
	ids, err := r.uow.GetUserRepository(ctx).ListIDs(ctx)
	if err != nil {
		return nil, err
	}

	summary := &entity.RolloverSummary{Month: month}
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		res, err := r.CloseMonth(ctx, id, month)
		switch {
		case err != nil:
			summary.Failed++
			fields := map[string]any{"user_id": id, "month": month.String(), "error": err.Error()}
			var rollErr *errs.RolloverError
			if errors.As(err, &rollErr) {
				fields = rollErr.LogFields()
			}
			r.logger.Error("Rollover failed", fields)
		case res.AlreadyClosed:
			summary.Skipped++
		default:
			summary.Closed++
		}
	}

	r.logger.Info("Rollover run finished", map[string]any{
		"month":   month.String(),
		"users":   len(ids),
		"closed":  summary.Closed,
		"skipped": summary.Skipped,
		"failed":  summary.Failed,
	})
	return summary, nil
}
