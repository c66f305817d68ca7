package rollover

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	mockcache "github.com/fintrack/fintrack-api/mocks/port/cache"
	mockcore "github.com/fintrack/fintrack-api/mocks/port/core"
	mockpersistence "github.com/fintrack/fintrack-api/mocks/port/persistence"
)

var march = entity.Month{Year: 2025, Month: time.March}

type fixture struct {
	useCase  *RolloverUseCase
	uow      *mockpersistence.MockUnitOfWork
	users    *mockpersistence.MockUserRepository
	txs      *mockpersistence.MockTransactionRepository
	budgets  *mockpersistence.MockBudgetRepository
	savings  *mockpersistence.MockSavingsRepository
	closures *mockpersistence.MockMonthClosureRepository
	cache    *mockcache.MockCache
}

func newFixture(t *testing.T, now time.Time) *fixture {
	f := &fixture{
		uow:      mockpersistence.NewMockUnitOfWork(t),
		users:    mockpersistence.NewMockUserRepository(t),
		txs:      mockpersistence.NewMockTransactionRepository(t),
		budgets:  mockpersistence.NewMockBudgetRepository(t),
		savings:  mockpersistence.NewMockSavingsRepository(t),
		closures: mockpersistence.NewMockMonthClosureRepository(t),
		cache:    mockcache.NewMockCache(t),
	}
	f.uow.EXPECT().GetUserRepository(mock.Anything).Return(f.users).Maybe()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txs).Maybe()
	f.uow.EXPECT().GetBudgetRepository(mock.Anything).Return(f.budgets).Maybe()
	f.uow.EXPECT().GetSavingsRepository(mock.Anything).Return(f.savings).Maybe()
	f.uow.EXPECT().GetMonthClosureRepository(mock.Anything).Return(f.closures).Maybe()

	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()

	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Return().Maybe()

	f.useCase = NewRolloverUseCase(f.uow, f.cache, mockTime, mockLogger)
	return f
}

func (f *fixture) expectTransaction(commit bool) {
	f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Once()
	if commit {
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
	} else {
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
	}
}

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestRolloverUseCase_CloseMonth(t *testing.T) {
	lastDay := time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)

	t.Run("Closes budgets and savings", func(t *testing.T) {
		f := newFixture(t, lastDay)
		f.expectTransaction(true)

		budgets := []*entity.Budget{
			{ID: 1, UserID: 1, CategoryName: "Groceries", Amount: d(1000)},
			{ID: 2, UserID: 1, CategoryName: "Utilities", Amount: d(800)},
			{ID: 3, UserID: 1, CategoryName: "Travel", Amount: d(0)},
		}
		var history []*entity.MonthlyBudgetHistory

		// Setup mocks
		f.closures.EXPECT().Get(mock.Anything, uint64(1), march).Return(nil, errs.ErrNotFound).Once()
		f.closures.EXPECT().Latest(mock.Anything, uint64(1)).
			Return(&entity.MonthClosure{UserID: 1, Month: march.AddMonths(-1)}, nil).Once()
		f.txs.EXPECT().SumByCategory(mock.Anything, uint64(1), entity.TypeExpense, march.Window()).Return([]entity.CategoryTotal{
			{Category: "Groceries", Total: d(1800)},
			{Category: "Dining", Total: d(600)},
		}, nil).Once()
		f.txs.EXPECT().SumByType(mock.Anything, uint64(1), march.Window()).Return(entity.TypeTotals{
			Income: d(11500), Expense: d(3300),
		}, nil).Once()
		f.budgets.EXPECT().List(mock.Anything, uint64(1)).Return(budgets, nil).Once()
		f.budgets.EXPECT().UpsertHistory(mock.Anything, mock.Anything).
			RunAndReturn(func(ctx context.Context, rows []*entity.MonthlyBudgetHistory) error {
				history = rows
				return nil
			}).Once()
		f.savings.EXPECT().GetGoal(mock.Anything, uint64(1), march).
			Return(&entity.SavingsGoal{ID: 5, InitialGoal: d(2000), CurrentGoal: d(0)}, nil).Once()
		f.savings.EXPECT().UpsertMonthly(mock.Anything, mock.MatchedBy(func(m *entity.MonthlySavings) bool {
			return m.Month == march && m.SavedAmount.Equal(d(8200)) && m.SavingGoal.Equal(d(2000))
		})).Return(nil).Once()
		f.budgets.EXPECT().ResetAll(mock.Anything, uint64(1)).Return(int64(3), nil).Once()
		f.closures.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.MonthClosure")).Return(nil).Once()
		f.cache.EXPECT().DeleteByPrefix(mock.Anything, "fintrack:user:1:").Return(nil).Once()

		// Execute
		res, err := f.useCase.CloseMonth(context.Background(), 1, march)

		// Assertions
		require.NoError(t, err)
		assert.False(t, res.AlreadyClosed)
		assert.True(t, res.BudgetsReset)
		assert.Equal(t, 2, res.BudgetsClosed)
		assert.True(t, res.SavedAmount.Equal(d(8200)))
		assert.Equal(t, entity.SavingsAchieved, res.SavingsStatus)

		require.Len(t, history, 2)
		assert.True(t, history[0].Remaining.Equal(d(-800)))
		assert.True(t, history[1].Spent.IsZero())

		// History budgets add up to what the budgets held before the reset
		before := decimal.Zero
		for _, b := range budgets {
			before = before.Add(b.Amount)
		}
		after := decimal.Zero
		for _, h := range history {
			after = after.Add(h.Budget)
		}
		assert.True(t, before.Equal(after))
		assert.True(t, res.BudgetTotal.Equal(before))
	})

	t.Run("Closed month is returned unchanged", func(t *testing.T) {
		f := newFixture(t, lastDay)
		f.expectTransaction(true)

		f.closures.EXPECT().Get(mock.Anything, uint64(1), march).Return(&entity.MonthClosure{
			UserID: 1, Month: march, BudgetsClosed: 4, BudgetTotal: d(3300), SavedAmount: d(8200),
		}, nil).Once()

		res, err := f.useCase.CloseMonth(context.Background(), 1, march)

		require.NoError(t, err)
		assert.True(t, res.AlreadyClosed)
		assert.Equal(t, 4, res.BudgetsClosed)
	})

	t.Run("Month has not ended", func(t *testing.T) {
		f := newFixture(t, time.Date(2025, 3, 30, 12, 0, 0, 0, time.UTC))

		_, err := f.useCase.CloseMonth(context.Background(), 1, march)
		assert.ErrorIs(t, err, errs.ErrMonthNotEnded)
	})

	t.Run("Failure rolls back with the failing step", func(t *testing.T) {
		f := newFixture(t, lastDay)
		f.expectTransaction(false)

		f.closures.EXPECT().Get(mock.Anything, uint64(1), march).Return(nil, errs.ErrNotFound).Once()
		f.closures.EXPECT().Latest(mock.Anything, uint64(1)).Return(nil, errs.ErrNotFound).Once()
		f.txs.EXPECT().SumByCategory(mock.Anything, uint64(1), entity.TypeExpense, mock.Anything).Return(nil, nil).Once()
		f.txs.EXPECT().SumByType(mock.Anything, uint64(1), mock.Anything).Return(entity.TypeTotals{}, nil).Once()
		f.budgets.EXPECT().List(mock.Anything, uint64(1)).Return(nil, nil).Once()
		f.savings.EXPECT().GetGoal(mock.Anything, uint64(1), march).Return(nil, errs.ErrSavingsGoalNotFound).Once()
		f.budgets.EXPECT().ResetAll(mock.Anything, uint64(1)).Return(int64(0), errs.ErrDatabaseConnection).Once()

		_, err := f.useCase.CloseMonth(context.Background(), 1, march)

		var rollErr *errs.RolloverError
		require.ErrorAs(t, err, &rollErr)
		assert.Equal(t, "reset budgets", rollErr.Step)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})

	t.Run("Concurrent close returns the winner's result", func(t *testing.T) {
		f := newFixture(t, lastDay)
		f.expectTransaction(false)

		f.closures.EXPECT().Get(mock.Anything, uint64(1), march).Return(nil, errs.ErrNotFound).Once()
		f.closures.EXPECT().Latest(mock.Anything, uint64(1)).Return(nil, errs.ErrNotFound).Once()
		f.txs.EXPECT().SumByCategory(mock.Anything, uint64(1), entity.TypeExpense, mock.Anything).Return(nil, nil).Once()
		f.txs.EXPECT().SumByType(mock.Anything, uint64(1), mock.Anything).Return(entity.TypeTotals{}, nil).Once()
		f.budgets.EXPECT().List(mock.Anything, uint64(1)).Return(nil, nil).Once()
		f.savings.EXPECT().GetGoal(mock.Anything, uint64(1), march).Return(nil, errs.ErrSavingsGoalNotFound).Once()
		f.budgets.EXPECT().ResetAll(mock.Anything, uint64(1)).Return(int64(0), nil).Once()
		f.closures.EXPECT().Create(mock.Anything, mock.Anything).Return(errs.ErrDuplicate).Once()
		f.closures.EXPECT().Get(mock.Anything, uint64(1), march).Return(&entity.MonthClosure{UserID: 1, Month: march}, nil).Once()

		res, err := f.useCase.CloseMonth(context.Background(), 1, march)

		require.NoError(t, err)
		assert.True(t, res.AlreadyClosed)
	})
}

func TestRolloverUseCase_CloseMonthLeavesLaterBudgets(t *testing.T) {
	april15 := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)

	t.Run("Old month is rejected before touching budgets", func(t *testing.T) {
		f := newFixture(t, april15)
		f.expectTransaction(false)

		old := entity.Month{Year: 2020, Month: time.January}
		f.closures.EXPECT().Get(mock.Anything, uint64(1), old).Return(nil, errs.ErrNotFound).Once()

		// Execute
		res, err := f.useCase.CloseMonth(context.Background(), 1, old)

		// Assertions
		assert.Nil(t, res)
		assert.ErrorIs(t, err, errs.ErrMonthNotLatest)
		assert.True(t, errs.IsValidationError(err))
		f.budgets.AssertNotCalled(t, "ResetAll", mock.Anything, mock.Anything)
		f.budgets.AssertNotCalled(t, "UpsertHistory", mock.Anything, mock.Anything)
	})

	t.Run("Old month already closed stays idempotent", func(t *testing.T) {
		f := newFixture(t, april15)
		f.expectTransaction(true)

		old := entity.Month{Year: 2020, Month: time.January}
		f.closures.EXPECT().Get(mock.Anything, uint64(1), old).Return(&entity.MonthClosure{UserID: 1, Month: old}, nil).Once()

		res, err := f.useCase.CloseMonth(context.Background(), 1, old)

		require.NoError(t, err)
		assert.True(t, res.AlreadyClosed)
	})

	t.Run("Month before a closed one is rejected", func(t *testing.T) {
		lastDayOfApril := time.Date(2025, 4, 30, 20, 0, 0, 0, time.UTC)
		f := newFixture(t, lastDayOfApril)
		f.expectTransaction(false)

		f.closures.EXPECT().Get(mock.Anything, uint64(1), march).Return(nil, errs.ErrNotFound).Once()
		f.closures.EXPECT().Latest(mock.Anything, uint64(1)).
			Return(&entity.MonthClosure{UserID: 1, Month: entity.Month{Year: 2025, Month: time.April}}, nil).Once()

		_, err := f.useCase.CloseMonth(context.Background(), 1, march)

		assert.ErrorIs(t, err, errs.ErrLaterMonthClosed)
		f.budgets.AssertNotCalled(t, "ResetAll", mock.Anything, mock.Anything)
	})

	t.Run("Late close of the previous month keeps the live budgets", func(t *testing.T) {
		f := newFixture(t, april15)
		f.expectTransaction(true)

		f.closures.EXPECT().Get(mock.Anything, uint64(1), march).Return(nil, errs.ErrNotFound).Once()
		f.closures.EXPECT().Latest(mock.Anything, uint64(1)).Return(nil, errs.ErrNotFound).Once()
		f.txs.EXPECT().SumByCategory(mock.Anything, uint64(1), entity.TypeExpense, march.Window()).Return(nil, nil).Once()
		f.txs.EXPECT().SumByType(mock.Anything, uint64(1), march.Window()).Return(entity.TypeTotals{Income: d(3000)}, nil).Once()
		f.budgets.EXPECT().List(mock.Anything, uint64(1)).
			Return([]*entity.Budget{{ID: 9, UserID: 1, CategoryName: "Rent", Amount: d(1500)}}, nil).Once()
		f.budgets.EXPECT().UpsertHistory(mock.Anything, mock.Anything).Return(nil).Once()
		f.savings.EXPECT().GetGoal(mock.Anything, uint64(1), march).Return(nil, errs.ErrSavingsGoalNotFound).Once()
		f.closures.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.MonthClosure")).Return(nil).Once()
		f.cache.EXPECT().DeleteByPrefix(mock.Anything, "fintrack:user:1:").Return(nil).Once()

		res, err := f.useCase.CloseMonth(context.Background(), 1, march)

		require.NoError(t, err)
		assert.False(t, res.BudgetsReset)
		assert.Equal(t, 1, res.BudgetsClosed)
		f.budgets.AssertNotCalled(t, "ResetAll", mock.Anything, mock.Anything)
	})
}

func TestRolloverUseCase_RunForAll(t *testing.T) {
	f := newFixture(t, time.Date(2025, 4, 2, 8, 0, 0, 0, time.UTC))

	f.users.EXPECT().ListIDs(mock.Anything).Return([]uint64{1, 2, 3}, nil).Once()
	f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
		return ctx, nil
	}).Times(3)
	f.uow.EXPECT().Commit(mock.Anything).Return(nil).Twice()
	f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()

	// User 1 was already closed
	f.closures.EXPECT().Get(mock.Anything, uint64(1), march).Return(&entity.MonthClosure{UserID: 1, Month: march}, nil).Once()

	// User 2 fails
	f.closures.EXPECT().Get(mock.Anything, uint64(2), march).Return(nil, errs.ErrNotFound).Once()
	f.closures.EXPECT().Latest(mock.Anything, uint64(2)).Return(nil, errs.ErrNotFound).Once()
	f.txs.EXPECT().SumByCategory(mock.Anything, uint64(2), entity.TypeExpense, mock.Anything).Return(nil, errs.ErrDatabaseConnection).Once()

	// User 3 closes with nothing to snapshot
	f.closures.EXPECT().Get(mock.Anything, uint64(3), march).Return(nil, errs.ErrNotFound).Once()
	f.closures.EXPECT().Latest(mock.Anything, uint64(3)).Return(nil, errs.ErrNotFound).Once()
	f.txs.EXPECT().SumByCategory(mock.Anything, uint64(3), entity.TypeExpense, mock.Anything).Return(nil, nil).Once()
	f.txs.EXPECT().SumByType(mock.Anything, uint64(3), mock.Anything).Return(entity.TypeTotals{}, nil).Once()
	f.budgets.EXPECT().List(mock.Anything, uint64(3)).Return(nil, nil).Once()
	f.savings.EXPECT().GetGoal(mock.Anything, uint64(3), march).Return(nil, errs.ErrSavingsGoalNotFound).Once()
	f.closures.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	f.cache.EXPECT().DeleteByPrefix(mock.Anything, "fintrack:user:3:").Return(nil).Once()

	summary, err := f.useCase.RunForAll(context.Background(), march)

	require.NoError(t, err)
	assert.Equal(t, &entity.RolloverSummary{Month: march, Closed: 1, Skipped: 1, Failed: 1}, summary)
}
