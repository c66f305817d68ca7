package budget

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

var now = time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

type fixture struct {
	useCase    *BudgetUseCase
	budgets    *mockpersistence.MockBudgetRepository
	categories *mockpersistence.MockCategoryRepository
	txs        *mockpersistence.MockTransactionRepository
	cache      *mockcache.MockCache
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		budgets:    mockpersistence.NewMockBudgetRepository(t),
		categories: mockpersistence.NewMockCategoryRepository(t),
		txs:        mockpersistence.NewMockTransactionRepository(t),
		cache:      mockcache.NewMockCache(t),
	}

	uow := mockpersistence.NewMockUnitOfWork(t)
	uow.EXPECT().GetBudgetRepository(mock.Anything).Return(f.budgets).Maybe()
	uow.EXPECT().GetCategoryRepository(mock.Anything).Return(f.categories).Maybe()
	uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txs).Maybe()

	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Return().Maybe()

	f.useCase = NewBudgetUseCase(uow, f.cache, time.Minute, mockTime, mockLogger)
	return f
}

func groceries(amount int64) *entity.Budget {
	return &entity.Budget{ID: 1, UserID: 1, CategoryID: 10, CategoryName: "Groceries", Amount: decimal.NewFromInt(amount)}
}

func TestBudgetUseCase_List(t *testing.T) {
	t.Run("Budget usage after one expense", func(t *testing.T) {
		f := newFixture(t)

		// Setup mocks
		f.budgets.EXPECT().List(mock.Anything, uint64(1)).Return([]*entity.Budget{
			groceries(1000),
			{ID: 2, CategoryName: "Travel", Amount: decimal.Zero},
		}, nil).Once()
		f.txs.EXPECT().SumByCategory(mock.Anything, uint64(1), entity.TypeExpense, entity.Month{Year: 2025, Month: time.March}.Window()).
			Return([]entity.CategoryTotal{{Category: "Groceries", Total: decimal.NewFromInt(300)}}, nil).Once()

		// Execute
		usage, err := f.useCase.List(context.Background(), 1, "")

		// Assertions
		require.NoError(t, err)
		require.Len(t, usage, 2)
		assert.Equal(t, int64(30), usage[0].Percentage)
		assert.True(t, usage[0].Spent.Equal(decimal.NewFromInt(300)))
		assert.Equal(t, int64(0), usage[1].Percentage)
		assert.True(t, usage[1].Spent.IsZero())
	})

	t.Run("Explicit month", func(t *testing.T) {
		f := newFixture(t)
		f.budgets.EXPECT().List(mock.Anything, uint64(1)).Return(nil, nil).Once()
		f.txs.EXPECT().SumByCategory(mock.Anything, uint64(1), entity.TypeExpense, entity.Month{Year: 2024, Month: time.December}.Window()).
			Return(nil, nil).Once()

		usage, err := f.useCase.List(context.Background(), 1, "2024-12")
		require.NoError(t, err)
		assert.Empty(t, usage)
	})

	t.Run("Malformed month", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.useCase.List(context.Background(), 1, "12/2024")
		assert.ErrorIs(t, err, errs.ErrInvalidDate)
	})
}

func TestBudgetUseCase_Set(t *testing.T) {
	t.Run("Creates the category when missing", func(t *testing.T) {
		f := newFixture(t)

		f.categories.EXPECT().FindOrCreate(mock.Anything, uint64(1), "Pets", entity.DefaultAccount).
			Return(&entity.Category{ID: 12, UserID: 1, Name: "Pets", Account: entity.DefaultAccount}, nil).Once()
		f.budgets.EXPECT().Upsert(mock.Anything, mock.MatchedBy(func(b *entity.Budget) bool {
			return b.CategoryID == 12 && b.Amount.Equal(decimal.NewFromInt(150))
		})).Return(nil).Once()
		f.cache.EXPECT().DeleteByPrefix(mock.Anything, "fintrack:user:1:").Return(nil).Once()

		budget, err := f.useCase.Set(context.Background(), 1, "Pets", decimal.NewFromInt(150))
		require.NoError(t, err)
		assert.Equal(t, "Pets", budget.CategoryName)
	})

	t.Run("Negative amount", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.useCase.Set(context.Background(), 1, "Pets", decimal.NewFromInt(-5))
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Missing budget on update", func(t *testing.T) {
		f := newFixture(t)
		f.budgets.EXPECT().UpdateAmount(mock.Anything, uint64(1), uint64(99), decimal.NewFromInt(5)).Return(nil, errs.ErrBudgetNotFound).Once()

		_, err := f.useCase.UpdateAmount(context.Background(), 1, 99, decimal.NewFromInt(5))
		assert.ErrorIs(t, err, errs.ErrBudgetNotFound)
	})
}

func TestBudgetUseCase_Reports(t *testing.T) {
	t.Run("Forecast on day ten", func(t *testing.T) {
		f := newFixture(t)
		f.budgets.EXPECT().List(mock.Anything, uint64(1)).Return([]*entity.Budget{groceries(1000)}, nil).Once()
		f.txs.EXPECT().SumByCategory(mock.Anything, uint64(1), entity.TypeExpense, mock.Anything).
			Return([]entity.CategoryTotal{{Category: "Groceries", Total: decimal.NewFromInt(400)}}, nil).Once()

		forecasts, err := f.useCase.Forecast(context.Background(), 1)

		require.NoError(t, err)
		require.Len(t, forecasts, 1)
		assert.Equal(t, 10, forecasts[0].DayOfMonth)
		assert.Equal(t, 31, forecasts[0].TotalDays)
		assert.True(t, forecasts[0].Projected.Equal(decimal.NewFromInt(1240)))
		assert.True(t, forecasts[0].WillExceed)
	})

	t.Run("Suggestions are cached", func(t *testing.T) {
		f := newFixture(t)
		f.cache.EXPECT().Get(mock.Anything, "fintrack:user:1:budget-suggest", mock.Anything).Return(false, nil).Once()
		f.txs.EXPECT().AverageByCategory(mock.Anything, uint64(1), entity.TypeExpense, entity.DateRange{
			From: time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC),
			To:   time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		}).Return([]entity.CategoryTotal{{Category: "Dining", Total: decimal.NewFromInt(200)}}, nil).Once()
		f.cache.EXPECT().Set(mock.Anything, "fintrack:user:1:budget-suggest", mock.Anything, time.Minute).Return(nil).Once()

		suggestions, err := f.useCase.Suggest(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, []entity.BudgetSuggestion{{Category: "Dining", SuggestedBudget: 220}}, suggestions)
	})

	t.Run("History of a month", func(t *testing.T) {
		f := newFixture(t)
		feb := entity.Month{Year: 2025, Month: time.February}
		f.budgets.EXPECT().ListHistory(mock.Anything, uint64(1), feb, feb).Return([]*entity.MonthlyBudgetHistory{{Category: "Rent"}}, nil).Once()

		rows, err := f.useCase.History(context.Background(), 1, "2025-02")
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}
