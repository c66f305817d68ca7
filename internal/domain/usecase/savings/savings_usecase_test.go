package savings

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
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
	mockcore "github.com/fintrack/fintrack-api/mocks/port/core"
	mockpersistence "github.com/fintrack/fintrack-api/mocks/port/persistence"
)

var (
	now   = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	march = entity.Month{Year: 2025, Month: time.March}
)

type fixture struct {
	useCase *SavingsUseCase
	savings *mockpersistence.MockSavingsRepository
	txs     *mockpersistence.MockTransactionRepository
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		savings: mockpersistence.NewMockSavingsRepository(t),
		txs:     mockpersistence.NewMockTransactionRepository(t),
	}
	uow := mockpersistence.NewMockUnitOfWork(t)
	uow.EXPECT().GetSavingsRepository(mock.Anything).Return(f.savings).Maybe()
	uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.txs).Maybe()

	mockTime := mockcore.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(now).Maybe()
	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()

	f.useCase = NewSavingsUseCase(uow, mockTime, mockLogger)
	return f
}

func totals(income, expense int64) entity.TypeTotals {
	return entity.TypeTotals{Income: decimal.NewFromInt(income), Expense: decimal.NewFromInt(expense)}
}

func TestSavingsUseCase_GoalStatus(t *testing.T) {
	tests := []struct {
		name     string
		goal     *entity.SavingsGoal
		totals   entity.TypeTotals
		hasGoal  bool
		progress int64
		status   entity.SavingsStatus
	}{
		{
			name:   "No goal",
			totals: totals(1000, 200),
			status: entity.SavingsNoGoal,
		},
		{
			name:     "Half way",
			goal:     &entity.SavingsGoal{InitialGoal: decimal.NewFromInt(1000), CurrentGoal: decimal.NewFromInt(800)},
			totals:   totals(1500, 1000),
			hasGoal:  true,
			progress: 50,
			status:   entity.SavingsInProgress,
		},
		{
			name:     "Achieved",
			goal:     &entity.SavingsGoal{InitialGoal: decimal.NewFromInt(500), CurrentGoal: decimal.NewFromInt(500)},
			totals:   totals(10000, 9500),
			hasGoal:  true,
			progress: 100,
			status:   entity.SavingsAchieved,
		},
		{
			name:     "Negative balance",
			goal:     &entity.SavingsGoal{InitialGoal: decimal.NewFromInt(500), CurrentGoal: decimal.NewFromInt(0)},
			totals:   totals(100, 900),
			hasGoal:  true,
			progress: 0,
			status:   entity.SavingsBelowGoal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			// Setup mocks
			f.txs.EXPECT().SumByType(mock.Anything, uint64(1), march.Window()).Return(tt.totals, nil).Once()
			if tt.goal != nil {
				f.savings.EXPECT().GetGoal(mock.Anything, uint64(1), march).Return(tt.goal, nil).Once()
			} else {
				f.savings.EXPECT().GetGoal(mock.Anything, uint64(1), march).Return(nil, errs.ErrSavingsGoalNotFound).Once()
			}

			// Execute
			status, err := f.useCase.GoalStatus(context.Background(), 1)

			// Assertions
			require.NoError(t, err)
			assert.Equal(t, tt.hasGoal, status.HasGoal)
			assert.Equal(t, tt.progress, status.Progress)
			assert.Equal(t, tt.status, status.Status)
			assert.True(t, status.CurrentSavings.Equal(tt.totals.Balance()))
		})
	}

	t.Run("Any failed fetch fails the whole status", func(t *testing.T) {
		f := newFixture(t)
		f.txs.EXPECT().SumByType(mock.Anything, uint64(1), mock.Anything).Return(entity.TypeTotals{}, errs.ErrDatabaseConnection).Once()
		f.savings.EXPECT().GetGoal(mock.Anything, uint64(1), march).Return(nil, errs.ErrSavingsGoalNotFound).Maybe()

		status, err := f.useCase.GoalStatus(context.Background(), 1)
		assert.Nil(t, status)
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestSavingsUseCase_Goal(t *testing.T) {
	t.Run("Set goal resets the remaining amount", func(t *testing.T) {
		f := newFixture(t)
		f.savings.EXPECT().UpsertGoal(mock.Anything, mock.MatchedBy(func(g *entity.SavingsGoal) bool {
			return g.Month == march && g.CurrentGoal.Equal(g.InitialGoal) && g.InitialGoal.Equal(decimal.NewFromInt(700))
		})).Return(nil).Once()

		goal, err := f.useCase.SetGoal(context.Background(), 1, decimal.NewFromInt(700))
		require.NoError(t, err)
		assert.Equal(t, now, goal.CreatedAt)
	})

	t.Run("Negative goal", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.useCase.SetGoal(context.Background(), 1, decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Apply expense decrements in the database", func(t *testing.T) {
		f := newFixture(t)
		f.savings.EXPECT().GetGoal(mock.Anything, uint64(1), march).
			Return(&entity.SavingsGoal{ID: 3, InitialGoal: decimal.NewFromInt(500), CurrentGoal: decimal.NewFromInt(100)}, nil).Once()
		f.savings.EXPECT().DecrementCurrentGoal(mock.Anything, uint64(3), mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.NewFromInt(250))
		})).Return(nil).Once()

		assert.NoError(t, f.useCase.ApplyExpense(context.Background(), 1, decimal.NewFromInt(250)))
	})

	t.Run("Apply expense without goal", func(t *testing.T) {
		f := newFixture(t)
		f.savings.EXPECT().GetGoal(mock.Anything, uint64(1), march).Return(nil, errs.ErrSavingsGoalNotFound).Once()

		assert.NoError(t, f.useCase.ApplyExpense(context.Background(), 1, decimal.NewFromInt(250)))
	})
}

func TestSavingsUseCase_Monthly(t *testing.T) {
	t.Run("Store a past month short of its goal", func(t *testing.T) {
		f := newFixture(t)
		f.savings.EXPECT().UpsertMonthly(mock.Anything, mock.Anything).Return(nil).Once()

		rec, err := f.useCase.StoreMonthly(context.Background(), 1, usecase.StoreMonthlyRequest{
			Month:       "2025-02",
			SavedAmount: decimal.NewFromInt(100),
			SavingGoal:  decimal.NewFromInt(500),
		})

		require.NoError(t, err)
		assert.Equal(t, entity.SavingsNotAchieved, rec.Status)
	})

	t.Run("Current month still in progress", func(t *testing.T) {
		f := newFixture(t)
		f.txs.EXPECT().SumByType(mock.Anything, uint64(1), march.Window()).Return(totals(1000, 900), nil).Once()
		f.savings.EXPECT().GetGoal(mock.Anything, uint64(1), march).
			Return(&entity.SavingsGoal{InitialGoal: decimal.NewFromInt(500), CurrentGoal: decimal.NewFromInt(500)}, nil).Once()
		f.savings.EXPECT().UpsertMonthly(mock.Anything, mock.Anything).Return(nil).Once()

		rec, err := f.useCase.StoreCurrentMonth(context.Background(), 1)

		require.NoError(t, err)
		assert.Equal(t, march, rec.Month)
		assert.True(t, rec.SavedAmount.Equal(decimal.NewFromInt(100)))
		assert.Equal(t, entity.SavingsInProgress, rec.Status)
	})

	t.Run("List defaults to the current year", func(t *testing.T) {
		f := newFixture(t)
		f.savings.EXPECT().ListMonthly(mock.Anything, uint64(1),
			entity.Month{Year: 2025, Month: time.January},
			entity.Month{Year: 2025, Month: time.December}).Return(nil, nil).Once()

		_, err := f.useCase.ListMonthly(context.Background(), 1, 0)
		assert.NoError(t, err)
	})
}
