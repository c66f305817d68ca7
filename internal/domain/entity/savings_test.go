package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
)

func TestGoalProgress(t *testing.T) {
	goal := decimal.NewFromInt(1000)

	testCases := []struct {
		balance  int64
		progress int64
		status   SavingsStatus
	}{
		{-200, 0, SavingsBelowGoal},
		{0, 0, SavingsBelowGoal},
		{250, 25, SavingsInProgress},
		{999, 100, SavingsInProgress},
		{1000, 100, SavingsAchieved},
		{5000, 100, SavingsAchieved},
	}

	for _, tc := range testCases {
		progress, status := GoalProgress(decimal.NewFromInt(tc.balance), goal)
		assert.Equal(t, tc.progress, progress, "balance %d", tc.balance)
		assert.Equal(t, tc.status, status, "balance %d", tc.balance)
	}

	t.Run("Monotonic and bounded", func(t *testing.T) {
		prev := int64(-1)
		for b := int64(-500); b <= 2000; b += 37 {
			p, _ := GoalProgress(decimal.NewFromInt(b), goal)
			assert.GreaterOrEqual(t, p, prev)
			assert.GreaterOrEqual(t, p, int64(0))
			assert.LessOrEqual(t, p, int64(100))
			prev = p
		}
	})

	t.Run("Zero goal", func(t *testing.T) {
		progress, status := GoalProgress(decimal.NewFromInt(500), decimal.Zero)
		assert.Equal(t, int64(0), progress)
		assert.Equal(t, SavingsBelowGoal, status)
	})
}

func TestSavingsGoalApplyExpense(t *testing.T) {
	g, err := NewSavingsGoal(1, Month{Year: 2025, Month: time.March}, decimal.NewFromInt(500))
	require.NoError(t, err)

	g.ApplyExpense(decimal.NewFromInt(200))
	assert.True(t, g.CurrentGoal.Equal(decimal.NewFromInt(300)))
	assert.True(t, g.InitialGoal.Equal(decimal.NewFromInt(500)))

	g.ApplyExpense(decimal.NewFromInt(1000))
	assert.True(t, g.CurrentGoal.IsZero())

	_, err = NewSavingsGoal(1, Month{Year: 2025, Month: time.March}, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)
}

func TestMonthlySavingsStatus(t *testing.T) {
	march := Month{Year: 2025, Month: time.March}
	midMonth := time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	lastDay := time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC)
	later := time.Date(2025, 4, 2, 10, 0, 0, 0, time.UTC)

	d := decimal.NewFromInt

	assert.Equal(t, SavingsAchieved, MonthlySavingsStatus(d(600), d(500), march, midMonth))
	assert.Equal(t, SavingsInProgress, MonthlySavingsStatus(d(100), d(500), march, midMonth))
	assert.Equal(t, SavingsNotAchieved, MonthlySavingsStatus(d(100), d(500), march, lastDay))
	assert.Equal(t, SavingsNotAchieved, MonthlySavingsStatus(d(100), d(500), march, later))
	assert.Equal(t, SavingsPending, MonthlySavingsStatus(d(100), d(0), march, later))
	assert.Equal(t, SavingsInProgress, MonthlySavingsStatus(d(100), d(0), march, midMonth))

	rec := NewMonthlySavings(4, march, d(700), d(500), lastDay)
	assert.Equal(t, SavingsAchieved, rec.Status)
	assert.Equal(t, uint64(4), rec.UserID)
}

func TestCanClose(t *testing.T) {
	march := Month{Year: 2025, Month: time.March}

	assert.ErrorIs(t, CanClose(march, time.Date(2025, 3, 30, 23, 0, 0, 0, time.UTC)), errs.ErrMonthNotEnded)
	assert.NoError(t, CanClose(march, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)))
	assert.NoError(t, CanClose(march, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
	assert.ErrorIs(t, CanClose(march, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)), errs.ErrMonthNotEnded)
}
