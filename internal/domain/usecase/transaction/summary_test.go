package transaction

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

func TestPlanBuckets(t *testing.T) {
	// Thursday
	now := time.Date(2025, 3, 20, 18, 0, 0, 0, time.UTC)

	t.Run("Daily covers the last seven days", func(t *testing.T) {
		plan := planBuckets(usecase.IntervalDaily, now)
		require.Len(t, plan.labels, 7)
		assert.Equal(t, "2025-03-14", plan.labels[0])
		assert.Equal(t, "2025-03-20", plan.labels[6])
		assert.Equal(t, time.Date(2025, 3, 21, 0, 0, 0, 0, time.UTC), plan.window.To)
	})

	t.Run("Weekly uses ISO weeks", func(t *testing.T) {
		plan := planBuckets(usecase.IntervalWeekly, now)
		assert.Equal(t, []string{"2025-09", "2025-10", "2025-11", "2025-12"}, plan.labels)
		assert.Equal(t, time.Date(2025, 2, 24, 0, 0, 0, 0, time.UTC), plan.window.From)
		assert.Equal(t, time.Date(2025, 3, 24, 0, 0, 0, 0, time.UTC), plan.window.To)
	})

	t.Run("Weekly across a year boundary", func(t *testing.T) {
		plan := planBuckets(usecase.IntervalWeekly, time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, []string{"2024-50", "2024-51", "2024-52", "2025-01"}, plan.labels)
	})

	t.Run("Yearly covers four years", func(t *testing.T) {
		plan := planBuckets(usecase.IntervalYearly, now)
		assert.Equal(t, []string{"2022", "2023", "2024", "2025"}, plan.labels)
	})

	t.Run("Unknown interval is the current month", func(t *testing.T) {
		plan := planBuckets("fortnightly", now)
		assert.Equal(t, []string{"2025-03"}, plan.labels)
		assert.Equal(t, entity.Month{Year: 2025, Month: time.March}.Window(), plan.window)
	})
}

func TestBucketPlanFill(t *testing.T) {
	plan := planBuckets(usecase.IntervalDaily, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC))

	rows := plan.fill([]entity.DailyTotal{
		{Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), Type: entity.TypeIncome, Total: decimal.NewFromInt(100)},
		{Date: time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), Type: entity.TypeExpense, Total: decimal.NewFromInt(30)},
		{Date: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), Type: entity.TypeExpense, Total: decimal.NewFromInt(999)},
	})

	require.Len(t, rows, 7)
	assert.True(t, rows[0].Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, rows[0].Expense.Equal(decimal.NewFromInt(30)))
	for _, r := range rows[1:] {
		assert.True(t, r.Income.IsZero())
		assert.True(t, r.Expense.IsZero())
	}
}

func TestParseInterval(t *testing.T) {
	assert.Equal(t, usecase.IntervalMonthly, parseInterval(""))
	assert.Equal(t, usecase.IntervalWeekly, parseInterval(" Weekly "))
}
