package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func expense(date string, amount int64, category string) *entity.Transaction {
	day, _ := entity.ParseDate(date)
	return &entity.Transaction{Date: day, Amount: d(amount), Type: entity.TypeExpense, Category: category}
}

func TestBuildTrends(t *testing.T) {
	// Newest first, the way the repository lists them
	txs := []*entity.Transaction{
		expense("2025-03-02", 120, "Groceries"),
		expense("2025-02-20", 50, "Dining"),
		expense("2025-02-03", 100, "Groceries"),
		expense("2025-01-10", 100, "Groceries"),
	}

	points := buildTrends(txs)

	require.Len(t, points, 3)
	assert.Equal(t, "2025-01", points[0].Month)
	assert.Equal(t, 0.0, points[0].Change)
	assert.Equal(t, trendStable, points[0].Trend)

	assert.Equal(t, 150.0, points[1].Total)
	assert.Equal(t, 2, points[1].Count)
	assert.Equal(t, map[string]float64{"Groceries": 100, "Dining": 50}, points[1].Categories)
	assert.Equal(t, 50.0, points[1].Change)
	assert.Equal(t, trendIncreasing, points[1].Trend)

	assert.Equal(t, -20.0, points[2].Change)
	assert.Equal(t, trendDecreasing, points[2].Trend)

	assert.Equal(t, 20.0, overallTrend(points))
	assert.Equal(t, 0.0, overallTrend(points[:1]))
	assert.Empty(t, buildTrends(nil))
}

func TestTrendStart(t *testing.T) {
	now := time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		period   string
		start    time.Time
		resolved string
	}{
		{"3months", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), "3months"},
		{"6months", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), "6months"},
		{"12months", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), "12months"},
		{"", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), "6months"},
		{"forever", time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC), "6months"},
	}

	for _, tc := range testCases {
		start, resolved := trendStart(tc.period, now)
		assert.Equal(t, tc.start, start, tc.period)
		assert.Equal(t, tc.resolved, resolved, tc.period)
	}
}

func TestBuildCurrentComparison(t *testing.T) {
	budgets := []*entity.Budget{
		{CategoryName: "Groceries", Amount: d(1000)},
		{CategoryName: "Rent", Amount: d(900)},
	}
	spent := []entity.CategoryTotal{
		{Category: "Groceries", Total: d(1200)},
		{Category: "Dining", Total: d(300)},
	}

	report := buildCurrentComparison(budgets, spent)

	assert.Equal(t, []usecase.BudgetComparison{
		{Category: "Groceries", Budget: 1000, Actual: 1200, Variance: -200, VariancePercentage: -20, Status: statusOver},
		{Category: "Rent", Budget: 900, Actual: 0, Variance: 900, VariancePercentage: 100, Status: statusUnder},
		{Category: "Dining", Budget: 0, Actual: 300, Variance: -300, VariancePercentage: -100, Status: statusOver},
	}, report.Comparison)
	assert.Equal(t, usecase.BudgetComparisonSummary{
		TotalBudget:             1900,
		TotalActual:             1500,
		TotalVariance:           400,
		TotalVariancePercentage: 21.05,
		CurrentBudget:           1900,
	}, report.Summary)
	assert.Nil(t, report.CurrentCategories)
}

func TestBuildHistoricalComparison(t *testing.T) {
	feb := entity.Month{Year: 2025, Month: time.February}
	march := entity.Month{Year: 2025, Month: time.March}
	budgets := []*entity.Budget{{CategoryName: "Groceries", Amount: d(0)}}

	t.Run("Aggregates per category and drops empty rows", func(t *testing.T) {
		history := []*entity.MonthlyBudgetHistory{
			entity.NewBudgetHistory(1, feb, "Groceries", d(1000), d(900)),
			entity.NewBudgetHistory(1, feb, "Travel", d(0), d(0)),
			entity.NewBudgetHistory(1, march, "Groceries", d(1000), d(1100)),
		}

		report := buildHistoricalComparison(budgets, []entity.CategoryTotal{{Category: "Groceries", Total: d(40)}}, history)

		require.Len(t, report.Comparison, 1)
		assert.Equal(t, usecase.BudgetComparison{
			Category: "Groceries", Budget: 2000, Actual: 2000, Variance: 0, VariancePercentage: 0, Status: statusUnder,
		}, report.Comparison[0])
		assert.Len(t, report.SelectedCategories, 3)
		assert.Equal(t, []usecase.CategoryBudget{{Name: "Groceries", Budget: 0, Spent: 40}}, report.CurrentCategories)
		assert.Equal(t, 0.0, report.Summary.CurrentBudget)
	})

	t.Run("No history", func(t *testing.T) {
		report := buildHistoricalComparison(budgets, nil, nil)

		assert.NotNil(t, report.Comparison)
		assert.Empty(t, report.Comparison)
		assert.Empty(t, report.SelectedCategories)
		assert.Equal(t, usecase.BudgetComparisonSummary{}, report.Summary)
	})
}

func TestBuildSeasonal(t *testing.T) {
	txs := []*entity.Transaction{
		expense("2025-03-10", 300, "Rent"),
		expense("2025-01-05", 100, "Groceries"),
		expense("2024-03-02", 150, "Rent"),
		expense("2024-03-20", 50, "Dining"),
	}

	report := buildSeasonal(txs)

	assert.Equal(t, map[string]usecase.MonthlyAverage{
		"January": {Average: 100, Years: 1, Trend: trendStable},
		"March":   {Average: 250, Years: 2, Trend: trendIncreasing},
	}, report.MonthlyAverages)
	require.NotNil(t, report.SeasonalPatterns.HighestSpendingMonth)
	assert.Equal(t, "March", *report.SeasonalPatterns.HighestSpendingMonth)
	assert.Equal(t, "January", *report.SeasonalPatterns.LowestSpendingMonth)
	assert.Equal(t, 175.0, report.SeasonalPatterns.AverageMonthlySpending)

	empty := buildSeasonal(nil)
	assert.Nil(t, empty.SeasonalPatterns.HighestSpendingMonth)
	assert.Equal(t, 0.0, empty.SeasonalPatterns.AverageMonthlySpending)
}

func TestBuildAlerts(t *testing.T) {
	budgets := []*entity.Budget{
		{CategoryName: "Groceries", Amount: d(1000)},
		{CategoryName: "Dining", Amount: d(400)},
	}
	current := []entity.CategoryTotal{
		{Category: "Groceries", Total: d(1600)},
		{Category: "Dining", Total: d(450)},
		{Category: "Travel", Total: d(1200)},
		{Category: "Fuel", Total: d(300)},
	}
	previous := []entity.CategoryTotal{
		{Category: "Groceries", Total: d(1000)},
		{Category: "Fuel", Total: d(100)},
	}

	alerts := buildAlerts(current, previous, budgets)

	require.Len(t, alerts, 5)
	assert.Equal(t, usecase.Alert{
		Type:     alertBudgetOverrun,
		Category: "Groceries",
		Severity: severityHigh,
		Message:  "Budget overrun by 60%",
		Details:  map[string]float64{"budget": 1000, "spent": 1600, "overrun": 600},
	}, alerts[0])
	assert.Equal(t, "Budget overrun by 12.5%", alerts[1].Message)
	assert.Equal(t, severityLow, alerts[1].Severity)

	assert.Equal(t, alertSpendingIncrease, alerts[2].Type)
	assert.Equal(t, severityMedium, alerts[2].Severity)
	assert.Equal(t, "Spending increased by 60% from last month", alerts[2].Message)
	assert.Equal(t, "Fuel", alerts[3].Category)
	assert.Equal(t, severityHigh, alerts[3].Severity)

	assert.Equal(t, alertNoBudget, alerts[4].Type)
	assert.Equal(t, "Travel", alerts[4].Category)

	assert.Equal(t, usecase.AlertSummary{TotalAlerts: 5, HighPriority: 2, MediumPriority: 2, LowPriority: 1}, summarizeAlerts(alerts))
	assert.NotNil(t, buildAlerts(nil, nil, nil))
}

func TestBuildHealth(t *testing.T) {
	t.Run("Low savings rate", func(t *testing.T) {
		in := healthInput{
			income:   d(10000),
			expense:  d(9500),
			incomes:  [healthMonths]float64{10000},
			expenses: [healthMonths]float64{9500},
			budgets: []*entity.Budget{
				{CategoryName: "Groceries", Amount: d(2000)},
				{CategoryName: "Dining", Amount: d(500)},
				{CategoryName: "Travel", Amount: d(0)},
			},
			spent: map[string]decimal.Decimal{"Groceries": d(1800), "Dining": d(600)},
		}

		report := buildHealth(in)

		assert.Equal(t, usecase.HealthMetric{Value: 5, Score: 1.25}, report.Metrics.SavingsRate)
		assert.Equal(t, usecase.HealthMetric{Value: 50, Score: 10}, report.Metrics.BudgetAdherence)
		assert.Equal(t, 0.0, report.Metrics.ExpenseConsistency.Score)
		assert.Equal(t, 0.0, report.Metrics.IncomeStability.Score)
		assert.Equal(t, usecase.HealthMetric{Value: 500, Score: 7.5}, report.Metrics.EmergencyFund)
		assert.Equal(t, usecase.HealthMetric{Value: 100, Score: 10}, report.Metrics.DebtManagement)
		assert.Equal(t, 28.75, report.Score)
		assert.Equal(t, "Poor", report.Level)
		assert.Equal(t, "orange", report.Color)
		assert.Len(t, report.Recommendations, 6)
	})

	t.Run("Steady saver", func(t *testing.T) {
		steady := [healthMonths]float64{8000, 8000, 8000, 8000, 8000, 8000}
		spend := [healthMonths]float64{6000, 6000, 6000, 6000, 6000, 6000}
		in := healthInput{
			income:   d(8000),
			expense:  d(6000),
			incomes:  steady,
			expenses: spend,
			budgets:  []*entity.Budget{{CategoryName: "Rent", Amount: d(2000)}},
			spent:    map[string]decimal.Decimal{"Rent": d(2000)},
		}

		report := buildHealth(in)

		assert.Equal(t, usecase.HealthMetric{Value: 25, Score: 6.25}, report.Metrics.SavingsRate)
		assert.Equal(t, usecase.HealthMetric{Value: 100, Score: 20}, report.Metrics.BudgetAdherence)
		assert.Equal(t, usecase.HealthMetric{Value: 100, Score: 15}, report.Metrics.ExpenseConsistency)
		assert.Equal(t, usecase.HealthMetric{Value: 100, Score: 15}, report.Metrics.IncomeStability)
		assert.Equal(t, 15.0, report.Metrics.EmergencyFund.Score)
		assert.Equal(t, 81.25, report.Score)
		assert.Equal(t, "Excellent", report.Level)
		assert.Equal(t, []string{"Build an emergency fund of at least 3 months of expenses"}, report.Recommendations)
	})

	t.Run("Score stays within bounds", func(t *testing.T) {
		report := buildHealth(healthInput{income: d(0), expense: d(5000)})

		assert.Equal(t, 0.0, report.Metrics.SavingsRate.Score)
		assert.Equal(t, 0.0, report.Metrics.EmergencyFund.Score)
		assert.Equal(t, 10.0, report.Score)
		assert.Equal(t, "red", report.Color)
	})
}

func TestMonthsBetween(t *testing.T) {
	assert.Equal(t, 0, monthsBetween(entity.Month{Year: 2025, Month: time.March}, entity.Month{Year: 2025, Month: time.March}))
	assert.Equal(t, 5, monthsBetween(entity.Month{Year: 2024, Month: time.October}, entity.Month{Year: 2025, Month: time.March}))
}
