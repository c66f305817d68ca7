package usecase

import (
	"context"
)

// TrendPoint is the expense total of one month in a trend report
type TrendPoint struct {
	Month      string             `json:"month"`
	Total      float64            `json:"total"`
	Count      int                `json:"count"`
	Categories map[string]float64 `json:"categories"`
	Change     float64            `json:"change"`
	Trend      string             `json:"trend"`
}

// TrendReport is the month over month expense trend of a period
type TrendReport struct {
	Trends       []TrendPoint `json:"trends"`
	OverallTrend float64      `json:"overallTrend"`
	Period       string       `json:"period"`
}

// BudgetVsActualQuery selects the range of a budget comparison
type BudgetVsActualQuery struct {
	Period    string
	Year      string
	Month     string
	StartDate string
	EndDate   string
}

// BudgetComparison compares the budget and spend of one category
type BudgetComparison struct {
	Category           string  `json:"category"`
	Budget             float64 `json:"budget"`
	Actual             float64 `json:"actual"`
	Variance           float64 `json:"variance"`
	VariancePercentage float64 `json:"variancePercentage"`
	Status             string  `json:"status"`
}

// BudgetComparisonSummary totals a comparison
type BudgetComparisonSummary struct {
	TotalBudget             float64 `json:"totalBudget"`
	TotalActual             float64 `json:"totalActual"`
	TotalVariance           float64 `json:"totalVariance"`
	TotalVariancePercentage float64 `json:"totalVariancePercentage"`
	CurrentBudget           float64 `json:"currentBudget"`
}

// ReportPeriod is the date range a report covers, both ends inclusive
type ReportPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CategoryBudget is a current budget listed next to a historical comparison
type CategoryBudget struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
	Spent  float64 `json:"spent"`
}

// BudgetVsActualReport is the response of a budget comparison
type BudgetVsActualReport struct {
	Comparison         []BudgetComparison      `json:"comparison"`
	Summary            BudgetComparisonSummary `json:"summary"`
	Period             ReportPeriod            `json:"period"`
	CurrentCategories  []CategoryBudget        `json:"currentCategories,omitempty"`
	SelectedCategories []CategoryBudget        `json:"selectedCategories,omitempty"`
}

// MonthlyAverage is the average spend of one calendar month across years
type MonthlyAverage struct {
	Average float64 `json:"average"`
	Years   int     `json:"years"`
	Trend   string  `json:"trend"`
}

// SeasonalPatterns summarises a seasonal report
type SeasonalPatterns struct {
	HighestSpendingMonth   *string `json:"highestSpendingMonth"`
	LowestSpendingMonth    *string `json:"lowestSpendingMonth"`
	AverageMonthlySpending float64 `json:"averageMonthlySpending"`
}

// SeasonalReport is the spend per calendar month over several years
type SeasonalReport struct {
	MonthlyAverages  map[string]MonthlyAverage `json:"monthlyAverages"`
	SeasonalPatterns SeasonalPatterns          `json:"seasonalPatterns"`
	Period           string                    `json:"period"`
}

// Alert is one spending warning
type Alert struct {
	Type     string             `json:"type"`
	Category string             `json:"category,omitempty"`
	Severity string             `json:"severity"`
	Message  string             `json:"message"`
	Details  map[string]float64 `json:"details"`
}

// AlertSummary counts alerts by severity
type AlertSummary struct {
	TotalAlerts    int `json:"totalAlerts"`
	HighPriority   int `json:"highPriority"`
	MediumPriority int `json:"mediumPriority"`
	LowPriority    int `json:"lowPriority"`
}

// AlertReport is the response of the alerts endpoint
type AlertReport struct {
	Alerts  []Alert      `json:"alerts"`
	Summary AlertSummary `json:"summary"`
}

// HealthMetric is one component of the health score
type HealthMetric struct {
	Value float64 `json:"value"`
	Score float64 `json:"score"`
}

// HealthMetrics holds every component of the health score
type HealthMetrics struct {
	SavingsRate        HealthMetric `json:"savingsRate"`
	BudgetAdherence    HealthMetric `json:"budgetAdherence"`
	ExpenseConsistency HealthMetric `json:"expenseConsistency"`
	IncomeStability    HealthMetric `json:"incomeStability"`
	EmergencyFund      HealthMetric `json:"emergencyFund"`
	DebtManagement     HealthMetric `json:"debtManagement"`
}

// HealthReport is a 0..100 financial health score with advice
type HealthReport struct {
	Score           float64       `json:"score"`
	Level           string        `json:"healthLevel"`
	Color           string        `json:"healthColor"`
	Metrics         HealthMetrics `json:"metrics"`
	Recommendations []string      `json:"recommendations"`
}

// AnalyticsUseCase defines the read-only reports over a user's ledger
type AnalyticsUseCase interface {
	// Trends reports monthly expense totals for 3months, 6months or 12months
	Trends(ctx context.Context, userID uint64, period string) (*TrendReport, error)

	// BudgetVsActual compares budgets with spend for current, past, custom or all
	BudgetVsActual(ctx context.Context, userID uint64, query BudgetVsActualQuery) (*BudgetVsActualReport, error)

	// Seasonal reports average spend per calendar month over the last years
	Seasonal(ctx context.Context, userID uint64, years int) (*SeasonalReport, error)

	// Alerts lists budget overruns, spending jumps and large unbudgeted categories
	Alerts(ctx context.Context, userID uint64) (*AlertReport, error)

	// HealthScore rates savings, budgeting, consistency, stability and reserves
	HealthScore(ctx context.Context, userID uint64) (*HealthReport, error)
}
