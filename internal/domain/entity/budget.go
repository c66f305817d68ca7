package entity

import (
	"math"

	"github.com/shopspring/decimal"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
)

// SuggestionMarkup is applied to the recent average spend of a category
var SuggestionMarkup = decimal.NewFromFloat(1.1)

// Budget is the current monthly cap of one category. There is one per (user, category).
type Budget struct {
	ID           uint64
	UserID       uint64
	CategoryID   uint64
	CategoryName string
	Amount       decimal.Decimal
}

// NewBudget validates a budget amount
func NewBudget(userID, categoryID uint64, categoryName string, amount decimal.Decimal) (*Budget, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := ValidateAmount(amount); err != nil {
		return nil, err
	}
	return &Budget{UserID: userID, CategoryID: categoryID, CategoryName: categoryName, Amount: amount}, nil
}

// BudgetUsage is a budget with the spend of the month it is evaluated against
type BudgetUsage struct {
	Budget
	Spent      decimal.Decimal
	Percentage int64
}

// NewBudgetUsage computes the percentage used; a zero budget reports 0.
func NewBudgetUsage(b Budget, spent decimal.Decimal) BudgetUsage {
	return BudgetUsage{Budget: b, Spent: spent, Percentage: Percentage(spent, b.Amount)}
}

// BudgetForecast is a linear month-end projection of a budget's spend
type BudgetForecast struct {
	Budget
	Spent      decimal.Decimal
	DayOfMonth int
	TotalDays  int
	Projected  decimal.Decimal
	WillExceed bool
}

// Forecast projects spent to the end of the month: round(spent/day*totalDays).
func Forecast(b Budget, spent decimal.Decimal, dayOfMonth, totalDays int) BudgetForecast {
	if dayOfMonth < 1 {
		dayOfMonth = 1
	}
	projected := spent.Div(decimal.NewFromInt(int64(dayOfMonth))).
		Mul(decimal.NewFromInt(int64(totalDays))).
		Round(0)
	return BudgetForecast{
		Budget:     b,
		Spent:      spent,
		DayOfMonth: dayOfMonth,
		TotalDays:  totalDays,
		Projected:  projected,
		WillExceed: projected.GreaterThan(b.Amount),
	}
}

// BudgetSuggestion proposes a budget from recent average spend
type BudgetSuggestion struct {
	Category        string
	SuggestedBudget int64
}

// SuggestBudget returns round(average*1.1)
func SuggestBudget(category string, average decimal.Decimal) BudgetSuggestion {
	v, _ := average.Mul(SuggestionMarkup).Float64()
	return BudgetSuggestion{Category: category, SuggestedBudget: int64(math.Round(v))}
}

// MonthlyBudgetHistory is the frozen state of one category budget in a closed month
type MonthlyBudgetHistory struct {
	ID        uint64
	UserID    uint64
	Month     Month
	Category  string
	Budget    decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal
}

// NewBudgetHistory snapshots a budget against its month's spend
func NewBudgetHistory(userID uint64, month Month, category string, budget, spent decimal.Decimal) *MonthlyBudgetHistory {
	return &MonthlyBudgetHistory{
		UserID:    userID,
		Month:     month,
		Category:  category,
		Budget:    budget,
		Spent:     spent,
		Remaining: budget.Sub(spent),
	}
}
