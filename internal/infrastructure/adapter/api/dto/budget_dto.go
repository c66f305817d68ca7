package dto

import (
	"encoding/json"
	"time"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// SetBudgetRequest creates or replaces a category budget
type SetBudgetRequest struct {
	CategoryName string      `json:"categoryName" binding:"required"`
	Budget       json.Number `json:"budget" binding:"required"`
}

// UpdateBudgetRequest changes a budget amount
type UpdateBudgetRequest struct {
	Budget json.Number `json:"budget" binding:"required"`
}

// RolloverRequest selects the month to close. Empty means the current month.
type RolloverRequest struct {
	Month  string `json:"month"`
	Strict bool   `json:"strict"`
}

// BudgetResponse is one budget with its spend
type BudgetResponse struct {
	ID         uint64 `json:"id"`
	Name       string `json:"name"`
	Budget     string `json:"budget"`
	Spent      string `json:"spent"`
	Percentage int64  `json:"percentage"`
}

// NewBudgetList converts usage rows
func NewBudgetList(rows []entity.BudgetUsage) []BudgetResponse {
	out := make([]BudgetResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, BudgetResponse{
			ID:         r.ID,
			Name:       r.CategoryName,
			Budget:     entity.FormatAmount(r.Amount),
			Spent:      entity.FormatAmount(r.Spent),
			Percentage: r.Percentage,
		})
	}
	return out
}

// BudgetRowResponse is a stored budget
type BudgetRowResponse struct {
	ID         uint64 `json:"id"`
	CategoryID uint64 `json:"categoryId"`
	Name       string `json:"name"`
	Budget     string `json:"budget"`
}

// NewBudgetRow converts a budget
func NewBudgetRow(b *entity.Budget) BudgetRowResponse {
	return BudgetRowResponse{
		ID:         b.ID,
		CategoryID: b.CategoryID,
		Name:       b.CategoryName,
		Budget:     entity.FormatAmount(b.Amount),
	}
}

// SuggestionResponse is a proposed budget
type SuggestionResponse struct {
	Category        string `json:"category"`
	SuggestedBudget int64  `json:"suggested_budget"`
}

// NewSuggestions converts suggestions
func NewSuggestions(rows []entity.BudgetSuggestion) []SuggestionResponse {
	out := make([]SuggestionResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, SuggestionResponse{Category: r.Category, SuggestedBudget: r.SuggestedBudget})
	}
	return out
}

// ForecastResponse is the month-end projection of one budget
type ForecastResponse struct {
	ID         uint64 `json:"id"`
	Category   string `json:"category"`
	Budget     string `json:"budget"`
	Spent      string `json:"spent"`
	DayOfMonth int    `json:"day_of_month"`
	TotalDays  int    `json:"total_days"`
	Projected  string `json:"projected"`
	WillExceed bool   `json:"willExceed"`
}

// NewForecasts converts forecasts
func NewForecasts(rows []entity.BudgetForecast) []ForecastResponse {
	out := make([]ForecastResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ForecastResponse{
			ID:         r.ID,
			Category:   r.CategoryName,
			Budget:     entity.FormatAmount(r.Amount),
			Spent:      entity.FormatAmount(r.Spent),
			DayOfMonth: r.DayOfMonth,
			TotalDays:  r.TotalDays,
			Projected:  entity.FormatAmount(r.Projected),
			WillExceed: r.WillExceed,
		})
	}
	return out
}

// BudgetHistoryResponse is a frozen budget of a closed month
type BudgetHistoryResponse struct {
	ID        uint64 `json:"id"`
	Month     string `json:"month"`
	Category  string `json:"category"`
	Budget    string `json:"budget"`
	Spent     string `json:"spent"`
	Remaining string `json:"remaining"`
}

// NewBudgetHistory converts history rows
func NewBudgetHistory(rows []*entity.MonthlyBudgetHistory) []BudgetHistoryResponse {
	out := make([]BudgetHistoryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, BudgetHistoryResponse{
			ID:        r.ID,
			Month:     r.Month.String(),
			Category:  r.Category,
			Budget:    entity.FormatAmount(r.Budget),
			Spent:     entity.FormatAmount(r.Spent),
			Remaining: entity.FormatAmount(r.Remaining),
		})
	}
	return out
}

// RolloverResponse reports a month close
type RolloverResponse struct {
	Month         string    `json:"month"`
	AlreadyClosed bool      `json:"alreadyClosed"`
	BudgetsClosed int       `json:"budgetsClosed"`
	BudgetsReset  bool      `json:"budgetsReset"`
	BudgetTotal   string    `json:"budgetTotal"`
	SavedAmount   string    `json:"savedAmount"`
	SavingsStatus string    `json:"savingsStatus,omitempty"`
	ClosedAt      time.Time `json:"closedAt"`
}

// NewRolloverResponse converts a rollover result
func NewRolloverResponse(r *entity.RolloverResult) RolloverResponse {
	return RolloverResponse{
		Month:         r.Month.String(),
		AlreadyClosed: r.AlreadyClosed,
		BudgetsClosed: r.BudgetsClosed,
		BudgetsReset:  r.BudgetsReset,
		BudgetTotal:   entity.FormatAmount(r.BudgetTotal),
		SavedAmount:   entity.FormatAmount(r.SavedAmount),
		SavingsStatus: string(r.SavingsStatus),
		ClosedAt:      r.ClosedAt,
	}
}
