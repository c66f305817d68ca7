package dto

import (
	"encoding/json"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// SetGoalRequest sets the current month's savings goal
type SetGoalRequest struct {
	InitialGoal json.Number `json:"initialGoal" binding:"required"`
}

// StoreMonthlyRequest records a month's savings result
type StoreMonthlyRequest struct {
	Month       string      `json:"month" binding:"required"`
	SavedAmount json.Number `json:"savedAmount" binding:"required"`
	SavingGoal  json.Number `json:"savingGoal" binding:"required"`
}

// SavingsGoalResponse is a stored goal
type SavingsGoalResponse struct {
	ID          uint64 `json:"id"`
	Month       string `json:"month"`
	InitialGoal string `json:"initialGoal"`
	CurrentGoal string `json:"currentGoal"`
}

// NewSavingsGoalResponse converts a goal
func NewSavingsGoalResponse(g *entity.SavingsGoal) SavingsGoalResponse {
	return SavingsGoalResponse{
		ID:          g.ID,
		Month:       g.Month.String(),
		InitialGoal: entity.FormatAmount(g.InitialGoal),
		CurrentGoal: entity.FormatAmount(g.CurrentGoal),
	}
}

// GoalStatusResponse is the live progress of the current goal
type GoalStatusResponse struct {
	HasGoal        bool   `json:"hasGoal"`
	InitialGoal    string `json:"initialGoal"`
	CurrentGoal    string `json:"currentGoal"`
	CurrentSavings string `json:"currentSavings"`
	TotalIncome    string `json:"totalIncome"`
	TotalExpenses  string `json:"totalExpenses"`
	Progress       int64  `json:"progress"`
	Status         string `json:"status"`
}

// NewGoalStatusResponse converts a goal status
func NewGoalStatusResponse(s *usecase.GoalStatus) GoalStatusResponse {
	return GoalStatusResponse{
		HasGoal:        s.HasGoal,
		InitialGoal:    entity.FormatAmount(s.InitialGoal),
		CurrentGoal:    entity.FormatAmount(s.CurrentGoal),
		CurrentSavings: entity.FormatAmount(s.CurrentSavings),
		TotalIncome:    entity.FormatAmount(s.TotalIncome),
		TotalExpenses:  entity.FormatAmount(s.TotalExpenses),
		Progress:       s.Progress,
		Status:         string(s.Status),
	}
}

// MonthlySavingsResponse is one month's savings record
type MonthlySavingsResponse struct {
	ID          uint64 `json:"id"`
	Month       string `json:"month"`
	SavedAmount string `json:"savedAmount"`
	SavingGoal  string `json:"savingGoal"`
	Status      string `json:"status"`
}

// NewMonthlySavingsResponse converts a record
func NewMonthlySavingsResponse(m *entity.MonthlySavings) MonthlySavingsResponse {
	return MonthlySavingsResponse{
		ID:          m.ID,
		Month:       m.Month.String(),
		SavedAmount: entity.FormatAmount(m.SavedAmount),
		SavingGoal:  entity.FormatAmount(m.SavingGoal),
		Status:      string(m.Status),
	}
}

// NewMonthlySavingsList converts records, never returning nil
func NewMonthlySavingsList(rows []*entity.MonthlySavings) []MonthlySavingsResponse {
	out := make([]MonthlySavingsResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, NewMonthlySavingsResponse(r))
	}
	return out
}

// MonthEndResponse reports the stored current-month record
type MonthEndResponse struct {
	Success     bool   `json:"success"`
	Month       string `json:"month"`
	SavedAmount string `json:"savedAmount"`
	SavingGoal  string `json:"savingGoal"`
	Status      string `json:"status"`
}
