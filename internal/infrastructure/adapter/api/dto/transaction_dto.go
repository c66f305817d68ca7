package dto

import (
	"encoding/json"
	"time"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// TransactionRequest represents the body of a create or update.
// Amount accepts a JSON number or a numeric string.
type TransactionRequest struct {
	Date        string      `json:"date" binding:"required"`
	Description string      `json:"description"`
	Amount      json.Number `json:"amount" binding:"required"`
	Type        string      `json:"type" binding:"required"`
	Category    string      `json:"category"`
	Account     string      `json:"account"`
}

// ToInput validates the amount and maps the request to the domain input
func (r TransactionRequest) ToInput() (entity.TransactionInput, error) {
	amount, err := entity.ParseAmount(r.Amount.String())
	if err != nil {
		return entity.TransactionInput{}, err
	}
	return entity.TransactionInput{
		Date:        r.Date,
		Description: r.Description,
		Amount:      amount,
		Type:        r.Type,
		Category:    r.Category,
		Account:     r.Account,
	}, nil
}

// TransactionResponse represents one ledger entry
type TransactionResponse struct {
	ID          uint64    `json:"id"`
	UserID      uint64    `json:"userId"`
	Date        string    `json:"date"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Account     string    `json:"account"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTransactionResponse converts an entity to its response
func NewTransactionResponse(t *entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		UserID:      t.UserID,
		Date:        t.Date.Format(time.DateOnly),
		Description: t.Description,
		Amount:      entity.FormatAmount(t.Amount),
		Type:        string(t.Type),
		Category:    t.Category,
		Account:     t.Account,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTransactionList converts entities, never returning nil
func NewTransactionList(ts []*entity.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, NewTransactionResponse(t))
	}
	return out
}

// CategoryTotalResponse is the spend of one category
type CategoryTotalResponse struct {
	Category string `json:"category"`
	Total    string `json:"total"`
}

// NewCategoryTotals converts aggregate rows
func NewCategoryTotals(rows []entity.CategoryTotal) []CategoryTotalResponse {
	out := make([]CategoryTotalResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, CategoryTotalResponse{Category: r.Category, Total: entity.FormatAmount(r.Total)})
	}
	return out
}

// SummaryRowResponse is one bucket of an income/expense summary
type SummaryRowResponse struct {
	Label   string `json:"label"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// NewSummaryRows converts summary buckets
func NewSummaryRows(rows []usecase.SummaryRow) []SummaryRowResponse {
	out := make([]SummaryRowResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, SummaryRowResponse{
			Label:   r.Label,
			Income:  entity.FormatAmount(r.Income),
			Expense: entity.FormatAmount(r.Expense),
		})
	}
	return out
}

// MonthlySummaryResponse is one calendar month of the current year
type MonthlySummaryResponse struct {
	Month   int    `json:"month"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

// NewMonthlySummary converts monthly rows
func NewMonthlySummary(rows []usecase.MonthlySummaryRow) []MonthlySummaryResponse {
	out := make([]MonthlySummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, MonthlySummaryResponse{
			Month:   r.Month,
			Income:  entity.FormatAmount(r.Income),
			Expense: entity.FormatAmount(r.Expense),
		})
	}
	return out
}
