package repository

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm/clause"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/model"
)

func TestTransactionMapping(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	m := &model.Transaction{
		ID:          9,
		UserID:      2,
		Date:        time.Date(2025, 3, 5, 0, 0, 0, 0, berlin),
		Description: "Weekly shop",
		Amount:      decimal.RequireFromString("54.20"),
		Type:        "expense",
		Category:    "Groceries",
		Account:     entity.DefaultAccount,
	}

	tx := transactionToEntity(m)

	// 2025-03-05 00:00 CET is 2025-03-04 23:00 UTC
	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, time.UTC), tx.Date)
	assert.Equal(t, entity.TypeExpense, tx.Type)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("54.2")))

	back := transactionToModel(tx)
	assert.Equal(t, "expense", back.Type)
	assert.Equal(t, uint64(9), back.ID)
}

func TestMonthFromDate(t *testing.T) {
	assert.Equal(t, entity.Month{Year: 2025, Month: time.March},
		monthFromDate(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)))
}

func TestUpsertOn(t *testing.T) {
	c := upsertOn([]string{"user_id", "month"}, "saved_amount", "status")

	assert.Equal(t, []clause.Column{{Name: "user_id"}, {Name: "month"}}, c.Columns)
	assert.Len(t, c.DoUpdates, 2)
	assert.Equal(t, "saved_amount", c.DoUpdates[0].Column.Name)
	assert.False(t, c.DoNothing)
}

func TestBudgetRowToEntity(t *testing.T) {
	b := budgetRow{ID: 1, UserID: 2, CategoryID: 3, CategoryName: "Rent", Amount: decimal.NewFromInt(900)}.toEntity()
	assert.Equal(t, "Rent", b.CategoryName)
	assert.Equal(t, uint64(3), b.CategoryID)
}
