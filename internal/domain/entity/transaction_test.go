package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coremocks "github.com/fintrack/fintrack-api/mocks/port/core"
)

func TestNewTransaction(t *testing.T) {
	fixedTime := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid expense", func(t *testing.T) {
		tx, err := NewTransaction(1, TransactionInput{
			Date:        "2025-03-10",
			Description: " Groceries ",
			Amount:      decimal.RequireFromString("300.50"),
			Type:        "expense",
			Category:    "Groceries",
			Account:     "Bank",
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, uint64(1), tx.UserID)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), tx.Date)
		assert.Equal(t, "Groceries", tx.Description)
		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("300.5")))
		assert.True(t, tx.IsExpense())
		assert.Equal(t, fixedTime, tx.CreatedAt)
	})

	t.Run("Defaults for category and account", func(t *testing.T) {
		tx, err := NewTransaction(1, TransactionInput{
			Date:   "2025-03-10T18:00:00Z",
			Amount: decimal.NewFromInt(10),
			Type:   "INCOME",
		}, mockTime)

		require.NoError(t, err)
		assert.Equal(t, TypeIncome, tx.Type)
		assert.Equal(t, NoCategory, tx.Category)
		assert.Equal(t, DefaultAccount, tx.Account)
		assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), tx.Date)
	})

	t.Run("Validation failures", func(t *testing.T) {
		valid := TransactionInput{Date: "2025-03-10", Amount: decimal.NewFromInt(1), Type: "income"}

		testCases := []struct {
			description string
			userID      uint64
			mutate      func(in *TransactionInput)
			expected    error
		}{
			{"Zero user", 0, func(in *TransactionInput) {}, errs.ErrInvalidUserID},
			{"Bad date", 1, func(in *TransactionInput) { in.Date = "10/03/2025" }, errs.ErrInvalidDate},
			{"Bad type", 1, func(in *TransactionInput) { in.Type = "transfer" }, errs.ErrInvalidTransactionType},
			{"Zero amount", 1, func(in *TransactionInput) { in.Amount = decimal.Zero }, errs.ErrInvalidAmount},
			{"Negative amount", 1, func(in *TransactionInput) { in.Amount = decimal.NewFromInt(-5) }, errs.ErrInvalidAmount},
			{"Three decimals", 1, func(in *TransactionInput) { in.Amount = decimal.RequireFromString("1.005") }, errs.ErrInvalidAmount},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				in := valid
				tc.mutate(&in)
				tx, err := NewTransaction(tc.userID, in, mockTime)
				assert.ErrorIs(t, err, tc.expected)
				assert.Nil(t, tx)
			})
		}
	})
}

func TestTypeTotals(t *testing.T) {
	totals := TypeTotals{Income: decimal.NewFromInt(1000), Expense: decimal.NewFromInt(700)}

	assert.True(t, totals.Balance().Equal(decimal.NewFromInt(300)))
	assert.True(t, totals.CanAfford(decimal.NewFromInt(300)))
	assert.False(t, totals.CanAfford(decimal.RequireFromString("300.01")))
	assert.False(t, TypeTotals{Income: decimal.Zero, Expense: decimal.Zero}.CanAfford(decimal.NewFromInt(1)))
}

func TestNewTransactionEvent(t *testing.T) {
	at := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	tx := &Transaction{ID: 42, UserID: 3}

	ev := NewTransactionEvent(EventTransactionAdded, 3, tx, at)
	assert.Equal(t, uint64(42), ev.TransactionID)
	assert.Equal(t, tx, ev.Transaction)
	assert.NotEqual(t, ev.ID, NewTransactionEvent(EventTransactionAdded, 3, tx, at).ID)

	deleted := NewTransactionEvent(EventTransactionDeleted, 3, nil, at)
	assert.Nil(t, deleted.Transaction)
	assert.Zero(t, deleted.TransactionID)
}

func TestNewCategory(t *testing.T) {
	c, err := NewCategory(1, " Rent ", "")
	require.NoError(t, err)
	assert.Equal(t, "Rent", c.Name)
	assert.Equal(t, DefaultAccount, c.Account)
	assert.False(t, c.IsSentinel())

	_, err = NewCategory(1, " ", "Bank")
	assert.ErrorIs(t, err, errs.ErrValidation)

	sentinel, err := NewCategory(1, NoCategory, "")
	require.NoError(t, err)
	assert.True(t, sentinel.IsSentinel())
}
