package transaction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

func TestBuildFilter(t *testing.T) {
	tests := []struct {
		name          string
		req           usecase.FilterRequest
		expectedError error
		check         func(t *testing.T, f entity.TransactionFilter)
	}{
		{
			name: "Wildcards do not filter",
			req:  usecase.FilterRequest{Type: "all", Category: "all", Account: "ALL"},
			check: func(t *testing.T, f entity.TransactionFilter) {
				assert.Empty(t, f.Type)
				assert.Empty(t, f.Category)
				assert.Empty(t, f.Account)
				assert.Nil(t, f.From)
				assert.Nil(t, f.To)
			},
		},
		{
			name: "Inclusive date range",
			req:  usecase.FilterRequest{Type: "expense", Category: "Groceries", StartDate: "2025-03-01", EndDate: "2025-03-31"},
			check: func(t *testing.T, f entity.TransactionFilter) {
				assert.Equal(t, entity.TypeExpense, f.Type)
				assert.Equal(t, "Groceries", f.Category)
				assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), *f.From)
				assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), *f.To)
			},
		},
		{
			name: "Same start and end day",
			req:  usecase.FilterRequest{StartDate: "2025-03-05", EndDate: "2025-03-05"},
			check: func(t *testing.T, f entity.TransactionFilter) {
				assert.Equal(t, 24*time.Hour, f.To.Sub(*f.From))
			},
		},
		{
			name:          "Unknown type",
			req:           usecase.FilterRequest{Type: "transfer"},
			expectedError: errs.ErrInvalidTransactionType,
		},
		{
			name:          "Malformed date",
			req:           usecase.FilterRequest{StartDate: "03/01/2025"},
			expectedError: errs.ErrInvalidDate,
		},
		{
			name:          "Start after end",
			req:           usecase.FilterRequest{StartDate: "2025-04-01", EndDate: "2025-03-01"},
			expectedError: errs.ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := buildFilter(42, tt.req)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint64(42), f.UserID)
			tt.check(t, f)
		})
	}

	t.Run("Invalid user", func(t *testing.T) {
		_, err := buildFilter(0, usecase.FilterRequest{})
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
	})
}
