package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
)

func TestCheckLatestEnded(t *testing.T) {
	april15 := time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		month Month
		ok    bool
	}{
		{Month{Year: 2025, Month: time.April}, true},
		{Month{Year: 2025, Month: time.March}, true},
		{Month{Year: 2025, Month: time.February}, false},
		{Month{Year: 2020, Month: time.January}, false},
	}

	for _, tc := range testCases {
		err := CheckLatestEnded(tc.month, april15)
		if tc.ok {
			assert.NoError(t, err, tc.month.String())
			continue
		}
		assert.ErrorIs(t, err, errs.ErrMonthNotLatest, tc.month.String())
	}

	t.Run("Across a year boundary", func(t *testing.T) {
		jan := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
		assert.NoError(t, CheckLatestEnded(Month{Year: 2024, Month: time.December}, jan))
		assert.Error(t, CheckLatestEnded(Month{Year: 2024, Month: time.November}, jan))
	})
}

func TestResetsBudgets(t *testing.T) {
	march := Month{Year: 2025, Month: time.March}

	assert.True(t, ResetsBudgets(march, time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)))
	assert.False(t, ResetsBudgets(march, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, ResetsBudgets(march, time.Date(2025, 4, 15, 10, 0, 0, 0, time.UTC)))
}
