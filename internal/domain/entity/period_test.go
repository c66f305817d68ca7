package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
)

func TestMonth(t *testing.T) {
	feb, err := ParseMonth("2024-02")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), feb.Start())
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), feb.End())
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), feb.LastDay())
	assert.Equal(t, 29, feb.Days())
	assert.Equal(t, "2024-02", feb.String())
	assert.Equal(t, Month{Year: 2023, Month: time.December}, feb.AddMonths(-2))
	assert.True(t, feb.AddMonths(-1).Before(feb))
	assert.False(t, feb.Before(feb))

	window := feb.Window()
	assert.True(t, window.Contains(time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC)))
	assert.False(t, window.Contains(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))

	_, err = ParseMonth("2024/02")
	assert.ErrorIs(t, err, errs.ErrInvalidDate)
}

func TestIsLastDay(t *testing.T) {
	assert.True(t, IsLastDay(time.Date(2025, 4, 30, 15, 0, 0, 0, time.UTC)))
	assert.True(t, IsLastDay(time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsLastDay(time.Date(2025, 4, 29, 23, 0, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-05")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2025-03-05T22:10:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("March 5")
	assert.ErrorIs(t, err, errs.ErrInvalidDate)
}
