package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	timeProvider "github.com/fintrack/fintrack-api/internal/infrastructure/adapter/time"
)

func TestTargetMonth(t *testing.T) {
	tp := timeProvider.NewFixedTimeProvider(time.Date(2025, 1, 3, 8, 0, 0, 0, time.UTC))

	month, err := targetMonth("", tp)
	require.NoError(t, err)
	assert.Equal(t, entity.Month{Year: 2024, Month: time.December}, month)

	month, err = targetMonth("2024-07", tp)
	require.NoError(t, err)
	assert.Equal(t, entity.Month{Year: 2024, Month: time.July}, month)

	_, err = targetMonth("July", tp)
	assert.ErrorIs(t, err, errs.ErrInvalidDate)

	lastDay := timeProvider.NewFixedTimeProvider(time.Date(2025, 1, 31, 22, 0, 0, 0, time.UTC))
	month, err = targetMonth("", lastDay)
	require.NoError(t, err)
	assert.Equal(t, entity.Month{Year: 2025, Month: time.January}, month)
}
