package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
)

// MonthClosure marks a month as rolled over for a user. Its existence makes
// closing the same month again a no-op.
type MonthClosure struct {
	ID            uint64
	UserID        uint64
	Month         Month
	BudgetsClosed int
	BudgetTotal   decimal.Decimal
	SavedAmount   decimal.Decimal
	ClosedAt      time.Time
}

// RolloverResult describes the outcome of closing one month for one user
type RolloverResult struct {
	UserID        uint64
	Month         Month
	AlreadyClosed bool
	BudgetsClosed int
	BudgetsReset  bool
	BudgetTotal   decimal.Decimal
	SavedAmount   decimal.Decimal
	SavingsStatus SavingsStatus
	ClosedAt      time.Time
}

// ResultFromClosure rebuilds the result of an earlier close
func ResultFromClosure(c *MonthClosure) *RolloverResult {
	return &RolloverResult{
		UserID:        c.UserID,
		Month:         c.Month,
		AlreadyClosed: true,
		BudgetsClosed: c.BudgetsClosed,
		BudgetTotal:   c.BudgetTotal,
		SavedAmount:   c.SavedAmount,
		ClosedAt:      c.ClosedAt,
	}
}

// RolloverSummary aggregates a run over all users
type RolloverSummary struct {
	Month   Month
	Closed  int
	Skipped int
	Failed  int
}

// CanClose reports whether month may be closed at now: on or after its last day.
func CanClose(month Month, now time.Time) error {
	today := DateOnly(now)
	current := MonthOf(today)
	if current.Before(month) {
		return errs.NewValidationError("month", "is in the future", errs.ErrMonthNotEnded)
	}
	if month == current && today.Before(month.LastDay()) {
		return errs.ErrMonthNotEnded
	}
	return nil
}

// CheckLatestEnded accepts only the latest ended month at now: the current
// month on its last day or the month before it. Older months have already
// handed their budgets over to a later month.
func CheckLatestEnded(month Month, now time.Time) error {
	current := MonthOf(DateOnly(now))
	if month == current || month == current.AddMonths(-1) {
		return nil
	}
	return errs.NewValidationError("month", "only the latest ended month can be closed", errs.ErrMonthNotLatest)
}

// ResetsBudgets reports whether closing month at now zeroes the live budgets.
// Only a close on the month's own last day does; once the calendar has moved
// on, the live budgets may already be planned for the new month.
func ResetsBudgets(month Month, now time.Time) bool {
	return month == MonthOf(DateOnly(now))
}
