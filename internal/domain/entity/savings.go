package entity

import (
	"time"

	"github.com/shopspring/decimal"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
)

// SavingsStatus labels a monthly savings record or the live goal progress
type SavingsStatus string

const (
	SavingsAchieved    SavingsStatus = "achieved"
	SavingsInProgress  SavingsStatus = "in_progress"
	SavingsNotAchieved SavingsStatus = "not_achieved"
	SavingsPending     SavingsStatus = "pending"
	SavingsMissed      SavingsStatus = "missed"
	SavingsPartial     SavingsStatus = "partial"
	SavingsBelowGoal   SavingsStatus = "below_goal"
	SavingsNoGoal      SavingsStatus = "no_goal"
)

// SavingsGoal is the savings target of one month. CurrentGoal shrinks as expenses post.
type SavingsGoal struct {
	ID          uint64
	UserID      uint64
	Month       Month
	InitialGoal decimal.Decimal
	CurrentGoal decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSavingsGoal sets both goals to initial
func NewSavingsGoal(userID uint64, month Month, initial decimal.Decimal) (*SavingsGoal, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	if err := ValidateAmount(initial); err != nil {
		return nil, err
	}
	return &SavingsGoal{UserID: userID, Month: month, InitialGoal: initial, CurrentGoal: initial}, nil
}

// ApplyExpense decrements CurrentGoal by amount, floored at zero
func (g *SavingsGoal) ApplyExpense(amount decimal.Decimal) {
	g.CurrentGoal = decimal.Max(decimal.Zero, g.CurrentGoal.Sub(amount))
}

// GoalProgress maps a balance against a goal to a percentage in [0,100] and a status.
// The percentage never decreases as balance grows.
func GoalProgress(balance, goal decimal.Decimal) (int64, SavingsStatus) {
	if !goal.IsPositive() {
		return 0, SavingsBelowGoal
	}
	switch {
	case balance.GreaterThanOrEqual(goal):
		return 100, SavingsAchieved
	case balance.IsPositive():
		return Percentage(balance, goal), SavingsInProgress
	default:
		return 0, SavingsBelowGoal
	}
}

// MonthlySavings is the recorded result of a month
type MonthlySavings struct {
	ID          uint64
	UserID      uint64
	Month       Month
	SavedAmount decimal.Decimal
	SavingGoal  decimal.Decimal
	Status      SavingsStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MonthlySavingsStatus classifies a month's result at now:
// achieved when the goal is met, in_progress before the month's last day,
// not_achieved afterwards when short of the goal, otherwise pending.
func MonthlySavingsStatus(saved, goal decimal.Decimal, month Month, now time.Time) SavingsStatus {
	today := DateOnly(now)
	switch {
	case goal.IsPositive() && saved.GreaterThanOrEqual(goal):
		return SavingsAchieved
	case today.Before(month.LastDay()):
		return SavingsInProgress
	case saved.LessThan(goal):
		return SavingsNotAchieved
	default:
		return SavingsPending
	}
}

// NewMonthlySavings builds a record with its status evaluated at now
func NewMonthlySavings(userID uint64, month Month, saved, goal decimal.Decimal, now time.Time) *MonthlySavings {
	return &MonthlySavings{
		UserID:      userID,
		Month:       month,
		SavedAmount: saved,
		SavingGoal:  goal,
		Status:      MonthlySavingsStatus(saved, goal, month, now),
	}
}
