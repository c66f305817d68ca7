package savings

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// SavingsUseCase manages monthly savings goals and records
type SavingsUseCase struct {
	uow          persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.SavingsUseCase = (*SavingsUseCase)(nil)

// NewSavingsUseCase creates a new SavingsUseCase
func NewSavingsUseCase(uow persistence.UnitOfWork, timeProvider coreport.TimeProvider, logger coreport.Logger) *SavingsUseCase {
	return &SavingsUseCase{uow: uow, timeProvider: timeProvider, logger: logger}
}

// SetGoal sets the current month's goal and resets its remaining amount
func (s *SavingsUseCase) SetGoal(ctx context.Context, userID uint64, initialGoal decimal.Decimal) (*entity.SavingsGoal, error) {
	goal, err := entity.NewSavingsGoal(userID, entity.MonthOf(s.timeProvider.Now()), initialGoal)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now
	if err := s.uow.GetSavingsRepository(ctx).UpsertGoal(ctx, goal); err != nil {
		return nil, err
	}

	s.logger.Info("Savings goal set", map[string]any{
		"user_id": userID,
		"month":   goal.Month.String(),
		"goal":    entity.FormatAmount(initialGoal),
	})
	return goal, nil
}

// monthSnapshot is the income, expenses and goal of one month
type monthSnapshot struct {
	totals entity.TypeTotals
	goal   *entity.SavingsGoal
}

// snapshot fetches the month's totals and goal in parallel. A missing goal is
// reported as nil; any other failure fails the whole snapshot.
func (s *SavingsUseCase) snapshot(ctx context.Context, userID uint64, month entity.Month) (*monthSnapshot, error) {
	var snap monthSnapshot
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		totals, err := s.uow.GetTransactionRepository(gctx).SumByType(gctx, userID, month.Window())
		if err != nil {
			return err
		}
		snap.totals = totals
		return nil
	})

	g.Go(func() error {
		goal, err := s.uow.GetSavingsRepository(gctx).GetGoal(gctx, userID, month)
		if errors.Is(err, errs.ErrSavingsGoalNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		snap.goal = goal
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}

// GoalStatus compares the current month's balance with its goal
func (s *SavingsUseCase) GoalStatus(ctx context.Context, userID uint64) (*usecase.GoalStatus, error) {
	snap, err := s.snapshot(ctx, userID, entity.MonthOf(s.timeProvider.Now()))
	if err != nil {
		return nil, err
	}

	status := &usecase.GoalStatus{
		InitialGoal:    decimal.Zero,
		CurrentGoal:    decimal.Zero,
		CurrentSavings: snap.totals.Balance(),
		TotalIncome:    snap.totals.Income,
		TotalExpenses:  snap.totals.Expense,
		Status:         entity.SavingsNoGoal,
	}
	if snap.goal == nil {
		return status, nil
	}

	status.HasGoal = true
	status.InitialGoal = snap.goal.InitialGoal
	status.CurrentGoal = snap.goal.CurrentGoal
	status.Progress, status.Status = entity.GoalProgress(status.CurrentSavings, snap.goal.InitialGoal)
	return status, nil
}

// ApplyExpense lowers the current month's remaining goal. No goal is not an error.
func (s *SavingsUseCase) ApplyExpense(ctx context.Context, userID uint64, amount decimal.Decimal) error {
	repo := s.uow.GetSavingsRepository(ctx)
	goal, err := repo.GetGoal(ctx, userID, entity.MonthOf(s.timeProvider.Now()))
	if errors.Is(err, errs.ErrSavingsGoalNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return repo.DecrementCurrentGoal(ctx, goal.ID, amount)
}

// StoreMonthly upserts a month record with a derived status
func (s *SavingsUseCase) StoreMonthly(ctx context.Context, userID uint64, req usecase.StoreMonthlyRequest) (*entity.MonthlySavings, error) {
	month, err := entity.ParseMonth(req.Month)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidateAmount(req.SavingGoal); err != nil {
		return nil, err
	}
	return s.store(ctx, userID, month, req.SavedAmount, req.SavingGoal)
}

// StoreCurrentMonth computes and upserts the current month's record
func (s *SavingsUseCase) StoreCurrentMonth(ctx context.Context, userID uint64) (*entity.MonthlySavings, error) {
	month := entity.MonthOf(s.timeProvider.Now())
	snap, err := s.snapshot(ctx, userID, month)
	if err != nil {
		return nil, err
	}

	goal := decimal.Zero
	if snap.goal != nil {
		goal = snap.goal.InitialGoal
	}
	return s.store(ctx, userID, month, snap.totals.Balance(), goal)
}

func (s *SavingsUseCase) store(ctx context.Context, userID uint64, month entity.Month, saved, goal decimal.Decimal) (*entity.MonthlySavings, error) {
	now := s.timeProvider.Now()
	record := entity.NewMonthlySavings(userID, month, saved, goal, now)
	record.CreatedAt = now
	record.UpdatedAt = now
	if err := s.uow.GetSavingsRepository(ctx).UpsertMonthly(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// ListMonthly returns the records of a year; zero means the current year
func (s *SavingsUseCase) ListMonthly(ctx context.Context, userID uint64, year int) ([]*entity.MonthlySavings, error) {
	if year == 0 {
		year = s.timeProvider.Now().Year()
	}
	if year < 1 || year > 9999 {
		return nil, errs.NewValidationError("year", "is out of range", nil)
	}
	from := entity.Month{Year: year, Month: time.January}
	to := entity.Month{Year: year, Month: time.December}
	return s.uow.GetSavingsRepository(ctx).ListMonthly(ctx, userID, from, to)
}
