package transaction

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/notification"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// Service implements usecase.TransactionUseCase. Writes of a user are
// serialized by the TransactionManager.
type Service struct {
	uow          persistence.UnitOfWork
	manager      *TransactionManager
	savings      usecase.SavingsUseCase
	publisher    notification.EventPublisher
	cache        cacheport.Cache
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.TransactionUseCase = (*Service)(nil)

// NewTransactionService creates a new transaction service
func NewTransactionService(
	uow persistence.UnitOfWork,
	savings usecase.SavingsUseCase,
	publisher notification.EventPublisher,
	cache cacheport.Cache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *Service {
	return &Service{
		uow:          uow,
		manager:      NewTransactionManager(logger),
		savings:      savings,
		publisher:    publisher,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Create validates and records a transaction
func (s *Service) Create(ctx context.Context, userID uint64, in entity.TransactionInput) (*entity.Transaction, error) {
	tx, err := entity.NewTransaction(userID, in, s.timeProvider)
	if err != nil {
		return nil, err
	}

	created, err := s.manager.Enqueue(ctx, userID, func(ctx context.Context) (*entity.Transaction, error) {
		created, err := s.processCreate(ctx, tx)
		if err != nil {
			return nil, err
		}
		// Still on the owner's queue, so goal updates of one user never interleave.
		if created.IsExpense() {
			s.applyToSavingsGoal(ctx, userID, created.Amount)
		}
		return created, nil
	})
	if err != nil {
		return nil, err
	}
	s.afterWrite(ctx, entity.NewTransactionEvent(entity.EventTransactionAdded, userID, created, s.timeProvider.Now()))

	s.logger.Info("Transaction created", map[string]any{
		"user_id":        userID,
		"transaction_id": created.ID,
		"type":           created.Type,
		"amount":         entity.FormatAmount(created.Amount),
	})
	return created, nil
}

// Update replaces the fields of an existing transaction
func (s *Service) Update(ctx context.Context, userID, id uint64, in entity.TransactionInput) (*entity.Transaction, error) {
	updated, err := s.manager.Enqueue(ctx, userID, func(ctx context.Context) (*entity.Transaction, error) {
		var tx *entity.Transaction
		err := persistence.WithinTransaction(ctx, s.uow, func(txCtx context.Context) error {
			repo := s.uow.GetTransactionRepository(txCtx)

			existing, err := repo.GetByID(txCtx, userID, id)
			if err != nil {
				return err
			}
			if err := existing.Apply(in); err != nil {
				return err
			}
			existing.UpdatedAt = s.timeProvider.Now()
			if err := repo.Update(txCtx, existing); err != nil {
				return err
			}
			tx = existing
			return nil
		})
		return tx, err
	})
	if err != nil {
		return nil, err
	}

	s.afterWrite(ctx, entity.NewTransactionEvent(entity.EventTransactionUpdated, userID, updated, s.timeProvider.Now()))
	return updated, nil
}

// Delete removes a transaction
func (s *Service) Delete(ctx context.Context, userID, id uint64) error {
	_, err := s.manager.Enqueue(ctx, userID, func(ctx context.Context) (*entity.Transaction, error) {
		return nil, s.uow.GetTransactionRepository(ctx).Delete(ctx, userID, id)
	})
	if err != nil {
		return err
	}

	event := entity.NewTransactionEvent(entity.EventTransactionDeleted, userID, nil, s.timeProvider.Now())
	event.TransactionID = id
	s.afterWrite(ctx, event)
	return nil
}

// Recent returns the latest transactions of the current month
func (s *Service) Recent(ctx context.Context, userID uint64) ([]*entity.Transaction, error) {
	filter := currentMonthFilter(userID, s.timeProvider.Now(), recentLimit)
	return s.uow.GetTransactionRepository(ctx).List(ctx, filter)
}

// Filter searches the user's transactions
func (s *Service) Filter(ctx context.Context, userID uint64, req usecase.FilterRequest) ([]*entity.Transaction, error) {
	filter, err := buildFilter(userID, req)
	if err != nil {
		return nil, err
	}
	return s.uow.GetTransactionRepository(ctx).List(ctx, filter)
}

// ExpensesByCategory returns the current month's expenses per category
func (s *Service) ExpensesByCategory(ctx context.Context, userID uint64) ([]entity.CategoryTotal, error) {
	window := entity.MonthOf(s.timeProvider.Now()).Window()
	return s.uow.GetTransactionRepository(ctx).SumByCategory(ctx, userID, entity.TypeExpense, window)
}

// Summary returns income and expense per bucket of interval
func (s *Service) Summary(ctx context.Context, userID uint64, interval string) ([]usecase.SummaryRow, error) {
	repo := s.uow.GetTransactionRepository(ctx)
	iv := parseInterval(interval)

	if iv == usecase.IntervalAll {
		earliest, err := repo.EarliestDate(ctx, userID)
		if err != nil {
			return nil, err
		}
		row := usecase.SummaryRow{Label: allTimeLabel, Income: decimal.Zero, Expense: decimal.Zero}
		if earliest == nil {
			return []usecase.SummaryRow{row}, nil
		}
		totals, err := repo.SumByType(ctx, userID, entity.DateRange{From: *earliest, To: entity.MaxDate})
		if err != nil {
			return nil, err
		}
		row.Income, row.Expense = totals.Income, totals.Expense
		return []usecase.SummaryRow{row}, nil
	}

	plan := planBuckets(iv, s.timeProvider.Now())
	totals, err := repo.DailyTotals(ctx, userID, plan.window)
	if err != nil {
		return nil, err
	}
	return plan.fill(totals), nil
}

// MonthlySummary returns income and expense for each month of the current year
func (s *Service) MonthlySummary(ctx context.Context, userID uint64) ([]usecase.MonthlySummaryRow, error) {
	rows, err := s.Summary(ctx, userID, string(usecase.IntervalMonthly))
	if err != nil {
		return nil, err
	}
	return monthlyRows(rows), nil
}

// Shutdown waits for queued writes to finish
func (s *Service) Shutdown() {
	s.manager.Shutdown()
}

// applyToSavingsGoal lowers the current month's remaining savings goal.
// Failures are logged; the expense itself has already been recorded.
func (s *Service) applyToSavingsGoal(ctx context.Context, userID uint64, amount decimal.Decimal) {
	if err := s.savings.ApplyExpense(ctx, userID, amount); err != nil {
		s.logger.Warn("Failed to update savings goal after expense", map[string]any{
			"user_id": userID,
			"amount":  entity.FormatAmount(amount),
			"error":   err.Error(),
		})
	}
}

// afterWrite publishes the change and drops the user's cached reports.
// Neither failure is returned to the caller.
func (s *Service) afterWrite(ctx context.Context, event entity.TransactionEvent) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("Failed to publish transaction event", map[string]any{
			"user_id": event.UserID,
			"event":   string(event.Kind),
			"error":   err.Error(),
		})
	}
	if err := s.cache.DeleteByPrefix(ctx, cacheport.UserPrefix(event.UserID)); err != nil {
		s.logger.Warn("Failed to invalidate cached reports", map[string]any{
			"user_id": event.UserID,
			"error":   err.Error(),
		})
	}
}

// wrapStep annotates a persistence failure with the step that produced it
func wrapStep(step string, err error) error {
	return fmt.Errorf("%s: %w", step, err)
}
