package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// AnalyticsUseCase builds read-only reports and caches them per user
type AnalyticsUseCase struct {
	uow          persistence.UnitOfWork
	cache        cacheport.Cache
	cacheTTL     time.Duration
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

var _ usecase.AnalyticsUseCase = (*AnalyticsUseCase)(nil)

// NewAnalyticsUseCase creates a new AnalyticsUseCase
func NewAnalyticsUseCase(
	uow persistence.UnitOfWork,
	cache cacheport.Cache,
	cacheTTL time.Duration,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		uow:          uow,
		cache:        cache,
		cacheTTL:     cacheTTL,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// readThrough serves key from the cache or builds and stores it.
// Cache failures are logged and fall back to building the report.
func readThrough[T any](ctx context.Context, a *AnalyticsUseCase, key string, build func(context.Context) (*T, error)) (*T, error) {
	var cached T
	hit, err := a.cache.Get(ctx, key, &cached)
	if err != nil {
		a.logger.Warn("Analytics cache read failed", map[string]any{"key": key, "error": err.Error()})
	} else if hit {
		return &cached, nil
	}

	report, err := build(ctx)
	if err != nil {
		return nil, err
	}

	if err := a.cache.Set(ctx, key, report, a.cacheTTL); err != nil {
		a.logger.Warn("Analytics cache write failed", map[string]any{"key": key, "error": err.Error()})
	}
	return report, nil
}

// throughToday is the window from the given day up to and including today
func throughToday(from, now time.Time) entity.DateRange {
	return entity.DateRange{From: from, To: entity.DateOnly(now).AddDate(0, 0, 1)}
}

// expenses lists the user's expenses inside window
func (a *AnalyticsUseCase) expenses(ctx context.Context, userID uint64, window entity.DateRange) ([]*entity.Transaction, error) {
	return a.uow.GetTransactionRepository(ctx).List(ctx, entity.TransactionFilter{
		UserID: userID,
		Type:   entity.TypeExpense,
		From:   &window.From,
		To:     &window.To,
	})
}

func toFloat(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
