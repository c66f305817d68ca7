package analytics

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

const (
	trendIncreasing = "increasing"
	trendDecreasing = "decreasing"
	trendStable     = "stable"

	defaultTrendPeriod = "6months"
)

// trendStart returns the first day covered by period. Unknown periods fall back to six months.
func trendStart(period string, now time.Time) (time.Time, string) {
	current := entity.MonthOf(now)
	switch period {
	case "3months":
		return current.AddMonths(-3).Start(), period
	case "12months":
		return current.AddMonths(-12).Start(), period
	case "6months":
		return current.AddMonths(-6).Start(), period
	default:
		return current.AddMonths(-6).Start(), defaultTrendPeriod
	}
}

// Trends groups expenses by month and reports the month over month change
func (a *AnalyticsUseCase) Trends(ctx context.Context, userID uint64, period string) (*usecase.TrendReport, error) {
	now := a.timeProvider.Now()
	start, period := trendStart(period, now)

	key := cacheport.UserKey(userID, "trends", period)
	return readThrough(ctx, a, key, func(ctx context.Context) (*usecase.TrendReport, error) {
		txs, err := a.expenses(ctx, userID, throughToday(start, now))
		if err != nil {
			return nil, err
		}
		points := buildTrends(txs)
		return &usecase.TrendReport{
			Trends:       points,
			OverallTrend: overallTrend(points),
			Period:       period,
		}, nil
	})
}

type monthAccumulator struct {
	total      decimal.Decimal
	count      int
	categories map[string]decimal.Decimal
}

// buildTrends returns one point per month that has expenses, oldest first
func buildTrends(txs []*entity.Transaction) []usecase.TrendPoint {
	byMonth := make(map[string]*monthAccumulator)
	for _, tx := range txs {
		key := entity.MonthOf(tx.Date).String()
		acc, ok := byMonth[key]
		if !ok {
			acc = &monthAccumulator{categories: make(map[string]decimal.Decimal)}
			byMonth[key] = acc
		}
		acc.total = acc.total.Add(tx.Amount)
		acc.count++
		acc.categories[tx.Category] = acc.categories[tx.Category].Add(tx.Amount)
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	points := make([]usecase.TrendPoint, 0, len(months))
	var prev decimal.Decimal
	for i, m := range months {
		acc := byMonth[m]
		categories := make(map[string]float64, len(acc.categories))
		for name, total := range acc.categories {
			categories[name] = toFloat(total)
		}

		change := 0.0
		if i > 0 {
			change = percentChange(prev, acc.total)
		}
		points = append(points, usecase.TrendPoint{
			Month:      m,
			Total:      toFloat(acc.total),
			Count:      acc.count,
			Categories: categories,
			Change:     change,
			Trend:      trendLabel(change),
		})
		prev = acc.total
	}
	return points
}

// overallTrend compares the last month with the first
func overallTrend(points []usecase.TrendPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	first := decimal.NewFromFloat(points[0].Total)
	last := decimal.NewFromFloat(points[len(points)-1].Total)
	return percentChange(first, last)
}

// percentChange is (to-from)/from*100 to two places, zero when from is zero
func percentChange(from, to decimal.Decimal) float64 {
	if from.IsZero() {
		return 0
	}
	return toFloat(to.Sub(from).Div(from).Mul(decimal.NewFromInt(100)).Round(2))
}

func trendLabel(change float64) string {
	switch {
	case change > 5:
		return trendIncreasing
	case change < -5:
		return trendDecreasing
	default:
		return trendStable
	}
}
