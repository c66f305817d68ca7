package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

const (
	defaultSeasonalYears = 2
	maxSeasonalYears     = 10
)

// Seasonal averages expenses per calendar month over the last years
func (a *AnalyticsUseCase) Seasonal(ctx context.Context, userID uint64, years int) (*usecase.SeasonalReport, error) {
	if years == 0 {
		years = defaultSeasonalYears
	}
	if years < 1 || years > maxSeasonalYears {
		return nil, errs.NewValidationError("years", "must be between 1 and 10", errs.ErrInvalidPeriod)
	}

	now := a.timeProvider.Now()
	start := time.Date(now.Year()-years, time.January, 1, 0, 0, 0, 0, time.UTC)

	key := cacheport.UserKey(userID, "seasonal", years)
	return readThrough(ctx, a, key, func(ctx context.Context) (*usecase.SeasonalReport, error) {
		txs, err := a.expenses(ctx, userID, throughToday(start, now))
		if err != nil {
			return nil, err
		}
		report := buildSeasonal(txs)
		report.Period = fmt.Sprintf("%d years", years)
		return report, nil
	})
}

func buildSeasonal(txs []*entity.Transaction) *usecase.SeasonalReport {
	// month -> year -> total
	totals := make(map[time.Month]map[int]decimal.Decimal)
	for _, tx := range txs {
		byYear, ok := totals[tx.Date.Month()]
		if !ok {
			byYear = make(map[int]decimal.Decimal)
			totals[tx.Date.Month()] = byYear
		}
		byYear[tx.Date.Year()] = byYear[tx.Date.Year()].Add(tx.Amount)
	}

	type ranked struct {
		name    string
		average float64
	}
	averages := make(map[string]usecase.MonthlyAverage)
	ranking := make([]ranked, 0, 12)

	for m := time.January; m <= time.December; m++ {
		byYear, ok := totals[m]
		if !ok {
			continue
		}
		years := make([]int, 0, len(byYear))
		sum := decimal.Zero
		for y, total := range byYear {
			years = append(years, y)
			sum = sum.Add(total)
		}
		sort.Ints(years)

		trend := trendStable
		if len(years) > 1 {
			trend = trendDecreasing
			if byYear[years[len(years)-1]].GreaterThan(byYear[years[0]]) {
				trend = trendIncreasing
			}
		}

		avg := toFloat(sum.Div(decimal.NewFromInt(int64(len(years)))).Round(2))
		averages[m.String()] = usecase.MonthlyAverage{Average: avg, Years: len(years), Trend: trend}
		ranking = append(ranking, ranked{name: m.String(), average: avg})
	}

	patterns := usecase.SeasonalPatterns{}
	if len(ranking) > 0 {
		overall := 0.0
		for _, r := range ranking {
			overall += r.average
		}
		patterns.AverageMonthlySpending = entity.RoundTo(overall/float64(len(ranking)), 2)

		sort.SliceStable(ranking, func(i, j int) bool { return ranking[i].average > ranking[j].average })
		highest, lowest := ranking[0].name, ranking[len(ranking)-1].name
		patterns.HighestSpendingMonth = &highest
		patterns.LowestSpendingMonth = &lowest
	}

	return &usecase.SeasonalReport{
		MonthlyAverages:  averages,
		SeasonalPatterns: patterns,
	}
}
