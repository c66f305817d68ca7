package transaction

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// allTimeLabel is the single bucket of the "all" interval
const allTimeLabel = "All Time"

// bucketPlan lists the zero-filled buckets of an interval and the window they cover
type bucketPlan struct {
	labels []string
	window entity.DateRange
	key    func(day time.Time) string
}

// isoWeekLabel renders the ISO year and week of day as YYYY-WW
func isoWeekLabel(day time.Time) string {
	year, week := day.ISOWeek()
	return fmt.Sprintf("%04d-%02d", year, week)
}

// startOfISOWeek returns the Monday of day's ISO week
func startOfISOWeek(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// planBuckets maps an interval onto its buckets at now. Unknown intervals
// yield a single bucket for the current month. "all" has no plan.
func planBuckets(interval usecase.SummaryInterval, now time.Time) bucketPlan {
	today := entity.DateOnly(now)

	switch interval {
	case usecase.IntervalDaily:
		first := today.AddDate(0, 0, -6)
		plan := bucketPlan{
			window: entity.DateRange{From: first, To: today.AddDate(0, 0, 1)},
			key:    func(d time.Time) string { return d.Format(entity.DateLayout) },
		}
		for d := first; !d.After(today); d = d.AddDate(0, 0, 1) {
			plan.labels = append(plan.labels, plan.key(d))
		}
		return plan

	case usecase.IntervalWeekly:
		thisWeek := startOfISOWeek(today)
		first := thisWeek.AddDate(0, 0, -21)
		plan := bucketPlan{
			window: entity.DateRange{From: first, To: thisWeek.AddDate(0, 0, 7)},
			key:    isoWeekLabel,
		}
		for d := first; !d.After(thisWeek); d = d.AddDate(0, 0, 7) {
			plan.labels = append(plan.labels, isoWeekLabel(d))
		}
		return plan

	case usecase.IntervalMonthly:
		first := entity.Month{Year: today.Year(), Month: time.January}
		plan := bucketPlan{
			window: entity.DateRange{From: first.Start(), To: first.AddMonths(12).Start()},
			key:    func(d time.Time) string { return entity.MonthOf(d).String() },
		}
		for i := 0; i < 12; i++ {
			plan.labels = append(plan.labels, first.AddMonths(i).String())
		}
		return plan

	case usecase.IntervalYearly:
		first := today.Year() - 3
		plan := bucketPlan{
			window: entity.DateRange{
				From: time.Date(first, time.January, 1, 0, 0, 0, 0, time.UTC),
				To:   time.Date(today.Year()+1, time.January, 1, 0, 0, 0, 0, time.UTC),
			},
			key: func(d time.Time) string { return fmt.Sprintf("%04d", d.Year()) },
		}
		for y := first; y <= today.Year(); y++ {
			plan.labels = append(plan.labels, fmt.Sprintf("%04d", y))
		}
		return plan

	default:
		month := entity.MonthOf(today)
		return bucketPlan{
			labels: []string{month.String()},
			window: month.Window(),
			key:    func(d time.Time) string { return entity.MonthOf(d).String() },
		}
	}
}

// fill sums daily totals into the plan's buckets, keeping empty buckets at zero
func (p bucketPlan) fill(totals []entity.DailyTotal) []usecase.SummaryRow {
	rows := make([]usecase.SummaryRow, len(p.labels))
	index := make(map[string]int, len(p.labels))
	for i, label := range p.labels {
		rows[i] = usecase.SummaryRow{Label: label, Income: decimal.Zero, Expense: decimal.Zero}
		index[label] = i
	}

	for _, t := range totals {
		i, ok := index[p.key(t.Date)]
		if !ok {
			continue
		}
		if t.Type == entity.TypeIncome {
			rows[i].Income = rows[i].Income.Add(t.Total)
		} else {
			rows[i].Expense = rows[i].Expense.Add(t.Total)
		}
	}
	return rows
}

// parseInterval lower-cases the interval, defaulting to monthly
func parseInterval(interval string) usecase.SummaryInterval {
	interval = strings.ToLower(strings.TrimSpace(interval))
	if interval == "" {
		return usecase.IntervalMonthly
	}
	return usecase.SummaryInterval(interval)
}

// monthlyRows folds a year of summary rows into calendar month rows
func monthlyRows(rows []usecase.SummaryRow) []usecase.MonthlySummaryRow {
	out := make([]usecase.MonthlySummaryRow, len(rows))
	for i, r := range rows {
		out[i] = usecase.MonthlySummaryRow{Month: i + 1, Income: r.Income, Expense: r.Expense}
	}
	return out
}
