package analytics

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

const (
	periodCurrent = "current"
	periodPast    = "past"
	periodCustom  = "custom"
	periodAll     = "all"

	statusUnder = "under"
	statusOver  = "over"
)

// comparisonRange is a resolved budget-vs-actual query. Both days are inclusive.
type comparisonRange struct {
	period string
	start  time.Time
	end    time.Time
}

func invalidPeriod(field, reason string) error {
	return errs.NewValidationError(field, reason, errs.ErrInvalidPeriod)
}

// resolveRange turns a query into the days it covers
func (a *AnalyticsUseCase) resolveRange(ctx context.Context, userID uint64, q usecase.BudgetVsActualQuery, now time.Time) (comparisonRange, error) {
	today := entity.DateOnly(now)
	current := entity.MonthOf(now)

	switch strings.ToLower(strings.TrimSpace(q.Period)) {
	case "", periodCurrent:
		return comparisonRange{period: periodCurrent, start: current.Start(), end: current.LastDay()}, nil

	case periodPast:
		year, err := strconv.Atoi(q.Year)
		if err != nil || year < 1 || year > 9999 {
			return comparisonRange{}, invalidPeriod("year", "is required for a past period")
		}
		month, err := strconv.Atoi(q.Month)
		if err != nil || month < 1 || month > 12 {
			return comparisonRange{}, invalidPeriod("month", "must be between 1 and 12")
		}
		m := entity.Month{Year: year, Month: time.Month(month)}
		return comparisonRange{period: periodPast, start: m.Start(), end: m.LastDay()}, nil

	case periodCustom:
		start, err := entity.ParseDate(q.StartDate)
		if err != nil {
			return comparisonRange{}, invalidPeriod("startDate", "is required for a custom period")
		}
		end, err := entity.ParseDate(q.EndDate)
		if err != nil {
			return comparisonRange{}, invalidPeriod("endDate", "is required for a custom period")
		}
		if start.After(end) {
			return comparisonRange{}, invalidPeriod("startDate", "is after endDate")
		}
		return comparisonRange{period: periodCustom, start: start, end: end}, nil

	case periodAll:
		earliest, err := a.uow.GetTransactionRepository(ctx).EarliestDate(ctx, userID)
		if err != nil {
			return comparisonRange{}, err
		}
		start := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		if earliest != nil {
			start = entity.DateOnly(*earliest)
		}
		return comparisonRange{period: periodAll, start: start, end: today}, nil

	default:
		return comparisonRange{}, invalidPeriod("period", "must be current, past, custom or all")
	}
}

// BudgetVsActual compares budgets with actual spend for the queried period
func (a *AnalyticsUseCase) BudgetVsActual(ctx context.Context, userID uint64, q usecase.BudgetVsActualQuery) (*usecase.BudgetVsActualReport, error) {
	now := a.timeProvider.Now()
	r, err := a.resolveRange(ctx, userID, q, now)
	if err != nil {
		return nil, err
	}

	key := cacheport.UserKey(userID, "budget-vs-actual", r.period, r.start.Format(time.DateOnly), r.end.Format(time.DateOnly))
	return readThrough(ctx, a, key, func(ctx context.Context) (*usecase.BudgetVsActualReport, error) {
		if r.period == periodCurrent {
			return a.currentComparison(ctx, userID, r)
		}
		return a.historicalComparison(ctx, userID, r, entity.MonthOf(now))
	})
}

// currentComparison joins live budgets with this month's expenses
func (a *AnalyticsUseCase) currentComparison(ctx context.Context, userID uint64, r comparisonRange) (*usecase.BudgetVsActualReport, error) {
	var (
		budgets []*entity.Budget
		spent   []entity.CategoryTotal
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		budgets, err = a.uow.GetBudgetRepository(gctx).List(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		spent, err = a.uow.GetTransactionRepository(gctx).SumByCategory(gctx, userID, entity.TypeExpense, entity.MonthOf(r.start).Window())
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := buildCurrentComparison(budgets, spent)
	report.Period = reportPeriod(r)
	return report, nil
}

// historicalComparison aggregates frozen budget history inside the range
func (a *AnalyticsUseCase) historicalComparison(ctx context.Context, userID uint64, r comparisonRange, current entity.Month) (*usecase.BudgetVsActualReport, error) {
	// A history row covers the month starting on its first day.
	from := entity.MonthOf(r.start)
	if r.start.Day() > 1 {
		from = from.AddMonths(1)
	}
	to := entity.MonthOf(r.end)

	var (
		budgets []*entity.Budget
		spent   []entity.CategoryTotal
		history []*entity.MonthlyBudgetHistory
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		budgets, err = a.uow.GetBudgetRepository(gctx).List(gctx, userID)
		return err
	})
	g.Go(func() (err error) {
		spent, err = a.uow.GetTransactionRepository(gctx).SumByCategory(gctx, userID, entity.TypeExpense, current.Window())
		return err
	})
	if !to.Before(from) {
		g.Go(func() (err error) {
			history, err = a.uow.GetBudgetRepository(gctx).ListHistory(gctx, userID, from, to)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := buildHistoricalComparison(budgets, spent, history)
	report.Period = reportPeriod(r)
	return report, nil
}

func reportPeriod(r comparisonRange) usecase.ReportPeriod {
	return usecase.ReportPeriod{
		StartDate: r.start.Format(time.DateOnly),
		EndDate:   r.end.Format(time.DateOnly),
	}
}

// compare builds one comparison row
func compare(category string, budget, actual decimal.Decimal) usecase.BudgetComparison {
	variance := budget.Sub(actual)
	pct := decimal.Zero
	if budget.IsPositive() {
		pct = variance.Div(budget).Mul(decimal.NewFromInt(100)).Round(2)
	}
	status := statusUnder
	if variance.IsNegative() {
		status = statusOver
	}
	return usecase.BudgetComparison{
		Category:           category,
		Budget:             toFloat(budget),
		Actual:             toFloat(actual),
		Variance:           toFloat(variance.Round(2)),
		VariancePercentage: toFloat(pct),
		Status:             status,
	}
}

func buildCurrentComparison(budgets []*entity.Budget, spent []entity.CategoryTotal) *usecase.BudgetVsActualReport {
	actual := make(map[string]decimal.Decimal, len(spent))
	for _, s := range spent {
		actual[s.Category] = s.Total
	}

	budgeted := make(map[string]bool, len(budgets))
	rows := make([]usecase.BudgetComparison, 0, len(budgets)+len(spent))
	totalBudget, totalActual := decimal.Zero, decimal.Zero
	for _, b := range budgets {
		budgeted[b.CategoryName] = true
		rows = append(rows, compare(b.CategoryName, b.Amount, actual[b.CategoryName]))
		totalBudget = totalBudget.Add(b.Amount)
		totalActual = totalActual.Add(actual[b.CategoryName])
	}

	// Spending with no budget counts as fully over
	for _, s := range spent {
		if budgeted[s.Category] {
			continue
		}
		row := compare(s.Category, decimal.Zero, s.Total)
		row.VariancePercentage = -100
		rows = append(rows, row)
		totalActual = totalActual.Add(s.Total)
	}

	return &usecase.BudgetVsActualReport{
		Comparison: rows,
		Summary:    summarize(totalBudget, totalActual, totalBudget),
	}
}

func buildHistoricalComparison(budgets []*entity.Budget, spent []entity.CategoryTotal, history []*entity.MonthlyBudgetHistory) *usecase.BudgetVsActualReport {
	currentSpent := make(map[string]decimal.Decimal, len(spent))
	for _, s := range spent {
		currentSpent[s.Category] = s.Total
	}

	currentBudget := decimal.Zero
	currentCategories := make([]usecase.CategoryBudget, 0, len(budgets))
	for _, b := range budgets {
		currentBudget = currentBudget.Add(b.Amount)
		currentCategories = append(currentCategories, usecase.CategoryBudget{
			Name:   b.CategoryName,
			Budget: toFloat(b.Amount),
			Spent:  toFloat(currentSpent[b.CategoryName]),
		})
	}

	type aggregate struct {
		budget, spent decimal.Decimal
	}
	order := make([]string, 0)
	byCategory := make(map[string]*aggregate)
	selected := make([]usecase.CategoryBudget, 0, len(history))
	for _, h := range history {
		agg, ok := byCategory[h.Category]
		if !ok {
			agg = &aggregate{}
			byCategory[h.Category] = agg
			order = append(order, h.Category)
		}
		agg.budget = agg.budget.Add(h.Budget)
		agg.spent = agg.spent.Add(h.Spent)
		selected = append(selected, usecase.CategoryBudget{
			Name:   h.Category,
			Budget: toFloat(h.Budget),
			Spent:  toFloat(h.Spent),
		})
	}

	rows := make([]usecase.BudgetComparison, 0, len(order))
	totalBudget, totalActual := decimal.Zero, decimal.Zero
	for _, name := range order {
		agg := byCategory[name]
		if agg.budget.IsZero() && agg.spent.IsZero() {
			continue
		}
		rows = append(rows, compare(name, agg.budget, agg.spent))
		totalBudget = totalBudget.Add(agg.budget)
		totalActual = totalActual.Add(agg.spent)
	}
	if len(rows) == 0 {
		selected = nil
	}

	return &usecase.BudgetVsActualReport{
		Comparison:         rows,
		Summary:            summarize(totalBudget, totalActual, currentBudget),
		CurrentCategories:  currentCategories,
		SelectedCategories: selected,
	}
}

func summarize(totalBudget, totalActual, currentBudget decimal.Decimal) usecase.BudgetComparisonSummary {
	variance := totalBudget.Sub(totalActual)
	pct := decimal.Zero
	if totalBudget.IsPositive() {
		pct = variance.Div(totalBudget).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return usecase.BudgetComparisonSummary{
		TotalBudget:             toFloat(totalBudget),
		TotalActual:             toFloat(totalActual),
		TotalVariance:           toFloat(variance.Round(2)),
		TotalVariancePercentage: toFloat(pct),
		CurrentBudget:           toFloat(currentBudget),
	}
}
