package analytics

import (
	"context"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// healthMonths is how many months, the current one included, feed the stability metrics
const healthMonths = 6

// Sub-score caps; they add up to 100
const (
	savingsRatePoints   = 25.0
	adherencePoints     = 20.0
	consistencyPoints   = 15.0
	stabilityPoints     = 15.0
	emergencyFundPoints = 15.0
	debtPoints          = 10.0
)

// healthInput is everything the score is computed from
type healthInput struct {
	income   decimal.Decimal
	expense  decimal.Decimal
	incomes  [healthMonths]float64 // index 0 is the current month
	expenses [healthMonths]float64
	budgets  []*entity.Budget
	spent    map[string]decimal.Decimal
}

// HealthScore rates the user's finances from 0 to 100
func (a *AnalyticsUseCase) HealthScore(ctx context.Context, userID uint64) (*usecase.HealthReport, error) {
	now := a.timeProvider.Now()
	month := entity.MonthOf(now)

	key := cacheport.UserKey(userID, "health-score", month.String())
	return readThrough(ctx, a, key, func(ctx context.Context) (*usecase.HealthReport, error) {
		current := throughToday(month.Start(), now)
		var (
			totals  entity.TypeTotals
			byCat   []entity.CategoryTotal
			daily   []entity.DailyTotal
			budgets []*entity.Budget
		)

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			totals, err = a.uow.GetTransactionRepository(gctx).SumByType(gctx, userID, current)
			return err
		})
		g.Go(func() (err error) {
			byCat, err = a.uow.GetTransactionRepository(gctx).SumByCategory(gctx, userID, entity.TypeExpense, current)
			return err
		})
		g.Go(func() (err error) {
			window := throughToday(month.AddMonths(-(healthMonths - 1)).Start(), now)
			daily, err = a.uow.GetTransactionRepository(gctx).DailyTotals(gctx, userID, window)
			return err
		})
		g.Go(func() (err error) {
			budgets, err = a.uow.GetBudgetRepository(gctx).List(gctx, userID)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		in := healthInput{
			income:  totals.Income,
			expense: totals.Expense,
			budgets: budgets,
			spent:   make(map[string]decimal.Decimal, len(byCat)),
		}
		for _, c := range byCat {
			in.spent[c.Category] = c.Total
		}
		for _, d := range daily {
			i := monthsBetween(entity.MonthOf(d.Date), month)
			if i < 0 || i >= healthMonths {
				continue
			}
			switch d.Type {
			case entity.TypeIncome:
				in.incomes[i] += toFloat(d.Total)
			case entity.TypeExpense:
				in.expenses[i] += toFloat(d.Total)
			}
		}
		return buildHealth(in), nil
	})
}

// monthsBetween counts whole months from earlier to later
func monthsBetween(earlier, later entity.Month) int {
	return (later.Year-earlier.Year)*12 + int(later.Month-earlier.Month)
}

func buildHealth(in healthInput) *usecase.HealthReport {
	var m usecase.HealthMetrics

	income, surplus := toFloat(in.income), toFloat(in.income.Sub(in.expense))

	rate := 0.0
	if income > 0 {
		rate = surplus / income * 100
	}
	m.SavingsRate = usecase.HealthMetric{
		Value: entity.RoundTo(rate, 2),
		Score: math.Min(savingsRatePoints, math.Max(0, rate*0.25)),
	}

	m.BudgetAdherence = budgetAdherence(in.budgets, in.spent)
	m.ExpenseConsistency = stability(in.expenses[:], consistencyPoints)
	m.IncomeStability = stability(in.incomes[:], stabilityPoints)
	m.EmergencyFund = usecase.HealthMetric{
		Value: entity.RoundTo(surplus, 2),
		Score: math.Min(emergencyFundPoints, math.Max(0, surplus/1000*emergencyFundPoints)),
	}
	// No debt tracking; the component is always full.
	m.DebtManagement = usecase.HealthMetric{Value: 100, Score: debtPoints}

	total := m.SavingsRate.Score + m.BudgetAdherence.Score + m.ExpenseConsistency.Score +
		m.IncomeStability.Score + m.EmergencyFund.Score + m.DebtManagement.Score

	level, color := healthLevel(total)
	return &usecase.HealthReport{
		Score:           entity.RoundTo(total, 2),
		Level:           level,
		Color:           color,
		Metrics:         m,
		Recommendations: recommendations(m, total),
	}
}

// budgetAdherence scores the share of funded budgets whose spend stayed within the budget
func budgetAdherence(budgets []*entity.Budget, spent map[string]decimal.Decimal) usecase.HealthMetric {
	funded, kept := 0, 0
	for _, b := range budgets {
		if !b.Amount.IsPositive() {
			continue
		}
		funded++
		if spent[b.CategoryName].LessThanOrEqual(b.Amount) {
			kept++
		}
	}
	if funded == 0 {
		return usecase.HealthMetric{}
	}
	share := float64(kept) / float64(funded)
	return usecase.HealthMetric{
		Value: entity.RoundTo(share*100, 2),
		Score: adherencePoints * share,
	}
}

// stability scores how little monthly totals vary, using the coefficient of variation.
// Months without any amount give no points.
func stability(values []float64, points float64) usecase.HealthMetric {
	if len(values) == 0 {
		return usecase.HealthMetric{}
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	if mean == 0 {
		return usecase.HealthMetric{}
	}

	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	cv := math.Sqrt(variance/float64(len(values))) / mean

	return usecase.HealthMetric{
		Value: entity.RoundTo((1-cv)*100, 2),
		Score: math.Max(0, points-cv*points),
	}
}

func healthLevel(total float64) (string, string) {
	switch {
	case total >= 80:
		return "Excellent", "green"
	case total >= 60:
		return "Good", "blue"
	case total >= 40:
		return "Fair", "yellow"
	case total >= 20:
		return "Poor", "orange"
	default:
		return "Poor", "red"
	}
}

func recommendations(m usecase.HealthMetrics, total float64) []string {
	recs := make([]string, 0)
	if m.SavingsRate.Value < 20 {
		recs = append(recs, "Increase your savings rate to at least 20% of your income")
	}
	if m.BudgetAdherence.Value < 80 {
		recs = append(recs, "Stick to your budget more closely to improve financial discipline")
	}
	if m.ExpenseConsistency.Value < 70 {
		recs = append(recs, "Try to maintain more consistent monthly expenses")
	}
	if m.IncomeStability.Value < 70 {
		recs = append(recs, "Consider ways to stabilize your income sources")
	}
	if m.EmergencyFund.Value < 3000 {
		recs = append(recs, "Build an emergency fund of at least 3 months of expenses")
	}
	if total < 40 {
		recs = append(recs, "Consider consulting with a financial advisor")
	}
	return recs
}
