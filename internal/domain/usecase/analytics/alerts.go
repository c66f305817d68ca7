package analytics

import (
	"context"
	"strconv"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

const (
	alertBudgetOverrun    = "budget_overrun"
	alertSpendingIncrease = "spending_increase"
	alertNoBudget         = "no_budget"

	severityHigh   = "high"
	severityMedium = "medium"
	severityLow    = "low"
)

// unbudgetedAlertThreshold is the monthly spend above which a category without a budget is flagged
var unbudgetedAlertThreshold = decimal.NewFromInt(1000)

// Alerts flags budget overruns, jumps from last month and large unbudgeted spend
func (a *AnalyticsUseCase) Alerts(ctx context.Context, userID uint64) (*usecase.AlertReport, error) {
	now := a.timeProvider.Now()
	month := entity.MonthOf(now)

	key := cacheport.UserKey(userID, "alerts", month.String())
	return readThrough(ctx, a, key, func(ctx context.Context) (*usecase.AlertReport, error) {
		var (
			current, previous []entity.CategoryTotal
			budgets           []*entity.Budget
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			current, err = a.uow.GetTransactionRepository(gctx).SumByCategory(gctx, userID, entity.TypeExpense, throughToday(month.Start(), now))
			return err
		})
		g.Go(func() (err error) {
			previous, err = a.uow.GetTransactionRepository(gctx).SumByCategory(gctx, userID, entity.TypeExpense, month.AddMonths(-1).Window())
			return err
		})
		g.Go(func() (err error) {
			budgets, err = a.uow.GetBudgetRepository(gctx).List(gctx, userID)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}

		alerts := buildAlerts(current, previous, budgets)
		return &usecase.AlertReport{Alerts: alerts, Summary: summarizeAlerts(alerts)}, nil
	})
}

// formatPercent renders a percentage to at most two places without trailing zeros
func formatPercent(pct float64) string {
	return strconv.FormatFloat(entity.RoundTo(pct, 2), 'f', -1, 64)
}

func buildAlerts(current, previous []entity.CategoryTotal, budgets []*entity.Budget) []usecase.Alert {
	budgetOf := make(map[string]decimal.Decimal, len(budgets))
	for _, b := range budgets {
		budgetOf[b.CategoryName] = b.Amount
	}
	previousOf := make(map[string]decimal.Decimal, len(previous))
	for _, p := range previous {
		previousOf[p.Category] = p.Total
	}
	hundred := decimal.NewFromInt(100)

	alerts := make([]usecase.Alert, 0)
	for _, c := range current {
		budget, ok := budgetOf[c.Category]
		if !ok || !budget.IsPositive() || !c.Total.GreaterThan(budget) {
			continue
		}
		overrun := c.Total.Sub(budget)
		pct := toFloat(overrun.Div(budget).Mul(hundred))
		severity := severityLow
		switch {
		case pct > 50:
			severity = severityHigh
		case pct > 25:
			severity = severityMedium
		}
		alerts = append(alerts, usecase.Alert{
			Type:     alertBudgetOverrun,
			Category: c.Category,
			Severity: severity,
			Message:  "Budget overrun by " + formatPercent(pct) + "%",
			Details: map[string]float64{
				"budget":  toFloat(budget),
				"spent":   toFloat(c.Total),
				"overrun": toFloat(overrun.Round(2)),
			},
		})
	}

	for _, c := range current {
		prev, ok := previousOf[c.Category]
		if !ok || !prev.IsPositive() {
			continue
		}
		increase := toFloat(c.Total.Sub(prev).Div(prev).Mul(hundred))
		if increase <= 50 {
			continue
		}
		severity := severityMedium
		if increase > 100 {
			severity = severityHigh
		}
		alerts = append(alerts, usecase.Alert{
			Type:     alertSpendingIncrease,
			Category: c.Category,
			Severity: severity,
			Message:  "Spending increased by " + formatPercent(increase) + "% from last month",
			Details: map[string]float64{
				"previous": toFloat(prev),
				"current":  toFloat(c.Total),
				"increase": entity.RoundTo(increase, 2),
			},
		})
	}

	for _, c := range current {
		if _, ok := budgetOf[c.Category]; ok || !c.Total.GreaterThan(unbudgetedAlertThreshold) {
			continue
		}
		alerts = append(alerts, usecase.Alert{
			Type:     alertNoBudget,
			Category: c.Category,
			Severity: severityMedium,
			Message:  "High spending category without budget",
			Details:  map[string]float64{"spent": toFloat(c.Total)},
		})
	}
	return alerts
}

func summarizeAlerts(alerts []usecase.Alert) usecase.AlertSummary {
	summary := usecase.AlertSummary{TotalAlerts: len(alerts)}
	for _, a := range alerts {
		switch a.Severity {
		case severityHigh:
			summary.HighPriority++
		case severityMedium:
			summary.MediumPriority++
		case severityLow:
			summary.LowPriority++
		}
	}
	return summary
}
