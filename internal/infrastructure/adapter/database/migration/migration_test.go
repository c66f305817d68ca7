package migration

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	mockcore "github.com/fintrack/fintrack-api/mocks/port/core"
)

func TestBuiltInSteps(t *testing.T) {
	m := NewMigrationManager(nil, mockcore.NewMockLogger(t), mockcore.NewMockTimeProvider(t))

	seen := map[string]bool{}
	prev := ""
	for _, step := range m.steps {
		assert.NotEmpty(t, step.Description)
		assert.NotNil(t, step.Up)
		assert.False(t, seen[step.Version], "duplicate version %s", step.Version)
		assert.Greater(t, step.Version, prev)
		seen[step.Version] = true
		prev = step.Version
	}
}

func TestReportingIndexesCoverTables(t *testing.T) {
	for _, idx := range reportingIndexes {
		assert.NotEmpty(t, idx.columns, idx.name)
		assert.NotNil(t, idx.model, idx.name)
		assert.Contains(t, idx.columns, "user_id", idx.name)
	}
}

func TestDemoData(t *testing.T) {
	categories := map[string]entity.TransactionType{}
	income, expense := decimal.Zero, decimal.Zero
	for _, e := range demoTransactions {
		assert.LessOrEqual(t, e.day, demoMonth.Days())
		categories[e.category] = e.txType
		if e.txType == entity.TypeIncome {
			income = income.Add(decimal.RequireFromString(e.amount))
		} else {
			expense = expense.Add(decimal.RequireFromString(e.amount))
		}
	}

	assert.True(t, income.Equal(decimal.NewFromInt(11500)))
	assert.True(t, expense.Equal(decimal.NewFromInt(3300)))

	for name := range demoBudgets {
		assert.Equal(t, entity.TypeExpense, categories[name], "budget %s needs expense data", name)
	}
}
