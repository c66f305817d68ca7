package migration

import (
	"fmt"

	"gorm.io/gorm"

	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/model"
)

// index describes a secondary index not declared in model tags
type index struct {
	name    string
	model   any
	table   string
	columns string
	where   string
}

// IndexManager creates the indexes behind the reporting queries
type IndexManager struct {
	logger coreport.Logger
}

// NewIndexManager creates a new index manager
func NewIndexManager(logger coreport.Logger) *IndexManager {
	return &IndexManager{logger: logger}
}

// reportingIndexes serve date-windowed sums and per-month history reads
var reportingIndexes = []index{
	{name: "idx_transactions_user_date", model: &model.Transaction{}, table: "transactions", columns: "user_id, date"},
	{name: "idx_transactions_user_type_date", model: &model.Transaction{}, table: "transactions", columns: "user_id, type, date"},
	{name: "idx_budget_history_user_month", model: &model.BudgetHistory{}, table: "monthly_budget_history", columns: "user_id, month"},
}

// CreateIndexes creates the portable reporting indexes
func (m *IndexManager) CreateIndexes(tx *gorm.DB) error {
	for _, idx := range reportingIndexes {
		if err := m.create(tx, idx); err != nil {
			return err
		}
	}
	return nil
}

// CreateDriverIndexes adds indexes that depend on the SQL dialect.
// Postgres gets a partial index over expenses. MySQL has no partial
// indexes so it gets the full composite instead.
func (m *IndexManager) CreateDriverIndexes(tx *gorm.DB) error {
	idx := index{
		name:    "idx_transactions_expense_category",
		model:   &model.Transaction{},
		table:   "transactions",
		columns: "user_id, category, date",
	}
	if tx.Dialector.Name() == "postgres" {
		idx.where = "type = 'expense'"
	}
	return m.create(tx, idx)
}

func (m *IndexManager) create(tx *gorm.DB, idx index) error {
	if tx.Migrator().HasIndex(idx.model, idx.name) {
		return nil
	}

	stmt := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
	if idx.where != "" {
		stmt += " WHERE " + idx.where
	}

	if err := tx.Exec(stmt).Error; err != nil {
		m.logger.Error("Failed to create index", map[string]any{
			"index": idx.name,
			"error": err,
		})
		return err
	}
	m.logger.Debug("Created index", map[string]any{"index": idx.name})
	return nil
}
