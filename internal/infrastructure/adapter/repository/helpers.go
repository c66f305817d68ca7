package repository

import (
	"time"

	"gorm.io/gorm/clause"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// upsertOn builds an insert-or-update on the unique key columns. mysql ignores
// the column list and uses ON DUPLICATE KEY UPDATE.
func upsertOn(keys []string, update ...string) clause.OnConflict {
	cols := make([]clause.Column, len(keys))
	for i, k := range keys {
		cols[i] = clause.Column{Name: k}
	}
	return clause.OnConflict{Columns: cols, DoUpdates: clause.AssignmentColumns(update)}
}

// monthFromDate reads a first-of-month date column back as a Month
func monthFromDate(t time.Time) entity.Month {
	return entity.MonthOf(t.UTC())
}
