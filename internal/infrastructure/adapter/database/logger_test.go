package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/fintrack/fintrack-api/internal/domain/port/core"
	mockcore "github.com/fintrack/fintrack-api/mocks/port/core"
)

func TestDatabaseLoggerTrace(t *testing.T) {
	sql := func() (string, int64) { return "SELECT * FROM transactions WHERE user_id = 1", 3 }
	begin := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Slow query is a warning", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(core.Duration(350 * time.Millisecond))

		log.EXPECT().Warn("Slow SQL query", mock.MatchedBy(func(f map[string]any) bool {
			return f["elapsed_ms"] == int64(350) && f["type"] == "SELECT" && f["request_id"] == "req-1"
		})).Once()

		l := NewDatabaseLogger(log, clock, "info", 0)
		l.Trace(WithRequestID(context.Background(), "req-1"), begin, sql, nil)
	})

	t.Run("Fast query is silent below debug", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(core.Duration(5 * time.Millisecond))

		l := NewDatabaseLogger(log, clock, "info", 200*time.Millisecond)
		l.Trace(context.Background(), begin, sql, nil)
	})

	t.Run("Fast query is traced at debug", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(core.Duration(5 * time.Millisecond))
		log.EXPECT().Debug("SQL query", mock.Anything).Once()

		l := NewDatabaseLogger(log, clock, "debug", 0)
		l.Trace(context.Background(), begin, sql, nil)
	})

	t.Run("Record not found is not an error", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(core.Duration(time.Millisecond))

		l := NewDatabaseLogger(log, clock, "warn", 0)
		l.Trace(context.Background(), begin, sql, gorm.ErrRecordNotFound)
	})

	t.Run("Failed statement is an error", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)
		clock.EXPECT().Since(begin).Return(core.Duration(time.Millisecond))
		log.EXPECT().Error("SQL error", mock.MatchedBy(func(f map[string]any) bool {
			return f["error"] == "relation does not exist"
		})).Once()

		l := NewDatabaseLogger(log, clock, "warn", 0)
		l.Trace(context.Background(), begin, sql, errors.New("relation does not exist"))
	})

	t.Run("Silent mode skips everything", func(t *testing.T) {
		log := mockcore.NewMockLogger(t)
		clock := mockcore.NewMockTimeProvider(t)

		l := NewDatabaseLogger(log, clock, "info", 0).LogMode(logger.Silent)
		l.Trace(context.Background(), begin, sql, errors.New("ignored"))
	})
}

func TestExtractQueryType(t *testing.T) {
	assert.Equal(t, "INSERT", extractQueryType("  insert into budgets values (1)"))
	assert.Equal(t, "", extractQueryType("BEGIN"))
}
