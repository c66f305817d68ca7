package database

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/logger"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/model"
	timeprovider "github.com/fintrack/fintrack-api/internal/infrastructure/adapter/time"
)

// newTestManager connects to the database named by FT_TEST_DB_* variables
// and migrates a clean schema. The test is skipped when FT_TEST_DB_HOST is unset.
func newTestManager(t *testing.T) (*Manager, *timeprovider.FixedTimeProvider) {
	t.Helper()

	host := os.Getenv("FT_TEST_DB_HOST")
	if host == "" {
		t.Skip("FT_TEST_DB_HOST not set, skipping database integration test")
	}

	driver := getEnvOrDefault("FT_TEST_DB_DRIVER", DriverPostgres)
	cfg := &Config{
		Driver:          driver,
		Host:            host,
		Port:            ParsePort(os.Getenv("FT_TEST_DB_PORT"), defaultPort(driver)),
		Username:        getEnvOrDefault("FT_TEST_DB_USERNAME", "postgres"),
		Password:        getEnvOrDefault("FT_TEST_DB_PASSWORD", "postgres"),
		Database:        getEnvOrDefault("FT_TEST_DB_DATABASE", "fintrack_test"),
		SSLMode:         "disable",
		MaxOpenConns:    5,
		MaxIdleConns:    2,
		ConnMaxLifetime: time.Minute,
		QueryTimeout:    5 * time.Second,
		RetryAttempts:   1,
		LogLevel:        "silent",
		AutoMigrate:     true,
	}

	clock := timeprovider.NewFixedTimeProvider(time.Date(2025, 3, 20, 12, 0, 0, 0, time.UTC))
	manager := NewManager(cfg, logger.NewNoopLogger(), clock)

	ctx := context.Background()
	_, err := manager.Connect(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	db := manager.DB()
	for _, m := range model.All() {
		require.NoError(t, db.Migrator().DropTable(m))
	}
	require.NoError(t, manager.Migrate(ctx, nil))

	return manager, clock
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func createTestUser(t *testing.T, ctx context.Context, uow persistence.UnitOfWork, email string, clock *timeprovider.FixedTimeProvider) *entity.User {
	t.Helper()
	user, err := entity.NewUser("Test User", email, "hash", clock)
	require.NoError(t, err)
	require.NoError(t, uow.GetUserRepository(ctx).Create(ctx, user))
	require.NotZero(t, user.ID)
	return user
}

func TestIntegrationLedgerAggregates(t *testing.T) {
	manager, clock := newTestManager(t)
	ctx := context.Background()
	uow := manager.UnitOfWork()

	user := createTestUser(t, ctx, uow, "ledger@example.com", clock)
	txRepo := uow.GetTransactionRepository(ctx)

	entries := []entity.TransactionInput{
		{Date: "2025-03-01", Description: "Salary", Amount: decimal.NewFromInt(10000), Type: "income", Category: "Salary"},
		{Date: "2025-03-04", Description: "Shop", Amount: decimal.NewFromInt(650), Type: "expense", Category: "Groceries"},
		{Date: "2025-03-14", Description: "Shop", Amount: decimal.NewFromInt(580), Type: "expense", Category: "Groceries"},
		{Date: "2025-03-09", Description: "Power", Amount: decimal.NewFromInt(900), Type: "expense", Category: "Utilities"},
		{Date: "2025-04-01", Description: "Next month", Amount: decimal.NewFromInt(50), Type: "expense", Category: "Dining"},
	}
	for _, in := range entries {
		tx, err := entity.NewTransaction(user.ID, in, clock)
		require.NoError(t, err)
		require.NoError(t, txRepo.Create(ctx, tx))
	}

	march := entity.Month{Year: 2025, Month: time.March}
	totals, err := txRepo.SumByType(ctx, user.ID, march.Window())
	require.NoError(t, err)
	assert.True(t, totals.Income.Equal(decimal.NewFromInt(10000)))
	assert.True(t, totals.Expense.Equal(decimal.NewFromInt(2130)))

	byCategory, err := txRepo.SumByCategory(ctx, user.ID, entity.TypeExpense, march.Window())
	require.NoError(t, err)
	require.Len(t, byCategory, 2)
	assert.Equal(t, "Groceries", byCategory[0].Category)
	assert.True(t, byCategory[0].Total.Equal(decimal.NewFromInt(1230)))

	earliest, err := txRepo.EarliestDate(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, earliest)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), earliest.UTC())

	moved, err := txRepo.ReassignCategory(ctx, user.ID, "Groceries", "", entity.NoCategory)
	require.NoError(t, err)
	assert.Equal(t, int64(2), moved)
}

func TestIntegrationUnitOfWorkRollback(t *testing.T) {
	manager, clock := newTestManager(t)
	ctx := context.Background()
	uow := manager.UnitOfWork()

	boom := errors.New("boom")
	err := persistence.WithinTransaction(ctx, uow, func(txCtx context.Context) error {
		createTestUser(t, txCtx, uow, "rollback@example.com", clock)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := uow.GetUserRepository(ctx).ExistsByEmail(ctx, "rollback@example.com")
	require.NoError(t, err)
	assert.False(t, exists)

	t.Run("Nested begin is rejected", func(t *testing.T) {
		txCtx, err := uow.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = uow.Rollback(txCtx) }()

		_, err = uow.Begin(txCtx)
		assert.Error(t, err)
	})
}

func TestIntegrationDeleteUserCascades(t *testing.T) {
	manager, clock := newTestManager(t)
	ctx := context.Background()
	uow := manager.UnitOfWork()

	user := createTestUser(t, ctx, uow, "cascade@example.com", clock)

	category, err := entity.NewCategory(user.ID, "Groceries", "")
	require.NoError(t, err)
	created, err := uow.GetCategoryRepository(ctx).Create(ctx, category)
	require.NoError(t, err)
	assert.True(t, created)

	_, err = uow.GetUserRepository(ctx).GetByEmail(ctx, "cascade@example.com")
	require.NoError(t, err)

	require.NoError(t, uow.GetUserRepository(ctx).Delete(ctx, user.ID))

	_, err = uow.GetUserRepository(ctx).GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	names, err := uow.GetCategoryRepository(ctx).ListNames(ctx, user.ID, "")
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestIntegrationSavingsGoalDecrement(t *testing.T) {
	manager, clock := newTestManager(t)
	ctx := context.Background()
	uow := manager.UnitOfWork()

	user := createTestUser(t, ctx, uow, "goal@example.com", clock)
	march := entity.Month{Year: 2025, Month: time.March}
	goal, err := entity.NewSavingsGoal(user.ID, march, decimal.NewFromInt(1000))
	require.NoError(t, err)
	repo := uow.GetSavingsRepository(ctx)
	require.NoError(t, repo.UpsertGoal(ctx, goal))

	var wg sync.WaitGroup
	for range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, repo.DecrementCurrentGoal(ctx, goal.ID, decimal.NewFromInt(100)))
		}()
	}
	wg.Wait()

	stored, err := repo.GetGoal(ctx, user.ID, march)
	require.NoError(t, err)
	assert.True(t, stored.CurrentGoal.Equal(decimal.NewFromInt(500)), "current goal %s", stored.CurrentGoal)

	require.NoError(t, repo.DecrementCurrentGoal(ctx, goal.ID, decimal.NewFromInt(900)))
	stored, err = repo.GetGoal(ctx, user.ID, march)
	require.NoError(t, err)
	assert.True(t, stored.CurrentGoal.IsZero())
	assert.True(t, stored.InitialGoal.Equal(decimal.NewFromInt(1000)))
}

func TestIntegrationLatestMonthClosure(t *testing.T) {
	manager, clock := newTestManager(t)
	ctx := context.Background()
	uow := manager.UnitOfWork()

	user := createTestUser(t, ctx, uow, "closures@example.com", clock)
	closures := uow.GetMonthClosureRepository(ctx)

	_, err := closures.Latest(ctx, user.ID)
	assert.ErrorIs(t, err, errs.ErrNotFound)

	for _, m := range []entity.Month{{Year: 2025, Month: time.February}, {Year: 2024, Month: time.December}} {
		require.NoError(t, closures.Create(ctx, &entity.MonthClosure{
			UserID:      user.ID,
			Month:       m,
			BudgetTotal: decimal.Zero,
			SavedAmount: decimal.Zero,
			ClosedAt:    clock.Now(),
		}))
	}

	latest, err := closures.Latest(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.Month{Year: 2025, Month: time.February}, latest.Month)
}

func TestIntegrationHealth(t *testing.T) {
	manager, _ := newTestManager(t)

	stats, err := manager.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, stats.MaxOpenConnections)
}
