package category

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	mockcache "github.com/fintrack/fintrack-api/mocks/port/cache"
	mockcore "github.com/fintrack/fintrack-api/mocks/port/core"
	mockpersistence "github.com/fintrack/fintrack-api/mocks/port/persistence"
)

type fixture struct {
	useCase     *CategoryUseCase
	uow         *mockpersistence.MockUnitOfWork
	categories  *mockpersistence.MockCategoryRepository
	budgets     *mockpersistence.MockBudgetRepository
	transaction *mockpersistence.MockTransactionRepository
	cache       *mockcache.MockCache
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		uow:         mockpersistence.NewMockUnitOfWork(t),
		categories:  mockpersistence.NewMockCategoryRepository(t),
		budgets:     mockpersistence.NewMockBudgetRepository(t),
		transaction: mockpersistence.NewMockTransactionRepository(t),
		cache:       mockcache.NewMockCache(t),
	}
	f.uow.EXPECT().GetCategoryRepository(mock.Anything).Return(f.categories).Maybe()
	f.uow.EXPECT().GetBudgetRepository(mock.Anything).Return(f.budgets).Maybe()
	f.uow.EXPECT().GetTransactionRepository(mock.Anything).Return(f.transaction).Maybe()

	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Return().Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Return().Maybe()

	f.useCase = NewCategoryUseCase(f.uow, f.cache, mockLogger)
	return f
}

func TestCategoryUseCase_Create(t *testing.T) {
	t.Run("Defaults the account", func(t *testing.T) {
		f := newFixture(t)
		f.categories.EXPECT().Create(mock.Anything, mock.MatchedBy(func(c *entity.Category) bool {
			return c.Name == "Groceries" && c.Account == entity.DefaultAccount && c.UserID == 1
		})).Return(true, nil).Once()

		assert.NoError(t, f.useCase.Create(context.Background(), 1, " Groceries ", ""))
	})

	t.Run("Existing category is not an error", func(t *testing.T) {
		f := newFixture(t)
		f.categories.EXPECT().Create(mock.Anything, mock.Anything).Return(false, nil).Once()

		assert.NoError(t, f.useCase.Create(context.Background(), 1, "Groceries", "Wallet"))
	})

	t.Run("Empty name", func(t *testing.T) {
		f := newFixture(t)
		assert.True(t, errs.IsValidationError(f.useCase.Create(context.Background(), 1, " ", "")))
	})
}

func TestCategoryUseCase_Delete(t *testing.T) {
	t.Run("Reassigns transactions and drops budgets", func(t *testing.T) {
		f := newFixture(t)

		// Setup mocks
		f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
			return ctx, nil
		}).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.categories.EXPECT().Delete(mock.Anything, uint64(1), "Dining", "").Return([]uint64{4, 9}, nil).Once()
		f.budgets.EXPECT().DeleteByCategories(mock.Anything, uint64(1), []uint64{4, 9}).Return(nil).Once()
		f.transaction.EXPECT().ReassignCategory(mock.Anything, uint64(1), "Dining", "", entity.NoCategory).Return(int64(3), nil).Once()
		f.categories.EXPECT().FindOrCreate(mock.Anything, uint64(1), entity.NoCategory, entity.DefaultAccount).
			Return(&entity.Category{ID: 12, UserID: 1, Name: entity.NoCategory, Account: entity.DefaultAccount}, nil).Once()
		f.cache.EXPECT().DeleteByPrefix(mock.Anything, "fintrack:user:1:").Return(nil).Once()

		// Execute
		n, err := f.useCase.Delete(context.Background(), 1, "Dining", "")

		// Assertions
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("Nothing moved leaves the sentinel absent", func(t *testing.T) {
		f := newFixture(t)

		f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
			return ctx, nil
		}).Once()
		f.uow.EXPECT().Commit(mock.Anything).Return(nil).Once()
		f.categories.EXPECT().Delete(mock.Anything, uint64(1), "Travel", "Wallet").Return([]uint64{5}, nil).Once()
		f.budgets.EXPECT().DeleteByCategories(mock.Anything, uint64(1), []uint64{5}).Return(nil).Once()
		f.transaction.EXPECT().ReassignCategory(mock.Anything, uint64(1), "Travel", "Wallet", entity.NoCategory).Return(int64(0), nil).Once()
		f.cache.EXPECT().DeleteByPrefix(mock.Anything, "fintrack:user:1:").Return(nil).Once()

		n, err := f.useCase.Delete(context.Background(), 1, "Travel", "Wallet")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

		t.Run("Sentinel category is protected", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.useCase.Delete(context.Background(), 1, entity.NoCategory, "")
		assert.ErrorIs(t, err, errs.ErrProtectedCategory)
	})

	t.Run("Failure rolls back", func(t *testing.T) {
		f := newFixture(t)

		f.uow.EXPECT().Begin(mock.Anything).RunAndReturn(func(ctx context.Context) (context.Context, error) {
			return ctx, nil
		}).Once()
		f.uow.EXPECT().Rollback(mock.Anything).Return(nil).Once()
		f.categories.EXPECT().Delete(mock.Anything, uint64(1), "Dining", "Wallet").Return([]uint64{4}, nil).Once()
		f.budgets.EXPECT().DeleteByCategories(mock.Anything, uint64(1), []uint64{4}).Return(errs.ErrDatabaseConnection).Once()

		_, err := f.useCase.Delete(context.Background(), 1, "Dining", "Wallet")
		assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	})
}

func TestCategoryUseCase_ListNames(t *testing.T) {
	f := newFixture(t)
	f.categories.EXPECT().ListNames(mock.Anything, uint64(1), "").Return(nil, nil).Once()

	names, err := f.useCase.ListNames(context.Background(), 1, " ")
	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}
