package persistence

import (
	"context"
	"fmt"
)

// UnitOfWork defines an interface for coordinating transaction operations
// across multiple repositories to maintain data consistency
type UnitOfWork interface {
	// Begin starts a new transaction and returns a transactional context
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction in the given context
	Commit(ctx context.Context) error

	// Rollback rolls back the transaction in the given context
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the current transaction
	GetUserRepository(ctx context.Context) UserRepository

	// GetTransactionRepository returns a transaction repository bound to the current transaction
	GetTransactionRepository(ctx context.Context) TransactionRepository

	// GetCategoryRepository returns a category repository bound to the current transaction
	GetCategoryRepository(ctx context.Context) CategoryRepository

	// GetBudgetRepository returns a budget repository bound to the current transaction
	GetBudgetRepository(ctx context.Context) BudgetRepository

	// GetSavingsRepository returns a savings repository bound to the current transaction
	GetSavingsRepository(ctx context.Context) SavingsRepository

	// GetMonthClosureRepository returns a month closure repository bound to the current transaction
	GetMonthClosureRepository(ctx context.Context) MonthClosureRepository

	// GetVerificationRepository returns a verification repository bound to the current transaction
	GetVerificationRepository(ctx context.Context) VerificationRepository
}

// WithinTransaction runs fn inside a transaction begun on uow. The transaction
// is committed when fn returns nil and rolled back on error or panic.
func WithinTransaction(ctx context.Context, uow UnitOfWork, fn func(txCtx context.Context) error) (err error) {
	txCtx, err := uow.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = uow.Rollback(txCtx)
			panic(p)
		}
		if err != nil {
			if rbErr := uow.Rollback(txCtx); rbErr != nil {
				err = fmt.Errorf("%w (rollback failed: %v)", err, rbErr)
			}
		}
	}()

	if err = fn(txCtx); err != nil {
		return err
	}
	if err = uow.Commit(txCtx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
