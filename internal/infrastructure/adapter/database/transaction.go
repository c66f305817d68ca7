package database

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/repository"
)

// txKey is the context key of the open *gorm.DB transaction
type txKey struct{}

// UnitOfWork implements persistence.UnitOfWork over one gorm handle
type UnitOfWork struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewUnitOfWork creates a new UnitOfWork instance
func NewUnitOfWork(db *gorm.DB, logger coreport.Logger) *UnitOfWork {
	return &UnitOfWork{db: db, logger: logger}
}

// Begin starts a database transaction and returns a context carrying it
func (u *UnitOfWork) Begin(ctx context.Context) (context.Context, error) {
	if _, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return ctx, errors.New("transaction already open in context")
	}

	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		u.logger.Error("Failed to begin transaction", map[string]any{"error": tx.Error.Error()})
		return ctx, fmt.Errorf("%w: begin: %s", errs.ErrDatabaseConnection, tx.Error.Error())
	}

	u.logger.Debug("Transaction started", nil)
	return context.WithValue(ctx, txKey{}, tx), nil
}

// Commit commits the transaction in ctx
func (u *UnitOfWork) Commit(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	if err := tx.Commit().Error; err != nil {
		u.logger.Error("Failed to commit transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("%w: commit: %s", errs.ErrDatabaseConnection, err.Error())
	}
	return nil
}

// Rollback rolls back the transaction in ctx. Rolling back a finished
// transaction is not an error.
func (u *UnitOfWork) Rollback(ctx context.Context) error {
	tx, ok := ctx.Value(txKey{}).(*gorm.DB)
	if !ok || tx == nil {
		return errors.New("no transaction found in context")
	}

	err := tx.Rollback().Error
	if err != nil && errors.Is(err, gorm.ErrInvalidTransaction) {
		u.logger.Warn("Transaction already finished", map[string]any{"error": err.Error()})
		return nil
	}
	if err != nil {
		u.logger.Error("Failed to rollback transaction", map[string]any{"error": err.Error()})
		return fmt.Errorf("failed to rollback transaction: %w", err)
	}
	return nil
}

// GetUserRepository returns a user repository bound to the transaction in ctx
func (u *UnitOfWork) GetUserRepository(ctx context.Context) persistence.UserRepository {
	return repository.NewUserRepository(u.getDB(ctx), u.logger)
}

// GetTransactionRepository returns a transaction repository bound to the transaction in ctx
func (u *UnitOfWork) GetTransactionRepository(ctx context.Context) persistence.TransactionRepository {
	return repository.NewTransactionRepository(u.getDB(ctx), u.logger)
}

// GetCategoryRepository returns a category repository bound to the transaction in ctx
func (u *UnitOfWork) GetCategoryRepository(ctx context.Context) persistence.CategoryRepository {
	return repository.NewCategoryRepository(u.getDB(ctx), u.logger)
}

// GetBudgetRepository returns a budget repository bound to the transaction in ctx
func (u *UnitOfWork) GetBudgetRepository(ctx context.Context) persistence.BudgetRepository {
	return repository.NewBudgetRepository(u.getDB(ctx), u.logger)
}

// GetSavingsRepository returns a savings repository bound to the transaction in ctx
func (u *UnitOfWork) GetSavingsRepository(ctx context.Context) persistence.SavingsRepository {
	return repository.NewSavingsRepository(u.getDB(ctx), u.logger)
}

// GetMonthClosureRepository returns a month closure repository bound to the transaction in ctx
func (u *UnitOfWork) GetMonthClosureRepository(ctx context.Context) persistence.MonthClosureRepository {
	return repository.NewMonthClosureRepository(u.getDB(ctx), u.logger)
}

// GetVerificationRepository returns a verification repository bound to the transaction in ctx
func (u *UnitOfWork) GetVerificationRepository(ctx context.Context) persistence.VerificationRepository {
	return repository.NewVerificationRepository(u.getDB(ctx), u.logger)
}

// getDB resolves the transaction from ctx, falling back to the base handle
func (u *UnitOfWork) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok && tx != nil {
		return tx.WithContext(ctx)
	}
	return u.db.WithContext(ctx)
}
