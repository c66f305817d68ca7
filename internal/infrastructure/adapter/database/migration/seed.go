package migration

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/security"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/model"
)

// Demo account credentials
const (
	DemoEmail    = "demo@fintrack.local"
	DemoPassword = "demo-password"
	demoName     = "Demo User"
)

type demoEntry struct {
	day         int
	description string
	amount      string
	txType      entity.TransactionType
	category    string
}

var demoMonth = entity.Month{Year: 2025, Month: time.March}

var demoTransactions = []demoEntry{
	{1, "March salary", "10000.00", entity.TypeIncome, "Salary"},
	{4, "Weekly shop", "650.00", entity.TypeExpense, "Groceries"},
	{9, "Electricity and water", "900.00", entity.TypeExpense, "Utilities"},
	{12, "Logo design", "1500.00", entity.TypeIncome, "Freelance"},
	{14, "Weekly shop", "580.00", entity.TypeExpense, "Groceries"},
	{20, "Dinner out", "600.00", entity.TypeExpense, "Dining"},
	{25, "Weekly shop", "570.00", entity.TypeExpense, "Groceries"},
}

var demoBudgets = map[string]string{
	"Groceries": "1500.00",
	"Utilities": "1000.00",
	"Dining":    "400.00",
}

// SeedDemo creates a demo user with one month of ledger data.
// It does nothing when the demo user already exists.
func SeedDemo(ctx context.Context, db *gorm.DB, hasher security.PasswordHasher, timeProvider coreport.TimeProvider, logger coreport.Logger) error {
	var existing model.User
	err := db.WithContext(ctx).Where("email = ?", DemoEmail).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := hasher.Hash(DemoPassword)
	if err != nil {
		return err
	}
	now := timeProvider.Now().UTC()

	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		user := model.User{Name: demoName, Email: DemoEmail, PasswordHash: hash, CreatedAt: now, UpdatedAt: now}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		categories := map[string]uint64{}
		for _, e := range demoTransactions {
			if _, ok := categories[e.category]; ok {
				continue
			}
			c := model.Category{UserID: user.ID, Name: e.category, Account: entity.DefaultAccount}
			if err := tx.Create(&c).Error; err != nil {
				return err
			}
			categories[e.category] = c.ID
		}

		for _, e := range demoTransactions {
			row := model.Transaction{
				UserID:      user.ID,
				Date:        time.Date(demoMonth.Year, demoMonth.Month, e.day, 0, 0, 0, 0, time.UTC),
				Description: e.description,
				Amount:      decimal.RequireFromString(e.amount),
				Type:        string(e.txType),
				Category:    e.category,
				Account:     entity.DefaultAccount,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}

		for name, amount := range demoBudgets {
			b := model.Budget{UserID: user.ID, CategoryID: categories[name], Amount: decimal.RequireFromString(amount)}
			if err := tx.Omit("Category").Create(&b).Error; err != nil {
				return err
			}
		}

		goal, err := entity.NewSavingsGoal(user.ID, demoMonth, decimal.NewFromInt(4000))
		if err != nil {
			return err
		}
		for _, e := range demoTransactions {
			if e.txType == entity.TypeExpense {
				goal.ApplyExpense(decimal.RequireFromString(e.amount))
			}
		}
		return tx.Create(&model.SavingsGoal{
			UserID:      user.ID,
			Month:       demoMonth.Start(),
			InitialGoal: goal.InitialGoal,
			CurrentGoal: goal.CurrentGoal,
			CreatedAt:   now,
			UpdatedAt:   now,
		}).Error
	})
	if err != nil {
		logger.Error("Failed to seed demo data", map[string]any{"error": err})
		return err
	}

	logger.Info("Seeded demo user", map[string]any{
		"email": DemoEmail,
		"month": demoMonth.String(),
	})
	return nil
}
