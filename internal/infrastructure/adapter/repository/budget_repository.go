package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/model"
)

// BudgetRepository implements persistence.BudgetRepository using GORM
type BudgetRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewBudgetRepository creates a new BudgetRepository instance
func NewBudgetRepository(db *gorm.DB, logger coreport.Logger) *BudgetRepository {
	return &BudgetRepository{db: db, logger: logger, errorMapper: NewErrorMapper(logger)}
}

type budgetRow struct {
	ID           uint64
	UserID       uint64
	CategoryID   uint64
	CategoryName string
	Amount       decimal.Decimal
}

func (b budgetRow) toEntity() *entity.Budget {
	return &entity.Budget{
		ID:           b.ID,
		UserID:       b.UserID,
		CategoryID:   b.CategoryID,
		CategoryName: b.CategoryName,
		Amount:       b.Amount,
	}
}

// withCategory selects budgets joined to their category name
func (r *BudgetRepository) withCategory(ctx context.Context, userID uint64) *gorm.DB {
	return r.db.WithContext(ctx).Table("budgets").
		Select("budgets.id, budgets.user_id, budgets.category_id, categories.name AS category_name, budgets.amount").
		Joins("JOIN categories ON categories.id = budgets.category_id").
		Where("budgets.user_id = ?", userID)
}

// List returns the user's budgets with their category names
func (r *BudgetRepository) List(ctx context.Context, userID uint64) ([]*entity.Budget, error) {
	var rows []budgetRow
	if err := r.withCategory(ctx, userID).Order("categories.name, budgets.id").Scan(&rows).Error; err != nil {
		return nil, r.errorMapper.MapError(err, "listing budgets", nil, nil)
	}

	budgets := make([]*entity.Budget, len(rows))
	for i, row := range rows {
		budgets[i] = row.toEntity()
	}
	return budgets, nil
}

func (r *BudgetRepository) get(ctx context.Context, userID, id uint64) (*entity.Budget, error) {
	var rows []budgetRow
	if err := r.withCategory(ctx, userID).Where("budgets.id = ?", id).Limit(1).Scan(&rows).Error; err != nil {
		return nil, r.errorMapper.MapError(err, "getting budget", errs.ErrBudgetNotFound, nil)
	}
	if len(rows) == 0 {
		return nil, errs.ErrBudgetNotFound
	}
	return rows[0].toEntity(), nil
}

// Upsert creates or replaces the budget of (user, category) and sets its ID
func (r *BudgetRepository) Upsert(ctx context.Context, budget *entity.Budget) error {
	m := &model.Budget{UserID: budget.UserID, CategoryID: budget.CategoryID, Amount: budget.Amount}
	err := r.db.WithContext(ctx).
		Omit("Category").
		Clauses(upsertOn([]string{"user_id", "category_id"}, "amount")).
		Create(m).Error
	if err != nil {
		return r.errorMapper.MapError(err, "upserting budget", nil, nil)
	}

	var stored model.Budget
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND category_id = ?", budget.UserID, budget.CategoryID).
		First(&stored).Error
	if err != nil {
		return r.errorMapper.MapError(err, "reading upserted budget", errs.ErrBudgetNotFound, nil)
	}
	budget.ID = stored.ID
	return nil
}

// UpdateAmount changes one budget and returns it
func (r *BudgetRepository) UpdateAmount(ctx context.Context, userID, id uint64, amount decimal.Decimal) (*entity.Budget, error) {
	budget, err := r.get(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	err = r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("amount", amount).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "updating budget", errs.ErrBudgetNotFound, nil)
	}

	budget.Amount = amount
	return budget, nil
}

// Delete removes one budget
func (r *BudgetRepository) Delete(ctx context.Context, userID, id uint64) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Budget{})
	if result.Error != nil {
		return r.errorMapper.MapError(result.Error, "deleting budget", errs.ErrBudgetNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrBudgetNotFound
	}
	return nil
}

// DeleteByCategories removes the budgets of the given categories
func (r *BudgetRepository) DeleteByCategories(ctx context.Context, userID uint64, categoryIDs []uint64) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND category_id IN ?", userID, categoryIDs).
		Delete(&model.Budget{}).Error
	return r.errorMapper.MapError(err, "deleting category budgets", nil, nil)
}

// ResetAll sets every budget of the user to zero
func (r *BudgetRepository) ResetAll(ctx context.Context, userID uint64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&model.Budget{}).
		Where("user_id = ?", userID).
		Update("amount", decimal.Zero)
	if result.Error != nil {
		return 0, r.errorMapper.MapError(result.Error, "resetting budgets", nil, nil)
	}
	return result.RowsAffected, nil
}

// UpsertHistory writes snapshot rows keyed by (user, month, category)
func (r *BudgetRepository) UpsertHistory(ctx context.Context, rows []*entity.MonthlyBudgetHistory) error {
	if len(rows) == 0 {
		return nil
	}

	models := make([]model.BudgetHistory, len(rows))
	for i, h := range rows {
		models[i] = model.BudgetHistory{
			UserID:    h.UserID,
			Month:     h.Month.Start(),
			Category:  h.Category,
			Budget:    h.Budget,
			Spent:     h.Spent,
			Remaining: h.Remaining,
		}
	}

	err := r.db.WithContext(ctx).
		Clauses(upsertOn([]string{"user_id", "month", "category"}, "budget", "spent", "remaining")).
		Create(&models).Error
	if err != nil {
		return r.errorMapper.MapError(err, "writing budget history", nil, nil)
	}

	for i := range rows {
		rows[i].ID = models[i].ID
	}
	return nil
}

// ListHistory returns snapshot rows with from <= month <= to, oldest first
func (r *BudgetRepository) ListHistory(ctx context.Context, userID uint64, from, to entity.Month) ([]*entity.MonthlyBudgetHistory, error) {
	var models []model.BudgetHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month >= ? AND month <= ?", userID, from.Start(), to.Start()).
		Order("month, category").
		Find(&models).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "listing budget history", nil, nil)
	}

	history := make([]*entity.MonthlyBudgetHistory, len(models))
	for i, m := range models {
		history[i] = &entity.MonthlyBudgetHistory{
			ID:        m.ID,
			UserID:    m.UserID,
			Month:     monthFromDate(m.Month),
			Category:  m.Category,
			Budget:    m.Budget,
			Spent:     m.Spent,
			Remaining: m.Remaining,
		}
	}
	return history, nil
}
