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

// SavingsRepository implements persistence.SavingsRepository using GORM
type SavingsRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewSavingsRepository creates a new SavingsRepository instance
func NewSavingsRepository(db *gorm.DB, logger coreport.Logger) *SavingsRepository {
	return &SavingsRepository{db: db, logger: logger, errorMapper: NewErrorMapper(logger)}
}

func goalToEntity(m *model.SavingsGoal) *entity.SavingsGoal {
	return &entity.SavingsGoal{
		ID:          m.ID,
		UserID:      m.UserID,
		Month:       monthFromDate(m.Month),
		InitialGoal: m.InitialGoal,
		CurrentGoal: m.CurrentGoal,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func monthlyToEntity(m *model.MonthlySavings) *entity.MonthlySavings {
	return &entity.MonthlySavings{
		ID:          m.ID,
		UserID:      m.UserID,
		Month:       monthFromDate(m.Month),
		SavedAmount: m.SavedAmount,
		SavingGoal:  m.SavingGoal,
		Status:      entity.SavingsStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// GetGoal returns the goal of a month
func (r *SavingsRepository) GetGoal(ctx context.Context, userID uint64, month entity.Month) (*entity.SavingsGoal, error) {
	var m model.SavingsGoal
	err := r.db.WithContext(ctx).Where("user_id = ? AND month = ?", userID, month.Start()).First(&m).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "getting savings goal", errs.ErrSavingsGoalNotFound, nil)
	}
	return goalToEntity(&m), nil
}

// UpsertGoal creates or replaces the goal of (user, month) and sets its ID
func (r *SavingsRepository) UpsertGoal(ctx context.Context, goal *entity.SavingsGoal) error {
	m := &model.SavingsGoal{
		UserID:      goal.UserID,
		Month:       goal.Month.Start(),
		InitialGoal: goal.InitialGoal,
		CurrentGoal: goal.CurrentGoal,
	}
	err := r.db.WithContext(ctx).
		Clauses(upsertOn([]string{"user_id", "month"}, "initial_goal", "current_goal", "updated_at")).
		Create(m).Error
	if err != nil {
		return r.errorMapper.MapError(err, "upserting savings goal", nil, nil)
	}

	stored, err := r.GetGoal(ctx, goal.UserID, goal.Month)
	if err != nil {
		return err
	}
	goal.ID = stored.ID
	goal.CreatedAt = stored.CreatedAt
	goal.UpdatedAt = stored.UpdatedAt
	return nil
}

// DecrementCurrentGoal lowers the remaining goal by amount, floored at zero.
// GREATEST exists on both postgres and mysql.
func (r *SavingsRepository) DecrementCurrentGoal(ctx context.Context, id uint64, amount decimal.Decimal) error {
	err := r.db.WithContext(ctx).Model(&model.SavingsGoal{}).
		Where("id = ?", id).
		Update("current_goal", gorm.Expr("GREATEST(current_goal - ?, 0)", amount)).Error
	return r.errorMapper.MapError(err, "updating current goal", errs.ErrSavingsGoalNotFound, nil)
}

// UpsertMonthly creates or replaces the record of (user, month) and sets its ID
func (r *SavingsRepository) UpsertMonthly(ctx context.Context, savings *entity.MonthlySavings) error {
	m := &model.MonthlySavings{
		UserID:      savings.UserID,
		Month:       savings.Month.Start(),
		SavedAmount: savings.SavedAmount,
		SavingGoal:  savings.SavingGoal,
		Status:      string(savings.Status),
	}
	err := r.db.WithContext(ctx).
		Clauses(upsertOn([]string{"user_id", "month"}, "saved_amount", "saving_goal", "status", "updated_at")).
		Create(m).Error
	if err != nil {
		return r.errorMapper.MapError(err, "upserting monthly savings", nil, nil)
	}

	var stored model.MonthlySavings
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND month = ?", savings.UserID, savings.Month.Start()).
		First(&stored).Error
	if err != nil {
		return r.errorMapper.MapError(err, "reading monthly savings", nil, nil)
	}
	savings.ID = stored.ID
	savings.CreatedAt = stored.CreatedAt
	savings.UpdatedAt = stored.UpdatedAt
	return nil
}

// ListMonthly returns records with from <= month <= to, oldest first
func (r *SavingsRepository) ListMonthly(ctx context.Context, userID uint64, from, to entity.Month) ([]*entity.MonthlySavings, error) {
	var models []model.MonthlySavings
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND month >= ? AND month <= ?", userID, from.Start(), to.Start()).
		Order("month").
		Find(&models).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "listing monthly savings", nil, nil)
	}

	records := make([]*entity.MonthlySavings, len(models))
	for i := range models {
		records[i] = monthlyToEntity(&models[i])
	}
	return records, nil
}

// MonthClosureRepository implements persistence.MonthClosureRepository using GORM
type MonthClosureRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewMonthClosureRepository creates a new MonthClosureRepository instance
func NewMonthClosureRepository(db *gorm.DB, logger coreport.Logger) *MonthClosureRepository {
	return &MonthClosureRepository{db: db, logger: logger, errorMapper: NewErrorMapper(logger)}
}

// Get returns the closure of (user, month)
func (r *MonthClosureRepository) Get(ctx context.Context, userID uint64, month entity.Month) (*entity.MonthClosure, error) {
	var m model.MonthClosure
	err := r.db.WithContext(ctx).Where("user_id = ? AND month = ?", userID, month.Start()).First(&m).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "getting month closure", errs.ErrNotFound, nil)
	}
	return closureToEntity(&m), nil
}

// Latest returns the user's most recent closure
func (r *MonthClosureRepository) Latest(ctx context.Context, userID uint64) (*entity.MonthClosure, error) {
	var m model.MonthClosure
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("month DESC").First(&m).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "getting latest month closure", errs.ErrNotFound, nil)
	}
	return closureToEntity(&m), nil
}

func closureToEntity(m *model.MonthClosure) *entity.MonthClosure {
	return &entity.MonthClosure{
		ID:            m.ID,
		UserID:        m.UserID,
		Month:         monthFromDate(m.Month),
		BudgetsClosed: m.BudgetsClosed,
		BudgetTotal:   m.BudgetTotal,
		SavedAmount:   m.SavedAmount,
		ClosedAt:      m.ClosedAt,
	}
}

// Create inserts a closure and sets its ID
func (r *MonthClosureRepository) Create(ctx context.Context, closure *entity.MonthClosure) error {
	m := &model.MonthClosure{
		UserID:        closure.UserID,
		Month:         closure.Month.Start(),
		BudgetsClosed: closure.BudgetsClosed,
		BudgetTotal:   closure.BudgetTotal,
		SavedAmount:   closure.SavedAmount,
		ClosedAt:      closure.ClosedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.errorMapper.MapError(err, "recording month closure", nil, errs.ErrDuplicate)
	}
	closure.ID = m.ID
	return nil
}
