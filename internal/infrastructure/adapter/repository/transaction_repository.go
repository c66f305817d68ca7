package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/model"
)

// TransactionRepository implements persistence.TransactionRepository using GORM
type TransactionRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewTransactionRepository creates a new TransactionRepository instance
func NewTransactionRepository(db *gorm.DB, logger coreport.Logger) *TransactionRepository {
	return &TransactionRepository{db: db, logger: logger, errorMapper: NewErrorMapper(logger)}
}

func transactionToModel(t *entity.Transaction) *model.Transaction {
	return &model.Transaction{
		ID:          t.ID,
		UserID:      t.UserID,
		Date:        t.Date,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Account:     t.Account,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func transactionToEntity(m *model.Transaction) *entity.Transaction {
	return &entity.Transaction{
		ID:          m.ID,
		UserID:      m.UserID,
		Date:        entity.DateOnly(m.Date.UTC()),
		Description: m.Description,
		Amount:      m.Amount,
		Type:        entity.TransactionType(m.Type),
		Category:    m.Category,
		Account:     m.Account,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// scoped restricts a query to one user's rows inside a half-open date window
func (r *TransactionRepository) scoped(ctx context.Context, userID uint64, window entity.DateRange) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("user_id = ? AND date >= ? AND date < ?", userID, window.From, window.To)
}

// Create stores a new transaction and sets its ID
func (r *TransactionRepository) Create(ctx context.Context, tx *entity.Transaction) error {
	m := transactionToModel(tx)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.errorMapper.MapError(err, "creating transaction", nil, nil)
	}
	tx.ID = m.ID

	r.logger.Debug("Transaction stored", map[string]any{
		"transaction_id": tx.ID,
		"user_id":        tx.UserID,
		"type":           tx.Type,
	})
	return nil
}

// Update saves the mutable fields of an existing transaction
func (r *TransactionRepository) Update(ctx context.Context, tx *entity.Transaction) error {
	result := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("id = ? AND user_id = ?", tx.ID, tx.UserID).
		Updates(map[string]any{
			"date":        tx.Date,
			"description": tx.Description,
			"amount":      tx.Amount,
			"type":        string(tx.Type),
			"category":    tx.Category,
			"account":     tx.Account,
			"updated_at":  tx.UpdatedAt,
		})
	if result.Error != nil {
		return r.errorMapper.MapError(result.Error, "updating transaction", errs.ErrTransactionNotFound, nil)
	}
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, tx.UserID, tx.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(ctx context.Context, userID, id uint64) error {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Transaction{})
	if result.Error != nil {
		return r.errorMapper.MapError(result.Error, "deleting transaction", errs.ErrTransactionNotFound, nil)
	}
	if result.RowsAffected == 0 {
		return errs.ErrTransactionNotFound
	}
	return nil
}

// GetByID retrieves one transaction of the user
func (r *TransactionRepository) GetByID(ctx context.Context, userID, id uint64) (*entity.Transaction, error) {
	var m model.Transaction
	err := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).First(&m).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "getting transaction", errs.ErrTransactionNotFound, nil)
	}
	return transactionToEntity(&m), nil
}

// List returns transactions matching filter, newest first
func (r *TransactionRepository) List(ctx context.Context, filter entity.TransactionFilter) ([]*entity.Transaction, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", filter.UserID)
	if filter.Type != "" {
		q = q.Where("type = ?", string(filter.Type))
	}
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Account != "" {
		q = q.Where("account = ?", filter.Account)
	}
	if filter.From != nil {
		q = q.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		q = q.Where("date < ?", *filter.To)
	}
	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rows []model.Transaction
	if err := q.Order("date DESC, id DESC").Find(&rows).Error; err != nil {
		return nil, r.errorMapper.MapError(err, "listing transactions", nil, nil)
	}

	result := make([]*entity.Transaction, len(rows))
	for i := range rows {
		result[i] = transactionToEntity(&rows[i])
	}
	return result, nil
}

type typeTotalRow struct {
	Type  string
	Total decimal.Decimal
}

// SumByType returns income and expense totals inside window
func (r *TransactionRepository) SumByType(ctx context.Context, userID uint64, window entity.DateRange) (entity.TypeTotals, error) {
	var rows []typeTotalRow
	err := r.scoped(ctx, userID, window).
		Select("type, SUM(amount) AS total").
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return entity.TypeTotals{}, r.errorMapper.MapError(err, "summing by type", nil, nil)
	}

	totals := entity.TypeTotals{Income: decimal.Zero, Expense: decimal.Zero}
	for _, row := range rows {
		switch entity.TransactionType(row.Type) {
		case entity.TypeIncome:
			totals.Income = row.Total
		case entity.TypeExpense:
			totals.Expense = row.Total
		}
	}
	return totals, nil
}

type categoryTotalRow struct {
	Category string
	Total    decimal.Decimal
}

func toCategoryTotals(rows []categoryTotalRow) []entity.CategoryTotal {
	totals := make([]entity.CategoryTotal, len(rows))
	for i, row := range rows {
		totals[i] = entity.CategoryTotal{Category: row.Category, Total: row.Total}
	}
	return totals
}

// SumByCategory returns per-category totals of one type, largest first
func (r *TransactionRepository) SumByCategory(ctx context.Context, userID uint64, txType entity.TransactionType, window entity.DateRange) ([]entity.CategoryTotal, error) {
	var rows []categoryTotalRow
	err := r.scoped(ctx, userID, window).
		Where("type = ?", string(txType)).
		Select("category, SUM(amount) AS total").
		Group("category").
		Order("total DESC, category").
		Scan(&rows).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "summing by category", nil, nil)
	}
	return toCategoryTotals(rows), nil
}

// AverageByCategory returns per-category average amounts of one type
func (r *TransactionRepository) AverageByCategory(ctx context.Context, userID uint64, txType entity.TransactionType, window entity.DateRange) ([]entity.CategoryTotal, error) {
	var rows []categoryTotalRow
	err := r.scoped(ctx, userID, window).
		Where("type = ?", string(txType)).
		Select("category, AVG(amount) AS total").
		Group("category").
		Order("category").
		Scan(&rows).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "averaging by category", nil, nil)
	}
	return toCategoryTotals(rows), nil
}

type dailyTotalRow struct {
	Date  time.Time
	Type  string
	Total decimal.Decimal
}

// DailyTotals returns per-day, per-type totals inside window
func (r *TransactionRepository) DailyTotals(ctx context.Context, userID uint64, window entity.DateRange) ([]entity.DailyTotal, error) {
	var rows []dailyTotalRow
	err := r.scoped(ctx, userID, window).
		Select("date, type, SUM(amount) AS total").
		Group("date, type").
		Order("date").
		Scan(&rows).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "summing by day", nil, nil)
	}

	totals := make([]entity.DailyTotal, len(rows))
	for i, row := range rows {
		totals[i] = entity.DailyTotal{
			Date:  entity.DateOnly(row.Date.UTC()),
			Type:  entity.TransactionType(row.Type),
			Total: row.Total,
		}
	}
	return totals, nil
}

// EarliestDate returns the date of the user's first transaction, or nil if there is none
func (r *TransactionRepository) EarliestDate(ctx context.Context, userID uint64) (*time.Time, error) {
	var row struct {
		Earliest *time.Time
	}
	err := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Select("MIN(date) AS earliest").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "finding first transaction", nil, nil)
	}
	if row.Earliest == nil {
		return nil, nil
	}
	d := entity.DateOnly(row.Earliest.UTC())
	return &d, nil
}

// ReassignCategory moves transactions from one category to another
func (r *TransactionRepository) ReassignCategory(ctx context.Context, userID uint64, from, account, to string) (int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Transaction{}).
		Where("user_id = ? AND category = ?", userID, from)
	if account != "" {
		q = q.Where("account = ?", account)
	}

	result := q.Update("category", to)
	if result.Error != nil {
		return 0, r.errorMapper.MapError(result.Error, "reassigning category", nil, nil)
	}
	return result.RowsAffected, nil
}
