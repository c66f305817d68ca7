package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/model"
)

// CategoryRepository implements persistence.CategoryRepository using GORM
type CategoryRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewCategoryRepository creates a new CategoryRepository instance
func NewCategoryRepository(db *gorm.DB, logger coreport.Logger) *CategoryRepository {
	return &CategoryRepository{db: db, logger: logger, errorMapper: NewErrorMapper(logger)}
}

func categoryToEntity(m *model.Category) *entity.Category {
	return &entity.Category{ID: m.ID, UserID: m.UserID, Name: m.Name, Account: m.Account}
}

// Create inserts a category, ignoring an existing (user, name, account)
func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) (bool, error) {
	m := &model.Category{UserID: category.UserID, Name: category.Name, Account: category.Account}
	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(m)
	if result.Error != nil {
		return false, r.errorMapper.MapError(result.Error, "creating category", nil, nil)
	}
	if result.RowsAffected > 0 {
		category.ID = m.ID
	}
	return result.RowsAffected > 0, nil
}

// FindOrCreate returns the category, inserting it when missing
func (r *CategoryRepository) FindOrCreate(ctx context.Context, userID uint64, name, account string) (*entity.Category, error) {
	var m model.Category
	err := r.db.WithContext(ctx).
		Where(model.Category{UserID: userID, Name: name, Account: account}).
		FirstOrCreate(&m).Error
	if err != nil && NewErrorClassifier().IsDuplicateKeyError(err) {
		// lost a race with a concurrent insert; the row exists now
		err = r.db.WithContext(ctx).
			Where("user_id = ? AND name = ? AND account = ?", userID, name, account).
			First(&m).Error
	}
	if err != nil {
		return nil, r.errorMapper.MapError(err, "finding or creating category", nil, nil)
	}
	return categoryToEntity(&m), nil
}

// ListNames returns the names of one account, or distinct names across accounts
func (r *CategoryRepository) ListNames(ctx context.Context, userID uint64, account string) ([]string, error) {
	q := r.db.WithContext(ctx).Model(&model.Category{}).Where("user_id = ?", userID)
	if account != "" {
		q = q.Where("account = ?", account)
	}

	var names []string
	if err := q.Distinct("name").Order("name").Pluck("name", &names).Error; err != nil {
		return nil, r.errorMapper.MapError(err, "listing categories", nil, nil)
	}
	return names, nil
}

// Delete removes matching categories and returns their IDs
func (r *CategoryRepository) Delete(ctx context.Context, userID uint64, name, account string) ([]uint64, error) {
	q := r.db.WithContext(ctx).Model(&model.Category{}).Where("user_id = ? AND name = ?", userID, name)
	if account != "" {
		q = q.Where("account = ?", account)
	}

	var ids []uint64
	if err := q.Pluck("id", &ids).Error; err != nil {
		return nil, r.errorMapper.MapError(err, "finding categories to delete", nil, nil)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.Category{}).Error; err != nil {
		return nil, r.errorMapper.MapError(err, "deleting categories", nil, nil)
	}

	r.logger.Debug("Categories deleted", map[string]any{
		"user_id": userID,
		"name":    name,
		"count":   len(ids),
	})
	return ids, nil
}
