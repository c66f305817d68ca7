package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/model"
)

// UserRepository implements persistence.UserRepository using GORM
type UserRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:          db,
		logger:      logger,
		errorMapper: NewErrorMapper(logger),
	}
}

func userToEntity(m *model.User) *entity.User {
	return &entity.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func userToModel(u *entity.User) *model.User {
	return &model.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

// Create stores a new user and sets its ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	m := userToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.errorMapper.MapError(err, "creating user", nil, errs.ErrEmailTaken)
	}
	user.ID = m.ID

	r.logger.Info("User created", map[string]any{"user_id": user.ID})
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).First(&m, id).Error; err != nil {
		return nil, r.errorMapper.MapError(err, "getting user", errs.ErrUserNotFound, nil)
	}
	return userToEntity(&m), nil
}

// GetByEmail retrieves a user by normalized email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var m model.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		return nil, r.errorMapper.MapError(err, "getting user by email", errs.ErrUserNotFound, nil)
	}
	return userToEntity(&m), nil
}

// ExistsByEmail reports whether the email is registered
func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, r.errorMapper.MapError(err, "checking email", nil, nil)
	}
	return count > 0, nil
}

// Update saves name, email and password hash
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	result := r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"name":          user.Name,
			"email":         user.Email,
			"password_hash": user.PasswordHash,
			"updated_at":    user.UpdatedAt,
		})
	if result.Error != nil {
		return r.errorMapper.MapError(result.Error, "updating user", errs.ErrUserNotFound, errs.ErrEmailTaken)
	}

	// mysql reports zero rows when nothing changed, so confirm the row exists
	if result.RowsAffected == 0 {
		if _, err := r.GetByID(ctx, user.ID); err != nil {
			return err
		}
	}
	return nil
}

// Delete removes the user and everything the user owns in one transaction.
// Inside a unit of work gorm nests this as a savepoint.
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		owned := []any{
			&model.Transaction{},
			&model.Budget{},
			&model.BudgetHistory{},
			&model.Category{},
			&model.SavingsGoal{},
			&model.MonthlySavings{},
			&model.MonthClosure{},
		}
		for _, m := range owned {
			if err := tx.Where("user_id = ?", id).Delete(m).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("email = ?", user.Email).Delete(&model.VerificationCode{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, id).Error
	})
	if err != nil {
		return r.errorMapper.MapError(err, "deleting user", errs.ErrUserNotFound, nil)
	}

	r.logger.Info("User deleted", map[string]any{"user_id": id})
	return nil
}

// ListIDs returns the IDs of all users in ascending order
func (r *UserRepository) ListIDs(ctx context.Context) ([]uint64, error) {
	var ids []uint64
	if err := r.db.WithContext(ctx).Model(&model.User{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, r.errorMapper.MapError(err, "listing user ids", nil, nil)
	}
	return ids, nil
}

// VerificationRepository implements persistence.VerificationRepository using GORM
type VerificationRepository struct {
	db          *gorm.DB
	logger      coreport.Logger
	errorMapper *ErrorMapper
}

// NewVerificationRepository creates a new VerificationRepository instance
func NewVerificationRepository(db *gorm.DB, logger coreport.Logger) *VerificationRepository {
	return &VerificationRepository{db: db, logger: logger, errorMapper: NewErrorMapper(logger)}
}

func verificationToEntity(m *model.VerificationCode) *entity.VerificationCode {
	return &entity.VerificationCode{
		ID:           m.ID,
		Email:        m.Email,
		Purpose:      entity.VerificationPurpose(m.Purpose),
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		CodeHash:     m.CodeHash,
		Attempts:     m.Attempts,
		ExpiresAt:    m.ExpiresAt,
		CreatedAt:    m.CreatedAt,
	}
}

// Upsert replaces the code for (email, purpose) and sets its ID
func (r *VerificationRepository) Upsert(ctx context.Context, code *entity.VerificationCode) error {
	m := &model.VerificationCode{
		Email:        code.Email,
		Purpose:      string(code.Purpose),
		Name:         code.Name,
		PasswordHash: code.PasswordHash,
		CodeHash:     code.CodeHash,
		Attempts:     code.Attempts,
		ExpiresAt:    code.ExpiresAt,
		CreatedAt:    code.CreatedAt,
	}
	err := r.db.WithContext(ctx).
		Clauses(upsertOn([]string{"email", "purpose"},
			"name", "password_hash", "code_hash", "attempts", "expires_at", "created_at")).
		Create(m).Error
	if err != nil {
		return r.errorMapper.MapError(err, "storing verification code", nil, nil)
	}

	stored, err := r.Get(ctx, code.Email, code.Purpose)
	if err != nil {
		return err
	}
	code.ID = stored.ID
	return nil
}

// Get returns the code for (email, purpose)
func (r *VerificationRepository) Get(ctx context.Context, email string, purpose entity.VerificationPurpose) (*entity.VerificationCode, error) {
	var m model.VerificationCode
	err := r.db.WithContext(ctx).Where("email = ? AND purpose = ?", email, string(purpose)).First(&m).Error
	if err != nil {
		return nil, r.errorMapper.MapError(err, "getting verification code", errs.ErrVerificationNotFound, nil)
	}
	return verificationToEntity(&m), nil
}

// IncrementAttempts records a wrong guess
func (r *VerificationRepository) IncrementAttempts(ctx context.Context, id uint64) error {
	err := r.db.WithContext(ctx).Model(&model.VerificationCode{}).
		Where("id = ?", id).
		UpdateColumn("attempts", gorm.Expr("attempts + 1")).Error
	return r.errorMapper.MapError(err, "counting verification attempt", nil, nil)
}

// Delete removes a code after use
func (r *VerificationRepository) Delete(ctx context.Context, id uint64) error {
	err := r.db.WithContext(ctx).Delete(&model.VerificationCode{}, id).Error
	return r.errorMapper.MapError(err, "deleting verification code", nil, nil)
}
