package user

import (
	"context"
	"fmt"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	cacheport "github.com/fintrack/fintrack-api/internal/domain/port/cache"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
)

// confirmPassword loads the user and checks password against its hash
func (u *UserUseCase) confirmPassword(ctx context.Context, userID uint64, password string) (*entity.User, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	user, err := u.uow.GetUserRepository(ctx).GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !u.hasher.Compare(user.PasswordHash, password) {
		return nil, errs.ErrIncorrectPassword
	}
	return user, nil
}

// UpdateUser applies one account change after checking the current password
func (u *UserUseCase) UpdateUser(ctx context.Context, userID uint64, currentPassword string, update entity.UserUpdate) error {
	user, err := u.confirmPassword(ctx, userID, currentPassword)
	if err != nil {
		return err
	}
	if update == nil {
		return errs.ErrInvalidField
	}
	if err := update.Validate(); err != nil {
		return err
	}

	switch change := update.(type) {
	case entity.ChangeName:
		user.Name = change.Name

	case entity.ChangeEmail:
		email, err := entity.NormalizeEmail(change.Email)
		if err != nil {
			return err
		}
		if email != user.Email {
			exists, err := u.uow.GetUserRepository(ctx).ExistsByEmail(ctx, email)
			if err != nil {
				return err
			}
			if exists {
				return errs.ErrEmailTaken
			}
		}
		user.Email = email

	case entity.ChangePassword:
		hash, err := u.hasher.Hash(change.NewPassword)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = hash

	default:
		return errs.ErrInvalidField
	}

	user.UpdatedAt = u.timeProvider.Now()
	if err := u.uow.GetUserRepository(ctx).Update(ctx, user); err != nil {
		return err
	}

	u.logger.Info("User updated", map[string]any{
		"user_id": userID,
		"field":   update.Field(),
	})
	return nil
}

// DeleteAccount removes the user and everything it owns after checking the password
func (u *UserUseCase) DeleteAccount(ctx context.Context, userID uint64, password string) error {
	if _, err := u.confirmPassword(ctx, userID, password); err != nil {
		return err
	}

	err := persistence.WithinTransaction(ctx, u.uow, func(txCtx context.Context) error {
		return u.uow.GetUserRepository(txCtx).Delete(txCtx, userID)
	})
	if err != nil {
		u.logger.Error("Failed to delete account", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return err
	}

	if err := u.cache.DeleteByPrefix(ctx, cacheport.UserPrefix(userID)); err != nil {
		u.logger.Warn("Failed to drop cached reports of deleted user", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	u.logger.Info("User deleted", map[string]any{
		"user_id": userID,
	})
	return nil
}
