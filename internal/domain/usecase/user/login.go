package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
)

// Login checks credentials and returns a session token.
// An unknown email and a wrong password fail the same way.
func (u *UserUseCase) Login(ctx context.Context, email, password string) (string, error) {
	email, err := entity.NormalizeEmail(email)
	if err != nil {
		return "", errs.ErrInvalidCredentials
	}

	user, err := u.uow.GetUserRepository(ctx).GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrUserNotFound) {
		return "", errs.ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !u.hasher.Compare(user.PasswordHash, password) {
		u.logger.Debug("Login rejected", map[string]any{
			"user_id": user.ID,
		})
		return "", errs.ErrInvalidCredentials
	}
	return u.issueToken(user)
}

// RequestPasswordReset mails a reset code when the account exists.
// Unknown addresses succeed silently so callers cannot discover accounts.
func (u *UserUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	email, err := entity.NormalizeEmail(email)
	if err != nil {
		return err
	}

	user, err := u.uow.GetUserRepository(ctx).GetByEmail(ctx, email)
	if errors.Is(err, errs.ErrUserNotFound) {
		u.logger.Debug("Password reset requested for unknown email", nil)
		return nil
	}
	if err != nil {
		return err
	}

	code, codeHash, err := u.newCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}

	now := u.timeProvider.Now()
	reset := &entity.VerificationCode{
		Email:     user.Email,
		Purpose:   entity.PurposeReset,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(u.opts.CodeTTL),
		CreatedAt: now,
	}
	if err := u.uow.GetVerificationRepository(ctx).Upsert(ctx, reset); err != nil {
		return err
	}
	return u.mailer.SendCode(ctx, user.Email, code, entity.PurposeReset)
}

// ResetPassword replaces the password after checking the reset code
func (u *UserUseCase) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	email, err := entity.NormalizeEmail(email)
	if err != nil {
		return err
	}
	if err := entity.ValidatePassword(newPassword); err != nil {
		return err
	}

	reset, err := u.uow.GetVerificationRepository(ctx).Get(ctx, email, entity.PurposeReset)
	if errors.Is(err, errs.ErrVerificationNotFound) {
		return errs.ErrInvalidVerificationCode
	}
	if err != nil {
		return err
	}
	if err := u.checkCode(ctx, reset, code); err != nil {
		return err
	}

	passwordHash, err := u.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	return persistence.WithinTransaction(ctx, u.uow, func(txCtx context.Context) error {
		users := u.uow.GetUserRepository(txCtx)
		user, err := users.GetByEmail(txCtx, email)
		if err != nil {
			return err
		}
		user.PasswordHash = passwordHash
		user.UpdatedAt = u.timeProvider.Now()
		if err := users.Update(txCtx, user); err != nil {
			return err
		}
		return u.uow.GetVerificationRepository(txCtx).Delete(txCtx, reset.ID)
	})
}
