package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/persistence"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// Register creates an account, or stages it until the emailed code is confirmed
func (u *UserUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*usecase.RegisterResult, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errs.NewValidationError("name", "is required", nil)
	}
	email, err := entity.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if err := entity.ValidatePassword(req.Password); err != nil {
		return nil, err
	}

	exists, err := u.uow.GetUserRepository(ctx).ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errs.ErrEmailTaken
	}

	passwordHash, err := u.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	if !u.opts.EmailVerification {
		user, err := entity.NewUser(name, email, passwordHash, u.timeProvider)
		if err != nil {
			return nil, err
		}
		if err := u.uow.GetUserRepository(ctx).Create(ctx, user); err != nil {
			return nil, err
		}
		token, err := u.issueToken(user)
		if err != nil {
			return nil, err
		}

		u.logger.Info("User registered", map[string]any{
			"user_id": user.ID,
		})
		return &usecase.RegisterResult{Token: token, Email: email}, nil
	}

	code, codeHash, err := u.newCode()
	if err != nil {
		return nil, fmt.Errorf("generate code: %w", err)
	}

	now := u.timeProvider.Now()
	pending := &entity.VerificationCode{
		Email:        email,
		Purpose:      entity.PurposeRegister,
		Name:         name,
		PasswordHash: passwordHash,
		CodeHash:     codeHash,
		ExpiresAt:    now.Add(u.opts.CodeTTL),
		CreatedAt:    now,
	}
	if err := u.uow.GetVerificationRepository(ctx).Upsert(ctx, pending); err != nil {
		return nil, err
	}
	if err := u.mailer.SendCode(ctx, email, code, entity.PurposeRegister); err != nil {
		return nil, fmt.Errorf("send verification code: %w", err)
	}

	u.logger.Info("Registration pending email verification", map[string]any{
		"email": email,
	})
	return &usecase.RegisterResult{PendingVerification: true, Email: email}, nil
}

// VerifyRegistration confirms a staged account and returns a session token
func (u *UserUseCase) VerifyRegistration(ctx context.Context, email, code string) (string, error) {
	email, err := entity.NormalizeEmail(email)
	if err != nil {
		return "", err
	}

	pending, err := u.uow.GetVerificationRepository(ctx).Get(ctx, email, entity.PurposeRegister)
	if errors.Is(err, errs.ErrVerificationNotFound) {
		return "", errs.ErrInvalidVerificationCode
	}
	if err != nil {
		return "", err
	}
	if err := u.checkCode(ctx, pending, code); err != nil {
		return "", err
	}

	user, err := entity.NewUser(pending.Name, pending.Email, pending.PasswordHash, u.timeProvider)
	if err != nil {
		return "", err
	}

	err = persistence.WithinTransaction(ctx, u.uow, func(txCtx context.Context) error {
		if err := u.uow.GetUserRepository(txCtx).Create(txCtx, user); err != nil {
			return err
		}
		return u.uow.GetVerificationRepository(txCtx).Delete(txCtx, pending.ID)
	})
	if err != nil {
		return "", err
	}

	u.logger.Info("User registered after email verification", map[string]any{
		"user_id": user.ID,
	})
	return u.issueToken(user)
}

// ResendCode mails a fresh code for a staged account
func (u *UserUseCase) ResendCode(ctx context.Context, email string) error {
	email, err := entity.NormalizeEmail(email)
	if err != nil {
		return err
	}

	repo := u.uow.GetVerificationRepository(ctx)
	pending, err := repo.Get(ctx, email, entity.PurposeRegister)
	if err != nil {
		return err
	}

	code, codeHash, err := u.newCode()
	if err != nil {
		return fmt.Errorf("generate code: %w", err)
	}
	pending.CodeHash = codeHash
	pending.Attempts = 0
	pending.ExpiresAt = u.timeProvider.Now().Add(u.opts.CodeTTL)
	if err := repo.Upsert(ctx, pending); err != nil {
		return err
	}
	return u.mailer.SendCode(ctx, email, code, entity.PurposeRegister)
}
