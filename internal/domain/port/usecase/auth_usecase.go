package usecase

import (
	"context"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// RegisterRequest represents a sign-up attempt
type RegisterRequest struct {
	Name     string
	Email    string
	Password string
}

// RegisterResult is either a session token or a pending email verification
type RegisterResult struct {
	Token               string
	PendingVerification bool
	Email               string
}

// AuthUseCase defines account and session operations
type AuthUseCase interface {
	// Register creates an account, or stages it until the emailed code is confirmed
	Register(ctx context.Context, req RegisterRequest) (*RegisterResult, error)

	// VerifyRegistration confirms a staged account and returns a session token
	VerifyRegistration(ctx context.Context, email, code string) (string, error)

	// ResendCode mails a fresh code for a staged account
	ResendCode(ctx context.Context, email string) error

	// Login checks credentials and returns a session token
	Login(ctx context.Context, email, password string) (string, error)

	// RequestPasswordReset mails a reset code when the account exists
	RequestPasswordReset(ctx context.Context, email string) error

	// ResetPassword replaces the password after checking the reset code
	ResetPassword(ctx context.Context, email, code, newPassword string) error

	// UpdateUser applies one account change after checking the current password
	UpdateUser(ctx context.Context, userID uint64, currentPassword string, update entity.UserUpdate) error

	// DeleteAccount removes the user and everything it owns after checking the password
	DeleteAccount(ctx context.Context, userID uint64, password string) error

	// Authenticate resolves a session token to its identity
	Authenticate(token string) (*entity.Identity, error)
}
