package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	if ErrEmailTaken.Error() != "email already registered" {
		t.Errorf("ErrEmailTaken has unexpected message: %s", ErrEmailTaken.Error())
	}
	if ErrInvalidCredentials.Error() != "invalid credentials" {
		t.Errorf("ErrInvalidCredentials has unexpected message: %s", ErrInvalidCredentials.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InsufficientBalance", ErrInsufficientBalance, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidUserID", ErrInvalidUserID, 4003},
		{"InvalidTransactionType", ErrInvalidTransactionType, 4004},
		{"EmailTaken", ErrEmailTaken, 4009},
		{"InvalidToken", ErrInvalidToken, 4011},
		{"IncorrectPassword", ErrIncorrectPassword, 4030},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"TransactionNotFound", ErrTransactionNotFound, 4041},
		{"BudgetNotFound", ErrBudgetNotFound, 4042},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"DatabaseConnection", ErrDatabaseConnection, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidUserID), 4003},
		{"ValidationError", NewValidationError("amount", "must be positive", ErrInvalidAmount), 4002},
		{"ValidationErrorDefault", NewValidationError("name", "required", nil), 4008},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("date", "must be YYYY-MM-DD", ErrInvalidDate)

	if err.Error() != "date: must be YYYY-MM-DD" {
		t.Errorf("ValidationError.Error() = %s", err.Error())
	}
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("errors.Is(err, ErrInvalidDate) = false, want true")
	}

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("errors.As did not find ValidationError")
	}
	fields := ve.LogFields()
	if fields["field"] != "date" || fields["error_code"] != CodeInvalidDate {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestInsufficientBalanceError(t *testing.T) {
	err := NewInsufficientBalanceError(7, "150.00", "100.00")

	expected := "expense of 150.00 exceeds current month balance 100.00 for user 7"
	if err.Error() != expected {
		t.Errorf("InsufficientBalanceError.Error() = %s, want %s", err.Error(), expected)
	}
	if !IsInsufficientBalanceError(err) {
		t.Errorf("IsInsufficientBalanceError() = false, want true")
	}
	if ErrorCode(err) != CodeInsufficientBalance {
		t.Errorf("ErrorCode() = %d, want %d", ErrorCode(err), CodeInsufficientBalance)
	}
	if !IsValidationError(err) {
		t.Errorf("IsValidationError() = false, want true")
	}
}

func TestRolloverError(t *testing.T) {
	err := NewRolloverError(3, "2025-03", "reset budgets", ErrDatabaseConnection)

	if !errors.Is(err, ErrDatabaseConnection) {
		t.Errorf("errors.Is(err, ErrDatabaseConnection) = false, want true")
	}
	expected := "rollover of 2025-03 for user 3 failed at reset budgets: database connection error"
	if err.Error() != expected {
		t.Errorf("RolloverError.Error() = %s, want %s", err.Error(), expected)
	}
}

func TestErrorClassifiers(t *testing.T) {
	if !IsNotFoundError(fmt.Errorf("lookup: %w", ErrBudgetNotFound)) {
		t.Errorf("wrapped ErrBudgetNotFound should be a not found error")
	}
	if IsNotFoundError(ErrInvalidAmount) {
		t.Errorf("ErrInvalidAmount should not be a not found error")
	}
	if !IsAuthError(ErrMissingToken) || !IsAuthError(ErrInvalidToken) {
		t.Errorf("token errors should be auth errors")
	}
	if IsValidationError(ErrInvalidToken) {
		t.Errorf("ErrInvalidToken should not be a validation error")
	}
	if !IsValidationError(ErrInvalidCredentials) {
		t.Errorf("ErrInvalidCredentials should be reported as a bad request")
	}
	if IsValidationError(ErrIncorrectPassword) {
		t.Errorf("ErrIncorrectPassword should not be a validation error")
	}
	if IsValidationError(ErrDatabaseConnection) {
		t.Errorf("ErrDatabaseConnection should not be a validation error")
	}
}
