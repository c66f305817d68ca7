package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest          = 4000
	CodeInsufficientBalance     = 4001
	CodeInvalidAmount           = 4002
	CodeInvalidUserID           = 4003
	CodeInvalidTransactionType  = 4004
	CodeConstraintViolation     = 4005
	CodeInvalidDate             = 4006
	CodeInvalidField            = 4007
	CodeValidation              = 4008
	CodeEmailTaken              = 4009
	CodeMissingToken            = 4010
	CodeInvalidToken            = 4011
	CodeInvalidCredentials      = 4012
	CodeInvalidVerificationCode = 4013
	CodeVerificationExpired     = 4014
	CodeProtectedCategory       = 4015
	CodeMonthNotEnded           = 4016
	CodeInvalidPeriod           = 4017
	CodeMonthNotLatest          = 4018
	CodeIncorrectPassword       = 4030
	CodeUserNotFound            = 4040
	CodeTransactionNotFound     = 4041
	CodeBudgetNotFound          = 4042
	CodeCategoryNotFound        = 4043
	CodeSavingsGoalNotFound     = 4044
	CodeVerificationNotFound    = 4045
	CodeNotFound                = 4049
	CodeDuplicate               = 4090
	CodeMonthClosed             = 4091
	CodeLaterMonthClosed        = 4092

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeDatabaseConnection = 5001
)

// Base error types
var (
	// ErrInvalidRequest is returned when the request body or query cannot be parsed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInsufficientBalance is returned when an expense exceeds the running balance of the current month
	ErrInsufficientBalance = errors.New("expense exceeds current month balance")

	// ErrInvalidAmount is returned when an amount is malformed or not positive
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidUserID is returned when the user ID is not a positive integer
	ErrInvalidUserID = errors.New("user ID must be positive")

	// ErrInvalidTransactionType is returned when the type is neither income nor expense
	ErrInvalidTransactionType = errors.New("transaction type must be income or expense")

	// ErrInvalidDate is returned when a date or month string cannot be parsed
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidField is returned when an account update names an unknown field
	ErrInvalidField = errors.New("invalid field")

	// ErrValidation is returned for generic input validation failures
	ErrValidation = errors.New("validation failed")

	// ErrEmailTaken is returned when registering or switching to an email that is already used
	ErrEmailTaken = errors.New("email already registered")

	// ErrMissingToken is returned when no bearer token is supplied
	ErrMissingToken = errors.New("missing token")

	// ErrInvalidToken is returned when a bearer token is malformed, forged or expired
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrIncorrectPassword is returned when a sensitive operation is confirmed with the wrong password
	ErrIncorrectPassword = errors.New("incorrect password")

	// ErrInvalidVerificationCode is returned when a verification or reset code does not match
	ErrInvalidVerificationCode = errors.New("invalid verification code")

	// ErrVerificationExpired is returned when a code has expired or was attempted too many times
	ErrVerificationExpired = errors.New("verification code expired")

	// ErrProtectedCategory is returned when deleting the sentinel category
	ErrProtectedCategory = errors.New("category cannot be deleted")

	// ErrMonthNotEnded is returned when closing a month before its last day
	ErrMonthNotEnded = errors.New("month has not ended")

	// ErrMonthNotLatest is returned when closing a month older than the latest ended one
	ErrMonthNotLatest = errors.New("only the latest ended month can be closed")

	// ErrInvalidPeriod is returned when an analytics period or range is invalid
	ErrInvalidPeriod = errors.New("invalid period")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrBudgetNotFound is returned when the requested budget doesn't exist
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrCategoryNotFound is returned when the requested category doesn't exist
	ErrCategoryNotFound = errors.New("category not found")

	// ErrSavingsGoalNotFound is returned when no savings goal is set for the month
	ErrSavingsGoalNotFound = errors.New("savings goal not found")

	// ErrVerificationNotFound is returned when no pending verification exists
	ErrVerificationNotFound = errors.New("no pending verification")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicate is returned when a unique constraint is violated
	ErrDuplicate = errors.New("resource already exists")

	// ErrMonthClosed is returned by a strict rollover of a month that was already closed
	ErrMonthClosed = errors.New("month already closed")

	// ErrLaterMonthClosed is returned when closing a month after a later one was closed
	ErrLaterMonthClosed = errors.New("a later month is already closed")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem talking to the database
	ErrDatabaseConnection = errors.New("database connection error")
)

var codes = []struct {
	err  error
	code int
}{
	{ErrInvalidRequest, CodeInvalidRequest},
	{ErrInsufficientBalance, CodeInsufficientBalance},
	{ErrInvalidAmount, CodeInvalidAmount},
	{ErrInvalidUserID, CodeInvalidUserID},
	{ErrInvalidTransactionType, CodeInvalidTransactionType},
	{ErrConstraintViolation, CodeConstraintViolation},
	{ErrInvalidDate, CodeInvalidDate},
	{ErrInvalidField, CodeInvalidField},
	{ErrValidation, CodeValidation},
	{ErrEmailTaken, CodeEmailTaken},
	{ErrMissingToken, CodeMissingToken},
	{ErrInvalidToken, CodeInvalidToken},
	{ErrInvalidCredentials, CodeInvalidCredentials},
	{ErrInvalidVerificationCode, CodeInvalidVerificationCode},
	{ErrVerificationExpired, CodeVerificationExpired},
	{ErrProtectedCategory, CodeProtectedCategory},
	{ErrMonthNotEnded, CodeMonthNotEnded},
	{ErrInvalidPeriod, CodeInvalidPeriod},
	{ErrMonthNotLatest, CodeMonthNotLatest},
	{ErrIncorrectPassword, CodeIncorrectPassword},
	{ErrUserNotFound, CodeUserNotFound},
	{ErrTransactionNotFound, CodeTransactionNotFound},
	{ErrBudgetNotFound, CodeBudgetNotFound},
	{ErrCategoryNotFound, CodeCategoryNotFound},
	{ErrSavingsGoalNotFound, CodeSavingsGoalNotFound},
	{ErrVerificationNotFound, CodeVerificationNotFound},
	{ErrNotFound, CodeNotFound},
	{ErrDuplicate, CodeDuplicate},
	{ErrMonthClosed, CodeMonthClosed},
	{ErrLaterMonthClosed, CodeLaterMonthClosed},
	{ErrDatabaseConnection, CodeDatabaseConnection},
}

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	for _, c := range codes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeInternalServer
}

// ValidationError describes a rejected input field
type ValidationError struct {
	Field  string
	Reason string
	Err    error
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"field":      e.Field,
		"reason":     e.Reason,
		"error_code": ErrorCode(e.Err),
	}
}

// NewValidationError creates a validation error wrapping one of the sentinel errors.
// A nil base falls back to ErrValidation.
func NewValidationError(field, reason string, base error) error {
	if base == nil {
		base = ErrValidation
	}
	return &ValidationError{Field: field, Reason: reason, Err: base}
}

// InsufficientBalanceError provides detailed error information for a vetoed expense
type InsufficientBalanceError struct {
	UserID  uint64
	Amount  string
	Balance string
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("expense of %s exceeds current month balance %s for user %d",
		e.Amount, e.Balance, e.UserID)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_balance",
		"user_id":    e.UserID,
		"amount":     e.Amount,
		"balance":    e.Balance,
		"error_code": CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(userID uint64, amount, balance string) error {
	return &InsufficientBalanceError{
		UserID:  userID,
		Amount:  amount,
		Balance: balance,
	}
}

// RolloverError reports the step at which a month-end rollover failed
type RolloverError struct {
	UserID uint64
	Month  string
	Step   string
	Err    error
}

// Error implements the error interface
func (e *RolloverError) Error() string {
	return fmt.Sprintf("rollover of %s for user %d failed at %s: %v", e.Month, e.UserID, e.Step, e.Err)
}

// Unwrap returns the underlying error
func (e *RolloverError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *RolloverError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "rollover_error",
		"user_id":    e.UserID,
		"month":      e.Month,
		"step":       e.Step,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewRolloverError wraps err with the failing rollover step
func NewRolloverError(userID uint64, month, step string, err error) error {
	return &RolloverError{UserID: userID, Month: month, Step: step, Err: err}
}

// IsInsufficientBalanceError checks if the error is a vetoed expense
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTransactionNotFound) ||
		errors.Is(err, ErrBudgetNotFound) ||
		errors.Is(err, ErrCategoryNotFound) ||
		errors.Is(err, ErrSavingsGoalNotFound) ||
		errors.Is(err, ErrVerificationNotFound)
}

// IsValidationError checks if the error should be reported as a bad request
func IsValidationError(err error) bool {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return true
	}
	code := ErrorCode(err)
	return code >= 4000 && code < 4010 || code >= 4012 && code < 4030
}

// IsAuthError checks if the error is an authentication failure
func IsAuthError(err error) bool {
	return errors.Is(err, ErrMissingToken) || errors.Is(err, ErrInvalidToken)
}
