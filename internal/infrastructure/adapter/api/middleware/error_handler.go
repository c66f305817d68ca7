package middleware

import (
	"errors"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/dto"
)

// messages holds the client facing text of errors whose wording is part of the API
var messages = []struct {
	err     error
	message string
}{
	{errs.ErrEmailTaken, "Email already registered"},
	{errs.ErrInvalidCredentials, "Invalid credentials"},
	{errs.ErrMissingToken, "Missing token"},
	{errs.ErrInvalidToken, "Invalid token"},
	{errs.ErrIncorrectPassword, "Incorrect password"},
	{errs.ErrInvalidField, "Invalid field"},
	{errs.ErrInsufficientBalance, "Expense exceeds current month balance"},
	{errs.ErrMonthNotEnded, "Month has not ended"},
	{errs.ErrTransactionNotFound, "Transaction not found"},
	{errs.ErrBudgetNotFound, "Budget not found"},
	{errs.ErrVerificationNotFound, "No pending verification"},
	{errs.ErrProtectedCategory, "Category cannot be deleted"},
	{errs.ErrMonthClosed, "Month already closed"},
	{errs.ErrMonthNotLatest, "Only the latest ended month can be closed"},
	{errs.ErrLaterMonthClosed, "A later month is already closed"},
	{errs.ErrDuplicate, "Resource already exists"},
}

// messageError overrides the response text of the error it wraps
type messageError struct {
	err     error
	message string
}

func (e *messageError) Error() string { return e.err.Error() }
func (e *messageError) Unwrap() error { return e.err }

// WithMessage sets the response text of err without changing its status or code
func WithMessage(err error, message string) error {
	return &messageError{err: err, message: message}
}

// StatusFor maps a domain error to its HTTP status
func StatusFor(err error) int {
	switch {
	case errs.IsAuthError(err):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrIncorrectPassword):
		return http.StatusForbidden
	case errs.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrMonthClosed),
		errors.Is(err, errs.ErrLaterMonthClosed),
		errors.Is(err, errs.ErrDuplicate):
		return http.StatusConflict
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// messageFor returns the response text of err. Validation errors keep their
// own text since it names the rejected field.
func messageFor(err error) string {
	var me *messageError
	if errors.As(err, &me) {
		return me.message
	}
	var ve *errs.ValidationError
	if errors.As(err, &ve) {
		return ve.Error()
	}
	for _, m := range messages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return err.Error()
}

// ErrorHandler renders the last error a handler attached with c.Error.
// Internal errors are logged; their text is only exposed when exposeInternal is set.
func ErrorHandler(logger coreport.Logger, exposeInternal bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		status := StatusFor(err)
		message := messageFor(err)

		if status == http.StatusInternalServerError {
			fields := map[string]any{
				"error":      err,
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
				"request_id": RequestIDFrom(c),
			}
			var logged interface{ LogFields() map[string]any }
			if errors.As(err, &logged) {
				for k, v := range logged.LogFields() {
					fields[k] = v
				}
			}
			logger.Error("Request failed", fields)
			if !exposeInternal {
				message = "Internal server error"
			}
		}

		c.JSON(status, dto.ErrorResponse{
			Code:    errs.ErrorCode(err),
			Message: message,
		})
	}
}

// Recovery converts panics into 500 responses and logs the stack
func Recovery(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered in API request", map[string]any{
					"error":      err,
					"path":       c.Request.URL.Path,
					"method":     c.Request.Method,
					"client_ip":  c.ClientIP(),
					"request_id": RequestIDFrom(c),
					"stack":      string(debug.Stack()),
				})

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    errs.ErrorCode(errs.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}
