package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
)

// ErrorClassifier recognizes driver errors by message for postgres and mysql
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "Duplicate entry")
}

// IsTransientError checks if an error is transient and the operation can be retried
func (c *ErrorClassifier) IsTransientError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "too many connections") ||
		strings.Contains(msg, "server closed") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "eof") ||
		c.IsLockError(err)
}

// IsLockError checks if the error is due to locking
func (c *ErrorClassifier) IsLockError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "deadlock") ||
		strings.Contains(msg, "lock wait timeout") ||
		strings.Contains(msg, "could not serialize access")
}

// ErrorMapper translates gorm and driver errors into domain errors
type ErrorMapper struct {
	classifier *ErrorClassifier
	logger     coreport.Logger
}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper(logger coreport.Logger) *ErrorMapper {
	return &ErrorMapper{classifier: NewErrorClassifier(), logger: logger}
}

// MapError returns notFound for a missing record and duplicate for a unique
// violation; nil arguments fall back to ErrNotFound and ErrDuplicate. Any other
// failure is logged and reported as ErrDatabaseConnection.
func (m *ErrorMapper) MapError(err error, operation string, notFound, duplicate error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		if notFound == nil {
			notFound = errs.ErrNotFound
		}
		return notFound
	}

	if m.classifier.IsDuplicateKeyError(err) {
		if duplicate == nil {
			duplicate = errs.ErrDuplicate
		}
		m.logger.Warn("Unique constraint violated", map[string]any{
			"operation": operation,
			"error":     err.Error(),
		})
		return duplicate
	}

	m.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error":     err.Error(),
		"transient": m.classifier.IsTransientError(err),
	})
	return fmt.Errorf("%w: %s: %s", errs.ErrDatabaseConnection, operation, err.Error())
}
