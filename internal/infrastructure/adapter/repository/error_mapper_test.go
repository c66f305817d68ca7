package repository

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/logger"
)

func TestErrorMapper(t *testing.T) {
	m := NewErrorMapper(logger.NewNoopLogger())

	testCases := []struct {
		name      string
		err       error
		notFound  error
		duplicate error
		expected  error
	}{
		{"Nil stays nil", nil, nil, nil, nil},
		{"Record not found with entity error", gorm.ErrRecordNotFound, errs.ErrUserNotFound, nil, errs.ErrUserNotFound},
		{"Record not found generic", gorm.ErrRecordNotFound, nil, nil, errs.ErrNotFound},
		{"Translated duplicate", gorm.ErrDuplicatedKey, nil, errs.ErrEmailTaken, errs.ErrEmailTaken},
		{"Postgres duplicate", errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email"`), nil, nil, errs.ErrDuplicate},
		{"MySQL duplicate", errors.New("Error 1062: Duplicate entry 'a@b.c' for key 'users.email'"), nil, nil, errs.ErrDuplicate},
		{"Connection failure", errors.New("dial tcp: connection refused"), nil, nil, errs.ErrDatabaseConnection},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.MapError(tc.err, "testing", tc.notFound, tc.duplicate)
			if tc.expected == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tc.expected)
		})
	}
}

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	assert.True(t, c.IsTransientError(errors.New("read: connection reset by peer")))
	assert.True(t, c.IsTransientError(errors.New("Error 1213: Deadlock found when trying to get lock")))
	assert.False(t, c.IsTransientError(errors.New("syntax error at or near")))
	assert.True(t, c.IsLockError(errors.New("ERROR: could not serialize access due to concurrent update")))
	assert.False(t, c.IsDuplicateKeyError(nil))
}
