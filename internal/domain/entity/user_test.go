package entity

import (
	"testing"
	"time"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coremocks "github.com/fintrack/fintrack-api/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("  Alice ", " Alice@Example.com ", "hash", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Alice", user.Name)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, "hash", user.PasswordHash)
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Missing fields", func(t *testing.T) {
		testCases := []struct {
			name, email, hash string
		}{
			{"", "a@b.co", "hash"},
			{"Bob", "", "hash"},
			{"Bob", "not-an-email", "hash"},
			{"Bob", "a@b.co", ""},
		}

		for _, tc := range testCases {
			user, err := NewUser(tc.name, tc.email, tc.hash, mockTime)
			assert.ErrorIs(t, err, errs.ErrValidation)
			assert.Nil(t, user)
		}
	})
}

func TestUserIdentity(t *testing.T) {
	user := &User{ID: 8, Name: "Dana", Email: "dana@example.com"}

	assert.Equal(t, Identity{UserID: 8, Name: "Dana", Email: "dana@example.com"}, user.Identity())
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, ValidatePassword("secret"))
	assert.ErrorIs(t, ValidatePassword("short"), errs.ErrValidation)
}

func TestParseUserUpdate(t *testing.T) {
	t.Run("Known fields map to variants", func(t *testing.T) {
		update, err := ParseUserUpdate("username", " New Name ")
		require.NoError(t, err)
		assert.Equal(t, ChangeName{Name: "New Name"}, update)

		update, err = ParseUserUpdate("email", "new@example.com")
		require.NoError(t, err)
		assert.Equal(t, ChangeEmail{Email: "new@example.com"}, update)

		update, err = ParseUserUpdate("newPassword", "longenough")
		require.NoError(t, err)
		assert.Equal(t, ChangePassword{NewPassword: "longenough"}, update)
		assert.Equal(t, "newPassword", update.Field())
	})

	t.Run("Unknown field", func(t *testing.T) {
		update, err := ParseUserUpdate("balance", "100")
		assert.ErrorIs(t, err, errs.ErrInvalidField)
		assert.Nil(t, update)
	})

	t.Run("Invalid payloads", func(t *testing.T) {
		_, err := ParseUserUpdate("username", "   ")
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = ParseUserUpdate("email", "nope")
		assert.ErrorIs(t, err, errs.ErrValidation)

		_, err = ParseUserUpdate("newPassword", "123")
		assert.ErrorIs(t, err, errs.ErrValidation)
	})
}

func TestVerificationCodeExpired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	code := &VerificationCode{ExpiresAt: now.Add(time.Minute)}

	assert.False(t, code.Expired(now))
	assert.True(t, code.Expired(now.Add(time.Minute)))

	code.Attempts = MaxVerificationAttempts
	assert.True(t, code.Expired(now))
}
