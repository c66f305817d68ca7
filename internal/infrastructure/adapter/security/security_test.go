package security

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	timeprovider "github.com/fintrack/fintrack-api/internal/infrastructure/adapter/time"
)

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)

	hash, err := h.Hash("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, h.Compare(hash, "s3cret-pass"))
	assert.False(t, h.Compare(hash, "wrong"))
	assert.False(t, h.Compare("not-a-hash", "s3cret-pass"))

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(100).cost)
}

func TestJWTService(t *testing.T) {
	issuedAt := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	clock := timeprovider.NewFixedTimeProvider(issuedAt)
	svc, err := NewJWTService("test-secret", time.Hour, clock)
	require.NoError(t, err)

	identity := entity.Identity{UserID: 42, Name: "Ada", Email: "ada@example.com"}

	t.Run("Round trip", func(t *testing.T) {
		token, err := svc.Issue(identity)
		require.NoError(t, err)

		got, err := svc.Parse(token)
		require.NoError(t, err)
		assert.Equal(t, identity, *got)
	})

	t.Run("Expired token", func(t *testing.T) {
		token, err := svc.Issue(identity)
		require.NoError(t, err)

		later, err := NewJWTService("test-secret", time.Hour, timeprovider.NewFixedTimeProvider(issuedAt.Add(2*time.Hour)))
		require.NoError(t, err)
		_, err = later.Parse(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := svc.Issue(identity)
		require.NoError(t, err)

		other, err := NewJWTService("other-secret", time.Hour, clock)
		require.NoError(t, err)
		_, err = other.Parse(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Unsigned token", func(t *testing.T) {
		claims := Claims{UserID: 42, RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		}}
		token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = svc.Parse(token)
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := svc.Parse("not.a.token")
		assert.ErrorIs(t, err, errs.ErrInvalidToken)
	})

	t.Run("Empty secret rejected", func(t *testing.T) {
		_, err := NewJWTService("", time.Hour, clock)
		assert.Error(t, err)
	})
}

func TestCodeGenerator(t *testing.T) {
	g := NewCodeGenerator(6)
	for range 50 {
		code, err := g.Generate()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.Empty(t, strings.Trim(code, "0123456789"))
	}
}
