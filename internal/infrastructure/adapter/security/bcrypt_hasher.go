package security

import (
	"golang.org/x/crypto/bcrypt"

	secport "github.com/fintrack/fintrack-api/internal/domain/port/security"
)

// BcryptHasher hashes passwords and one-time codes with bcrypt
type BcryptHasher struct {
	cost int
}

var _ secport.PasswordHasher = (*BcryptHasher)(nil)

// NewBcryptHasher creates a hasher. Costs outside bcrypt's range fall back to the default.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

// Hash returns the bcrypt hash of secret
func (h *BcryptHasher) Hash(secret string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(secret), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Compare reports whether secret matches hash
func (h *BcryptHasher) Compare(hash, secret string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(secret)) == nil
}
