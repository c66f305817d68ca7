package security

import (
	"github.com/fintrack/fintrack-api/internal/domain/entity"
)

// PasswordHasher hashes and verifies secrets such as passwords and emailed codes
type PasswordHasher interface {
	// Hash returns a salted one-way hash of secret
	Hash(secret string) (string, error)
	// Compare reports whether secret matches hash
	Compare(hash, secret string) bool
}

// TokenService issues and verifies session tokens
type TokenService interface {
	// Issue returns a signed token for the identity
	Issue(identity entity.Identity) (string, error)
	// Parse verifies a token and returns its identity.
	// Fails with ErrInvalidToken for malformed, forged or expired tokens.
	Parse(token string) (*entity.Identity, error)
}

// CodeGenerator produces numeric one-time codes
type CodeGenerator interface {
	Generate() (string, error)
}
