package security

import (
	"crypto/rand"
	"fmt"
	"math/big"

	secport "github.com/fintrack/fintrack-api/internal/domain/port/security"
)

// CodeGenerator draws uniformly random numeric codes
type CodeGenerator struct {
	digits int
	limit  *big.Int
}

var _ secport.CodeGenerator = (*CodeGenerator)(nil)

// NewCodeGenerator creates a generator of codes with the given number of digits
func NewCodeGenerator(digits int) *CodeGenerator {
	if digits <= 0 {
		digits = 6
	}
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(digits)), nil)
	return &CodeGenerator{digits: digits, limit: limit}
}

// Generate returns a zero-padded code
func (g *CodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, g.limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", g.digits, n), nil
}
