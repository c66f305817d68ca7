package entity

import (
	"strings"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
)

const (
	// DefaultAccount is used when a category or transaction names no account
	DefaultAccount = "Default Account"

	// NoCategory absorbs transactions whose category was deleted
	NoCategory = "No Category"
)

// Category is a user-defined label, unique per (user, name, account)
type Category struct {
	ID      uint64
	UserID  uint64
	Name    string
	Account string
}

// NewCategory validates and normalizes a category
func NewCategory(userID uint64, name, account string) (*Category, error) {
	if userID == 0 {
		return nil, errs.ErrInvalidUserID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValidationError("name", "is required", nil)
	}
	account = strings.TrimSpace(account)
	if account == "" {
		account = DefaultAccount
	}
	return &Category{UserID: userID, Name: name, Account: account}, nil
}

// IsSentinel reports whether the category is the protected catch-all
func (c *Category) IsSentinel() bool {
	return c.Name == NoCategory
}
