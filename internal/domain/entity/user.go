package entity

import (
	"net/mail"
	"strings"
	"time"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
)

// MinPasswordLength is the shortest password accepted at registration or reset
const MinPasswordLength = 6

// User is an account holder. Every other row is owned by a user.
type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the authenticated principal carried by a session token
type Identity struct {
	UserID uint64
	Name   string
	Email  string
}

// NewUser creates a user from already validated input and a password hash
func NewUser(name, email, passwordHash string, timeProvider coreport.TimeProvider) (*User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewValidationError("name", "is required", nil)
	}
	normalized, err := NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if passwordHash == "" {
		return nil, errs.NewValidationError("password", "is required", nil)
	}

	now := timeProvider.Now()
	return &User{
		Name:         name,
		Email:        normalized,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Identity returns the token principal for the user
func (u *User) Identity() Identity {
	return Identity{UserID: u.ID, Name: u.Name, Email: u.Email}
}

// NormalizeEmail trims, lower-cases and syntactically checks an address
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return "", errs.NewValidationError("email", "is required", nil)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", errs.NewValidationError("email", "is not a valid address", nil)
	}
	return email, nil
}

// ValidatePassword checks the plain-text password policy
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return errs.NewValidationError("password", "must be at least 6 characters", nil)
	}
	return nil
}
