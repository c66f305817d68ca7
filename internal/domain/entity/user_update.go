package entity

import (
	"strings"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
)

// UserUpdate is one account change. The set of variants is closed:
// ChangeName, ChangeEmail and ChangePassword.
type UserUpdate interface {
	// Field names the wire field the update came from
	Field() string
	Validate() error
	userUpdate()
}

// ChangeName replaces the display name
type ChangeName struct {
	Name string
}

// ChangeEmail replaces the login email
type ChangeEmail struct {
	Email string
}

// ChangePassword replaces the password; the use case hashes it
type ChangePassword struct {
	NewPassword string
}

func (ChangeName) userUpdate()     {}
func (ChangeEmail) userUpdate()    {}
func (ChangePassword) userUpdate() {}

func (ChangeName) Field() string     { return "username" }
func (ChangeEmail) Field() string    { return "email" }
func (ChangePassword) Field() string { return "newPassword" }

func (u ChangeName) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return errs.NewValidationError("username", "is required", nil)
	}
	return nil
}

func (u ChangeEmail) Validate() error {
	_, err := NormalizeEmail(u.Email)
	return err
}

func (u ChangePassword) Validate() error {
	return ValidatePassword(u.NewPassword)
}

// ParseUserUpdate maps the wire pair (field, value) onto a variant
func ParseUserUpdate(field, value string) (UserUpdate, error) {
	var update UserUpdate
	switch field {
	case "username":
		update = ChangeName{Name: strings.TrimSpace(value)}
	case "email":
		update = ChangeEmail{Email: value}
	case "newPassword":
		update = ChangePassword{NewPassword: value}
	default:
		return nil, errs.ErrInvalidField
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}
	return update, nil
}
