package entity

import (
	"time"
)

// VerificationPurpose distinguishes registration codes from password reset codes
type VerificationPurpose string

const (
	PurposeRegister VerificationPurpose = "register"
	PurposeReset    VerificationPurpose = "reset"
)

// MaxVerificationAttempts is the number of wrong guesses after which a code is void
const MaxVerificationAttempts = 5

// VerificationCode is a short-lived emailed code. For registrations it also stages
// the pending account so no User row exists before the address is confirmed.
type VerificationCode struct {
	ID           uint64
	Email        string
	Purpose      VerificationPurpose
	Name         string
	PasswordHash string
	CodeHash     string
	Attempts     int
	ExpiresAt    time.Time
	CreatedAt    time.Time
}

// Expired reports whether the code can no longer be used at now
func (v *VerificationCode) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt) || v.Attempts >= MaxVerificationAttempts
}
