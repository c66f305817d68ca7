package dto

// RegisterRequest represents a sign-up
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyRequest confirms an emailed registration code
type VerifyRequest struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// EmailRequest names an account by email
type EmailRequest struct {
	Email string `json:"email" binding:"required"`
}

// LoginRequest represents a sign-in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// VerifyResetRequest completes a password reset
type VerifyResetRequest struct {
	Email       string `json:"email" binding:"required"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// UpdateUserRequest changes one account field. Field is username, email or newPassword.
type UpdateUserRequest struct {
	Field           string `json:"field" binding:"required"`
	Value           string `json:"value" binding:"required"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
}

// DeleteAccountRequest confirms account deletion
type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a session token
type TokenResponse struct {
	Token string `json:"token"`
}

// PendingVerificationResponse is returned when registration awaits the emailed code
type PendingVerificationResponse struct {
	Message string `json:"message"`
	Email   string `json:"email"`
}
