package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/dto"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles account and session requests
type AuthHandler struct {
	auth   usecase.AuthUseCase
	logger coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(auth usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Register handles POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.auth.Register(c.Request.Context(), usecase.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		fail(c, err)
		return
	}

	if result.PendingVerification {
		c.JSON(http.StatusCreated, dto.PendingVerificationResponse{
			Message: "Verification code sent to your email",
			Email:   result.Email,
		})
		return
	}
	c.JSON(http.StatusCreated, dto.TokenResponse{Token: result.Token})
}

// Verify handles POST /api/auth/verify
func (h *AuthHandler) Verify(c *gin.Context) {
	var req dto.VerifyRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.auth.VerifyRegistration(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.TokenResponse{Token: token})
}

// Resend handles POST /api/auth/resend
func (h *AuthHandler) Resend(c *gin.Context) {
	var req dto.EmailRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.auth.ResendCode(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Verification code resent"})
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	token, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}

// RequestReset handles POST /api/auth/request-reset. The response does not
// reveal whether the address is registered.
func (h *AuthHandler) RequestReset(c *gin.Context) {
	var req dto.EmailRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.auth.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "If the email is registered, a reset code has been sent",
	})
}

// VerifyReset handles POST /api/auth/verify-reset
func (h *AuthHandler) VerifyReset(c *gin.Context) {
	var req dto.VerifyResetRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.auth.ResetPassword(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Update handles PUT /api/auth/update
func (h *AuthHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	update, err := entity.ParseUserUpdate(req.Field, req.Value)
	if err != nil {
		fail(c, err)
		return
	}

	if err := h.auth.UpdateUser(c.Request.Context(), userID(c), req.CurrentPassword, update); err != nil {
		if errors.Is(err, errs.ErrIncorrectPassword) {
			err = middleware.WithMessage(err, "Incorrect current password")
		}
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Delete handles DELETE /api/auth/delete
func (h *AuthHandler) Delete(c *gin.Context) {
	var req dto.DeleteAccountRequest
	if !bindJSON(c, &req) {
		return
	}

	id := userID(c)
	if err := h.auth.DeleteAccount(c.Request.Context(), id, req.Password); err != nil {
		fail(c, err)
		return
	}

	h.logger.Info("Account deleted", map[string]any{"user_id": id})
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}
