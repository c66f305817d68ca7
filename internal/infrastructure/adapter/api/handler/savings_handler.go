package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/dto"
)

// SavingsHandler handles savings goal requests
type SavingsHandler struct {
	savings usecase.SavingsUseCase
}

// NewSavingsHandler creates a new savings handler instance
func NewSavingsHandler(savings usecase.SavingsUseCase) *SavingsHandler {
	return &SavingsHandler{savings: savings}
}

// SetGoal handles POST /api/savings/goal
func (h *SavingsHandler) SetGoal(c *gin.Context) {
	var req dto.SetGoalRequest
	if !bindJSON(c, &req) {
		return
	}
	initial, ok := amount(c, "initialGoal", req.InitialGoal)
	if !ok {
		return
	}

	goal, err := h.savings.SetGoal(c.Request.Context(), userID(c), initial)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSavingsGoalResponse(goal))
}

// GoalStatus handles GET /api/savings/goal
func (h *SavingsHandler) GoalStatus(c *gin.Context) {
	status, err := h.savings.GoalStatus(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewGoalStatusResponse(status))
}

// StoreMonthly handles POST /api/savings/monthly
func (h *SavingsHandler) StoreMonthly(c *gin.Context) {
	var req dto.StoreMonthlyRequest
	if !bindJSON(c, &req) {
		return
	}
	// Saved amounts may be negative in a month that overspent.
	saved, err := entity.ParseSignedAmount(req.SavedAmount.String())
	if err != nil {
		fail(c, errs.NewValidationError("savedAmount", "must be an amount with at most 2 decimals", errs.ErrInvalidAmount))
		return
	}
	goal, ok := amount(c, "savingGoal", req.SavingGoal)
	if !ok {
		return
	}

	rec, err := h.savings.StoreMonthly(c.Request.Context(), userID(c), usecase.StoreMonthlyRequest{
		Month:       req.Month,
		SavedAmount: saved,
		SavingGoal:  goal,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMonthlySavingsResponse(rec))
}

// ListMonthly handles GET /api/savings/monthly
func (h *SavingsHandler) ListMonthly(c *gin.Context) {
	year := 0
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, errs.NewValidationError("year", "must be a number", errs.ErrInvalidRequest))
			return
		}
		year = parsed
	}

	rows, err := h.savings.ListMonthly(c.Request.Context(), userID(c), year)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMonthlySavingsList(rows))
}

// MonthEnd handles POST /api/savings/month-end
func (h *SavingsHandler) MonthEnd(c *gin.Context) {
	rec, err := h.savings.StoreCurrentMonth(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MonthEndResponse{
		Success:     true,
		Month:       rec.Month.String(),
		SavedAmount: entity.FormatAmount(rec.SavedAmount),
		SavingGoal:  entity.FormatAmount(rec.SavingGoal),
		Status:      string(rec.Status),
	})
}
