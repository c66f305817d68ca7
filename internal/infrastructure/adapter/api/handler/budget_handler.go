package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	coreport "github.com/fintrack/fintrack-api/internal/domain/port/core"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/dto"
)

// BudgetHandler handles budget and month-close requests
type BudgetHandler struct {
	budgets      usecase.BudgetUseCase
	rollover     usecase.RolloverUseCase
	timeProvider coreport.TimeProvider
}

// NewBudgetHandler creates a new budget handler instance
func NewBudgetHandler(
	budgets usecase.BudgetUseCase,
	rollover usecase.RolloverUseCase,
	timeProvider coreport.TimeProvider,
) *BudgetHandler {
	return &BudgetHandler{budgets: budgets, rollover: rollover, timeProvider: timeProvider}
}

// List handles GET /api/budget
func (h *BudgetHandler) List(c *gin.Context) {
	rows, err := h.budgets.List(c.Request.Context(), userID(c), c.Query("month"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBudgetList(rows))
}

// Set handles POST /api/budget
func (h *BudgetHandler) Set(c *gin.Context) {
	var req dto.SetBudgetRequest
	if !bindJSON(c, &req) {
		return
	}
	value, ok := amount(c, "budget", req.Budget)
	if !ok {
		return
	}

	b, err := h.budgets.Set(c.Request.Context(), userID(c), req.CategoryName, value)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewBudgetRow(b))
}

// Update handles PUT /api/budget/:id
func (h *BudgetHandler) Update(c *gin.Context) {
	id, ok := pathID(c, errs.ErrBudgetNotFound)
	if !ok {
		return
	}
	var req dto.UpdateBudgetRequest
	if !bindJSON(c, &req) {
		return
	}
	value, ok := amount(c, "budget", req.Budget)
	if !ok {
		return
	}

	b, err := h.budgets.UpdateAmount(c.Request.Context(), userID(c), id, value)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBudgetRow(b))
}

// Delete handles DELETE /api/budget/:id
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, errs.ErrBudgetNotFound)
	if !ok {
		return
	}

	if err := h.budgets.Delete(c.Request.Context(), userID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Suggest handles GET /api/budget/auto-suggest
func (h *BudgetHandler) Suggest(c *gin.Context) {
	rows, err := h.budgets.Suggest(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSuggestions(rows))
}

// Forecast handles GET /api/budget/forecast
func (h *BudgetHandler) Forecast(c *gin.Context) {
	rows, err := h.budgets.Forecast(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewForecasts(rows))
}

// History handles GET /api/budget/history
func (h *BudgetHandler) History(c *gin.Context) {
	rows, err := h.budgets.History(c.Request.Context(), userID(c), c.Query("month"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewBudgetHistory(rows))
}

// Rollover handles POST /api/budget/rollover. Without a month the current
// one is closed. In strict mode a month closed earlier yields 409.
func (h *BudgetHandler) Rollover(c *gin.Context) {
	var req dto.RolloverRequest
	if c.Request.ContentLength > 0 {
		if !bindJSON(c, &req) {
			return
		}
	}

	month := entity.MonthOf(h.timeProvider.Now())
	if req.Month != "" {
		parsed, err := entity.ParseMonth(req.Month)
		if err != nil {
			fail(c, err)
			return
		}
		month = parsed
	}

	result, err := h.rollover.CloseMonth(c.Request.Context(), userID(c), month)
	if err != nil {
		fail(c, err)
		return
	}
	if result.AlreadyClosed && (req.Strict || c.Query("strict") == "true") {
		fail(c, errs.ErrMonthClosed)
		return
	}
	c.JSON(http.StatusOK, dto.NewRolloverResponse(result))
}
