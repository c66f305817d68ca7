package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// budgetVsActualParams is the query string of GET /budget-vs-actual
type budgetVsActualParams struct {
	Period    string `form:"period"`
	Year      string `form:"year"`
	Month     string `form:"month"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// AnalyticsHandler serves the cached spending reports
type AnalyticsHandler struct {
	analytics usecase.AnalyticsUseCase
}

// NewAnalyticsHandler creates a new analytics handler instance
func NewAnalyticsHandler(analytics usecase.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics}
}

// Trends handles GET /api/analytics/trends
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	report, err := h.analytics.Trends(c.Request.Context(), userID(c), c.DefaultQuery("period", "6months"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// BudgetVsActual handles GET /api/analytics/budget-vs-actual
func (h *AnalyticsHandler) BudgetVsActual(c *gin.Context) {
	var params budgetVsActualParams
	if err := c.ShouldBindQuery(&params); err != nil {
		fail(c, errs.NewValidationError("query", err.Error(), errs.ErrInvalidRequest))
		return
	}

	report, err := h.analytics.BudgetVsActual(c.Request.Context(), userID(c), usecase.BudgetVsActualQuery{
		Period:    params.Period,
		Year:      params.Year,
		Month:     params.Month,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Seasonal handles GET /api/analytics/seasonal
func (h *AnalyticsHandler) Seasonal(c *gin.Context) {
	years := 0
	if raw := c.Query("years"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, errs.NewValidationError("years", "must be between 1 and 10", errs.ErrInvalidPeriod))
			return
		}
		years = n
	}

	report, err := h.analytics.Seasonal(c.Request.Context(), userID(c), years)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// Alerts handles GET /api/analytics/alerts
func (h *AnalyticsHandler) Alerts(c *gin.Context) {
	report, err := h.analytics.Alerts(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// HealthScore handles GET /api/analytics/health-score
func (h *AnalyticsHandler) HealthScore(c *gin.Context) {
	report, err := h.analytics.HealthScore(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
