package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/dto"
)

// TransactionHandler handles ledger requests
type TransactionHandler struct {
	transactions usecase.TransactionUseCase
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactions usecase.TransactionUseCase) *TransactionHandler {
	return &TransactionHandler{transactions: transactions}
}

// Create handles POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		fail(c, err)
		return
	}

	tx, err := h.transactions.Create(c.Request.Context(), userID(c), in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// Update handles PUT /api/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	id, ok := pathID(c, errs.ErrTransactionNotFound)
	if !ok {
		return
	}
	var req dto.TransactionRequest
	if !bindJSON(c, &req) {
		return
	}
	in, err := req.ToInput()
	if err != nil {
		fail(c, err)
		return
	}

	tx, err := h.transactions.Update(c.Request.Context(), userID(c), id, in)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// Delete handles DELETE /api/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, errs.ErrTransactionNotFound)
	if !ok {
		return
	}

	if err := h.transactions.Delete(c.Request.Context(), userID(c), id); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Transaction deleted successfully"})
}

// Recent handles GET /api/transactions
func (h *TransactionHandler) Recent(c *gin.Context) {
	txs, err := h.transactions.Recent(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionList(txs))
}

// Filter handles GET /api/transactions/filter
func (h *TransactionHandler) Filter(c *gin.Context) {
	txs, err := h.transactions.Filter(c.Request.Context(), userID(c), usecase.FilterRequest{
		Type:      c.Query("type"),
		Category:  c.Query("category"),
		Account:   c.Query("account"),
		StartDate: c.Query("startDate"),
		EndDate:   c.Query("endDate"),
	})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTransactionList(txs))
}

// ExpensesByCategory handles GET /api/transactions/expenses/by-category
func (h *TransactionHandler) ExpensesByCategory(c *gin.Context) {
	rows, err := h.transactions.ExpensesByCategory(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryTotals(rows))
}

// MonthlySummary handles GET /api/transactions/monthly-summary
func (h *TransactionHandler) MonthlySummary(c *gin.Context) {
	rows, err := h.transactions.MonthlySummary(c.Request.Context(), userID(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMonthlySummary(rows))
}

// Summary handles GET /api/transactions/summary
func (h *TransactionHandler) Summary(c *gin.Context) {
	rows, err := h.transactions.Summary(c.Request.Context(), userID(c), c.DefaultQuery("interval", "monthly"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSummaryRows(rows))
}
