package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/dto"
)

// CategoryHandler handles category requests
type CategoryHandler struct {
	categories usecase.CategoryUseCase
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(categories usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

// List handles GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	names, err := h.categories.ListNames(c.Request.Context(), userID(c), c.Query("account"))
	if err != nil {
		fail(c, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	c.JSON(http.StatusOK, names)
}

// Create handles POST /api/categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.categories.Create(c.Request.Context(), userID(c), req.Name, req.Account); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SuccessResponse{Success: true})
}

// Delete handles DELETE /api/categories. The name may come from the body
// or from query parameters.
func (h *CategoryHandler) Delete(c *gin.Context) {
	var req dto.CategoryRequest
	if c.Request.ContentLength > 0 {
		if !bindJSON(c, &req) {
			return
		}
	}
	if req.Name == "" {
		req.Name = c.Query("name")
	}
	if req.Account == "" {
		req.Account = c.Query("account")
	}

	reassigned, err := h.categories.Delete(c.Request.Context(), userID(c), req.Name, req.Account)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeleteCategoryResponse{Success: true, Reassigned: reassigned})
}
