package handler

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/middleware"
)

// fail hands err to the error middleware and stops the chain
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// bindJSON decodes the body into req, failing the request with 400 on error
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		fail(c, errs.NewValidationError("body", err.Error(), errs.ErrInvalidRequest))
		return false
	}
	return true
}

// userID returns the authenticated caller
func userID(c *gin.Context) uint64 {
	if identity := middleware.CurrentUser(c); identity != nil {
		return identity.UserID
	}
	return 0
}

// pathID parses the :id path parameter. Unparseable ids fail with notFound.
func pathID(c *gin.Context, notFound error) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		fail(c, notFound)
		return 0, false
	}
	return id, true
}

// amount parses a non-negative money value of field
func amount(c *gin.Context, field string, n json.Number) (decimal.Decimal, bool) {
	d, err := entity.ParseAmount(n.String())
	if err != nil {
		fail(c, errs.NewValidationError(field, "must be a non-negative amount with at most 2 decimals", errs.ErrInvalidAmount))
		return decimal.Zero, false
	}
	return d, true
}
