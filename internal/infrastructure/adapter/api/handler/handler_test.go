package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/dto"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/api/middleware"
	"github.com/fintrack/fintrack-api/internal/infrastructure/adapter/logger"
	timeadapter "github.com/fintrack/fintrack-api/internal/infrastructure/adapter/time"
	mockusecase "github.com/fintrack/fintrack-api/mocks/port/usecase"
)

const (
	testUserID = uint64(7)
	testToken  = "good-token"
)

type stubAuthenticator struct{}

func (stubAuthenticator) Authenticate(token string) (*entity.Identity, error) {
	if token != testToken {
		return nil, errs.ErrInvalidToken
	}
	return &entity.Identity{UserID: testUserID, Name: "Dana", Email: "dana@example.com"}, nil
}

// newRouter mounts the error handler and, when authed, the token check
func newRouter(authed bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler(logger.NewNoopLogger(), false))
	if authed {
		router.Use(middleware.Authenticate(stubAuthenticator{}, true))
	}
	return router
}

func do(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func sampleTransaction() *entity.Transaction {
	return &entity.Transaction{
		ID:          31,
		UserID:      testUserID,
		Date:        time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
		Description: "Weekly shop",
		Amount:      decimal.RequireFromString("650"),
		Type:        entity.TypeExpense,
		Category:    "Groceries",
		Account:     entity.DefaultAccount,
	}
}

func TestAuthHandler(t *testing.T) {
	t.Run("Register with verification pending", func(t *testing.T) {
		auth := mockusecase.NewMockAuthUseCase(t)
		h := NewAuthHandler(auth, logger.NewNoopLogger())
		router := newRouter(false)
		router.POST("/register", h.Register)

		auth.EXPECT().Register(mock.Anything, usecase.RegisterRequest{
			Name: "Dana", Email: "dana@example.com", Password: "secret123",
		}).Return(&usecase.RegisterResult{PendingVerification: true, Email: "dana@example.com"}, nil).Once()

		rec := do(router, http.MethodPost, "/register", map[string]string{
			"name": "Dana", "email": "dana@example.com", "password": "secret123",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decode[dto.PendingVerificationResponse](t, rec)
		assert.Equal(t, "dana@example.com", body.Email)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		auth := mockusecase.NewMockAuthUseCase(t)
		h := NewAuthHandler(auth, logger.NewNoopLogger())
		router := newRouter(false)
		router.POST("/register", h.Register)

		auth.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, errs.ErrEmailTaken).Once()

		rec := do(router, http.MethodPost, "/register", map[string]string{
			"name": "Dana", "email": "dana@example.com", "password": "secret123",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Email already registered", decode[dto.ErrorResponse](t, rec).Message)
	})

	t.Run("Login with bad credentials", func(t *testing.T) {
		auth := mockusecase.NewMockAuthUseCase(t)
		h := NewAuthHandler(auth, logger.NewNoopLogger())
		router := newRouter(false)
		router.POST("/login", h.Login)

		auth.EXPECT().Login(mock.Anything, "dana@example.com", "nope").Return("", errs.ErrInvalidCredentials).Once()

		rec := do(router, http.MethodPost, "/login", map[string]string{"email": "dana@example.com", "password": "nope"})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid credentials", decode[dto.ErrorResponse](t, rec).Message)
	})

	t.Run("Update with wrong current password", func(t *testing.T) {
		auth := mockusecase.NewMockAuthUseCase(t)
		h := NewAuthHandler(auth, logger.NewNoopLogger())
		router := newRouter(true)
		router.PUT("/update", h.Update)

		auth.EXPECT().UpdateUser(mock.Anything, testUserID, "wrong", mock.Anything).Return(errs.ErrIncorrectPassword).Once()

		rec := do(router, http.MethodPut, "/update", map[string]string{
			"field": "username", "value": "Dee", "currentPassword": "wrong",
		})

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Incorrect current password", decode[dto.ErrorResponse](t, rec).Message)
	})

	t.Run("Update of an unknown field", func(t *testing.T) {
		auth := mockusecase.NewMockAuthUseCase(t)
		h := NewAuthHandler(auth, logger.NewNoopLogger())
		router := newRouter(true)
		router.PUT("/update", h.Update)

		rec := do(router, http.MethodPut, "/update", map[string]string{
			"field": "role", "value": "admin", "currentPassword": "secret123",
		})

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid field", decode[dto.ErrorResponse](t, rec).Message)
	})
}

func TestAuthenticationRequired(t *testing.T) {
	categories := mockusecase.NewMockCategoryUseCase(t)
	router := newRouter(true)
	router.GET("/categories", NewCategoryHandler(categories).List)

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Missing token", decode[dto.ErrorResponse](t, rec).Message)

	req = httptest.NewRequest(http.MethodGet, "/categories", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid token", decode[dto.ErrorResponse](t, rec).Message)
}

func TestCategoryHandler(t *testing.T) {
	t.Run("List returns an empty array, not null", func(t *testing.T) {
		categories := mockusecase.NewMockCategoryUseCase(t)
		router := newRouter(true)
		router.GET("/categories", NewCategoryHandler(categories).List)

		categories.EXPECT().ListNames(mock.Anything, testUserID, "Savings").Return(nil, nil).Once()

		rec := do(router, http.MethodGet, "/categories?account=Savings", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("Delete with query parameters", func(t *testing.T) {
		categories := mockusecase.NewMockCategoryUseCase(t)
		router := newRouter(true)
		router.DELETE("/categories", NewCategoryHandler(categories).Delete)

		categories.EXPECT().Delete(mock.Anything, testUserID, "Dining", "").Return(int64(3), nil).Once()

		rec := do(router, http.MethodDelete, "/categories?name=Dining", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, dto.DeleteCategoryResponse{Success: true, Reassigned: 3}, decode[dto.DeleteCategoryResponse](t, rec))
	})

	t.Run("Deleting the sentinel is rejected", func(t *testing.T) {
		categories := mockusecase.NewMockCategoryUseCase(t)
		router := newRouter(true)
		router.DELETE("/categories", NewCategoryHandler(categories).Delete)

		categories.EXPECT().Delete(mock.Anything, testUserID, entity.NoCategory, "").
			Return(int64(0), errs.ErrProtectedCategory).Once()

		rec := do(router, http.MethodDelete, "/categories", map[string]string{"name": entity.NoCategory})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestTransactionHandler(t *testing.T) {
	t.Run("Create accepts a string amount", func(t *testing.T) {
		txs := mockusecase.NewMockTransactionUseCase(t)
		router := newRouter(true)
		router.POST("/transactions", NewTransactionHandler(txs).Create)

		txs.EXPECT().Create(mock.Anything, testUserID, mock.MatchedBy(func(in entity.TransactionInput) bool {
			return in.Amount.Equal(decimal.NewFromInt(650)) && in.Type == "expense"
		})).Return(sampleTransaction(), nil).Once()

		rec := do(router, http.MethodPost, "/transactions",
			`{"date":"2025-03-14","description":"Weekly shop","amount":"650","type":"expense","category":"Groceries"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decode[dto.TransactionResponse](t, rec)
		assert.Equal(t, "650.00", body.Amount)
		assert.Equal(t, "2025-03-14", body.Date)
	})

	t.Run("Expense over the month balance", func(t *testing.T) {
		txs := mockusecase.NewMockTransactionUseCase(t)
		router := newRouter(true)
		router.POST("/transactions", NewTransactionHandler(txs).Create)

		txs.EXPECT().Create(mock.Anything, testUserID, mock.Anything).Return(nil, errs.ErrInsufficientBalance).Once()

		rec := do(router, http.MethodPost, "/transactions",
			`{"date":"2025-03-14","amount":9000,"type":"expense"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Negative amount never reaches the ledger", func(t *testing.T) {
		txs := mockusecase.NewMockTransactionUseCase(t)
		router := newRouter(true)
		router.POST("/transactions", NewTransactionHandler(txs).Create)

		rec := do(router, http.MethodPost, "/transactions",
			`{"date":"2025-03-14","amount":-5,"type":"income"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Update of a foreign id", func(t *testing.T) {
		txs := mockusecase.NewMockTransactionUseCase(t)
		router := newRouter(true)
		router.PUT("/transactions/:id", NewTransactionHandler(txs).Update)

		txs.EXPECT().Update(mock.Anything, testUserID, uint64(99), mock.Anything).
			Return(nil, errs.ErrTransactionNotFound).Once()

		rec := do(router, http.MethodPut, "/transactions/99",
			`{"date":"2025-03-14","amount":10,"type":"income"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Transaction not found", decode[dto.ErrorResponse](t, rec).Message)
	})

	t.Run("Delete with a malformed id", func(t *testing.T) {
		txs := mockusecase.NewMockTransactionUseCase(t)
		router := newRouter(true)
		router.DELETE("/transactions/:id", NewTransactionHandler(txs).Delete)

		rec := do(router, http.MethodDelete, "/transactions/abc", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		txs := mockusecase.NewMockTransactionUseCase(t)
		router := newRouter(true)
		router.DELETE("/transactions/:id", NewTransactionHandler(txs).Delete)

		txs.EXPECT().Delete(mock.Anything, testUserID, uint64(31)).Return(nil).Once()

		rec := do(router, http.MethodDelete, "/transactions/31", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Transaction deleted successfully", decode[dto.MessageResponse](t, rec).Message)
	})

	t.Run("Filter passes the query through", func(t *testing.T) {
		txs := mockusecase.NewMockTransactionUseCase(t)
		router := newRouter(true)
		router.GET("/transactions/filter", NewTransactionHandler(txs).Filter)

		txs.EXPECT().Filter(mock.Anything, testUserID, usecase.FilterRequest{
			Type: "expense", Category: "all", StartDate: "2025-03-01", EndDate: "2025-03-31",
		}).Return([]*entity.Transaction{sampleTransaction()}, nil).Once()

		rec := do(router, http.MethodGet,
			"/transactions/filter?type=expense&category=all&startDate=2025-03-01&endDate=2025-03-31", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]dto.TransactionResponse](t, rec), 1)
	})

	t.Run("Summary defaults to monthly", func(t *testing.T) {
		txs := mockusecase.NewMockTransactionUseCase(t)
		router := newRouter(true)
		router.GET("/transactions/summary", NewTransactionHandler(txs).Summary)

		txs.EXPECT().Summary(mock.Anything, testUserID, "monthly").Return([]usecase.SummaryRow{}, nil).Once()

		rec := do(router, http.MethodGet, "/transactions/summary", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestBudgetHandlerRollover(t *testing.T) {
	now := time.Date(2025, 3, 31, 12, 0, 0, 0, time.UTC)
	march := entity.Month{Year: 2025, Month: time.March}

	newBudgetRouter := func(t *testing.T) (*gin.Engine, *mockusecase.MockRolloverUseCase) {
		rollover := mockusecase.NewMockRolloverUseCase(t)
		h := NewBudgetHandler(mockusecase.NewMockBudgetUseCase(t), rollover, timeadapter.NewFixedTimeProvider(now))
		router := newRouter(true)
		router.POST("/budget/rollover", h.Rollover)
		return router, rollover
	}

	t.Run("Defaults to the current month", func(t *testing.T) {
		router, rollover := newBudgetRouter(t)
		rollover.EXPECT().CloseMonth(mock.Anything, testUserID, march).
			Return(&entity.RolloverResult{Month: march, BudgetsClosed: 2, BudgetTotal: decimal.NewFromInt(2500)}, nil).Once()

		rec := do(router, http.MethodPost, "/budget/rollover", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode[dto.RolloverResponse](t, rec)
		assert.Equal(t, "2025-03", body.Month)
		assert.Equal(t, "2500.00", body.BudgetTotal)
	})

	t.Run("Repeat close is idempotent", func(t *testing.T) {
		router, rollover := newBudgetRouter(t)
		rollover.EXPECT().CloseMonth(mock.Anything, testUserID, march).
			Return(&entity.RolloverResult{Month: march, AlreadyClosed: true}, nil).Once()

		rec := do(router, http.MethodPost, "/budget/rollover", map[string]string{"month": "2025-03"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, decode[dto.RolloverResponse](t, rec).AlreadyClosed)
	})

	t.Run("Strict repeat close conflicts", func(t *testing.T) {
		router, rollover := newBudgetRouter(t)
		rollover.EXPECT().CloseMonth(mock.Anything, testUserID, march).
			Return(&entity.RolloverResult{Month: march, AlreadyClosed: true}, nil).Once()

		rec := do(router, http.MethodPost, "/budget/rollover", map[string]any{"month": "2025-03", "strict": true})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "Month already closed", decode[dto.ErrorResponse](t, rec).Message)
	})

	t.Run("Open month", func(t *testing.T) {
		router, rollover := newBudgetRouter(t)
		april := entity.Month{Year: 2025, Month: time.April}
		rollover.EXPECT().CloseMonth(mock.Anything, testUserID, april).Return(nil, errs.ErrMonthNotEnded).Once()

		rec := do(router, http.MethodPost, "/budget/rollover", map[string]string{"month": "2025-04"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Month has not ended", decode[dto.ErrorResponse](t, rec).Message)
	})

	t.Run("Old month is refused", func(t *testing.T) {
		router, rollover := newBudgetRouter(t)
		old := entity.Month{Year: 2020, Month: time.January}
		rollover.EXPECT().CloseMonth(mock.Anything, testUserID, old).
			Return(nil, errs.NewValidationError("month", "only the latest ended month can be closed", errs.ErrMonthNotLatest)).Once()

		rec := do(router, http.MethodPost, "/budget/rollover", map[string]string{"month": "2020-01"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, errs.CodeMonthNotLatest, decode[dto.ErrorResponse](t, rec).Code)
	})

	t.Run("Month before a closed one conflicts", func(t *testing.T) {
		router, rollover := newBudgetRouter(t)
		feb := entity.Month{Year: 2025, Month: time.February}
		rollover.EXPECT().CloseMonth(mock.Anything, testUserID, feb).Return(nil, errs.ErrLaterMonthClosed).Once()

		rec := do(router, http.MethodPost, "/budget/rollover", map[string]string{"month": "2025-02"})
		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "A later month is already closed", decode[dto.ErrorResponse](t, rec).Message)
	})

	t.Run("Malformed month", func(t *testing.T) {
		router, _ := newBudgetRouter(t)
		rec := do(router, http.MethodPost, "/budget/rollover", map[string]string{"month": "March"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBudgetHandler(t *testing.T) {
	t.Run("Set rejects a negative budget", func(t *testing.T) {
		budgets := mockusecase.NewMockBudgetUseCase(t)
		router := newRouter(true)
		router.POST("/budget", NewBudgetHandler(budgets, nil, nil).Set)

		rec := do(router, http.MethodPost, "/budget", `{"categoryName":"Dining","budget":-10}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Set", func(t *testing.T) {
		budgets := mockusecase.NewMockBudgetUseCase(t)
		router := newRouter(true)
		router.POST("/budget", NewBudgetHandler(budgets, nil, nil).Set)

		budgets.EXPECT().Set(mock.Anything, testUserID, "Dining", decimal.RequireFromString("400.5")).
			Return(&entity.Budget{ID: 4, CategoryID: 9, CategoryName: "Dining", Amount: decimal.RequireFromString("400.5")}, nil).Once()

		rec := do(router, http.MethodPost, "/budget", `{"categoryName":"Dining","budget":400.50}`)
		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "400.50", decode[dto.BudgetRowResponse](t, rec).Budget)
	})

	t.Run("Update of a missing budget", func(t *testing.T) {
		budgets := mockusecase.NewMockBudgetUseCase(t)
		router := newRouter(true)
		router.PUT("/budget/:id", NewBudgetHandler(budgets, nil, nil).Update)

		budgets.EXPECT().UpdateAmount(mock.Anything, testUserID, uint64(5), mock.Anything).
			Return(nil, errs.ErrBudgetNotFound).Once()

		rec := do(router, http.MethodPut, "/budget/5", `{"budget":100}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Suggestions use snake case", func(t *testing.T) {
		budgets := mockusecase.NewMockBudgetUseCase(t)
		router := newRouter(true)
		router.GET("/budget/auto-suggest", NewBudgetHandler(budgets, nil, nil).Suggest)

		budgets.EXPECT().Suggest(mock.Anything, testUserID).
			Return([]entity.BudgetSuggestion{{Category: "Dining", SuggestedBudget: 220}}, nil).Once()

		rec := do(router, http.MethodGet, "/budget/auto-suggest", nil)
		assert.JSONEq(t, `[{"category":"Dining","suggested_budget":220}]`, rec.Body.String())
	})
}

func TestSavingsHandler(t *testing.T) {
	t.Run("Monthly record may carry a negative saving", func(t *testing.T) {
		savings := mockusecase.NewMockSavingsUseCase(t)
		router := newRouter(true)
		router.POST("/savings/monthly", NewSavingsHandler(savings).StoreMonthly)

		march := entity.Month{Year: 2025, Month: time.March}
		savings.EXPECT().StoreMonthly(mock.Anything, testUserID, mock.MatchedBy(func(req usecase.StoreMonthlyRequest) bool {
			return req.Month == "2025-03" && req.SavedAmount.Equal(decimal.NewFromInt(-200))
		})).Return(&entity.MonthlySavings{
			ID: 1, Month: march, SavedAmount: decimal.NewFromInt(-200), SavingGoal: decimal.NewFromInt(500),
			Status: entity.SavingsNotAchieved,
		}, nil).Once()

		rec := do(router, http.MethodPost, "/savings/monthly", `{"month":"2025-03","savedAmount":-200,"savingGoal":500}`)
		assert.Equal(t, http.StatusOK, rec.Code)
		body := decode[dto.MonthlySavingsResponse](t, rec)
		assert.Equal(t, "-200.00", body.SavedAmount)
		assert.Equal(t, string(entity.SavingsNotAchieved), body.Status)
	})

	t.Run("Year must be numeric", func(t *testing.T) {
		savings := mockusecase.NewMockSavingsUseCase(t)
		router := newRouter(true)
		router.GET("/savings/monthly", NewSavingsHandler(savings).ListMonthly)

		rec := do(router, http.MethodGet, "/savings/monthly?year=last", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Goal status without a goal", func(t *testing.T) {
		savings := mockusecase.NewMockSavingsUseCase(t)
		router := newRouter(true)
		router.GET("/savings/goal", NewSavingsHandler(savings).GoalStatus)

		savings.EXPECT().GoalStatus(mock.Anything, testUserID).
			Return(&usecase.GoalStatus{Status: entity.SavingsNoGoal}, nil).Once()

		rec := do(router, http.MethodGet, "/savings/goal", nil)
		body := decode[dto.GoalStatusResponse](t, rec)
		assert.False(t, body.HasGoal)
		assert.Equal(t, "no_goal", body.Status)
		assert.Equal(t, "0.00", body.CurrentGoal)
	})
}

func TestAnalyticsHandler(t *testing.T) {
	t.Run("Seasonal rejects a non-numeric year count", func(t *testing.T) {
		analytics := mockusecase.NewMockAnalyticsUseCase(t)
		router := newRouter(true)
		router.GET("/seasonal", NewAnalyticsHandler(analytics).Seasonal)

		rec := do(router, http.MethodGet, "/seasonal?years=many", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Budget vs actual binds the query", func(t *testing.T) {
		analytics := mockusecase.NewMockAnalyticsUseCase(t)
		router := newRouter(true)
		router.GET("/bva", NewAnalyticsHandler(analytics).BudgetVsActual)

		analytics.EXPECT().BudgetVsActual(mock.Anything, testUserID, usecase.BudgetVsActualQuery{
			Period: "past", Year: "2025", Month: "2",
		}).Return(&usecase.BudgetVsActualReport{}, nil).Once()

		rec := do(router, http.MethodGet, "/bva?period=past&year=2025&month=2", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Use case failures are hidden", func(t *testing.T) {
		analytics := mockusecase.NewMockAnalyticsUseCase(t)
		router := newRouter(true)
		router.GET("/alerts", NewAnalyticsHandler(analytics).Alerts)

		analytics.EXPECT().Alerts(mock.Anything, testUserID).Return(nil, errors.New("connection reset")).Once()

		rec := do(router, http.MethodGet, "/alerts", nil)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection reset")
	})
}
