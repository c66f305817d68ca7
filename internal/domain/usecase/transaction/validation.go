package transaction

import (
	"strings"
	"time"

	"github.com/fintrack/fintrack-api/internal/domain/entity"
	errs "github.com/fintrack/fintrack-api/internal/domain/error"
	"github.com/fintrack/fintrack-api/internal/domain/port/usecase"
)

// recentLimit is the number of rows returned by Recent
const recentLimit = 10

// filterValue returns "" for the wildcard values of a filter field
func filterValue(v string) string {
	v = strings.TrimSpace(v)
	if strings.EqualFold(v, "all") {
		return ""
	}
	return v
}

// buildFilter validates a search request. Dates are inclusive calendar days.
func buildFilter(userID uint64, req usecase.FilterRequest) (entity.TransactionFilter, error) {
	if userID == 0 {
		return entity.TransactionFilter{}, errs.ErrInvalidUserID
	}

	filter := entity.TransactionFilter{
		UserID:   userID,
		Category: filterValue(req.Category),
		Account:  filterValue(req.Account),
	}

	if t := filterValue(req.Type); t != "" {
		txType, err := entity.ParseTransactionType(t)
		if err != nil {
			return entity.TransactionFilter{}, err
		}
		filter.Type = txType
	}

	if s := strings.TrimSpace(req.StartDate); s != "" {
		from, err := entity.ParseDate(s)
		if err != nil {
			return entity.TransactionFilter{}, err
		}
		filter.From = &from
	}

	if s := strings.TrimSpace(req.EndDate); s != "" {
		end, err := entity.ParseDate(s)
		if err != nil {
			return entity.TransactionFilter{}, err
		}
		to := end.AddDate(0, 0, 1)
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		return entity.TransactionFilter{}, errs.NewValidationError("startDate", "must not be after endDate", errs.ErrInvalidDate)
	}
	return filter, nil
}

// currentMonthFilter selects the latest rows of the month containing now
func currentMonthFilter(userID uint64, now time.Time, limit int) entity.TransactionFilter {
	window := entity.MonthOf(now).Window()
	return entity.TransactionFilter{
		UserID: userID,
		From:   &window.From,
		To:     &window.To,
		Limit:  limit,
	}
}
