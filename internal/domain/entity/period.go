package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
)

// Date and month layouts used on the wire
const (
	DateLayout  = "2006-01-02"
	MonthLayout = "2006-01"
)

// Month identifies a calendar month. Its window is [Start, End).
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the calendar month containing t, read in t's own location
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth parses "YYYY-MM"
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse(MonthLayout, strings.TrimSpace(s))
	if err != nil {
		return Month{}, errs.NewValidationError("month", fmt.Sprintf("%q is not YYYY-MM", s), errs.ErrInvalidDate)
	}
	return MonthOf(t), nil
}

// Start returns midnight UTC of the first day of the month
func (m Month) Start() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End returns the exclusive end of the month, the first instant of the next month
func (m Month) End() time.Time {
	return m.Start().AddDate(0, 1, 0)
}

// LastDay returns midnight UTC of the last calendar day of the month
func (m Month) LastDay() time.Time {
	return m.End().AddDate(0, 0, -1)
}

// Days returns the number of days in the month
func (m Month) Days() int {
	return m.LastDay().Day()
}

// AddMonths moves the month by n, which may be negative
func (m Month) AddMonths(n int) Month {
	return MonthOf(m.Start().AddDate(0, n, 0))
}

// Before reports whether m is strictly earlier than o
func (m Month) Before(o Month) bool {
	return m.Start().Before(o.Start())
}

// String renders the month as YYYY-MM
func (m Month) String() string {
	return m.Start().Format(MonthLayout)
}

// IsLastDay reports whether t falls on the last calendar day of its month
func IsLastDay(t time.Time) bool {
	return t.AddDate(0, 0, 1).Month() != t.Month()
}

// DateOnly truncates t to midnight UTC of the same calendar day
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts YYYY-MM-DD or RFC 3339 and returns the calendar day at midnight UTC
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return DateOnly(t), nil
	}
	return time.Time{}, errs.NewValidationError("date", fmt.Sprintf("%q is not YYYY-MM-DD", s), errs.ErrInvalidDate)
}

// DateRange is a half-open time window [From, To)
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t is inside the window
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// Window returns the month as a DateRange
func (m Month) Window() DateRange {
	return DateRange{From: m.Start(), To: m.End()}
}

// MaxDate is an open upper bound for windows that run to the end of the ledger
var MaxDate = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)
