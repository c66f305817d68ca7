package entity

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/fintrack/fintrack-api/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for money amounts
const MaxDecimalPlaces = 2

// MaxAmount is the largest amount a decimal(14,2) column can hold
var MaxAmount = decimal.RequireFromString("999999999999.99")

var hundred = decimal.NewFromInt(100)

// ParseAmount validates a textual amount and returns it as a decimal.
// Negative values, more than two decimal places and overflowing values are rejected.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	d, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	if err := ValidateAmount(d); err != nil {
		return decimal.Zero, err
	}
	return d, nil
}

// ParseSignedAmount is ParseAmount for values that may be negative,
// such as the savings of a month that overspent.
func ParseSignedAmount(amount string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(amount)
	if rest, ok := strings.CutPrefix(trimmed, "-"); ok {
		d, err := ParseAmount(rest)
		if err != nil {
			return decimal.Zero, err
		}
		return d.Neg(), nil
	}
	return ParseAmount(trimmed)
}

// ValidateAmount checks sign, scale and range of an amount. Zero is allowed.
func ValidateAmount(d decimal.Decimal) error {
	if d.IsNegative() {
		return fmt.Errorf("%w: amount cannot be negative", errs.ErrInvalidAmount)
	}
	if !d.Equal(d.Truncate(MaxDecimalPlaces)) {
		return fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	if d.GreaterThan(MaxAmount) {
		return fmt.Errorf("%w: amount is too large", errs.ErrInvalidAmount)
	}
	return nil
}

// ValidatePositiveAmount is ValidateAmount that also rejects zero
func ValidatePositiveAmount(d decimal.Decimal) error {
	if err := ValidateAmount(d); err != nil {
		return err
	}
	if d.IsZero() {
		return fmt.Errorf("%w: amount must be greater than zero", errs.ErrInvalidAmount)
	}
	return nil
}

// FormatAmount renders an amount with exactly two decimal places
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(MaxDecimalPlaces)
}

// Percentage returns round(part/whole*100), or 0 when whole is not positive.
func Percentage(part, whole decimal.Decimal) int64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(0).IntPart()
}

// RoundTo rounds a float half away from zero to the given number of places
func RoundTo(v float64, places int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
