package shift

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strings"

	apperrors "joyjoy-locums-backend/internal/errors"

	"github.com/shopspring/decimal"
)

const currencyPlaces = 2

var secondsPerHourDecimal = decimal.NewFromInt(secondsPerHour)

// Earnings is the pay derived from a duration and an hourly rate.
type Earnings struct {
	Hourly decimal.Decimal
	// Total is TotalExact rounded half-up to pence.
	Total decimal.Decimal
	// TotalExact is kept unrounded so several shifts can be summed without compounding rounding error.
	TotalExact decimal.Decimal
	// RateMissing is set when no rate was supplied at all; Hourly and Total are then zero.
	RateMissing bool
}

type earningsJSON struct {
	Hourly      string `json:"hourly"`
	Total       string `json:"total"`
	TotalExact  string `json:"totalExact"`
	RateMissing bool   `json:"rateMissing,omitempty"`
}

// MarshalJSON renders money as fixed two-place strings.
func (e Earnings) MarshalJSON() ([]byte, error) {
	return json.Marshal(earningsJSON{
		Hourly:      e.Hourly.StringFixed(currencyPlaces),
		Total:       e.Total.StringFixed(currencyPlaces),
		TotalExact:  e.TotalExact.String(),
		RateMissing: e.RateMissing,
	})
}

// RoundCurrency rounds half-up to two decimal places. Amounts here are never negative,
// so decimal's half-away-from-zero rounding is half-up.
func RoundCurrency(d decimal.Decimal) decimal.Decimal {
	return d.Round(currencyPlaces)
}

// Bounds on accepted rates. Rates above £9,999,999.99/h or finer than 1e-10 are input errors.
const (
	maxRateIntegerDigits = 7
	maxRateScale         = 10
)

// Plain decimal notation only; exponents are rejected.
var plainDecimalPattern = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

// ParseRate coerces an hourly rate given as a number or a decimal string.
// A nil rate is reported as not present and is not an error; an empty string is.
func ParseRate(v any) (decimal.Decimal, bool, error) {
	switch r := v.(type) {
	case nil:
		return decimal.Zero, false, nil
	case string:
		d, err := parseRateString(r)
		return d, true, err
	case json.Number:
		d, err := parseRateString(r.String())
		return d, true, err
	case decimal.Decimal:
		d, err := checkRate(r, r.String())
		return d, true, err
	case *decimal.Decimal:
		if r == nil {
			return decimal.Zero, false, nil
		}
		d, err := checkRate(*r, r.String())
		return d, true, err
	case float64:
		d, err := rateFromFloat(r)
		return d, true, err
	case float32:
		d, err := rateFromFloat(float64(r))
		return d, true, err
	case int, int8, int16, int32, int64:
		n := reflect.ValueOf(r).Int()
		d, err := checkRate(decimal.NewFromInt(n), fmt.Sprint(n))
		return d, true, err
	case uint, uint8, uint16, uint32, uint64:
		n := reflect.ValueOf(r).Uint()
		d, err := checkRate(decimal.NewFromUint64(n), fmt.Sprint(n))
		return d, true, err
	default:
		return decimal.Zero, true, apperrors.NewInvalidRateError(fmt.Sprintf("%v", v), fmt.Sprintf("unsupported type %T", v))
	}
}

func parseRateString(s string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "£")
	trimmed = strings.TrimSpace(trimmed)
	if trimmed == "" {
		return decimal.Zero, apperrors.NewInvalidRateError(s, "empty value")
	}
	if strings.HasPrefix(trimmed, "-") {
		return decimal.Zero, apperrors.NewInvalidRateError(s, "must not be negative")
	}
	if !plainDecimalPattern.MatchString(trimmed) {
		return decimal.Zero, apperrors.NewInvalidRateError(s, "not a decimal number")
	}
	intPart, fracPart, _ := strings.Cut(trimmed, ".")
	intPart = strings.TrimLeft(intPart, "0")
	fracPart = strings.TrimRight(fracPart, "0")
	if len(intPart) > maxRateIntegerDigits {
		return decimal.Zero, apperrors.NewInvalidRateError(s, "too large")
	}
	if len(fracPart) > maxRateScale {
		return decimal.Zero, apperrors.NewInvalidRateError(s, "too many decimal places")
	}
	if intPart == "" {
		intPart = "0"
	}
	if fracPart != "" {
		intPart += "." + fracPart
	}
	d, err := decimal.NewFromString(intPart)
	if err != nil {
		return decimal.Zero, apperrors.NewInvalidRateError(s, "not a decimal number")
	}
	return checkRate(d, s)
}

func rateFromFloat(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, apperrors.NewInvalidRateError(fmt.Sprint(f), "not a finite number")
	}
	if math.Abs(f) >= math.Pow10(maxRateIntegerDigits) {
		return decimal.Zero, apperrors.NewInvalidRateError(fmt.Sprint(f), "too large")
	}
	d := decimal.NewFromFloat(f)
	// binary floats carry noise far below a penny
	if d.Exponent() < -maxRateScale {
		d = d.Round(maxRateScale)
	}
	return checkRate(d, fmt.Sprint(f))
}

// checkRate inspects digits and exponent only, so it stays cheap for any input.
func checkRate(d decimal.Decimal, raw string) (decimal.Decimal, error) {
	if d.IsNegative() {
		return decimal.Zero, apperrors.NewInvalidRateError(raw, "must not be negative")
	}
	if d.IsZero() {
		return decimal.Zero, nil
	}
	if int64(d.NumDigits())+int64(d.Exponent()) > maxRateIntegerDigits {
		return decimal.Zero, apperrors.NewInvalidRateError(raw, "too large")
	}
	if d.Exponent() < -maxRateScale {
		return decimal.Zero, apperrors.NewInvalidRateError(raw, "too many decimal places")
	}
	return d, nil
}

// ComputeEarnings derives hourly and total pay. durationHours must be finite and non-negative.
func ComputeEarnings(durationHours float64, hourlyRate any) (*Earnings, error) {
	if math.IsNaN(durationHours) || math.IsInf(durationHours, 0) || durationHours < 0 {
		return nil, apperrors.ErrInvalidDuration
	}
	rate, present, err := ParseRate(hourlyRate)
	if err != nil {
		return nil, err
	}
	exact := rate.Mul(decimal.NewFromFloat(durationHours))
	return newEarnings(rate, exact, !present), nil
}

// earningsForSeconds avoids the float hop for durations already known in whole seconds.
func earningsForSeconds(seconds int, rate decimal.Decimal, present bool) *Earnings {
	exact := rate.Mul(decimal.NewFromInt(int64(seconds))).Div(secondsPerHourDecimal)
	return newEarnings(rate, exact, !present)
}

func newEarnings(rate, exact decimal.Decimal, missing bool) *Earnings {
	return &Earnings{
		Hourly:      rate,
		Total:       RoundCurrency(exact),
		TotalExact:  exact,
		RateMissing: missing,
	}
}
