package shift

import (
	"fmt"
	"strings"
	"time"

	apperrors "joyjoy-locums-backend/internal/errors"
)

// ZeroLengthPolicy decides what a shift whose start equals its end means.
type ZeroLengthPolicy string

const (
	// ZeroLengthFullDay treats start == end as a 24-hour overnight shift.
	ZeroLengthFullDay ZeroLengthPolicy = "full_day"
	// ZeroLengthZero treats start == end as a 0-hour shift.
	ZeroLengthZero ZeroLengthPolicy = "zero"
	// ZeroLengthReject refuses start == end with ErrZeroLengthShift.
	ZeroLengthReject ZeroLengthPolicy = "reject"
)

// DefaultZeroLengthPolicy keeps the wraparound rule: end <= start is overnight.
const DefaultZeroLengthPolicy = ZeroLengthFullDay

// IsValid checks if the ZeroLengthPolicy is valid
func (p ZeroLengthPolicy) IsValid() bool {
	switch p {
	case ZeroLengthFullDay, ZeroLengthZero, ZeroLengthReject:
		return true
	}
	return false
}

// ParseZeroLengthPolicy reads a policy name; the empty string selects the default.
func ParseZeroLengthPolicy(s string) (ZeroLengthPolicy, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultZeroLengthPolicy, nil
	}
	p := ZeroLengthPolicy(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown zero-length shift policy %q", s)
	}
	return p, nil
}

// Calculator holds the policies used to derive durations and pay.
// The zero value is ready to use with the default policy and UTC.
type Calculator struct {
	ZeroLength ZeroLengthPolicy
	Location   *time.Location
}

// NewCalculator creates a calculator with the given zero-length policy
func NewCalculator(policy ZeroLengthPolicy, loc *time.Location) *Calculator {
	return &Calculator{ZeroLength: policy, Location: loc}
}

func (c *Calculator) policy() ZeroLengthPolicy {
	if c == nil || c.ZeroLength == "" {
		return DefaultZeroLengthPolicy
	}
	return c.ZeroLength
}

func (c *Calculator) location() *time.Location {
	if c == nil || c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// spanSeconds returns the length of the shift in seconds and whether it crosses midnight.
func (c *Calculator) spanSeconds(start, end TimeOfDay) (int, bool, error) {
	if start == end {
		switch c.policy() {
		case ZeroLengthZero:
			return 0, false, nil
		case ZeroLengthReject:
			return 0, false, apperrors.ErrZeroLengthShift
		default:
			return secondsPerDay, true, nil
		}
	}
	if end < start {
		return secondsPerDay - int(start) + int(end), true, nil
	}
	return int(end) - int(start), false, nil
}

// DurationHours returns the shift length in hours, always within [0, 24].
func (c *Calculator) DurationHours(start, end TimeOfDay) (float64, error) {
	secs, _, err := c.spanSeconds(start, end)
	if err != nil {
		return 0, err
	}
	return float64(secs) / secondsPerHour, nil
}

// Duration returns the shift length as a time.Duration.
func (c *Calculator) Duration(start, end TimeOfDay) (time.Duration, error) {
	secs, _, err := c.spanSeconds(start, end)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

// IsOvernight reports whether a shift from start to end crosses midnight under the calculator's policy.
func (c *Calculator) IsOvernight(start, end TimeOfDay) bool {
	_, overnight, err := c.spanSeconds(start, end)
	return err == nil && overnight
}

// ComputeDurationHours uses the default policy, under which it cannot fail.
func ComputeDurationHours(start, end TimeOfDay) float64 {
	var c Calculator
	hours, _ := c.DurationHours(start, end)
	return hours
}

// ComputeDurationHoursString parses both times and returns the duration in hours.
// Malformed input fails with *errors.InvalidTimeFormatError.
func ComputeDurationHoursString(start, end string) (float64, error) {
	var c Calculator
	return c.DurationHoursString(start, end)
}

// DurationHoursString is DurationHours for raw "HH:MM" strings.
func (c *Calculator) DurationHoursString(start, end string) (float64, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return 0, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return 0, err
	}
	return c.DurationHours(s, e)
}
