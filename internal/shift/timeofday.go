package shift

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	apperrors "joyjoy-locums-backend/internal/errors"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 24 * secondsPerHour
)

// Accepts H, HH, H:MM, HH:MM and HH:MM:SS on a 24-hour clock.
var timeOfDayPattern = regexp.MustCompile(`^([01]?\d|2[0-3])(?::([0-5]\d)(?::([0-5]\d))?)?$`)

// TimeOfDay is a local wall-clock time stored as seconds since midnight.
type TimeOfDay int

// ParseTimeOfDay parses a 24-hour time string. Surrounding whitespace is ignored.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(s)
	m := timeOfDayPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return 0, apperrors.NewInvalidTimeFormatError(s)
	}

	hours, _ := strconv.Atoi(m[1])
	minutes, seconds := 0, 0
	if m[2] != "" {
		minutes, _ = strconv.Atoi(m[2])
	}
	if m[3] != "" {
		seconds, _ = strconv.Atoi(m[3])
	}

	return TimeOfDay(hours*secondsPerHour + minutes*secondsPerMinute + seconds), nil
}

// MustParseTimeOfDay is ParseTimeOfDay for literals; it panics on malformed input.
func MustParseTimeOfDay(s string) TimeOfDay {
	t, err := ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

// IsValidTimeOfDay reports whether s would parse.
func IsValidTimeOfDay(s string) bool {
	return timeOfDayPattern.MatchString(strings.TrimSpace(s))
}

// Minutes returns minutes since midnight, truncating seconds.
func (t TimeOfDay) Minutes() int {
	return int(t) / secondsPerMinute
}

// Seconds returns seconds since midnight.
func (t TimeOfDay) Seconds() int {
	return int(t)
}

// String formats as HH:MM, adding :SS only when seconds are set.
func (t TimeOfDay) String() string {
	h := int(t) / secondsPerHour
	m := (int(t) % secondsPerHour) / secondsPerMinute
	s := int(t) % secondsPerMinute
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
