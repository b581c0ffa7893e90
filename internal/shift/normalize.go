package shift

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	apperrors "joyjoy-locums-backend/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const isoDateLayout = "2006-01-02"

// RawShift is a shift as it arrives from the marketplace API, before validation.
type RawShift struct {
	ID         string `json:"id,omitempty"`
	Date       string `json:"date" validate:"required,isodate"`
	StartTime  string `json:"startTime" validate:"required,timeofday"`
	EndTime    string `json:"endTime" validate:"required,timeofday"`
	HourlyRate any    `json:"hourlyRate"`
	Role       string `json:"role,omitempty"`
	Practice   string `json:"practice,omitempty"`
	Postcode   string `json:"postcode,omitempty"`
}

// Record is a validated shift. Only NormalizeShift produces one.
type Record struct {
	ID           string
	Date         time.Time
	StartTime    TimeOfDay
	EndTime      TimeOfDay
	HourlyRate   decimal.Decimal
	RateProvided bool
	Role         string
	Practice     string
	Postcode     string
}

// StartsAt returns the start instant in loc.
func (r *Record) StartsAt(loc *time.Location) time.Time {
	y, m, d := r.Date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(r.StartTime) * time.Second)
}

var defaultValidator = NewValidator()

// NewValidator returns a validator with the timeofday and isodate tags registered
// and field names reported by their json tag.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		return IsValidTimeOfDay(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseDate(fl.Field().String())
		return err == nil
	})
	return v
}

// ParseDate accepts YYYY-MM-DD or an RFC 3339 timestamp and keeps the calendar date.
func ParseDate(s string) (time.Time, error) {
	trimmed := strings.TrimSpace(s)
	if t, err := time.Parse(isoDateLayout, trimmed); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, trimmed)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
}

// NormalizeShift validates an upstream shift and returns a typed Record.
// raw may be a RawShift, *RawShift, map[string]any, or a JSON object as []byte / json.RawMessage.
// Failures are reported together as errors.ValidationErrors, one entry per field.
func NormalizeShift(raw any) (*Record, error) {
	rs, err := toRawShift(raw)
	if err != nil {
		return nil, err
	}

	var fieldErrs apperrors.ValidationErrors
	if err := defaultValidator.Struct(rs); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, fmt.Errorf("validate shift: %w", err)
		}
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, fieldError(fe))
		}
	}

	rate, present, rateErr := ParseRate(rs.HourlyRate)
	if rateErr != nil {
		fieldErrs = append(fieldErrs, apperrors.NewFieldError("hourlyRate", rateErr))
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	// Already validated above, so these cannot fail.
	date, _ := ParseDate(rs.Date)
	start, _ := ParseTimeOfDay(rs.StartTime)
	end, _ := ParseTimeOfDay(rs.EndTime)

	return &Record{
		ID:           rs.ID,
		Date:         date,
		StartTime:    start,
		EndTime:      end,
		HourlyRate:   rate,
		RateProvided: present,
		Role:         rs.Role,
		Practice:     rs.Practice,
		Postcode:     rs.Postcode,
	}, nil
}

func fieldError(fe validator.FieldError) *apperrors.ValidationError {
	field := fe.Field()
	value := fmt.Sprintf("%v", fe.Value())
	switch fe.Tag() {
	case "required":
		return &apperrors.ValidationError{Field: field, Message: "is required"}
	case "timeofday":
		return apperrors.NewFieldError(field, apperrors.NewInvalidTimeFormatError(value))
	case "isodate":
		return &apperrors.ValidationError{Field: field, Message: fmt.Sprintf("invalid date %q: expected YYYY-MM-DD", value)}
	default:
		return &apperrors.ValidationError{Field: field, Message: fmt.Sprintf("failed %s check", fe.Tag())}
	}
}

func toRawShift(raw any) (*RawShift, error) {
	switch v := raw.(type) {
	case nil:
		return nil, apperrors.ValidationErrors{{Message: "shift record is missing"}}
	case RawShift:
		return &v, nil
	case *RawShift:
		if v == nil {
			return nil, apperrors.ValidationErrors{{Message: "shift record is missing"}}
		}
		return v, nil
	case map[string]any:
		return rawShiftFromMap(v)
	case json.RawMessage:
		return rawShiftFromJSON(v)
	case []byte:
		return rawShiftFromJSON(v)
	default:
		return nil, apperrors.ValidationErrors{{Message: fmt.Sprintf("unsupported shift record type %T", raw)}}
	}
}

func rawShiftFromJSON(data []byte) (*RawShift, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, apperrors.ValidationErrors{{Message: "shift record is not a JSON object"}}
	}
	return rawShiftFromMap(m)
}

// rawShiftFromMap accepts both camelCase and the snake_case column names the API returns.
func rawShiftFromMap(m map[string]any) (*RawShift, error) {
	var fieldErrs apperrors.ValidationErrors
	str := func(field string, keys ...string) string {
		for _, k := range keys {
			v, ok := m[k]
			if !ok || v == nil {
				continue
			}
			switch s := v.(type) {
			case string:
				return s
			case json.Number:
				return s.String()
			default:
				fieldErrs = append(fieldErrs, &apperrors.ValidationError{Field: field, Message: fmt.Sprintf("must be a string, got %T", v)})
				return ""
			}
		}
		return ""
	}

	rs := &RawShift{
		ID:        str("id", "id"),
		Date:      str("date", "date", "shift_date"),
		StartTime: str("startTime", "startTime", "start_time"),
		EndTime:   str("endTime", "endTime", "end_time"),
		Role:      str("role", "role"),
		Practice:  str("practice", "practice", "practice_name"),
		Postcode:  str("postcode", "postcode"),
	}
	if v, ok := m["hourlyRate"]; ok {
		rs.HourlyRate = v
	} else if v, ok := m["hourly_rate"]; ok {
		rs.HourlyRate = v
	}

	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return rs, nil
}
