package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/shift"

	"github.com/go-playground/validator/v10"
)

// MaxBatchShifts bounds one calculation request
const MaxBatchShifts = 500

// CalculationService provides shift duration and pay arithmetic
type CalculationService struct {
	calc      *shift.Calculator
	validator *validator.Validate
	now       func() time.Time
}

// Ensure CalculationService implements CalculationServiceInterface
var _ CalculationServiceInterface = (*CalculationService)(nil)

// NewCalculationService creates a new CalculationService
func NewCalculationService(calc *shift.Calculator, validator *validator.Validate) *CalculationService {
	return &CalculationService{
		calc:      calc,
		validator: validator,
		now:       time.Now,
	}
}

// DurationRequest asks for the length of one shift
type DurationRequest struct {
	StartTime string `json:"startTime" validate:"required" example:"22:00"`
	EndTime   string `json:"endTime" validate:"required" example:"06:00"`
}

// DurationResponse is the derived length of a shift
type DurationResponse struct {
	StartTime        string  `json:"startTime" example:"22:00"`
	EndTime          string  `json:"endTime" example:"06:00"`
	DurationHours    float64 `json:"durationHours" example:"8"`
	Overnight        bool    `json:"overnight" example:"true"`
	ZeroLengthPolicy string  `json:"zeroLengthPolicy" example:"full_day"`
}

// EarningsRequest asks for the pay of a shift of known length
type EarningsRequest struct {
	DurationHours *float64 `json:"durationHours" validate:"required" example:"7.5"`
	// HourlyRate is a number or a decimal string; omitted means no rate is known
	HourlyRate interface{} `json:"hourlyRate" swaggertype:"string" example:"85.50"`
}

// EarningsResponse is the pay for a shift
type EarningsResponse struct {
	DurationHours float64         `json:"durationHours"`
	Earnings      *shift.Earnings `json:"earnings"`
}

// ShiftBatchRequest carries raw marketplace shifts
type ShiftBatchRequest struct {
	Shifts []json.RawMessage `json:"shifts" validate:"required,min=1,max=500" swaggertype:"array,object"`
	// AsOf splits upcoming from completed shifts; defaults to now
	AsOf *time.Time `json:"asOf,omitempty"`
}

// ShiftResult is the outcome for one shift of a batch. Exactly one of
// Computation or Errors is set.
type ShiftResult struct {
	Index         int               `json:"index"`
	ID            string            `json:"id,omitempty"`
	Date          string            `json:"date,omitempty"`
	StartTime     string            `json:"startTime,omitempty"`
	EndTime       string            `json:"endTime,omitempty"`
	DurationHours float64           `json:"durationHours"`
	Overnight     bool              `json:"overnight"`
	Earnings      *shift.Earnings   `json:"earnings,omitempty"`
	Errors        map[string]string `json:"errors,omitempty"`
}

// Valid reports whether the shift passed normalization
func (r *ShiftResult) Valid() bool {
	return r.Errors == nil
}

// SummaryResponse renders a shift.Summary with money as fixed two-place strings
type SummaryResponse struct {
	ShiftCount     int     `json:"shiftCount"`
	UpcomingCount  int     `json:"upcomingCount"`
	CompletedCount int     `json:"completedCount"`
	OvernightCount int     `json:"overnightCount"`
	TotalHours     float64 `json:"totalHours"`
	TotalPay       string  `json:"totalPay" example:"1240.50"`
	UpcomingPay    string  `json:"upcomingPay" example:"340.00"`
	AverageRate    string  `json:"averageRate" example:"82.70"`
}

// NewSummaryResponse converts a shift summary for API responses
func NewSummaryResponse(s *shift.Summary) SummaryResponse {
	return SummaryResponse{
		ShiftCount:     s.ShiftCount,
		UpcomingCount:  s.UpcomingCount,
		CompletedCount: s.CompletedCount,
		OvernightCount: s.OvernightCount,
		TotalHours:     s.TotalHours,
		TotalPay:       s.TotalPay.StringFixed(2),
		UpcomingPay:    s.UpcomingPay.StringFixed(2),
		AverageRate:    s.AverageRate.StringFixed(2),
	}
}

// ShiftBatchResponse holds per-shift results and the summary of the valid ones
type ShiftBatchResponse struct {
	Results      []ShiftResult   `json:"results"`
	InvalidCount int             `json:"invalidCount"`
	Summary      SummaryResponse `json:"summary"`
	AsOf         time.Time       `json:"asOf"`
}

// Duration computes the length of a shift from its start and end time of day
func (s *CalculationService) Duration(req *DurationRequest) (*DurationResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	var fieldErrs apperrors.ValidationErrors
	start, err := shift.ParseTimeOfDay(req.StartTime)
	if err != nil {
		fieldErrs = append(fieldErrs, apperrors.NewFieldError("startTime", err))
	}
	end, err := shift.ParseTimeOfDay(req.EndTime)
	if err != nil {
		fieldErrs = append(fieldErrs, apperrors.NewFieldError("endTime", err))
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}

	hours, err := s.calc.DurationHours(start, end)
	if err != nil {
		return nil, err
	}

	policy := s.calc.ZeroLength
	if policy == "" {
		policy = shift.DefaultZeroLengthPolicy
	}

	return &DurationResponse{
		StartTime:        start.String(),
		EndTime:          end.String(),
		DurationHours:    hours,
		Overnight:        s.calc.IsOvernight(start, end),
		ZeroLengthPolicy: string(policy),
	}, nil
}

// Earnings computes pay for a shift length and hourly rate
func (s *CalculationService) Earnings(req *EarningsRequest) (*EarningsResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	earnings, err := shift.ComputeEarnings(*req.DurationHours, req.HourlyRate)
	if err != nil {
		if apperrors.IsInvalidRate(err) {
			return nil, apperrors.ValidationErrors{apperrors.NewFieldError("hourlyRate", err)}
		}
		return nil, apperrors.ValidationErrors{apperrors.NewFieldError("durationHours", err)}
	}

	return &EarningsResponse{
		DurationHours: *req.DurationHours,
		Earnings:      earnings,
	}, nil
}

// Shifts normalizes and computes a batch of raw shifts. Invalid shifts are reported
// individually and left out of the summary rather than failing the batch.
func (s *CalculationService) Shifts(req *ShiftBatchRequest) (*ShiftBatchResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}

	asOf := s.now()
	if req.AsOf != nil {
		asOf = *req.AsOf
	}

	results, summary, err := computeShifts(s.calc, req.Shifts, asOf)
	if err != nil {
		return nil, err
	}

	resp := &ShiftBatchResponse{
		Results: results,
		Summary: NewSummaryResponse(summary),
		AsOf:    asOf,
	}
	for _, r := range results {
		if !r.Valid() {
			resp.InvalidCount++
		}
	}
	return resp, nil
}

// computeShifts is shared by the calculation endpoint and the dashboard
func computeShifts(calc *shift.Calculator, raws []json.RawMessage, asOf time.Time) ([]ShiftResult, *shift.Summary, error) {
	results := make([]ShiftResult, len(raws))
	records := make([]*shift.Record, 0, len(raws))

	for i, raw := range raws {
		results[i].Index = i
		record, err := shift.NormalizeShift(raw)
		if err == nil {
			// The zero-length policy can still refuse a well-formed shift.
			_, err = calc.Compute(record)
		}
		if err != nil {
			results[i].Errors = errorFields(err)
			continue
		}
		records = append(records, record)
	}

	summary, computations, err := calc.Summarize(records, asOf)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to summarize shifts: %w", err)
	}

	next := 0
	for i := range results {
		if !results[i].Valid() {
			continue
		}
		comp := computations[next]
		next++
		r := comp.Record
		results[i].ID = r.ID
		results[i].Date = r.Date.Format("2006-01-02")
		results[i].StartTime = r.StartTime.String()
		results[i].EndTime = r.EndTime.String()
		results[i].DurationHours = comp.DurationHours
		results[i].Overnight = comp.Overnight
		results[i].Earnings = comp.Earnings
	}
	return results, summary, nil
}

// errorFields flattens an error into field messages for per-item reporting
func errorFields(err error) map[string]string {
	var verrs apperrors.ValidationErrors
	if errors.As(err, &verrs) {
		fields := verrs.Fields()
		if msg, ok := fields[""]; ok {
			delete(fields, "")
			fields["shift"] = msg
		}
		return fields
	}
	return map[string]string{"shift": err.Error()}
}
