package shift

import (
	"time"

	"github.com/shopspring/decimal"
)

// Computation is the derived view of one shift. It is never persisted.
type Computation struct {
	Record        *Record   `json:"-"`
	DurationHours float64   `json:"durationHours"`
	Overnight     bool      `json:"overnight"`
	Earnings      *Earnings `json:"earnings"`
}

// Compute derives duration and pay for a normalized record.
func (c *Calculator) Compute(r *Record) (*Computation, error) {
	secs, overnight, err := c.spanSeconds(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	return &Computation{
		Record:        r,
		DurationHours: float64(secs) / secondsPerHour,
		Overnight:     overnight,
		Earnings:      earningsForSeconds(secs, r.HourlyRate, r.RateProvided),
	}, nil
}

// Summary aggregates a locum's shifts for dashboards.
type Summary struct {
	ShiftCount     int             `json:"shiftCount"`
	UpcomingCount  int             `json:"upcomingCount"`
	CompletedCount int             `json:"completedCount"`
	OvernightCount int             `json:"overnightCount"`
	TotalHours     float64         `json:"totalHours"`
	TotalPay       decimal.Decimal `json:"-"`
	TotalPayExact  decimal.Decimal `json:"-"`
	UpcomingPay    decimal.Decimal `json:"-"`
	AverageRate    decimal.Decimal `json:"-"`
}

// Summarize totals hours and pay across records. Pay is summed unrounded and rounded once.
// A shift is upcoming when it starts after asOf, in the calculator's location.
func (c *Calculator) Summarize(records []*Record, asOf time.Time) (*Summary, []*Computation, error) {
	sum := &Summary{
		TotalPay:      decimal.Zero,
		TotalPayExact: decimal.Zero,
		UpcomingPay:   decimal.Zero,
		AverageRate:   decimal.Zero,
	}
	computations := make([]*Computation, 0, len(records))
	totalSeconds := 0
	upcomingExact := decimal.Zero

	for _, r := range records {
		comp, err := c.Compute(r)
		if err != nil {
			return nil, nil, err
		}
		computations = append(computations, comp)

		secs, _, _ := c.spanSeconds(r.StartTime, r.EndTime)
		totalSeconds += secs
		sum.ShiftCount++
		if comp.Overnight {
			sum.OvernightCount++
		}
		sum.TotalPayExact = sum.TotalPayExact.Add(comp.Earnings.TotalExact)
		if r.StartsAt(c.location()).After(asOf) {
			sum.UpcomingCount++
			upcomingExact = upcomingExact.Add(comp.Earnings.TotalExact)
		} else {
			sum.CompletedCount++
		}
	}

	sum.TotalHours = float64(totalSeconds) / secondsPerHour
	sum.TotalPay = RoundCurrency(sum.TotalPayExact)
	sum.UpcomingPay = RoundCurrency(upcomingExact)
	if totalSeconds > 0 {
		hours := decimal.NewFromInt(int64(totalSeconds)).Div(secondsPerHourDecimal)
		sum.AverageRate = RoundCurrency(sum.TotalPayExact.Div(hours))
	}
	return sum, computations, nil
}
