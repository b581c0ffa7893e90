package shift_test

import (
	"encoding/json"
	"math"
	"testing"

	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/shift"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEarnings(t *testing.T) {
	t.Run("string rate over a night shift", func(t *testing.T) {
		e, err := shift.ComputeEarnings(8, "28.50")
		require.NoError(t, err)
		assert.Equal(t, "28.50", e.Hourly.StringFixed(2))
		assert.Equal(t, "228.00", e.Total.StringFixed(2))
		assert.False(t, e.RateMissing)
	})

	t.Run("zero duration keeps the hourly rate", func(t *testing.T) {
		for _, rate := range []any{"0", "12.75", 95, 110.5, json.Number("80")} {
			e, err := shift.ComputeEarnings(0, rate)
			require.NoError(t, err)
			assert.True(t, e.Total.IsZero(), "rate %v", rate)
			want, _, _ := shift.ParseRate(rate)
			assert.True(t, want.Equal(e.Hourly), "rate %v", rate)
		}
	})

	t.Run("missing rate yields zero total", func(t *testing.T) {
		e, err := shift.ComputeEarnings(7.5, nil)
		require.NoError(t, err)
		assert.True(t, e.Total.IsZero())
		assert.True(t, e.RateMissing)
	})

	t.Run("zero rate is not missing", func(t *testing.T) {
		e, err := shift.ComputeEarnings(7.5, 0)
		require.NoError(t, err)
		assert.True(t, e.Total.IsZero())
		assert.False(t, e.RateMissing)
	})

	t.Run("half-up rounding keeps the exact value", func(t *testing.T) {
		// 2.5h at 10.005 = 25.0125 -> 25.01
		e, err := shift.ComputeEarnings(2.5, "10.005")
		require.NoError(t, err)
		assert.Equal(t, "25.01", e.Total.StringFixed(2))
		assert.Equal(t, "25.0125", e.TotalExact.String())

		// 1.5h at 10.01 = 15.015 -> 15.02
		e, err = shift.ComputeEarnings(1.5, "10.01")
		require.NoError(t, err)
		assert.Equal(t, "15.02", e.Total.StringFixed(2))
	})

	t.Run("invalid rates", func(t *testing.T) {
		for _, rate := range []any{
			"invalid", "", "   ", "-5", -1, math.NaN(), math.Inf(1), true, "12,50",
			"1e3", "1e1000000", "9e999999999", json.Number("1e5"), "12345678", "0.00000000001",
			1e8, int64(10_000_000), decimal.New(1, 1_000_000), decimal.New(1, -50),
		} {
			_, err := shift.ComputeEarnings(8, rate)
			assert.True(t, apperrors.IsInvalidRate(err), "rate %#v should be rejected, got %v", rate, err)
		}
	})

	t.Run("invalid durations", func(t *testing.T) {
		for _, d := range []float64{-1, math.NaN(), math.Inf(1)} {
			_, err := shift.ComputeEarnings(d, "20")
			assert.ErrorIs(t, err, apperrors.ErrInvalidDuration)
		}
	})
}

func TestParseRate(t *testing.T) {
	testCases := []struct {
		name    string
		input   any
		want    string
		present bool
	}{
		{"decimal string", "28.50", "28.5", true},
		{"pound sign", "£45", "45", true},
		{"padded", "  60.00 ", "60", true},
		{"int", 70, "70", true},
		{"int64", int64(72), "72", true},
		{"uint", uint(15), "15", true},
		{"float", 31.25, "31.25", true},
		{"json number", json.Number("99.99"), "99.99", true},
		{"decimal", decimal.RequireFromString("40.10"), "40.1", true},
		{"nil", nil, "0", false},
		{"int8", int8(12), "12", true},
		{"int16", int16(300), "300", true},
		{"uint8", uint8(25), "25", true},
		{"uint16", uint16(1200), "1200", true},
		{"leading point", ".5", "0.5", true},
		{"largest rate", "9999999.99", "9999999.99", true},
		{"trailing zeros", "45.000000000000", "45", true},
		{"float noise", 0.1 + 0.2, "0.3", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, present, err := shift.ParseRate(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.present, present)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestEarningsJSON(t *testing.T) {
	e, err := shift.ComputeEarnings(8, "28.5")
	require.NoError(t, err)

	data, err := json.Marshal(e)
	require.NoError(t, err)
	assert.JSONEq(t, `{"hourly":"28.50","total":"228.00","totalExact":"228"}`, string(data))
}
