package shift_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/shift"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// NormalizeShiftTestSuite covers every accepted input shape and the per-field error reporting
type NormalizeShiftTestSuite struct {
	suite.Suite
}

func (suite *NormalizeShiftTestSuite) TestRawShiftStruct() {
	rec, err := shift.NormalizeShift(shift.RawShift{
		ID:         "shift-1",
		Date:       "2025-03-14",
		StartTime:  "22:00",
		EndTime:    "06:00",
		HourlyRate: "28.50",
		Postcode:   "LS1 4AP",
	})
	suite.Require().NoError(err)
	suite.Equal("shift-1", rec.ID)
	suite.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), rec.Date)
	suite.Equal("22:00", rec.StartTime.String())
	suite.Equal("06:00", rec.EndTime.String())
	suite.Equal("28.5", rec.HourlyRate.String())
	suite.True(rec.RateProvided)
	suite.Equal("LS1 4AP", rec.Postcode)
}

func (suite *NormalizeShiftTestSuite) TestMapWithSnakeCaseKeys() {
	rec, err := shift.NormalizeShift(map[string]any{
		"id":          "abc",
		"shift_date":  "2025-06-01T00:00:00Z",
		"start_time":  "08:00:00",
		"end_time":    "18:30:00",
		"hourly_rate": 95.0,
	})
	suite.Require().NoError(err)
	suite.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), rec.Date)
	suite.Equal("95", rec.HourlyRate.String())
	suite.Equal(8*3600, rec.StartTime.Seconds())
}

func (suite *NormalizeShiftTestSuite) TestJSONPayload() {
	payload := json.RawMessage(`{"date":"2025-01-02","startTime":"9","endTime":"17:30","hourlyRate":85.25}`)
	rec, err := shift.NormalizeShift(payload)
	suite.Require().NoError(err)
	suite.Equal("85.25", rec.HourlyRate.String())
	suite.Equal("09:00", rec.StartTime.String())

	rec, err = shift.NormalizeShift([]byte(`{"date":"2025-01-02","startTime":"09:00","endTime":"17:00"}`))
	suite.Require().NoError(err)
	suite.False(rec.RateProvided)
	suite.True(rec.HourlyRate.IsZero())
}

func (suite *NormalizeShiftTestSuite) TestMissingFieldsAreReportedTogether() {
	_, err := shift.NormalizeShift(map[string]any{"hourlyRate": ""})
	suite.Require().Error(err)

	var verrs apperrors.ValidationErrors
	suite.Require().True(errors.As(err, &verrs))
	fields := verrs.Fields()
	suite.Equal("is required", fields["date"])
	suite.Equal("is required", fields["startTime"])
	suite.Equal("is required", fields["endTime"])
	suite.Contains(fields, "hourlyRate")

	// The empty rate is an InvalidRate, never a silent zero.
	suite.True(apperrors.IsInvalidRate(err))
}

func (suite *NormalizeShiftTestSuite) TestMalformedValues() {
	_, err := shift.NormalizeShift(shift.RawShift{
		Date:       "14/03/2025",
		StartTime:  "25:00",
		EndTime:    "06:00",
		HourlyRate: "abc",
	})
	suite.Require().Error(err)

	var verrs apperrors.ValidationErrors
	suite.Require().True(errors.As(err, &verrs))
	suite.Len(verrs, 3)
	suite.Contains(verrs.Fields()["date"], "expected YYYY-MM-DD")

	var timeErr *apperrors.InvalidTimeFormatError
	suite.Require().True(errors.As(err, &timeErr))
	suite.Equal("25:00", timeErr.Value)

	var rateErr *apperrors.InvalidRateError
	suite.Require().True(errors.As(err, &rateErr))
	suite.Equal("abc", rateErr.Value)
}

func (suite *NormalizeShiftTestSuite) TestNonStringFieldInMap() {
	_, err := shift.NormalizeShift(map[string]any{"date": 20250101, "startTime": "09:00", "endTime": "17:00"})
	suite.Require().Error(err)
	suite.True(apperrors.IsValidation(err))
}

func (suite *NormalizeShiftTestSuite) TestUnsupportedInputs() {
	for _, raw := range []any{nil, 42, "2025-01-01", []byte("not json"), (*shift.RawShift)(nil)} {
		_, err := shift.NormalizeShift(raw)
		suite.True(apperrors.IsValidation(err), "input %#v", raw)
	}
}

func TestNormalizeShiftTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizeShiftTestSuite))
}

func TestParseDate(t *testing.T) {
	d, err := shift.ParseDate("2025-12-31")
	require.NoError(t, err)
	assert.Equal(t, 31, d.Day())

	d, err = shift.ParseDate("2025-12-31T23:30:00+01:00")
	require.NoError(t, err)
	assert.Equal(t, 31, d.Day())

	_, err = shift.ParseDate("31-12-2025")
	assert.Error(t, err)
}

func TestNewValidatorTags(t *testing.T) {
	v := shift.NewValidator()
	type req struct {
		Start string `json:"start" validate:"timeofday"`
		Day   string `json:"day" validate:"isodate"`
	}
	assert.NoError(t, v.Struct(req{Start: "07:15", Day: "2025-02-28"}))
	assert.Error(t, v.Struct(req{Start: "7.15", Day: "2025-02-28"}))
	assert.Error(t, v.Struct(req{Start: "07:15", Day: "2025-02-30"}))
}
