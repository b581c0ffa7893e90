package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/logger"
	"joyjoy-locums-backend/internal/shift"

	"github.com/xuri/excelize/v2"
)

const statementSheet = "Earnings"

// DashboardService builds a locum's earnings view from their marketplace shifts
type DashboardService struct {
	marketplace MarketplaceReader
	calc        *shift.Calculator
	now         func() time.Time
}

// Ensure DashboardService implements DashboardServiceInterface
var _ DashboardServiceInterface = (*DashboardService)(nil)

// NewDashboardService creates a new DashboardService
func NewDashboardService(marketplace MarketplaceReader, calc *shift.Calculator) *DashboardService {
	return &DashboardService{
		marketplace: marketplace,
		calc:        calc,
		now:         time.Now,
	}
}

// EarningsDashboardResponse is the earnings summary shown on the locum dashboard
type EarningsDashboardResponse struct {
	Summary SummaryResponse `json:"summary"`
	Shifts  []ShiftResult   `json:"shifts"`
	// Skipped counts upstream shifts that failed validation and are left out of the totals
	Skipped int       `json:"skipped"`
	AsOf    time.Time `json:"asOf"`
}

// Earnings summarises the user's shifts
func (s *DashboardService) Earnings(ctx context.Context, userID string) (*EarningsDashboardResponse, error) {
	resp, _, err := s.earnings(ctx, userID)
	return resp, err
}

func (s *DashboardService) earnings(ctx context.Context, userID string) (*EarningsDashboardResponse, *shift.Summary, error) {
	if s.marketplace == nil {
		return nil, nil, apperrors.ErrUpstreamNotConfigured
	}

	raws, err := s.marketplace.ListShifts(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list shifts: %w", err)
	}

	asOf := s.now()
	results, summary, err := computeShifts(s.calc, raws, asOf)
	if err != nil {
		return nil, nil, err
	}

	resp := &EarningsDashboardResponse{
		Summary: NewSummaryResponse(summary),
		Shifts:  results,
		AsOf:    asOf,
	}
	log := logger.WithContext(ctx)
	for _, r := range results {
		if !r.Valid() {
			resp.Skipped++
			log.WithField("shift_index", r.Index).WithField("errors", r.Errors).Warn("Skipping invalid upstream shift")
		}
	}
	return resp, summary, nil
}

// ExportEarnings renders the earnings statement as an .xlsx workbook.
// It returns the workbook and a suggested file name.
func (s *DashboardService) ExportEarnings(ctx context.Context, userID string) (*bytes.Buffer, string, error) {
	dash, summary, err := s.earnings(ctx, userID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(statementSheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	_ = f.DeleteSheet("Sheet1")

	widths := map[string]float64{"A": 14, "B": 12, "C": 10, "D": 10, "E": 10, "F": 11, "G": 12, "H": 12}
	for col, w := range widths {
		_ = f.SetColWidth(statementSheet, col, col, w)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, "", fmt.Errorf("failed to create money style: %w", err)
	}

	_ = f.SetCellValue(statementSheet, "A1", fmt.Sprintf("Earnings statement as of %s", dash.AsOf.Format("2 Jan 2006 15:04")))
	_ = f.MergeCell(statementSheet, "A1", "H1")

	headers := []string{"Shift", "Date", "Start", "End", "Hours", "Overnight", "Rate (£)", "Pay (£)"}
	row := 3
	for i, h := range headers {
		_ = f.SetCellValue(statementSheet, cell(colName(i), row), h)
	}
	_ = f.SetCellStyle(statementSheet, cell("A", row), cell("H", row), headerStyle)

	for _, r := range dash.Shifts {
		if !r.Valid() {
			continue
		}
		row++
		hourly, _ := r.Earnings.Hourly.Float64()
		total, _ := r.Earnings.Total.Float64()
		_ = f.SetCellValue(statementSheet, cell("A", row), r.ID)
		_ = f.SetCellValue(statementSheet, cell("B", row), r.Date)
		_ = f.SetCellValue(statementSheet, cell("C", row), r.StartTime)
		_ = f.SetCellValue(statementSheet, cell("D", row), r.EndTime)
		_ = f.SetCellValue(statementSheet, cell("E", row), r.DurationHours)
		_ = f.SetCellValue(statementSheet, cell("F", row), yesNo(r.Overnight))
		_ = f.SetCellValue(statementSheet, cell("G", row), hourly)
		_ = f.SetCellValue(statementSheet, cell("H", row), total)
		_ = f.SetCellStyle(statementSheet, cell("G", row), cell("H", row), moneyStyle)
	}

	// Totals come from the summary, which rounds once over the exact sum.
	row += 2
	totalPay, _ := summary.TotalPay.Float64()
	upcomingPay, _ := summary.UpcomingPay.Float64()
	averageRate, _ := summary.AverageRate.Float64()
	totals := []struct {
		label string
		value interface{}
		money bool
	}{
		{"Shifts", summary.ShiftCount, false},
		{"Total hours", summary.TotalHours, false},
		{"Total pay (£)", totalPay, true},
		{"Upcoming pay (£)", upcomingPay, true},
		{"Average rate (£)", averageRate, true},
	}
	for _, t := range totals {
		_ = f.SetCellValue(statementSheet, cell("A", row), t.label)
		_ = f.SetCellValue(statementSheet, cell("B", row), t.value)
		if t.money {
			_ = f.SetCellStyle(statementSheet, cell("B", row), cell("B", row), moneyStyle)
		}
		row++
	}
	if dash.Skipped > 0 {
		_ = f.SetCellValue(statementSheet, cell("A", row), fmt.Sprintf("%d shift(s) could not be read and are not included", dash.Skipped))
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, "", fmt.Errorf("failed to write workbook: %w", err)
	}

	filename := fmt.Sprintf("earnings_%s.xlsx", dash.AsOf.Format("2006-01-02"))
	return buf, filename, nil
}

// colName converts a zero-based column index to its letter
func colName(i int) string {
	name, _ := excelize.ColumnNumberToName(i + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
