package handlers_test

import (
	"bytes"
	"net/http"
	"testing"

	"joyjoy-locums-backend/internal/api/handlers"
	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/geo"
	"joyjoy-locums-backend/internal/mocks"
	"joyjoy-locums-backend/internal/service"
	"joyjoy-locums-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// DashboardHandlerTestSuite defines the test suite for DashboardHandler
type DashboardHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockDashboardServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *DashboardHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockDashboardServiceInterface(suite.ctrl)

	handler := handlers.NewDashboardHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.Use(withUser("user-1", "gp"))
	suite.http.Router.GET("/dashboard/earnings", handler.Earnings)
	suite.http.Router.GET("/dashboard/earnings/export", handler.Export)
}

func (suite *DashboardHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DashboardHandlerTestSuite) TestEarnings() {
	suite.mockService.EXPECT().Earnings(gomock.Any(), "user-1").Return(&service.EarningsDashboardResponse{
		Summary: service.SummaryResponse{ShiftCount: 3, TotalPay: "1943.00"},
		Shifts:  []service.ShiftResult{},
		Skipped: 1,
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/dashboard/earnings", nil)

	var resp service.EarningsDashboardResponse
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal("1943.00", resp.Summary.TotalPay)
	suite.Equal(1, resp.Skipped)
}

func (suite *DashboardHandlerTestSuite) TestEarnings_UpstreamDown() {
	suite.mockService.EXPECT().Earnings(gomock.Any(), "user-1").Return(nil, apperrors.ErrUpstreamUnavailable)

	w := suite.http.MakeRequest(http.MethodGet, "/dashboard/earnings", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadGateway, "Failed to load earnings")
}

func (suite *DashboardHandlerTestSuite) TestExport() {
	suite.mockService.EXPECT().ExportEarnings(gomock.Any(), "user-1").
		Return(bytes.NewBufferString("PK-workbook"), "earnings_2025-06-01.xlsx", nil)

	w := suite.http.MakeRequest(http.MethodGet, "/dashboard/earnings/export", nil)
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	suite.Equal(`attachment; filename="earnings_2025-06-01.xlsx"`, w.Header().Get("Content-Disposition"))
	suite.Equal("PK-workbook", w.Body.String())
}

func TestDashboardHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

// DistanceHandlerTestSuite defines the test suite for DistanceHandler
type DistanceHandlerTestSuite struct {
	suite.Suite
	http *testutils.HTTPTestSuite
}

func (suite *DistanceHandlerTestSuite) SetupTest() {
	estimator := geo.NewEstimator(map[string]geo.Point{
		"LS1": {Lat: 53.7965, Lon: -1.5478},
		"YO1": {Lat: 53.9590, Lon: -1.0815},
	})
	handler := handlers.NewDistanceHandler(service.NewDistanceService(estimator))
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/distance", handler.Estimate)
}

func (suite *DistanceHandlerTestSuite) TestEstimate() {
	w := suite.http.MakeRequest(http.MethodGet, "/distance?from=ls1%204ap&to=YO17HH", nil)

	var resp geo.Estimate
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.InDelta(22.0, resp.Miles, 1.0)
}

func (suite *DistanceHandlerTestSuite) TestEstimate_Errors() {
	w := suite.http.MakeRequest(http.MethodGet, "/distance?from=LS1", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "Validation failed")

	w = suite.http.MakeRequest(http.MethodGet, "/distance?from=LS1&to=not-a-postcode", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusBadRequest, "")

	w = suite.http.MakeRequest(http.MethodGet, "/distance?from=LS1&to=SW1A%201AA", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "postcode district not found")
}

func TestDistanceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DistanceHandlerTestSuite))
}
