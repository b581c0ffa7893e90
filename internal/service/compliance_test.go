package service_test

import (
	"context"
	"testing"
	"time"

	"joyjoy-locums-backend/internal/compliance"
	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/marketplace"
	"joyjoy-locums-backend/internal/mocks"
	"joyjoy-locums-backend/internal/service"
	"joyjoy-locums-backend/internal/shift"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ComplianceServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockCatalog       *mocks.MockCatalogServiceInterface
	mockMarketplace   *mocks.MockMarketplaceReader
	complianceService *service.ComplianceService
	ctx               context.Context
}

func (suite *ComplianceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockCatalog = mocks.NewMockCatalogServiceInterface(suite.ctrl)
	suite.mockMarketplace = mocks.NewMockMarketplaceReader(suite.ctrl)
	suite.complianceService = service.NewComplianceService(suite.mockCatalog, suite.mockMarketplace, shift.NewValidator())
	suite.ctx = context.Background()
}

func (suite *ComplianceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ComplianceServiceTestSuite) TestEvaluate() {
	suite.mockCatalog.EXPECT().Current(gomock.Any()).Return(testCatalog("v1"), nil)

	resp, err := suite.complianceService.Evaluate(suite.ctx, &service.EvaluateRequest{
		Role: "gp",
		Documents: []compliance.RawSubmission{
			{DocumentType: "gmc_registration", Status: "approved"},
			{DocumentType: "dbs_check", Status: "pending"},
			{DocumentType: "minor_surgery", Status: "approved"},
		},
	})
	suite.Require().NoError(err)
	suite.Equal("v1", resp.Version)
	suite.Equal(1, resp.Mandatory.CompletedCount)
	suite.Equal(3, resp.Mandatory.TotalCount)
	suite.Equal(33, resp.Mandatory.RoundedPercentage())
	suite.Equal(100, resp.Supplementary.RoundedPercentage())
	suite.False(resp.CanWork)
	suite.Empty(resp.Expiring)
}

func (suite *ComplianceServiceTestSuite) TestEvaluate_FlagsExpiringDocuments() {
	suite.mockCatalog.EXPECT().Current(gomock.Any()).Return(testCatalog("v1"), nil)

	// Basic life support is valid for 12 months; issued 11 months and 20 days ago
	// it expires inside the 30 day window.
	issued := time.Now().AddDate(0, -12, 10).Format("2006-01-02")
	resp, err := suite.complianceService.Evaluate(suite.ctx, &service.EvaluateRequest{
		Role: "gp",
		Documents: []compliance.RawSubmission{
			{DocumentType: "basic_life_support", Status: "approved", IssuedAt: issued},
			{DocumentType: "dbs_check", Status: "approved", IssuedAt: time.Now().AddDate(-1, 0, 0).Format("2006-01-02")},
		},
	})
	suite.Require().NoError(err)
	suite.Require().Len(resp.Expiring, 1)
	suite.Equal("basic_life_support", resp.Expiring[0].Type)
	suite.False(resp.Expiring[0].Expired)
}

func (suite *ComplianceServiceTestSuite) TestEvaluate_InvalidDocuments() {
	_, err := suite.complianceService.Evaluate(suite.ctx, &service.EvaluateRequest{
		Role:      "gp",
		Documents: []compliance.RawSubmission{{DocumentType: "dbs_check", Status: "lost"}},
	})
	suite.ErrorIs(err, apperrors.ErrInvalidStatus)

	_, err = suite.complianceService.Evaluate(suite.ctx, &service.EvaluateRequest{})
	suite.True(apperrors.IsValidation(err))
}

func (suite *ComplianceServiceTestSuite) TestEvaluate_UnknownRole() {
	suite.mockCatalog.EXPECT().Current(gomock.Any()).Return(testCatalog("v1"), nil)

	_, err := suite.complianceService.Evaluate(suite.ctx, &service.EvaluateRequest{Role: "dentist"})
	suite.ErrorIs(err, apperrors.ErrRoleNotFound)
}

func (suite *ComplianceServiceTestSuite) TestEvaluateForUser() {
	suite.mockMarketplace.EXPECT().ListDocuments(gomock.Any(), "user-1").Return([]marketplace.Document{
		{ID: "d1", DocumentType: "gmc_registration", Status: "approved"},
		{ID: "d2", DocumentType: "dbs_check", Status: "Approved", IssuedAt: time.Now().Format("2006-01-02")},
		{ID: "d3", DocumentType: "basic_life_support", Status: "archived"},
	}, nil)
	suite.mockCatalog.EXPECT().Current(gomock.Any()).Return(testCatalog("v1"), nil)

	resp, err := suite.complianceService.EvaluateForUser(suite.ctx, "user-1", "gp")
	suite.Require().NoError(err)
	suite.Equal(2, resp.Mandatory.CompletedCount)
	suite.Equal([]string{"basic_life_support"}, resp.Mandatory.Missing())
}

func (suite *ComplianceServiceTestSuite) TestEvaluateForUser_Errors() {
	_, err := suite.complianceService.EvaluateForUser(suite.ctx, "user-1", "")
	suite.True(apperrors.IsValidation(err))

	suite.mockMarketplace.EXPECT().ListDocuments(gomock.Any(), "user-1").Return(nil, apperrors.NewUpstreamError(500, "boom"))
	_, err = suite.complianceService.EvaluateForUser(suite.ctx, "user-1", "gp")
	suite.True(apperrors.IsUpstream(err))

	noUpstream := service.NewComplianceService(suite.mockCatalog, nil, shift.NewValidator())
	_, err = noUpstream.EvaluateForUser(suite.ctx, "user-1", "gp")
	suite.True(apperrors.IsConfiguration(err))
}

func TestComplianceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ComplianceServiceTestSuite))
}
