package service_test

import (
	"context"
	"errors"
	"testing"

	"joyjoy-locums-backend/internal/compliance"
	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/mocks"
	"joyjoy-locums-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func testCatalog(version string) *compliance.Catalog {
	return &compliance.Catalog{
		Version: version,
		Roles: map[compliance.Role]compliance.RoleRequirements{
			compliance.RoleGP: {
				Mandatory: []compliance.Requirement{
					{Type: "gmc_registration", Label: "GMC registration", Category: compliance.CategoryMandatory},
					{Type: "dbs_check", Label: "Enhanced DBS", Category: compliance.CategoryMandatory, ValidityMonths: intPtr(36)},
					{Type: "basic_life_support", Label: "Basic life support", Category: compliance.CategoryMandatory, ValidityMonths: intPtr(12)},
				},
				Supplementary: []compliance.Requirement{
					{Type: "minor_surgery", Label: "Minor surgery", Category: compliance.CategorySupplementary},
				},
			},
			compliance.RoleClinicalPharmacist: {},
		},
	}
}

func intPtr(i int) *int { return &i }

type CatalogServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	mockRepo       *mocks.MockCatalogRepositoryInterface
	catalogService *service.CatalogService
	ctx            context.Context
}

func (suite *CatalogServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockCatalogRepositoryInterface(suite.ctrl)
	suite.catalogService = service.NewCatalogService(suite.mockRepo)
	suite.ctx = context.Background()
}

func (suite *CatalogServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogServiceTestSuite) TestCurrent_LoadsOnce() {
	suite.mockRepo.EXPECT().Load(gomock.Any()).Return(testCatalog("v1"), nil).Times(1)

	first, err := suite.catalogService.Current(suite.ctx)
	suite.Require().NoError(err)
	second, err := suite.catalogService.Current(suite.ctx)
	suite.Require().NoError(err)
	suite.Same(first, second)
}

func (suite *CatalogServiceTestSuite) TestReload_SwapsVersion() {
	gomock.InOrder(
		suite.mockRepo.EXPECT().Load(gomock.Any()).Return(testCatalog("v1"), nil),
		suite.mockRepo.EXPECT().Load(gomock.Any()).Return(testCatalog("v2"), nil),
	)

	c, err := suite.catalogService.Current(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("v1", c.Version)

	_, err = suite.catalogService.Reload(suite.ctx)
	suite.Require().NoError(err)
	c, err = suite.catalogService.Current(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("v2", c.Version)
}

func (suite *CatalogServiceTestSuite) TestCurrent_SourceError() {
	suite.mockRepo.EXPECT().Load(gomock.Any()).Return(nil, apperrors.ErrCatalogVersionNotFound)

	_, err := suite.catalogService.Current(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrCatalogVersionNotFound)
}

func (suite *CatalogServiceTestSuite) TestGetRole() {
	suite.mockRepo.EXPECT().Load(gomock.Any()).Return(testCatalog("v1"), nil)

	resp, err := suite.catalogService.GetRole(suite.ctx, " GP ")
	suite.Require().NoError(err)
	suite.Equal(compliance.RoleGP, resp.Role)
	suite.Len(resp.Mandatory, 3)
	suite.Len(resp.Supplementary, 1)

	resp, err = suite.catalogService.GetRole(suite.ctx, "clinical_pharmacist")
	suite.Require().NoError(err)
	suite.NotNil(resp.Mandatory)
	suite.Empty(resp.Mandatory)

	_, err = suite.catalogService.GetRole(suite.ctx, "dentist")
	suite.True(errors.Is(err, apperrors.ErrRoleNotFound))
}

func TestCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogServiceTestSuite))
}
