//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"joyjoy-locums-backend/internal/compliance"
	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// CatalogRepositoryTestSuite tests the CatalogRepository against Postgres
type CatalogRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CatalogRepository
	ctx           context.Context
}

func (suite *CatalogRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewCatalogRepository(suite.baseTestSuite.DB, "")
	suite.ctx = context.Background()
}

func (suite *CatalogRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *CatalogRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *CatalogRepositoryTestSuite) seed(version string) {
	gp := testutils.NewCatalogEntryFactory(version, "gp")
	entries := gp.Mandatory("gmc_registration", "dbs_check", "photo_id")
	entries[1] = testutils.WithValidity(entries[1], 36)
	entries = append(entries, gp.Supplementary("minor_surgery")...)
	suite.Require().NoError(suite.repo.ReplaceVersion(suite.ctx, version, entries))
}

func (suite *CatalogRepositoryTestSuite) TestReplaceAndLoad() {
	suite.seed("2025-01")

	catalog, err := suite.repo.Load(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("2025-01", catalog.Version)

	reqs, err := catalog.Requirements(compliance.RoleGP, compliance.CategoryMandatory)
	suite.Require().NoError(err)
	suite.Require().Len(reqs, 3)
	suite.Equal("gmc_registration", reqs[0].Type)
	suite.Equal("dbs_check", reqs[1].Type)
	suite.Require().NotNil(reqs[1].ValidityMonths)
	suite.Equal(36, *reqs[1].ValidityMonths)
}

func (suite *CatalogRepositoryTestSuite) TestReplaceVersionOverwrites() {
	suite.seed("2025-01")

	replacement := testutils.NewCatalogEntryFactory("2025-01", "gp").Mandatory("photo_id")
	suite.Require().NoError(suite.repo.ReplaceVersion(suite.ctx, "2025-01", replacement))

	entries, err := suite.repo.GetByVersion(suite.ctx, "2025-01")
	suite.Require().NoError(err)
	suite.Len(entries, 1)
}

func (suite *CatalogRepositoryTestSuite) TestLatestVersionAndPinning() {
	suite.seed("2025-01")
	time.Sleep(10 * time.Millisecond)
	suite.seed("2025-06")

	latest, err := suite.repo.LatestVersion(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("2025-06", latest)

	versions, err := suite.repo.ListVersions(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(versions, 2)
	suite.Equal("2025-06", versions[0].Version)
	suite.EqualValues(4, versions[0].Entries)

	pinned := NewCatalogRepository(suite.baseTestSuite.DB, "2025-01")
	catalog, err := pinned.Load(suite.ctx)
	suite.Require().NoError(err)
	suite.Equal("2025-01", catalog.Version)
}

func (suite *CatalogRepositoryTestSuite) TestEmptyTable() {
	_, err := suite.repo.LatestVersion(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrCatalogVersionNotFound)

	_, err = NewCatalogRepository(suite.baseTestSuite.DB, "missing").Load(suite.ctx)
	suite.ErrorIs(err, apperrors.ErrCatalogVersionNotFound)
}

func (suite *CatalogRepositoryTestSuite) TestDeleteVersion() {
	suite.seed("2025-01")
	suite.Require().NoError(suite.repo.DeleteVersion(suite.ctx, "2025-01"))
	suite.ErrorIs(suite.repo.DeleteVersion(suite.ctx, "2025-01"), apperrors.ErrCatalogVersionNotFound)
}

func TestCatalogRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogRepositoryTestSuite))
}
