package compliance_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"joyjoy-locums-backend/internal/compliance"
	apperrors "joyjoy-locums-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testCatalogYAML = `
version: "test-1"
roles:
  gp:
    mandatory:
      - { type: gmc_registration, label: "GMC registration", validity_months: 12 }
      - { type: dbs_check, label: "Enhanced DBS check", validity_months: 36 }
      - { type: photo_id }
    supplementary:
      - { type: minor_surgery }
  clinical_pharmacist:
    mandatory: []
    supplementary: []
`

// CatalogTestSuite exercises catalog parsing and per-role evaluation
type CatalogTestSuite struct {
	suite.Suite
	catalog *compliance.Catalog
}

func (suite *CatalogTestSuite) SetupTest() {
	c, err := compliance.ParseCatalog([]byte(testCatalogYAML))
	suite.Require().NoError(err)
	suite.catalog = c
}

func (suite *CatalogTestSuite) TestCategoriesFilledFromList() {
	reqs, err := suite.catalog.Requirements(compliance.RoleGP, compliance.CategoryMandatory)
	suite.Require().NoError(err)
	suite.Require().Len(reqs, 3)
	for _, r := range reqs {
		suite.Equal(compliance.CategoryMandatory, r.Category)
	}
	suite.Equal("gmc_registration", reqs[0].Type)
	suite.Require().NotNil(reqs[0].ValidityMonths)
	suite.Equal(12, *reqs[0].ValidityMonths)
	suite.Nil(reqs[2].ValidityMonths)

	supp, err := suite.catalog.Requirements(compliance.RoleGP, compliance.CategorySupplementary)
	suite.Require().NoError(err)
	suite.Equal(compliance.CategorySupplementary, supp[0].Category)
}

func (suite *CatalogTestSuite) TestRequirementsUnknownRole() {
	_, err := suite.catalog.Requirements("dentist", compliance.CategoryMandatory)
	suite.ErrorIs(err, apperrors.ErrRoleNotFound)

	_, err = suite.catalog.Requirements(compliance.RoleGP, "optional")
	suite.ErrorIs(err, apperrors.ErrInvalidCategory)
}

func (suite *CatalogTestSuite) TestEvaluate() {
	report, err := suite.catalog.Evaluate(compliance.RoleGP, []compliance.Submission{
		{DocumentType: "gmc_registration", Status: compliance.StatusApproved},
		{DocumentType: "dbs_check", Status: compliance.StatusApproved},
		{DocumentType: "photo_id", Status: compliance.StatusPending},
		{DocumentType: "minor_surgery", Status: compliance.StatusApproved},
	})
	suite.Require().NoError(err)
	suite.Equal("test-1", report.Version)
	suite.Equal(2, report.Mandatory.CompletedCount)
	suite.Equal(3, report.Mandatory.TotalCount)
	suite.Equal(67, report.Mandatory.RoundedPercentage())
	suite.Equal(1, report.Supplementary.CompletedCount)
	suite.Equal(100, report.Supplementary.RoundedPercentage())
	suite.False(report.CanWork)
}

func (suite *CatalogTestSuite) TestEvaluateEmptyRoleIsVacuouslyComplete() {
	report, err := suite.catalog.Evaluate(compliance.RoleClinicalPharmacist, nil)
	suite.Require().NoError(err)
	suite.Equal(compliance.CategoryMandatory, report.Mandatory.Category)
	suite.Equal(compliance.CategorySupplementary, report.Supplementary.Category)
	suite.Equal(100, report.Mandatory.RoundedPercentage())
	suite.True(report.CanWork)
}

func (suite *CatalogTestSuite) TestRoleNamesSorted() {
	suite.Equal([]compliance.Role{compliance.RoleClinicalPharmacist, compliance.RoleGP}, suite.catalog.RoleNames())
}

func TestCatalogTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogTestSuite))
}

func TestParseCatalog_Invalid(t *testing.T) {
	testCases := []struct {
		name string
		yaml string
		is   error
	}{
		{
			name: "missing version",
			yaml: "roles:\n  gp:\n    mandatory: [{type: a}]\n",
		},
		{
			name: "no roles",
			yaml: "version: v1\n",
		},
		{
			name: "type in both lists",
			yaml: "version: v1\nroles:\n  gp:\n    mandatory: [{type: a}]\n    supplementary: [{type: a}]\n",
			is:   apperrors.ErrDuplicateRequirement,
		},
		{
			name: "wrong category in list",
			yaml: "version: v1\nroles:\n  gp:\n    mandatory: [{type: a, category: supplementary}]\n",
			is:   apperrors.ErrMixedCategories,
		},
		{
			name: "non-positive validity",
			yaml: "version: v1\nroles:\n  gp:\n    mandatory: [{type: a, validity_months: 0}]\n",
		},
		{
			name: "malformed yaml",
			yaml: "version: [",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := compliance.ParseCatalog([]byte(tc.yaml))
			require.Error(t, err)
			if tc.is != nil {
				assert.ErrorIs(t, err, tc.is)
			}
		})
	}
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalogYAML), 0o600))

	c, err := compliance.NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "test-1", c.Version)

	_, err = compliance.NewFileSource(filepath.Join(dir, "missing.yaml")).Load(context.Background())
	assert.Error(t, err)
}

func TestShippedCatalog(t *testing.T) {
	c, err := compliance.LoadCatalogFile(filepath.Join("..", "..", "config", "catalog.yaml"))
	require.NoError(t, err)

	reqs, err := c.Requirements(compliance.RoleGP, compliance.CategoryMandatory)
	require.NoError(t, err)
	assert.Len(t, reqs, 13)

	for _, role := range []compliance.Role{compliance.RoleGP, compliance.RoleNursePractitioner, compliance.RoleClinicalPharmacist} {
		_, err := c.Evaluate(role, nil)
		assert.NoError(t, err, "role %s", role)
	}
}
