package handlers_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"joyjoy-locums-backend/internal/api/handlers"
	"joyjoy-locums-backend/internal/compliance"
	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/mocks"
	"joyjoy-locums-backend/internal/service"
	"joyjoy-locums-backend/internal/session"
	"joyjoy-locums-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// withUser stands in for auth.RequireAuth
func withUser(userID, professionalRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &session.Claims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: userID},
		}
		if professionalRole != "" {
			claims.UserMetadata = map[string]any{"professional_role": professionalRole}
		}
		c.Set("user_id", userID)
		c.Set("auth_claims", claims)
		c.Next()
	}
}

func sampleReport() *service.ComplianceResponse {
	mandatory, _ := compliance.ComputeCompliance(
		[]compliance.Requirement{
			{Type: "dbs_check", Category: compliance.CategoryMandatory},
			{Type: "photo_id", Category: compliance.CategoryMandatory},
		},
		[]compliance.Submission{{DocumentType: "dbs_check", Status: compliance.StatusApproved}},
	)
	supplementary, _ := compliance.ComputeCompliance(nil, nil)
	supplementary.Category = compliance.CategorySupplementary
	return &service.ComplianceResponse{
		Report: &compliance.Report{
			Role:          compliance.RoleGP,
			Version:       "v1",
			Mandatory:     mandatory,
			Supplementary: supplementary,
		},
		Expiring: []compliance.ExpiryNotice{},
	}
}

// ComplianceHandlerTestSuite defines the test suite for ComplianceHandler
type ComplianceHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockComplianceServiceInterface
	handler     *handlers.ComplianceHandler
}

func (suite *ComplianceHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockComplianceServiceInterface(suite.ctrl)
	suite.handler = handlers.NewComplianceHandler(suite.mockService)
}

func (suite *ComplianceHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ComplianceHandlerTestSuite) router(mw ...gin.HandlerFunc) *testutils.HTTPTestSuite {
	h := testutils.SetupHTTPTest()
	h.Router.Use(mw...)
	h.Router.POST("/compliance/evaluate", suite.handler.Evaluate)
	h.Router.GET("/compliance/me", suite.handler.Me)
	return h
}

func (suite *ComplianceHandlerTestSuite) TestEvaluate_Success() {
	suite.mockService.EXPECT().Evaluate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req *service.EvaluateRequest) (*service.ComplianceResponse, error) {
			suite.Equal("gp", req.Role)
			suite.Len(req.Documents, 1)
			suite.Equal("dbs_check", req.Documents[0].DocumentType)
			return sampleReport(), nil
		})

	w := suite.router().MakeRequest(http.MethodPost, "/compliance/evaluate", map[string]interface{}{
		"role":      "gp",
		"documents": []map[string]string{{"documentType": "dbs_check", "status": "approved"}},
	})

	var resp map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal("v1", resp["catalogVersion"])
	suite.Equal(false, resp["canWork"])
	mandatory := resp["mandatory"].(map[string]interface{})
	suite.Equal(float64(50), mandatory["roundedPercentage"])
	suite.Equal([]interface{}{"photo_id"}, mandatory["missing"])
}

func (suite *ComplianceHandlerTestSuite) TestEvaluate_UnknownRole() {
	suite.mockService.EXPECT().Evaluate(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrRoleNotFound)

	w := suite.router().MakeRequest(http.MethodPost, "/compliance/evaluate", map[string]interface{}{"role": "dentist"})
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "professional role not found")
}

func (suite *ComplianceHandlerTestSuite) TestMe_RoleFromClaims() {
	suite.mockService.EXPECT().EvaluateForUser(gomock.Any(), "user-1", "gp").Return(sampleReport(), nil)

	w := suite.router(withUser("user-1", "gp")).MakeRequest(http.MethodGet, "/compliance/me", nil)
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, nil)
}

func (suite *ComplianceHandlerTestSuite) TestMe_RoleQueryOverrides() {
	suite.mockService.EXPECT().EvaluateForUser(gomock.Any(), "user-1", "nurse_practitioner").Return(sampleReport(), nil)

	w := suite.router(withUser("user-1", "gp")).MakeRequest(http.MethodGet, "/compliance/me?role=nurse_practitioner", nil)
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, nil)
}

func (suite *ComplianceHandlerTestSuite) TestMe_Errors() {
	w := suite.router().MakeRequest(http.MethodGet, "/compliance/me", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusUnauthorized, "Authentication required")

	testCases := []struct {
		name   string
		err    error
		status int
	}{
		{"upstream failure", apperrors.NewUpstreamError(500, "boom"), http.StatusBadGateway},
		{"upstream down", apperrors.ErrUpstreamUnavailable, http.StatusBadGateway},
		{"upstream rejects session", apperrors.NewAuthenticationError("upstream rejected the session"), http.StatusUnauthorized},
		{"upstream forbids", apperrors.NewAuthorizationError("forbidden"), http.StatusForbidden},
		{"no upstream configured", apperrors.ErrUpstreamNotConfigured, http.StatusServiceUnavailable},
		{"no role", apperrors.NewValidationError("role", "not set"), http.StatusBadRequest},
	}
	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.mockService.EXPECT().EvaluateForUser(gomock.Any(), "user-1", "").Return(nil, tc.err)
			w := suite.router(withUser("user-1", "")).MakeRequest(http.MethodGet, "/compliance/me", nil)
			suite.Equal(tc.status, w.Code, w.Body.String())
		})
	}
}

func TestComplianceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ComplianceHandlerTestSuite))
}

// CatalogHandlerTestSuite defines the test suite for CatalogHandler
type CatalogHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockCatalogServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *CatalogHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockCatalogServiceInterface(suite.ctrl)

	handler := handlers.NewCatalogHandler(suite.mockService)
	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.GET("/catalog", handler.List)
	suite.http.Router.GET("/catalog/:role", handler.GetRole)
}

func (suite *CatalogHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CatalogHandlerTestSuite) TestList() {
	suite.mockService.EXPECT().Current(gomock.Any()).Return(&compliance.Catalog{
		Version: "v1",
		Roles: map[compliance.Role]compliance.RoleRequirements{
			compliance.RoleGP: {Mandatory: []compliance.Requirement{{Type: "dbs_check", Category: compliance.CategoryMandatory}}},
		},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/catalog", nil)

	var resp compliance.Catalog
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, &resp)
	suite.Equal("v1", resp.Version)
	suite.Len(resp.Roles[compliance.RoleGP].Mandatory, 1)
}

func (suite *CatalogHandlerTestSuite) TestList_Unavailable() {
	suite.mockService.EXPECT().Current(gomock.Any()).Return(nil, errors.New("connection refused"))

	w := suite.http.MakeRequest(http.MethodGet, "/catalog", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusInternalServerError, "Failed to load requirement catalog")
}

func (suite *CatalogHandlerTestSuite) TestGetRole() {
	suite.mockService.EXPECT().GetRole(gomock.Any(), "gp").Return(&service.RoleCatalogResponse{Version: "v1", Role: compliance.RoleGP}, nil)
	w := suite.http.MakeRequest(http.MethodGet, "/catalog/gp", nil)
	testutils.AssertJSONResponse(suite.T(), w, http.StatusOK, nil)

	suite.mockService.EXPECT().GetRole(gomock.Any(), "dentist").Return(nil, apperrors.ErrRoleNotFound)
	w = suite.http.MakeRequest(http.MethodGet, "/catalog/dentist", nil)
	testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "not found")
}

func TestCatalogHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}
