package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"joyjoy-locums-backend/internal/compliance"
	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/logger"

	"github.com/go-playground/validator/v10"
)

// DefaultExpiryWindow is how far ahead documents are flagged as expiring
const DefaultExpiryWindow = 30 * 24 * time.Hour

// ComplianceService evaluates a locum's documents against the requirement catalog
type ComplianceService struct {
	catalogs     CatalogServiceInterface
	marketplace  MarketplaceReader
	validator    *validator.Validate
	expiryWindow time.Duration
	now          func() time.Time
}

// Ensure ComplianceService implements ComplianceServiceInterface
var _ ComplianceServiceInterface = (*ComplianceService)(nil)

// NewComplianceService creates a new ComplianceService. marketplace may be nil when
// no upstream is configured; EvaluateForUser then fails with a configuration error.
func NewComplianceService(catalogs CatalogServiceInterface, marketplace MarketplaceReader, validator *validator.Validate) *ComplianceService {
	return &ComplianceService{
		catalogs:     catalogs,
		marketplace:  marketplace,
		validator:    validator,
		expiryWindow: DefaultExpiryWindow,
		now:          time.Now,
	}
}

// EvaluateRequest carries a role and the documents to evaluate
type EvaluateRequest struct {
	Role      string                     `json:"role" validate:"required" example:"gp"`
	Documents []compliance.RawSubmission `json:"documents"`
}

// ComplianceResponse is the per-category report plus expiry notices
type ComplianceResponse struct {
	*compliance.Report
	Expiring []compliance.ExpiryNotice `json:"expiring"`
	AsOf     time.Time                 `json:"asOf"`
}

// Evaluate computes compliance for documents supplied by the caller
func (s *ComplianceService) Evaluate(ctx context.Context, req *EvaluateRequest) (*ComplianceResponse, error) {
	if err := validateRequest(s.validator, req); err != nil {
		return nil, err
	}
	submissions, err := compliance.NormalizeSubmissions(req.Documents)
	if err != nil {
		return nil, err
	}
	return s.evaluate(ctx, req.Role, submissions)
}

// EvaluateForUser reads the user's documents from the marketplace and evaluates them.
// Documents the marketplace returns in an unknown state are skipped with a warning.
func (s *ComplianceService) EvaluateForUser(ctx context.Context, userID, role string) (*ComplianceResponse, error) {
	if strings.TrimSpace(role) == "" {
		return nil, apperrors.NewValidationError("role", "professional role is not set on the profile; pass ?role=")
	}
	if s.marketplace == nil {
		return nil, apperrors.ErrUpstreamNotConfigured
	}

	docs, err := s.marketplace.ListDocuments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	log := logger.WithContext(ctx)
	submissions := make([]compliance.Submission, 0, len(docs))
	for _, d := range docs {
		subs, err := compliance.NormalizeSubmissions([]compliance.RawSubmission{{
			DocumentType: d.DocumentType,
			Status:       d.Status,
			IssuedAt:     d.IssuedAt,
		}})
		if err != nil {
			log.WithField("document_id", d.ID).WithError(err).Warn("Skipping unreadable document")
			continue
		}
		submissions = append(submissions, subs...)
	}

	return s.evaluate(ctx, role, submissions)
}

func (s *ComplianceService) evaluate(ctx context.Context, role string, submissions []compliance.Submission) (*ComplianceResponse, error) {
	catalog, err := s.catalogs.Current(ctx)
	if err != nil {
		return nil, err
	}

	r := compliance.Role(strings.ToLower(strings.TrimSpace(role)))
	report, err := catalog.Evaluate(r, submissions)
	if err != nil {
		return nil, err
	}

	asOf := s.now()
	reqs := append(append([]compliance.Requirement{}, catalog.Roles[r].Mandatory...), catalog.Roles[r].Supplementary...)
	return &ComplianceResponse{
		Report:   report,
		Expiring: compliance.ExpiringSoon(reqs, submissions, asOf, s.expiryWindow),
		AsOf:     asOf,
	}, nil
}
