package service

import (
	"strings"

	apperrors "joyjoy-locums-backend/internal/errors"
	"joyjoy-locums-backend/internal/geo"
)

// DistanceService estimates travel distance between postcodes
type DistanceService struct {
	estimator *geo.Estimator
}

// Ensure DistanceService implements DistanceServiceInterface
var _ DistanceServiceInterface = (*DistanceService)(nil)

// NewDistanceService creates a new DistanceService
func NewDistanceService(estimator *geo.Estimator) *DistanceService {
	return &DistanceService{estimator: estimator}
}

// Estimate returns the straight-line distance between two postcode districts
func (s *DistanceService) Estimate(from, to string) (*geo.Estimate, error) {
	var fieldErrs apperrors.ValidationErrors
	if strings.TrimSpace(from) == "" {
		fieldErrs = append(fieldErrs, &apperrors.ValidationError{Field: "from", Message: "is required"})
	}
	if strings.TrimSpace(to) == "" {
		fieldErrs = append(fieldErrs, &apperrors.ValidationError{Field: "to", Message: "is required"})
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return s.estimator.Estimate(from, to)
}
