package service

import (
	"bytes"
	"context"
	"encoding/json"

	"joyjoy-locums-backend/internal/compliance"
	"joyjoy-locums-backend/internal/geo"
	"joyjoy-locums-backend/internal/marketplace"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// MarketplaceReader reads a locum's data from the marketplace API
type MarketplaceReader interface {
	ListShifts(ctx context.Context, locumID string) ([]json.RawMessage, error)
	ListDocuments(ctx context.Context, ownerID string) ([]marketplace.Document, error)
}

// CalculationServiceInterface defines the interface for shift arithmetic
type CalculationServiceInterface interface {
	Duration(req *DurationRequest) (*DurationResponse, error)
	Earnings(req *EarningsRequest) (*EarningsResponse, error)
	Shifts(req *ShiftBatchRequest) (*ShiftBatchResponse, error)
}

// CatalogServiceInterface defines the interface for the requirement catalog
type CatalogServiceInterface interface {
	Current(ctx context.Context) (*compliance.Catalog, error)
	GetRole(ctx context.Context, role string) (*RoleCatalogResponse, error)
	Reload(ctx context.Context) (*compliance.Catalog, error)
}

// ComplianceServiceInterface defines the interface for compliance evaluation
type ComplianceServiceInterface interface {
	Evaluate(ctx context.Context, req *EvaluateRequest) (*ComplianceResponse, error)
	EvaluateForUser(ctx context.Context, userID, role string) (*ComplianceResponse, error)
}

// DashboardServiceInterface defines the interface for the locum earnings dashboard
type DashboardServiceInterface interface {
	Earnings(ctx context.Context, userID string) (*EarningsDashboardResponse, error)
	ExportEarnings(ctx context.Context, userID string) (*bytes.Buffer, string, error)
}

// DistanceServiceInterface defines the interface for travel distance estimates
type DistanceServiceInterface interface {
	Estimate(from, to string) (*geo.Estimate, error)
}
