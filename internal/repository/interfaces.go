package repository

import (
	"context"

	"joyjoy-locums-backend/internal/compliance"
	"joyjoy-locums-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CatalogRepositoryInterface defines the interface for requirement catalog storage
type CatalogRepositoryInterface interface {
	compliance.Source
	LatestVersion(ctx context.Context) (string, error)
	ListVersions(ctx context.Context) ([]CatalogVersion, error)
	GetByVersion(ctx context.Context, version string) ([]models.RequirementCatalogEntry, error)
	ReplaceVersion(ctx context.Context, version string, entries []models.RequirementCatalogEntry) error
	DeleteVersion(ctx context.Context, version string) error
}
