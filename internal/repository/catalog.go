package repository

import (
	"context"
	"fmt"
	"time"

	"joyjoy-locums-backend/internal/compliance"
	"joyjoy-locums-backend/internal/database/models"
	apperrors "joyjoy-locums-backend/internal/errors"

	"gorm.io/gorm"
)

// CatalogVersion summarises one stored catalog version
type CatalogVersion struct {
	Version   string    `json:"version"`
	Entries   int64     `json:"entries"`
	CreatedAt time.Time `json:"createdAt"`
}

// CatalogRepository handles database operations for the requirement catalog.
// It also serves as a compliance.Source for the pinned (or latest) version.
type CatalogRepository struct {
	db *gorm.DB
	// version pins Load to one catalog version; empty means the latest
	version string
}

// Ensure CatalogRepository implements CatalogRepositoryInterface
var _ CatalogRepositoryInterface = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new catalog repository
func NewCatalogRepository(db *gorm.DB, version string) *CatalogRepository {
	return &CatalogRepository{db: db, version: version}
}

// Load reads the configured catalog version and validates it
func (r *CatalogRepository) Load(ctx context.Context) (*compliance.Catalog, error) {
	version := r.version
	if version == "" {
		latest, err := r.LatestVersion(ctx)
		if err != nil {
			return nil, err
		}
		version = latest
	}

	entries, err := r.GetByVersion(ctx, version)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("%s: %w", version, apperrors.ErrCatalogVersionNotFound)
	}
	return CatalogFromEntries(version, entries)
}

// LatestVersion returns the most recently written catalog version
func (r *CatalogRepository) LatestVersion(ctx context.Context) (string, error) {
	var versions []CatalogVersion
	if err := r.versionsQuery(ctx).Limit(1).Scan(&versions).Error; err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", apperrors.ErrCatalogVersionNotFound
	}
	return versions[0].Version, nil
}

// ListVersions lists stored versions, newest first
func (r *CatalogRepository) ListVersions(ctx context.Context) ([]CatalogVersion, error) {
	var versions []CatalogVersion
	if err := r.versionsQuery(ctx).Scan(&versions).Error; err != nil {
		return nil, err
	}
	return versions, nil
}

func (r *CatalogRepository) versionsQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.RequirementCatalogEntry{}).
		Select("catalog_version AS version, COUNT(*) AS entries, MAX(created_at) AS created_at").
		Group("catalog_version").
		Order("MAX(created_at) DESC, catalog_version DESC")
}

// GetByVersion retrieves all entries of a version in declaration order
func (r *CatalogRepository) GetByVersion(ctx context.Context, version string) ([]models.RequirementCatalogEntry, error) {
	var entries []models.RequirementCatalogEntry
	if err := r.db.WithContext(ctx).
		Where("catalog_version = ?", version).
		Order("role ASC, category ASC, position ASC").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ReplaceVersion writes a version's entries, replacing any previous rows of that version
func (r *CatalogRepository) ReplaceVersion(ctx context.Context, version string, entries []models.RequirementCatalogEntry) error {
	if version == "" {
		return apperrors.NewValidationError("version", "catalog version is required")
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		key := e.Role + "/" + e.Type
		if seen[key] {
			return fmt.Errorf("%s: %w", key, apperrors.ErrCatalogEntryExists)
		}
		seen[key] = true
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("catalog_version = ?", version).Delete(&models.RequirementCatalogEntry{}).Error; err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		for i := range entries {
			entries[i].CatalogVersion = version
		}
		return tx.CreateInBatches(entries, 100).Error
	})
}

// DeleteVersion removes every entry of a version
func (r *CatalogRepository) DeleteVersion(ctx context.Context, version string) error {
	result := r.db.WithContext(ctx).Where("catalog_version = ?", version).Delete(&models.RequirementCatalogEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrCatalogVersionNotFound
	}
	return nil
}

// EntriesFromCatalog flattens a catalog into table rows, keeping declaration order
func EntriesFromCatalog(c *compliance.Catalog) []models.RequirementCatalogEntry {
	var entries []models.RequirementCatalogEntry
	for _, role := range c.RoleNames() {
		reqs := c.Roles[role]
		for _, list := range [][]compliance.Requirement{reqs.Mandatory, reqs.Supplementary} {
			for i, req := range list {
				entries = append(entries, models.RequirementCatalogEntry{
					CatalogVersion: c.Version,
					Role:           string(role),
					Type:           req.Type,
					Label:          req.Label,
					Category:       string(req.Category),
					ValidityMonths: req.ValidityMonths,
					Position:       i,
				})
			}
		}
	}
	return entries
}

// CatalogFromEntries rebuilds and validates a catalog from table rows
func CatalogFromEntries(version string, entries []models.RequirementCatalogEntry) (*compliance.Catalog, error) {
	c := &compliance.Catalog{Version: version, Roles: make(map[compliance.Role]compliance.RoleRequirements)}
	for _, e := range entries {
		role := compliance.Role(e.Role)
		reqs := c.Roles[role]
		req := compliance.Requirement{
			Type:           e.Type,
			Label:          e.Label,
			Category:       compliance.Category(e.Category),
			ValidityMonths: e.ValidityMonths,
		}
		switch req.Category {
		case compliance.CategoryMandatory:
			reqs.Mandatory = append(reqs.Mandatory, req)
		case compliance.CategorySupplementary:
			reqs.Supplementary = append(reqs.Supplementary, req)
		default:
			return nil, fmt.Errorf("catalog %s role %s type %s: %w", version, e.Role, e.Type, apperrors.ErrInvalidCategory)
		}
		c.Roles[role] = reqs
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
