package testutils

import (
	"fmt"
	"time"

	"joyjoy-locums-backend/internal/database/models"

	"github.com/google/uuid"
)

// CatalogEntryFactory provides methods to create test catalog rows
type CatalogEntryFactory struct {
	Version string
	Role    string
}

// NewCatalogEntryFactory creates a factory for one catalog version and role
func NewCatalogEntryFactory(version, role string) *CatalogEntryFactory {
	return &CatalogEntryFactory{Version: version, Role: role}
}

// Create creates a mandatory entry with default values
func (f *CatalogEntryFactory) Create(docType string) models.RequirementCatalogEntry {
	return models.RequirementCatalogEntry{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		CatalogVersion: f.Version,
		Role:           f.Role,
		Type:           docType,
		Label:          fmt.Sprintf("Test %s", docType),
		Category:       "mandatory",
	}
}

// Mandatory creates mandatory entries in the given order
func (f *CatalogEntryFactory) Mandatory(types ...string) []models.RequirementCatalogEntry {
	entries := make([]models.RequirementCatalogEntry, len(types))
	for i, t := range types {
		entries[i] = f.Create(t)
		entries[i].Position = i
	}
	return entries
}

// Supplementary creates supplementary entries in the given order
func (f *CatalogEntryFactory) Supplementary(types ...string) []models.RequirementCatalogEntry {
	entries := f.Mandatory(types...)
	for i := range entries {
		entries[i].Category = "supplementary"
	}
	return entries
}

// WithValidity sets a validity period on an entry
func WithValidity(e models.RequirementCatalogEntry, months int) models.RequirementCatalogEntry {
	e.ValidityMonths = &months
	return e
}
