package models

// RequirementCatalogEntry is one document requirement of one role in one catalog version.
// Seeding a version replaces all of its rows; other versions are left alone.
type RequirementCatalogEntry struct {
	BaseModel
	CatalogVersion string `json:"catalog_version" gorm:"size:40;not null;uniqueIndex:idx_catalog_role_type" validate:"required,max=40"`
	Role           string `json:"role" gorm:"size:40;not null;uniqueIndex:idx_catalog_role_type" validate:"required,max=40"`
	Type           string `json:"type" gorm:"size:80;not null;uniqueIndex:idx_catalog_role_type" validate:"required,max=80"`
	Label          string `json:"label" gorm:"size:200" validate:"max=200"`
	Category       string `json:"category" gorm:"size:20;not null" validate:"required,oneof=mandatory supplementary"`
	// ValidityMonths is null for documents that never expire
	ValidityMonths *int `json:"validity_months,omitempty" validate:"omitempty,gt=0"`
	// Position keeps declaration order within a role and category
	Position int `json:"position" gorm:"not null;default:0"`
}

// TableName pins the table name used by migrations and raw queries
func (RequirementCatalogEntry) TableName() string {
	return "requirement_catalog_entries"
}
