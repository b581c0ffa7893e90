package compliance

import (
	"context"
	"fmt"
	"os"
	"sort"

	apperrors "joyjoy-locums-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

// RoleRequirements are the two requirement lists for one role, in declaration order
type RoleRequirements struct {
	Mandatory     []Requirement `json:"mandatory" yaml:"mandatory"`
	Supplementary []Requirement `json:"supplementary" yaml:"supplementary"`
}

// Catalog is a static, versioned table of document requirements per professional role
type Catalog struct {
	Version string                    `json:"version" yaml:"version"`
	Roles   map[Role]RoleRequirements `json:"roles" yaml:"roles"`
}

// Source loads a catalog. Implementations read a YAML file or the catalog table.
type Source interface {
	Load(ctx context.Context) (*Catalog, error)
}

// FileSource loads the catalog from a YAML file
type FileSource struct {
	Path string
}

// NewFileSource creates a new file-backed catalog source
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

// Load reads and validates the catalog file
func (s *FileSource) Load(_ context.Context) (*Catalog, error) {
	return LoadCatalogFile(s.Path)
}

// LoadCatalogFile reads a YAML catalog from disk
func LoadCatalogFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
// Entries without a category take the category of the list they are declared in.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	for role, reqs := range c.Roles {
		fillCategory(reqs.Mandatory, CategoryMandatory)
		fillCategory(reqs.Supplementary, CategorySupplementary)
		c.Roles[role] = reqs
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func fillCategory(reqs []Requirement, cat Category) {
	for i := range reqs {
		if reqs[i].Category == "" {
			reqs[i].Category = cat
		}
	}
}

// Validate checks that each list only holds its own category, types are unique per role,
// and validity periods are positive.
func (c *Catalog) Validate() error {
	if c.Version == "" {
		return apperrors.NewValidationError("version", "catalog version is required")
	}
	if len(c.Roles) == 0 {
		return apperrors.NewValidationError("roles", "catalog defines no roles")
	}
	for role, reqs := range c.Roles {
		seen := make(map[string]Category)
		for _, list := range []struct {
			cat  Category
			reqs []Requirement
		}{{CategoryMandatory, reqs.Mandatory}, {CategorySupplementary, reqs.Supplementary}} {
			for _, r := range list.reqs {
				if r.Type == "" {
					return apperrors.NewValidationError(string(role), "requirement type is required")
				}
				if r.Category != list.cat {
					return fmt.Errorf("role %s: %s declared under %s with category %q: %w", role, r.Type, list.cat, r.Category, apperrors.ErrMixedCategories)
				}
				if prev, dup := seen[r.Type]; dup {
					return fmt.Errorf("role %s: %s already declared as %s: %w", role, r.Type, prev, apperrors.ErrDuplicateRequirement)
				}
				if r.ValidityMonths != nil && *r.ValidityMonths <= 0 {
					return apperrors.NewValidationError(string(role)+"."+r.Type, "validity_months must be positive")
				}
				seen[r.Type] = r.Category
			}
		}
	}
	return nil
}

// RoleNames returns the catalog's roles sorted by name
func (c *Catalog) RoleNames() []Role {
	roles := make([]Role, 0, len(c.Roles))
	for r := range c.Roles {
		roles = append(roles, r)
	}
	sort.Slice(roles, func(i, j int) bool { return roles[i] < roles[j] })
	return roles
}

// Requirements returns one category's requirements for a role, in declaration order
func (c *Catalog) Requirements(role Role, cat Category) ([]Requirement, error) {
	reqs, ok := c.Roles[role]
	if !ok {
		return nil, apperrors.ErrRoleNotFound
	}
	switch cat {
	case CategoryMandatory:
		return reqs.Mandatory, nil
	case CategorySupplementary:
		return reqs.Supplementary, nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidCategory, cat)
	}
}

// Report is a locum's compliance against one catalog version, one summary per category
type Report struct {
	Role          Role     `json:"role"`
	Version       string   `json:"catalogVersion"`
	Mandatory     *Summary `json:"mandatory"`
	Supplementary *Summary `json:"supplementary"`
	// CanWork is true once every mandatory requirement is approved
	CanWork bool `json:"canWork"`
}

// Evaluate computes mandatory and supplementary compliance separately
func (c *Catalog) Evaluate(role Role, submissions []Submission) (*Report, error) {
	report := &Report{Role: role, Version: c.Version}
	for _, cat := range Categories {
		reqs, err := c.Requirements(role, cat)
		if err != nil {
			return nil, err
		}
		summary, err := ComputeCompliance(reqs, submissions)
		if err != nil {
			return nil, fmt.Errorf("evaluate %s requirements: %w", cat, err)
		}
		// An empty list has no first entry to take the category from.
		summary.Category = cat
		if cat == CategoryMandatory {
			report.Mandatory = summary
		} else {
			report.Supplementary = summary
		}
	}
	report.CanWork = report.Mandatory.Complete()
	return report, nil
}
