package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"joyjoy-locums-backend/internal/compliance"
	apperrors "joyjoy-locums-backend/internal/errors"
)

// CatalogService serves the requirement catalog, loading it once from its source
type CatalogService struct {
	source compliance.Source

	mu      sync.RWMutex
	catalog *compliance.Catalog
}

// Ensure CatalogService implements CatalogServiceInterface
var _ CatalogServiceInterface = (*CatalogService)(nil)

// NewCatalogService creates a new CatalogService
func NewCatalogService(source compliance.Source) *CatalogService {
	return &CatalogService{source: source}
}

// RoleCatalogResponse lists one role's requirements
type RoleCatalogResponse struct {
	Version       string                   `json:"version"`
	Role          compliance.Role          `json:"role"`
	Mandatory     []compliance.Requirement `json:"mandatory"`
	Supplementary []compliance.Requirement `json:"supplementary"`
}

// Current returns the loaded catalog, reading the source on first use
func (s *CatalogService) Current(ctx context.Context) (*compliance.Catalog, error) {
	s.mu.RLock()
	c := s.catalog
	s.mu.RUnlock()
	if c != nil {
		return c, nil
	}
	return s.Reload(ctx)
}

// Reload reads the source again and swaps the catalog in
func (s *CatalogService) Reload(ctx context.Context) (*compliance.Catalog, error) {
	c, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load requirement catalog: %w", err)
	}
	s.mu.Lock()
	s.catalog = c
	s.mu.Unlock()
	return c, nil
}

// GetRole returns the requirements for one professional role
func (s *CatalogService) GetRole(ctx context.Context, role string) (*RoleCatalogResponse, error) {
	c, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}
	r := compliance.Role(strings.ToLower(strings.TrimSpace(role)))
	reqs, ok := c.Roles[r]
	if !ok {
		return nil, apperrors.ErrRoleNotFound
	}
	return &RoleCatalogResponse{
		Version:       c.Version,
		Role:          r,
		Mandatory:     nonNil(reqs.Mandatory),
		Supplementary: nonNil(reqs.Supplementary),
	}, nil
}

func nonNil(reqs []compliance.Requirement) []compliance.Requirement {
	if reqs == nil {
		return []compliance.Requirement{}
	}
	return reqs
}
