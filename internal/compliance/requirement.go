package compliance

import (
	"fmt"
	"strings"
	"time"

	apperrors "joyjoy-locums-backend/internal/errors"
)

// Category separates documents required for any work from optional, role-enhancing ones
type Category string

const (
	CategoryMandatory     Category = "mandatory"
	CategorySupplementary Category = "supplementary"
)

// Categories lists the categories in reporting order
var Categories = []Category{CategoryMandatory, CategorySupplementary}

// IsValid checks if the Category is valid
func (c Category) IsValid() bool {
	switch c {
	case CategoryMandatory, CategorySupplementary:
		return true
	}
	return false
}

// Status is the compliance state of one requirement
type Status string

const (
	StatusMissing  Status = "missing"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// IsValid checks if the Status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusMissing, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// IsSubmissionStatus reports whether s can appear on a submitted document. Missing cannot.
func (s Status) IsSubmissionStatus() bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// precedence picks the satisfying submission when several exist for one type.
func (s Status) precedence() int {
	switch s {
	case StatusApproved:
		return 3
	case StatusPending:
		return 2
	case StatusRejected:
		return 1
	}
	return 0
}

// Role is a locum's professional role
type Role string

const (
	RoleGP                 Role = "gp"
	RoleNursePractitioner  Role = "nurse_practitioner"
	RoleClinicalPharmacist Role = "clinical_pharmacist"
)

// Requirement is one entry in the requirement catalog
type Requirement struct {
	Type     string   `json:"type" yaml:"type" validate:"required"`
	Label    string   `json:"label" yaml:"label"`
	Category Category `json:"category" yaml:"category" validate:"required"`
	// ValidityMonths is nil for documents that never expire
	ValidityMonths *int `json:"validityMonths" yaml:"validity_months,omitempty" validate:"omitempty,gt=0"`
}

// Submission is a document uploaded against a requirement type
type Submission struct {
	DocumentType string    `json:"documentType"`
	Status       Status    `json:"status"`
	IssuedAt     time.Time `json:"issuedAt,omitempty"`
}

// ParseStatus normalises a submission status coming from the API
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	if !st.IsSubmissionStatus() {
		return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, s)
	}
	return st, nil
}

// RawSubmission is a document row as returned by the API
type RawSubmission struct {
	DocumentType string `json:"documentType"`
	Status       string `json:"status"`
	IssuedAt     string `json:"issuedAt,omitempty"`
}

// NormalizeSubmissions validates raw rows, reporting each bad row by index
func NormalizeSubmissions(raw []RawSubmission) ([]Submission, error) {
	out := make([]Submission, 0, len(raw))
	var fieldErrs apperrors.ValidationErrors
	for i, r := range raw {
		field := fmt.Sprintf("documents[%d]", i)
		if strings.TrimSpace(r.DocumentType) == "" {
			fieldErrs = append(fieldErrs, &apperrors.ValidationError{Field: field + ".documentType", Message: "is required"})
			continue
		}
		st, err := ParseStatus(r.Status)
		if err != nil {
			fieldErrs = append(fieldErrs, apperrors.NewFieldError(field+".status", err))
			continue
		}
		sub := Submission{DocumentType: strings.TrimSpace(r.DocumentType), Status: st}
		if r.IssuedAt != "" {
			issued, err := parseIssued(r.IssuedAt)
			if err != nil {
				fieldErrs = append(fieldErrs, apperrors.NewFieldError(field+".issuedAt", err))
				continue
			}
			sub.IssuedAt = issued
		}
		out = append(out, sub)
	}
	if len(fieldErrs) > 0 {
		return nil, fieldErrs
	}
	return out, nil
}

func parseIssued(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid issue date %q", s)
	}
	return t, nil
}
