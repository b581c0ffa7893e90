package compliance

import (
	"encoding/json"
	"fmt"

	apperrors "joyjoy-locums-backend/internal/errors"
)

// ItemStatus is the evaluated state of one requirement
type ItemStatus struct {
	Type     string   `json:"type"`
	Label    string   `json:"label,omitempty"`
	Category Category `json:"category"`
	Status   Status   `json:"status"`
}

// Summary is the completion of one category. The percentage is kept as the
// exact fraction CompletedCount/TotalCount and only rounded for display.
type Summary struct {
	Category       Category     `json:"category,omitempty"`
	CompletedCount int          `json:"completedCount"`
	TotalCount     int          `json:"totalCount"`
	Items          []ItemStatus `json:"items"`
}

// Percentage returns the exact completion percentage.
// An empty requirement list is vacuously complete at 100.
func (s *Summary) Percentage() float64 {
	if s.TotalCount == 0 {
		return 100
	}
	return float64(s.CompletedCount) * 100 / float64(s.TotalCount)
}

// RoundedPercentage rounds half-up to a whole percent using integer arithmetic.
func (s *Summary) RoundedPercentage() int {
	if s.TotalCount == 0 {
		return 100
	}
	return (s.CompletedCount*200 + s.TotalCount) / (2 * s.TotalCount)
}

// Complete reports whether every requirement is approved
func (s *Summary) Complete() bool {
	return s.CompletedCount == s.TotalCount
}

// Missing lists requirement types with no submission, in declaration order
func (s *Summary) Missing() []string {
	return s.typesWhere(func(st Status) bool { return st == StatusMissing })
}

// Outstanding lists requirement types that are not yet approved, in declaration order
func (s *Summary) Outstanding() []string {
	return s.typesWhere(func(st Status) bool { return st != StatusApproved })
}

// CountByStatus tallies the items by status
func (s *Summary) CountByStatus() map[Status]int {
	counts := make(map[Status]int, 4)
	for _, it := range s.Items {
		counts[it.Status]++
	}
	return counts
}

func (s *Summary) typesWhere(match func(Status) bool) []string {
	out := []string{}
	for _, it := range s.Items {
		if match(it.Status) {
			out = append(out, it.Type)
		}
	}
	return out
}

// ComputeCompliance evaluates one category of requirements against a locum's submissions.
// All requirements must share a category; submissions for types outside the list are ignored.
func ComputeCompliance(requirements []Requirement, submissions []Submission) (*Summary, error) {
	summary := &Summary{
		TotalCount: len(requirements),
		Items:      make([]ItemStatus, 0, len(requirements)),
	}

	seen := make(map[string]struct{}, len(requirements))
	for i, req := range requirements {
		if !req.Category.IsValid() {
			return nil, fmt.Errorf("%w: %q on %s", apperrors.ErrInvalidCategory, req.Category, req.Type)
		}
		if i == 0 {
			summary.Category = req.Category
		} else if req.Category != summary.Category {
			return nil, fmt.Errorf("%w: %s and %s", apperrors.ErrMixedCategories, summary.Category, req.Category)
		}
		if _, dup := seen[req.Type]; dup {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateRequirement, req.Type)
		}
		seen[req.Type] = struct{}{}
	}

	best := make(map[string]Status, len(submissions))
	for _, sub := range submissions {
		if !sub.Status.IsSubmissionStatus() {
			return nil, fmt.Errorf("%w: %q for %s", apperrors.ErrInvalidStatus, sub.Status, sub.DocumentType)
		}
		if cur, ok := best[sub.DocumentType]; !ok || sub.Status.precedence() > cur.precedence() {
			best[sub.DocumentType] = sub.Status
		}
	}

	for _, req := range requirements {
		status, ok := best[req.Type]
		if !ok {
			status = StatusMissing
		}
		if status == StatusApproved {
			summary.CompletedCount++
		}
		summary.Items = append(summary.Items, ItemStatus{
			Type:     req.Type,
			Label:    req.Label,
			Category: req.Category,
			Status:   status,
		})
	}

	return summary, nil
}

type summaryJSON struct {
	Category          Category     `json:"category,omitempty"`
	CompletedCount    int          `json:"completedCount"`
	TotalCount        int          `json:"totalCount"`
	Percentage        float64      `json:"percentage"`
	RoundedPercentage int          `json:"roundedPercentage"`
	Missing           []string     `json:"missing"`
	Items             []ItemStatus `json:"items"`
}

// MarshalJSON adds the derived percentages and missing list
func (s *Summary) MarshalJSON() ([]byte, error) {
	return json.Marshal(summaryJSON{
		Category:          s.Category,
		CompletedCount:    s.CompletedCount,
		TotalCount:        s.TotalCount,
		Percentage:        s.Percentage(),
		RoundedPercentage: s.RoundedPercentage(),
		Missing:           s.Missing(),
		Items:             s.Items,
	})
}
