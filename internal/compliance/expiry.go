package compliance

import (
	"sort"
	"time"
)

// ExpiresAt returns when a document issued at issued stops being valid.
// ok is false for documents that never expire or carry no issue date.
func ExpiresAt(issued time.Time, validityMonths *int) (expires time.Time, ok bool) {
	if validityMonths == nil || issued.IsZero() {
		return time.Time{}, false
	}
	return addMonths(issued, *validityMonths), true
}

// addMonths moves t by n calendar months, clamping the day to the end of the
// target month: 31 Jan plus one month is 29 Feb (or 28 Feb), never 2 or 3 Mar.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	hh, mm, ss := t.Clock()
	first := time.Date(y, m+time.Month(n), 1, hh, mm, ss, t.Nanosecond(), t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return first.AddDate(0, 0, d-1)
}

// ExpiryNotice flags an approved document that has expired or will expire soon
type ExpiryNotice struct {
	Type          string    `json:"type"`
	Label         string    `json:"label,omitempty"`
	ExpiresAt     time.Time `json:"expiresAt"`
	DaysRemaining int       `json:"daysRemaining"`
	Expired       bool      `json:"expired"`
}

// ExpiringSoon lists approved documents whose validity ends before asOf+window,
// soonest first. Compliance percentages are not affected.
func ExpiringSoon(requirements []Requirement, submissions []Submission, asOf time.Time, window time.Duration) []ExpiryNotice {
	// Latest approved issue date per type.
	issued := make(map[string]time.Time)
	for _, s := range submissions {
		if s.Status != StatusApproved || s.IssuedAt.IsZero() {
			continue
		}
		if cur, ok := issued[s.DocumentType]; !ok || s.IssuedAt.After(cur) {
			issued[s.DocumentType] = s.IssuedAt
		}
	}

	horizon := asOf.Add(window)
	notices := []ExpiryNotice{}
	for _, r := range requirements {
		at, ok := issued[r.Type]
		if !ok {
			continue
		}
		expires, ok := ExpiresAt(at, r.ValidityMonths)
		if !ok || expires.After(horizon) {
			continue
		}
		notices = append(notices, ExpiryNotice{
			Type:          r.Type,
			Label:         r.Label,
			ExpiresAt:     expires,
			DaysRemaining: int(expires.Sub(asOf).Hours() / 24),
			Expired:       !expires.After(asOf),
		})
	}

	sort.SliceStable(notices, func(i, j int) bool {
		return notices[i].ExpiresAt.Before(notices[j].ExpiresAt)
	})
	return notices
}
