package geo

import (
	"fmt"
	"regexp"
	"strings"

	apperrors "joyjoy-locums-backend/internal/errors"
)

// Full UK postcode: outward code (area + district) then inward code (sector + unit).
var postcodePattern = regexp.MustCompile(`^([A-Z]{1,2}[0-9][A-Z0-9]?)([0-9][A-Z]{2})$`)

// Outward code on its own, e.g. "LS1" or "SW1A".
var outwardPattern = regexp.MustCompile(`^[A-Z]{1,2}[0-9][A-Z0-9]?$`)

// Postcode is a validated, normalised UK postcode
type Postcode struct {
	Outward string
	Inward  string
}

// String formats the postcode the way Royal Mail prints it
func (p Postcode) String() string {
	if p.Inward == "" {
		return p.Outward
	}
	return p.Outward + " " + p.Inward
}

// ParsePostcode normalises case and spacing. A bare outward code is accepted
// since centroids are only kept per district.
func ParsePostcode(s string) (Postcode, error) {
	compact := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	if m := postcodePattern.FindStringSubmatch(compact); m != nil {
		return Postcode{Outward: m[1], Inward: m[2]}, nil
	}
	if outwardPattern.MatchString(compact) {
		return Postcode{Outward: compact}, nil
	}
	return Postcode{}, fmt.Errorf("%w: %q", apperrors.ErrInvalidPostcode, s)
}

// NormalizePostcode returns the canonical "OUT IN" form
func NormalizePostcode(s string) (string, error) {
	p, err := ParsePostcode(s)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
