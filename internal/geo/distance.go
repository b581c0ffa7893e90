package geo

import (
	"fmt"
	"math"
	"os"
	"strings"

	apperrors "joyjoy-locums-backend/internal/errors"

	"gopkg.in/yaml.v3"
)

const earthRadiusMiles = 3958.8

// Point is a WGS84 coordinate
type Point struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// HaversineMiles returns the great-circle distance between two points
func HaversineMiles(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := lat2 - lat1
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Estimate is an approximate travel distance between two postcodes
type Estimate struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	Miles float64 `json:"miles"`
}

// Estimator resolves postcodes to district centroids and measures between them
type Estimator struct {
	centroids map[string]Point
}

// NewEstimator creates an estimator over an outward-code centroid table
func NewEstimator(centroids map[string]Point) *Estimator {
	normalized := make(map[string]Point, len(centroids))
	for code, p := range centroids {
		normalized[strings.ToUpper(strings.TrimSpace(code))] = p
	}
	return &Estimator{centroids: normalized}
}

// LoadCentroids reads a YAML map of outward code to {lat, lon}
func LoadCentroids(path string) (map[string]Point, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read postcode centroids: %w", err)
	}
	var centroids map[string]Point
	if err := yaml.Unmarshal(data, &centroids); err != nil {
		return nil, fmt.Errorf("parse postcode centroids: %w", err)
	}
	return centroids, nil
}

// Locate returns the centroid of the postcode's district
func (e *Estimator) Locate(postcode string) (Postcode, Point, error) {
	p, err := ParsePostcode(postcode)
	if err != nil {
		return Postcode{}, Point{}, err
	}
	pt, ok := e.centroids[p.Outward]
	if !ok {
		return p, Point{}, fmt.Errorf("%s: %w", p.Outward, apperrors.ErrOutwardCodeNotFound)
	}
	return p, pt, nil
}

// Estimate measures the straight-line distance between two postcodes, rounded to 0.1 mile
func (e *Estimator) Estimate(from, to string) (*Estimate, error) {
	fp, fpt, err := e.Locate(from)
	if err != nil {
		return nil, err
	}
	tp, tpt, err := e.Locate(to)
	if err != nil {
		return nil, err
	}
	miles := math.Round(HaversineMiles(fpt, tpt)*10) / 10
	return &Estimate{From: fp.String(), To: tp.String(), Miles: miles}, nil
}

// Size returns the number of known districts
func (e *Estimator) Size() int {
	return len(e.centroids)
}
