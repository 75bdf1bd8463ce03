package services

import (
	"errors"
	"fmt"
	"math"
	"traveler-service/internal/domain"
)

const (
	// Mean Earth radius in kilometers.
	EarthRadiusKm = 6371.0
	// Fractional decimal digits kept on every returned value.
	Precision = 6
)

var (
	ErrInvalidBearing  = errors.New("invalid bearing")
	ErrInvalidDistance = errors.New("invalid distance")
)

// Sphere holds the model parameters used by the great-circle computations.
// The zero value is not usable; start from Earth.
type Sphere struct {
	RadiusKm float64
	Decimals int
}

// Earth is the default spherical model.
var Earth = Sphere{RadiusKm: EarthRadiusKm, Decimals: Precision}

const (
	radians = math.Pi / 180
	degrees = 180 / math.Pi
)

// Distance returns the great-circle distance in kilometers between a and b on Earth.
func Distance(a, b domain.CoordinateInput) (float64, error) {
	return Earth.Distance(a, b)
}

// Destination projects start along bearing (degrees clockwise from north) for distanceKm on Earth.
func Destination(start domain.CoordinateInput, bearing, distanceKm float64) (domain.Coordinate, error) {
	return Earth.Destination(start, bearing, distanceKm)
}

// Distance computes the haversine distance between a and b.
// Both inputs are normalized first; the result is rounded to s.Decimals places.
func (s Sphere) Distance(a, b domain.CoordinateInput) (float64, error) {
	c1, err := domain.Normalize(a)
	if err != nil {
		return 0, fmt.Errorf("distance: first coordinate: %w", err)
	}
	c2, err := domain.Normalize(b)
	if err != nil {
		return 0, fmt.Errorf("distance: second coordinate: %w", err)
	}

	φ1 := c1.Lat * radians
	φ2 := c2.Lat * radians
	Δφ := (c2.Lat - c1.Lat) * radians
	Δλ := (c2.Lng - c1.Lng) * radians

	sΔφ := math.Sin(Δφ / 2)
	sΔλ := math.Sin(Δλ / 2)
	h := sΔφ*sΔφ + math.Cos(φ1)*math.Cos(φ2)*sΔλ*sΔλ
	// Rounding can push h just outside [0, 1] for antipodal points.
	h = math.Min(math.Max(h, 0), 1)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return s.round(s.RadiusKm * c), nil
}

// Destination applies the direct spherical formula from start.
// The resulting longitude is wrapped the same way Normalize wraps input longitudes.
func (s Sphere) Destination(start domain.CoordinateInput, bearing, distanceKm float64) (domain.Coordinate, error) {
	c1, err := domain.Normalize(start)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("destination: start: %w", err)
	}
	if math.IsNaN(bearing) || math.IsInf(bearing, 0) {
		return domain.Coordinate{}, fmt.Errorf("destination: %w: %v", ErrInvalidBearing, bearing)
	}
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) {
		return domain.Coordinate{}, fmt.Errorf("destination: %w: %v", ErrInvalidDistance, distanceKm)
	}

	θ := domain.WrapBearing(bearing) * radians
	δ := distanceKm / s.RadiusKm
	φ1 := c1.Lat * radians
	λ1 := c1.Lng * radians

	φ2 := math.Asin(math.Sin(φ1)*math.Cos(δ) + math.Cos(φ1)*math.Sin(δ)*math.Cos(θ))
	λ2 := λ1 + math.Atan2(
		math.Sin(θ)*math.Sin(δ)*math.Cos(φ1),
		math.Cos(δ)-math.Sin(φ1)*math.Sin(φ2),
	)

	return domain.Coordinate{
		Lat: s.round(φ2 * degrees),
		Lng: s.round(domain.WrapLongitude(λ2 * degrees)),
	}, nil
}

// round keeps s.Decimals fractional digits, rounding half away from zero.
func (s Sphere) round(v float64) float64 {
	scale := math.Pow10(s.Decimals)
	r := math.Round(v*scale) / scale
	if r == 0 {
		// Drop negative zero.
		return 0
	}
	return r
}
