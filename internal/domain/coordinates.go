package domain

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinLatitude  = -90.0
	MaxLatitude  = 90.0
	MinLongitude = -180.0
	MaxLongitude = 180.0
)

// ErrInvalidCoordinate is returned when a coordinate cannot be normalized.
var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Immutable geographic coordinate in degrees.
// Values produced by Normalize satisfy lat in [-90, 90] and lng in [-180, 180].
type Coordinate struct {
	Lat float64
	Lng float64
}

// CoordinateInput is one of the accepted coordinate encodings: Pair or LatLng.
type CoordinateInput interface {
	latLng() (lat, lng float64)
}

// Ordered pair encoding: index 0 is latitude, index 1 is longitude.
type Pair [2]float64

func (p Pair) latLng() (float64, float64) { return p[0], p[1] }

// Keyed encoding with explicit lat/lng fields.
type LatLng struct {
	Lat float64
	Lng float64
}

func (l LatLng) latLng() (float64, float64) { return l.Lat, l.Lng }

// A normalized Coordinate is itself a valid input.
func (c Coordinate) latLng() (float64, float64) { return c.Lat, c.Lng }

// Return the coordinate as a [lat, lng] pair.
func (c Coordinate) Pair() Pair { return Pair{c.Lat, c.Lng} }

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// Normalize resolves an input encoding into a canonical Coordinate.
// Latitude is clamped to [-90, 90]; longitude is wrapped by whole turns into [-180, 180].
func Normalize(in CoordinateInput) (Coordinate, error) {
	if in == nil {
		return Coordinate{}, fmt.Errorf("normalize: %w: missing coordinate", ErrInvalidCoordinate)
	}

	lat, lng := in.latLng()
	if !isFinite(lat) {
		return Coordinate{}, fmt.Errorf("normalize: %w: latitude %v is not a finite number", ErrInvalidCoordinate, lat)
	}
	if !isFinite(lng) {
		return Coordinate{}, fmt.Errorf("normalize: %w: longitude %v is not a finite number", ErrInvalidCoordinate, lng)
	}

	return Coordinate{
		Lat: ClampLatitude(lat),
		Lng: WrapLongitude(lng),
	}, nil
}

// ClampLatitude saturates lat at the poles.
func ClampLatitude(lat float64) float64 {
	return math.Min(math.Max(lat, MinLatitude), MaxLatitude)
}

// WrapLongitude adds or subtracts whole turns until lng lies in [-180, 180].
// Values already in range, including both endpoints, are returned unchanged.
func WrapLongitude(lng float64) float64 {
	switch {
	case lng > MaxLongitude:
		lng -= 360 * math.Ceil((lng-MaxLongitude)/360)
	case lng < MinLongitude:
		lng += 360 * math.Ceil((MinLongitude-lng)/360)
	}
	return lng
}

// WrapBearing maps any angle in degrees into [0, 360).
func WrapBearing(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -tiny + 360 can round up to exactly 360.
	if deg >= 360 {
		deg = 0
	}
	return deg
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
