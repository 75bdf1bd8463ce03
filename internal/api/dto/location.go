package dto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"traveler-service/internal/domain"
	"traveler-service/internal/services"
)

// Location is a request waypoint. It accepts three JSON shapes:
//
//	[lat, lng]
//	{"lat": 1.5, "lng": 2.5}
//	{"place": "London"}
type Location struct {
	Place      string
	Coordinate domain.CoordinateInput
}

type keyedLocation struct {
	Lat   *float64 `json:"lat"`
	Lng   *float64 `json:"lng"`
	Place *string  `json:"place"`
}

func (l *Location) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return errors.New("location must not be null")
	}

	switch data[0] {
	case '[':
		var pair []float64
		if err := json.Unmarshal(data, &pair); err != nil {
			return fmt.Errorf("location pair: %w", err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("location pair must have exactly 2 numbers, got %d", len(pair))
		}
		*l = Location{Coordinate: domain.Pair{pair[0], pair[1]}}
		return nil

	case '{':
		var k keyedLocation
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&k); err != nil {
			return fmt.Errorf("location object: %w", err)
		}

		hasCoords := k.Lat != nil || k.Lng != nil
		switch {
		case k.Place != nil && hasCoords:
			return errors.New("location object must set either place or lat/lng, not both")
		case k.Place != nil:
			*l = Location{Place: *k.Place}
			return nil
		case k.Lat != nil && k.Lng != nil:
			*l = Location{Coordinate: domain.LatLng{Lat: *k.Lat, Lng: *k.Lng}}
			return nil
		default:
			return errors.New("location object requires both lat and lng")
		}
	}

	return errors.New("location must be a [lat, lng] array or an object")
}

func (l Location) Waypoint() services.Waypoint {
	return services.Waypoint{Place: l.Place, Coordinate: l.Coordinate}
}

type PointResponse struct {
	Place string  `json:"place,omitempty"`
	Lat   float64 `json:"lat"`
	Lng   float64 `json:"lng"`
}

func NewPointResponse(p services.ResolvedPoint) PointResponse {
	return PointResponse{Place: p.Place, Lat: p.Location.Lat, Lng: p.Location.Lng}
}
