package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"traveler-service/internal/domain"
	"traveler-service/internal/ports"
)

// Waypoint refers to a location either by place name or by coordinate.
// Exactly one of Place and Coordinate must be set.
type Waypoint struct {
	Place      string
	Coordinate domain.CoordinateInput
}

// AtPlace refers to a stored place by name.
func AtPlace(name string) Waypoint { return Waypoint{Place: name} }

// At refers to a raw coordinate.
func At(c domain.CoordinateInput) Waypoint { return Waypoint{Coordinate: c} }

func (w Waypoint) String() string {
	if w.Place != "" {
		return w.Place
	}
	if w.Coordinate == nil {
		return "<empty>"
	}
	return fmt.Sprint(w.Coordinate)
}

// Resolved endpoint: the normalized coordinate plus the place name when one was used.
type ResolvedPoint struct {
	Place    string
	Location domain.Coordinate
}

type DistanceResult struct {
	From       ResolvedPoint
	To         ResolvedPoint
	Kilometers float64
}

type DestinationResult struct {
	From       ResolvedPoint
	Bearing    float64
	DistanceKm float64
	To         domain.Coordinate
}

// Resolver answers distance and destination queries over waypoints,
// looking up named places in the repository.
type Resolver struct {
	Places ports.PlaceRepository
	Sphere Sphere
}

// NewResolver returns a Resolver on the Earth sphere. places may be nil,
// in which case only coordinate waypoints can be resolved.
func NewResolver(places ports.PlaceRepository) *Resolver {
	return &Resolver{Places: places, Sphere: Earth}
}

// MeasureDistance resolves both waypoints and returns the great-circle distance between them.
func (r *Resolver) MeasureDistance(ctx context.Context, from, to Waypoint) (DistanceResult, error) {
	points, err := r.resolve(ctx, from, to)
	if err != nil {
		return DistanceResult{}, fmt.Errorf("measure distance: %w", err)
	}

	km, err := r.Sphere.Distance(points[0].Location, points[1].Location)
	if err != nil {
		return DistanceResult{}, fmt.Errorf("measure distance: %w", err)
	}

	return DistanceResult{From: points[0], To: points[1], Kilometers: km}, nil
}

// ProjectDestination resolves the start waypoint and projects it along bearing for distanceKm.
func (r *Resolver) ProjectDestination(ctx context.Context, from Waypoint, bearing, distanceKm float64) (DestinationResult, error) {
	points, err := r.resolve(ctx, from)
	if err != nil {
		return DestinationResult{}, fmt.Errorf("project destination: %w", err)
	}

	to, err := r.Sphere.Destination(points[0].Location, bearing, distanceKm)
	if err != nil {
		return DestinationResult{}, fmt.Errorf("project destination: %w", err)
	}

	return DestinationResult{
		From:       points[0],
		Bearing:    domain.WrapBearing(bearing),
		DistanceKm: distanceKm,
		To:         to,
	}, nil
}

// resolve normalizes coordinate waypoints and batches place lookups into one repository call.
func (r *Resolver) resolve(ctx context.Context, waypoints ...Waypoint) ([]ResolvedPoint, error) {
	out := make([]ResolvedPoint, len(waypoints))
	names := make([]string, 0, len(waypoints))

	for i, w := range waypoints {
		name := strings.TrimSpace(w.Place)
		switch {
		case name != "" && w.Coordinate != nil:
			return nil, fmt.Errorf("waypoint %d: %w: both place and coordinate given", i+1, domain.ErrInvalidCoordinate)
		case name != "":
			names = append(names, name)
		case w.Coordinate != nil:
			c, err := domain.Normalize(w.Coordinate)
			if err != nil {
				return nil, fmt.Errorf("waypoint %d: %w", i+1, err)
			}
			out[i] = ResolvedPoint{Location: c}
		default:
			return nil, fmt.Errorf("waypoint %d: %w: missing place or coordinate", i+1, domain.ErrInvalidCoordinate)
		}
	}

	if len(names) == 0 {
		return out, nil
	}
	if r.Places == nil {
		return nil, errors.New("resolve places: no place repository configured")
	}

	found, err := r.Places.GetMany(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("resolve places: %w", err)
	}

	for i, w := range waypoints {
		if strings.TrimSpace(w.Place) == "" {
			continue
		}
		p, ok := found[domain.PlaceKey(w.Place)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ports.ErrPlaceNotFound, domain.CollapseSpaces(w.Place))
		}
		out[i] = ResolvedPoint{Place: p.Name, Location: p.Location}
	}

	return out, nil
}
