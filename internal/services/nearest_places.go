package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"traveler-service/internal/domain"
)

const DefaultNearestLimit = 5

// A stored place and its great-circle distance from the query point.
type PlaceDistance struct {
	Place      domain.Place
	Kilometers float64
}

type NearestResult struct {
	From   ResolvedPoint
	Places []PlaceDistance
}

// NearestPlaces ranks stored places by great-circle distance from the waypoint.
//
// Ties on distance are broken by place key so the ordering is deterministic.
// A place used as the waypoint itself is excluded from the result.
func (r *Resolver) NearestPlaces(ctx context.Context, from Waypoint, limit int) (NearestResult, error) {
	if limit <= 0 {
		limit = DefaultNearestLimit
	}
	if r.Places == nil {
		return NearestResult{}, errors.New("nearest places: no place repository configured")
	}

	points, err := r.resolve(ctx, from)
	if err != nil {
		return NearestResult{}, fmt.Errorf("nearest places: %w", err)
	}
	origin := points[0]

	places, err := r.Places.ListPlaces(ctx)
	if err != nil {
		return NearestResult{}, fmt.Errorf("nearest places: list places: %w", err)
	}

	originKey := domain.PlaceKey(origin.Place)
	ranked := make([]PlaceDistance, 0, len(places))
	for _, p := range places {
		if originKey != "" && p.Key() == originKey {
			continue
		}
		km, err := r.Sphere.Distance(origin.Location, p.Location)
		if err != nil {
			return NearestResult{}, fmt.Errorf("nearest places: distance to %q: %w", p.Name, err)
		}
		ranked = append(ranked, PlaceDistance{Place: p, Kilometers: km})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Kilometers != ranked[j].Kilometers {
			return ranked[i].Kilometers < ranked[j].Kilometers
		}
		return ranked[i].Place.Key() < ranked[j].Place.Key()
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	return NearestResult{From: origin, Places: ranked}, nil
}
