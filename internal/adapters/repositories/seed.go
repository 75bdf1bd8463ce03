package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"traveler-service/internal/domain"
	"traveler-service/internal/ports"
)

type PlaceSeed struct {
	Name string   `json:"name"`
	Lat  *float64 `json:"lat"`
	Lng  *float64 `json:"lng"`
}

// Populate the repository with place data from a JSON file.
func SeedFromJSON(ctx context.Context, repo ports.PlaceRepository, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed places: read %q: %w", jsonPath, err)
	}

	var data []PlaceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed places: parse json: %w", err)
	}

	places := make([]domain.Place, 0, len(data))
	for i, item := range data {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			return 0, fmt.Errorf("seed places: item at index %d: name cannot be empty", i+1)
		}
		if item.Lat == nil || item.Lng == nil {
			return 0, fmt.Errorf("seed places: item %q: %w: lat and lng are required", name, domain.ErrInvalidCoordinate)
		}

		p, err := domain.NewPlace(name, domain.LatLng{Lat: *item.Lat, Lng: *item.Lng})
		if err != nil {
			return 0, fmt.Errorf("seed places: item at index %d: %w", i+1, err)
		}
		places = append(places, p)
	}

	if err := repo.PutMany(ctx, places); err != nil {
		return 0, fmt.Errorf("seed places: %w", err)
	}

	return len(places), nil
}
