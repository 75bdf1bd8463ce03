package cli

import (
	"fmt"
	"strconv"
	"strings"
	"traveler-service/internal/domain"
	"traveler-service/internal/services"
)

// parseWaypoint accepts "lat,lng", "lat=..,lng=.." or "@place".
func parseWaypoint(raw string) (services.Waypoint, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return services.Waypoint{}, fmt.Errorf("%w: empty coordinate argument", domain.ErrInvalidCoordinate)
	}

	if name, ok := strings.CutPrefix(s, "@"); ok {
		if strings.TrimSpace(name) == "" {
			return services.Waypoint{}, fmt.Errorf("%w: empty place name", domain.ErrInvalidCoordinate)
		}
		return services.AtPlace(name), nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return services.Waypoint{}, fmt.Errorf("%w: %q must have two comma-separated parts", domain.ErrInvalidCoordinate, raw)
	}

	if strings.Contains(s, "=") {
		return parseKeyed(raw, parts)
	}

	lat, err := parseDegrees(parts[0])
	if err != nil {
		return services.Waypoint{}, fmt.Errorf("%w: latitude in %q: %v", domain.ErrInvalidCoordinate, raw, err)
	}
	lng, err := parseDegrees(parts[1])
	if err != nil {
		return services.Waypoint{}, fmt.Errorf("%w: longitude in %q: %v", domain.ErrInvalidCoordinate, raw, err)
	}
	return services.At(domain.Pair{lat, lng}), nil
}

func parseKeyed(raw string, parts []string) (services.Waypoint, error) {
	values := make(map[string]float64, 2)
	for _, part := range parts {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return services.Waypoint{}, fmt.Errorf("%w: %q mixes keyed and positional parts", domain.ErrInvalidCoordinate, raw)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		if key != "lat" && key != "lng" {
			return services.Waypoint{}, fmt.Errorf("%w: unknown key %q in %q", domain.ErrInvalidCoordinate, key, raw)
		}
		v, err := parseDegrees(value)
		if err != nil {
			return services.Waypoint{}, fmt.Errorf("%w: %s in %q: %v", domain.ErrInvalidCoordinate, key, raw, err)
		}
		values[key] = v
	}

	lat, okLat := values["lat"]
	lng, okLng := values["lng"]
	if !okLat || !okLng {
		return services.Waypoint{}, fmt.Errorf("%w: %q requires both lat and lng", domain.ErrInvalidCoordinate, raw)
	}
	return services.At(domain.LatLng{Lat: lat, Lng: lng}), nil
}

func parseDegrees(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}
