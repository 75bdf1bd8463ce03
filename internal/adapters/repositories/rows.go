package repositories

import (
	"database/sql"
	"fmt"
	"strings"
	"time"
	"traveler-service/internal/domain"

	"github.com/google/uuid"
)

const placeColumns = `place_id, name, lat, lng, created_at`

func scanPlaces(rows *sql.Rows) ([]domain.Place, error) {
	out := make([]domain.Place, 0, 16)
	for rows.Next() {
		var id, name, created string
		var lat, lng float64
		if err := rows.Scan(&id, &name, &lat, &lng, &created); err != nil {
			return nil, fmt.Errorf("scan rows: %w", err)
		}

		placeID, err := uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("scan rows: place_id %q: %w", id, err)
		}
		createdAt, err := time.Parse(time.RFC3339Nano, created)
		if err != nil {
			return nil, fmt.Errorf("scan rows: created_at %q: %w", created, err)
		}

		out = append(out, domain.Place{
			PlaceID:   placeID,
			Name:      name,
			Location:  domain.Coordinate{Lat: lat, Lng: lng},
			CreatedAt: createdAt,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration: %w", err)
	}

	return out, nil
}

// uniqueKeys maps names to lookup keys, dropping blanks and duplicates.
func uniqueKeys(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	keys := make([]string, 0, len(names))
	for _, n := range names {
		k := domain.PlaceKey(n)
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		keys = append(keys, k)
	}
	return keys
}

// preparePlace validates a place before it is written.
func preparePlace(p domain.Place) (domain.Place, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Place{}, fmt.Errorf("empty place name")
	}

	loc, err := domain.Normalize(p.Location)
	if err != nil {
		return domain.Place{}, fmt.Errorf("place %q: %w", p.Name, err)
	}
	p.Location = loc
	p.Name = domain.CollapseSpaces(p.Name)

	if p.PlaceID == uuid.Nil {
		p.PlaceID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	return p, nil
}

func formatCreatedAt(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
