package repositories

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"traveler-service/internal/domain"
)

// In-memory implementation of the PlaceRepository port.
// It is safe for concurrent use.
type MemoryPlaceRepository struct {
	mu     sync.RWMutex
	places map[string]domain.Place
}

func NewMemoryPlaceRepository() *MemoryPlaceRepository {
	return &MemoryPlaceRepository{places: make(map[string]domain.Place)}
}

// Return all places ordered by lookup key.
func (m *MemoryPlaceRepository) ListPlaces(ctx context.Context) ([]domain.Place, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]domain.Place, 0, len(m.places))
	for _, p := range m.places {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })

	return out, nil
}

func (m *MemoryPlaceRepository) GetMany(ctx context.Context, names []string) (map[string]domain.Place, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	keys := uniqueKeys(names)
	out := make(map[string]domain.Place, len(keys))
	for _, k := range keys {
		if p, ok := m.places[k]; ok {
			out[k] = p
		}
	}

	return out, nil
}

// Store places, replacing the location of any place with the same name.
// The original id and creation time of an existing place are kept.
func (m *MemoryPlaceRepository) PutMany(ctx context.Context, places []domain.Place) error {
	prepared := make([]domain.Place, 0, len(places))
	for _, p := range places {
		pp, err := preparePlace(p)
		if err != nil {
			return fmt.Errorf("insert places: %w", err)
		}
		prepared = append(prepared, pp)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range prepared {
		if existing, ok := m.places[p.Key()]; ok {
			p.PlaceID = existing.PlaceID
			p.CreatedAt = existing.CreatedAt
		}
		m.places[p.Key()] = p
	}

	return nil
}
